package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32 // Space bar
	KeyP     = 80 // P key (ASCII)
	KeyR     = 82 // R key (ASCII)
)
