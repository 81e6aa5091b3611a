// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Rect is an on-screen rectangle in pixels, such as the drawable surface's bounding box.
type Rect struct {
	// Left is the x coordinate of the left edge.
	Left float64
	// Top is the y coordinate of the top edge. Y grows downward.
	Top float64
	// Width is the rectangle width in pixels.
	Width float64
	// Height is the rectangle height in pixels.
	Height float64
}

// ToNDC converts a pixel position into normalized device coordinates relative to r:
// the rectangle center maps to (0, 0), the left/right edges to x = -1/+1 and the
// top/bottom edges to y = +1/-1.
//
// Parameters:
//   - px, py: pixel coordinates in the same space as the rectangle
//
// Returns:
//   - [2]float32: the normalized (x, y) position
func (r Rect) ToNDC(px, py float64) [2]float32 {
	halfW := r.Width / 2
	halfH := r.Height / 2
	if halfW == 0 || halfH == 0 {
		return [2]float32{}
	}
	x := (px - r.Left - halfW) / halfW
	y := (halfH - (py - r.Top)) / halfH
	return [2]float32{float32(x), float32(y)}
}

// RGBA is a linear color with alpha, each channel in [0, 1].
type RGBA [4]float32

// RGB is a linear color without alpha, each channel in [0, 1].
type RGB [3]float32
