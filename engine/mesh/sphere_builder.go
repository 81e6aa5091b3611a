package mesh

// sphereConfig collects the settings applied by SphereOption values.
type sphereConfig struct {
	color [3]float32
}

// SphereOption is a functional option for configuring GenerateSphere.
type SphereOption func(*sphereConfig)

// WithColor overrides the constant per-vertex color of the sphere.
//
// Parameters:
//   - r, g, b: the color channels in [0, 1]
//
// Returns:
//   - SphereOption: a function that applies the color option
func WithColor(r, g, b float32) SphereOption {
	return func(c *sphereConfig) {
		c.color = [3]float32{r, g, b}
	}
}
