package pipeline

import "github.com/Carmen-Shannon/oxy-labs/engine/renderer/shader"

const (
	// KeyLit is the depth-tested sphere pipeline.
	KeyLit = "lit"
	// KeyFlat is the 2D circle pipeline.
	KeyFlat = "flat"
)

// NewLitPipeline describes the sphere pipeline: per-vertex diffuse lighting with depth testing and
// no face culling.
func NewLitPipeline() Pipeline {
	return NewPipeline(KeyLit,
		WithVertexShader(shader.NewShader("lit_vs", shader.ShaderTypeVertex, shader.LitSource)),
		WithFragmentShader(shader.NewShader("lit_fs", shader.ShaderTypeFragment, shader.LitSource)),
	)
}

// NewFlatPipeline describes the circle pipeline. Later draws paint over earlier ones, so depth
// testing and writes are off.
func NewFlatPipeline() Pipeline {
	return NewPipeline(KeyFlat,
		WithVertexShader(shader.NewShader("flat_vs", shader.ShaderTypeVertex, shader.FlatSource)),
		WithFragmentShader(shader.NewShader("flat_fs", shader.ShaderTypeFragment, shader.FlatSource)),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithBlendEnabled(true),
	)
}
