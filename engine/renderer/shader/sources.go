package shader

import _ "embed"

// LitSource is the WGSL module for the lit sphere pipeline. It declares the camera, object and
// directional light uniforms in group 0 and consumes the 36-byte interleaved sphere vertex.
//
//go:embed assets/lit.wgsl
var LitSource string

// FlatSource is the WGSL module for the 2D circle pipeline. Vertices are a vec2 position in disk
// units plus an RGBA color, and a single f32 scale uniform is written to clip w.
//
//go:embed assets/flat.wgsl
var FlatSource string
