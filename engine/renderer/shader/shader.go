// Package shader wraps WGSL sources with the reflection data the renderer needs to build
// pipelines: the stage entry point, vertex buffer layouts and buffer bind group layouts.
package shader

import (
	"fmt"
	"sort"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader is used for.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex stage.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment stage.
	ShaderTypeFragment
)

// String returns the stage name.
func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderType(%d)", int(t))
	}
}

type shader struct {
	key                        string
	source                     string
	shaderType                 ShaderType
	entryPoint                 string
	vertexLayouts              []wgpu.VertexBufferLayout
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
}

// Shader is a parsed WGSL stage. Vertex and fragment shaders may share one source module; each
// Shader reflects only its own stage.
type Shader interface {
	// Key returns the unique identifier used for labels and lookups.
	//
	// Returns:
	//   - string: the shader key
	Key() string

	// Source returns the WGSL source.
	//
	// Returns:
	//   - string: the WGSL code
	Source() string

	// ShaderType returns the stage this shader was parsed for.
	//
	// Returns:
	//   - ShaderType: the stage
	ShaderType() ShaderType

	// EntryPoint returns the stage's entry function name.
	//
	// Returns:
	//   - string: the entry point name
	EntryPoint() string

	// VertexLayouts returns the vertex buffer layouts derived from the vertex input structs.
	// Fragment shaders return nil.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: one layout per vertex buffer slot
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayoutDescriptors returns the buffer bindings declared in the source keyed by
	// group index, visible to this shader's stage.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptor returns the descriptor for one group, or an empty descriptor.
	//
	// Parameters:
	//   - group: the group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the descriptor
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor
}

var _ Shader = &shader{}

// NewShader parses source for the given stage.
// It panics if the source is empty or declares no entry point for the stage.
//
// Parameters:
//   - key: a unique identifier for the shader
//   - shaderType: the stage to reflect
//   - source: the WGSL code
//
// Returns:
//   - Shader: the parsed shader
func NewShader(key string, shaderType ShaderType, source string) Shader {
	if source == "" {
		panic(fmt.Sprintf("shader: %s has no source", key))
	}
	s := &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
		entryPoint: parseEntryPoint(source, shaderType),
	}
	if s.entryPoint == "" {
		panic(fmt.Sprintf("shader: %s declares no @%s entry point", key, shaderType))
	}

	visibility := wgpu.ShaderStageFragment
	if shaderType == ShaderTypeVertex {
		visibility = wgpu.ShaderStageVertex
		s.vertexLayouts = parseVertexLayouts(source)
	}
	s.bindGroupLayoutDescriptors = parseBindGroupLayouts(source, visibility)
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors[group]
}

// MergeBindGroupLayouts combines the layouts of several stages. Entries sharing a group and
// binding are merged by OR-ing their visibility; the first stage's buffer description wins.
//
// Parameters:
//   - shaders: the stages of one pipeline
//
// Returns:
//   - map[int]wgpu.BindGroupLayoutDescriptor: the merged descriptors keyed by group index
func MergeBindGroupLayouts(shaders ...Shader) map[int]wgpu.BindGroupLayoutDescriptor {
	type key struct{ group, binding int }
	merged := make(map[key]wgpu.BindGroupLayoutEntry)
	var order []key
	for _, s := range shaders {
		if s == nil {
			continue
		}
		for g, desc := range s.BindGroupLayoutDescriptors() {
			for _, e := range desc.Entries {
				k := key{g, int(e.Binding)}
				if existing, ok := merged[k]; ok {
					existing.Visibility |= e.Visibility
					merged[k] = existing
					continue
				}
				merged[k] = e
				order = append(order, k)
			}
		}
	}

	out := make(map[int]wgpu.BindGroupLayoutDescriptor)
	for _, k := range order {
		desc := out[k.group]
		desc.Entries = append(desc.Entries, merged[k])
		out[k.group] = desc
	}
	for g, desc := range out {
		sort.Slice(desc.Entries, func(i, j int) bool { return desc.Entries[i].Binding < desc.Entries[j].Binding })
		out[g] = desc
	}
	return out
}
