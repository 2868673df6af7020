package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

type (
	Shader  uint32
	Program uint32
	Buffer  uint32
)

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

type Primitive int

const (
	TriangleFan Primitive = iota
	Lines
)

type BufferUsage int

const (
	StaticDraw BufferUsage = iota
	StreamDraw
)

// Device is the stateful GPU context the renderer draws through.
// Bindings (program, array buffer, enabled attributes) persist between calls
// until changed, exactly like the underlying driver.
// All methods must be called from the thread owning the context.
type Device interface {
	// shader and program objects
	CompileShader(stage ShaderStage, source string) (s Shader, log string, ok bool)
	DeleteShader(s Shader)
	LinkProgram(vertex, fragment Shader) (p Program, log string, ok bool)
	AttribLocation(p Program, name string) int32
	UniformLocation(p Program, name string) int32

	// buffers, BufferData uploads into the currently bound buffer
	NewBuffer() Buffer
	BindBuffer(b Buffer)
	BufferData(data []float32, usage BufferUsage) error

	// pipeline state
	UseProgram(p Program)
	EnableAttrib(location int32)
	DisableAttrib(location int32)
	AttribPointer(location int32, size int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, v mgl32.Vec4)
	UniformMatrix4(location int32, m mgl32.Mat4)

	// framebuffer
	Viewport(width, height int)
	ClearColor(c mgl32.Vec4)
	Clear()
	DrawArrays(mode Primitive, first, count int)
}
