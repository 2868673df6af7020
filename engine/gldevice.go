package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLDevice drives an OpenGL 4.1 core context.
// The context must be current on the calling thread for every method.
type GLDevice struct {
	vertexArray uint32
}

// NewGLDevice loads the gl function pointers of the current context and
// prepares the state shared by all passes.
func NewGLDevice() (*GLDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}

	d := &GLDevice{}

	// core profile refuses attribute pointers without a bound vertex array
	gl.GenVertexArrays(1, &d.vertexArray)
	gl.BindVertexArray(d.vertexArray)

	gl.Enable(gl.SAMPLE_ALPHA_TO_COVERAGE)
	gl.SampleCoverage(.5, false)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	if err := checkError(); err != nil {
		return nil, err
	}

	Logger().Info("gl device ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	return d, nil
}

func (d *GLDevice) CompileShader(stage ShaderStage, source string) (Shader, string, bool) {
	var xtype uint32 = gl.VERTEX_SHADER
	if stage == FragmentStage {
		xtype = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(xtype)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, strings.TrimRight(log, "\x00"), false
	}

	return Shader(shader), "", true
}

func (d *GLDevice) DeleteShader(s Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *GLDevice) LinkProgram(vertex, fragment Shader) (Program, string, bool) {
	program := gl.CreateProgram()
	gl.AttachShader(program, uint32(vertex))
	gl.AttachShader(program, uint32(fragment))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		// validation needs the vertex array bound in NewGLDevice
		gl.ValidateProgram(program)
		gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	}

	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, strings.TrimRight(log, "\x00"), false
	}

	return Program(program), "", true
}

func (d *GLDevice) AttribLocation(p Program, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (d *GLDevice) UniformLocation(p Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (d *GLDevice) NewBuffer() Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return Buffer(b)
}

func (d *GLDevice) BindBuffer(b Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (d *GLDevice) BufferData(data []float32, usage BufferUsage) error {
	var hint uint32 = gl.STATIC_DRAW
	if usage == StreamDraw {
		hint = gl.STREAM_DRAW
	}

	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, hint)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), hint)
	}

	return checkError()
}

func (d *GLDevice) UseProgram(p Program) {
	gl.UseProgram(uint32(p))
}

func (d *GLDevice) EnableAttrib(location int32) {
	gl.EnableVertexAttribArray(uint32(location))
}

func (d *GLDevice) DisableAttrib(location int32) {
	gl.DisableVertexAttribArray(uint32(location))
}

func (d *GLDevice) AttribPointer(location int32, size int32) {
	gl.VertexAttribPointer(uint32(location), size, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (d *GLDevice) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *GLDevice) Uniform4f(location int32, v mgl32.Vec4) {
	gl.Uniform4fv(location, 1, &v[0])
}

func (d *GLDevice) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *GLDevice) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *GLDevice) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (d *GLDevice) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *GLDevice) DrawArrays(mode Primitive, first, count int) {
	var xmode uint32 = gl.TRIANGLE_FAN
	if mode == Lines {
		xmode = gl.LINES
	}
	gl.DrawArrays(xmode, int32(first), int32(count))
}

// Dispose releases the vertex array. Programs and buffers live as long as
// the context.
func (d *GLDevice) Dispose() {
	gl.DeleteVertexArrays(1, &d.vertexArray)
}

func checkError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x", code)
	}
	return nil
}
