package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// call is one recorded device call.
type call struct {
	Name     string
	Location int32
	Value    interface{}
}

type drawCall struct {
	Mode    Primitive
	First   int
	Count   int
	Program Program
	Color   mgl32.Vec4
	Model   mgl32.Mat4
	Line    [4]float32
}

// recordingDevice is an in-memory Device. It hands out handles, resolves
// locations from the declarations found in the shader sources and records
// every state change and draw.
type recordingDevice struct {
	next uint32

	sources  map[Shader]string
	programs map[Program]string // concatenated sources

	// failure injection
	compileFail map[ShaderStage]string
	linkFail    string
	uploadFail  error
	dropBinding string

	program  Program
	buffer   Buffer
	enabled  map[int32]bool
	uniforms map[int32]interface{}
	data     map[Buffer][]float32

	calls []call
	draws []drawCall
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{
		sources:     map[Shader]string{},
		programs:    map[Program]string{},
		compileFail: map[ShaderStage]string{},
		enabled:     map[int32]bool{},
		uniforms:    map[int32]interface{}{},
		data:        map[Buffer][]float32{},
	}
}

func (d *recordingDevice) record(name string, loc int32, v interface{}) {
	d.calls = append(d.calls, call{Name: name, Location: loc, Value: v})
}

func (d *recordingDevice) handle() uint32 {
	d.next++
	return d.next
}

func (d *recordingDevice) CompileShader(stage ShaderStage, source string) (Shader, string, bool) {
	if log, ok := d.compileFail[stage]; ok {
		return 0, log, false
	}
	s := Shader(d.handle())
	d.sources[s] = source
	return s, "", true
}

func (d *recordingDevice) DeleteShader(s Shader) {
	d.record("DeleteShader", 0, s)
}

func (d *recordingDevice) LinkProgram(vertex, fragment Shader) (Program, string, bool) {
	if d.linkFail != "" {
		return 0, d.linkFail, false
	}
	p := Program(d.handle())
	d.programs[p] = d.sources[vertex] + d.sources[fragment]
	return p, "", true
}

// locations are derived from the program handle and the declaration order
// so that both programs get distinct locations
func (d *recordingDevice) location(p Program, decl, name string) int32 {
	if name == d.dropBinding {
		return -1
	}
	i := strings.Index(d.programs[p], decl+" "+name+";")
	if i < 0 {
		// declarations carry the type between qualifier and name
		for _, t := range []string{"vec2", "vec4", "mat4", "float"} {
			if i = strings.Index(d.programs[p], fmt.Sprintf("%v %v %v;", decl, t, name)); i >= 0 {
				break
			}
		}
	}
	if i < 0 {
		return -1
	}
	return int32(p)*100000 + int32(i)
}

func (d *recordingDevice) AttribLocation(p Program, name string) int32 {
	return d.location(p, "in", name)
}

func (d *recordingDevice) UniformLocation(p Program, name string) int32 {
	return d.location(p, "uniform", name)
}

func (d *recordingDevice) NewBuffer() Buffer {
	return Buffer(d.handle())
}

func (d *recordingDevice) BindBuffer(b Buffer) {
	d.buffer = b
	d.record("BindBuffer", 0, b)
}

func (d *recordingDevice) BufferData(data []float32, usage BufferUsage) error {
	if d.uploadFail != nil {
		return d.uploadFail
	}
	d.data[d.buffer] = append([]float32(nil), data...)
	d.record("BufferData", 0, len(data))
	return nil
}

func (d *recordingDevice) UseProgram(p Program) {
	d.program = p
	d.record("UseProgram", 0, p)
}

func (d *recordingDevice) EnableAttrib(location int32) {
	d.enabled[location] = true
	d.record("EnableAttrib", location, nil)
}

func (d *recordingDevice) DisableAttrib(location int32) {
	delete(d.enabled, location)
	d.record("DisableAttrib", location, nil)
}

func (d *recordingDevice) AttribPointer(location int32, size int32) {
	d.record("AttribPointer", location, size)
}

func (d *recordingDevice) Uniform1f(location int32, v float32) {
	d.uniforms[location] = v
	d.record("Uniform1f", location, v)
}

func (d *recordingDevice) Uniform4f(location int32, v mgl32.Vec4) {
	d.uniforms[location] = v
	d.record("Uniform4f", location, v)
}

func (d *recordingDevice) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.uniforms[location] = m
	d.record("UniformMatrix4", location, m)
}

func (d *recordingDevice) Viewport(width, height int) {
	d.record("Viewport", 0, [2]int{width, height})
}

func (d *recordingDevice) ClearColor(c mgl32.Vec4) {
	d.record("ClearColor", 0, c)
}

func (d *recordingDevice) Clear() {
	d.record("Clear", 0, nil)
}

func (d *recordingDevice) DrawArrays(mode Primitive, first, count int) {
	dc := drawCall{
		Mode:    mode,
		First:   first,
		Count:   count,
		Program: d.program,
	}
	if prg := d.programs[d.program]; prg != "" {
		if c, ok := d.uniforms[d.location(d.program, "uniform", colorUniform)].(mgl32.Vec4); ok {
			dc.Color = c
		}
		if m, ok := d.uniforms[d.location(d.program, "uniform", modelUniform)].(mgl32.Mat4); ok {
			dc.Model = m
		}
	}
	if mode == Lines {
		copy(dc.Line[:], d.data[d.buffer])
	}
	d.draws = append(d.draws, dc)
	d.record("DrawArrays", 0, mode)
}

func (d *recordingDevice) reset() {
	d.calls = nil
	d.draws = nil
}

func (d *recordingDevice) count(name string) int {
	n := 0
	for _, c := range d.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

func (d *recordingDevice) drawsOf(mode Primitive) []drawCall {
	var r []drawCall
	for _, dc := range d.draws {
		if dc.Mode == mode {
			r = append(r, dc)
		}
	}
	return r
}
