package engine

import (
	_ "embed"
)

var (
	//go:embed shaders/blob.vert
	blobVertexSource string
	//go:embed shaders/line.vert
	lineVertexSource string
	//go:embed shaders/blob.frag
	blobFragmentSource string
)

const (
	positionAttribute = "a_Position"

	colorUniform        = "u_Color"
	orthographicUniform = "u_OrthographicMatrix"
	modelUniform        = "u_ModelMatrix"
	timeUniform         = "u_Time"
)

// Bindings holds the resolved attribute and uniform locations of a program.
type Bindings struct {
	Attributes map[string]int32
	Uniforms   map[string]int32
}

func (b Bindings) Attribute(name string) int32 {
	if l, ok := b.Attributes[name]; ok {
		return l
	}
	return -1
}

func (b Bindings) Uniform(name string) int32 {
	if l, ok := b.Uniforms[name]; ok {
		return l
	}
	return -1
}

// Compile compiles a single shader stage. name only labels errors.
func Compile(d Device, name, source string, stage ShaderStage) (Shader, error) {
	s, log, ok := d.CompileShader(stage, source)
	if !ok {
		return 0, &ShaderCompileError{Program: name, Stage: stage, Log: log}
	}
	return s, nil
}

// Link links and validates a program from a vertex and a fragment stage.
func Link(d Device, name string, vertex, fragment Shader) (Program, error) {
	p, log, ok := d.LinkProgram(vertex, fragment)
	if !ok {
		return 0, &ProgramLinkError{Program: name, Log: log}
	}
	return p, nil
}

// ResolveBindings looks up every named attribute and uniform. All of them are
// required, the first missing one is reported as *MissingBindingError.
func ResolveBindings(d Device, name string, p Program, attributes, uniforms []string) (Bindings, error) {
	b := Bindings{
		Attributes: make(map[string]int32, len(attributes)),
		Uniforms:   make(map[string]int32, len(uniforms)),
	}

	for _, a := range attributes {
		l := d.AttribLocation(p, a)
		if l < 0 {
			return Bindings{}, &MissingBindingError{Program: name, Kind: AttributeBinding, Name: a}
		}
		b.Attributes[a] = l
	}

	for _, u := range uniforms {
		l := d.UniformLocation(p, u)
		if l < 0 {
			return Bindings{}, &MissingBindingError{Program: name, Kind: UniformBinding, Name: u}
		}
		b.Uniforms[u] = l
	}

	return b, nil
}

// shaderProgram caches the locations the passes write every frame.
// time is -1 for programs without a time input.
type shaderProgram struct {
	name    string
	program Program

	position int32

	color        int32
	orthographic int32
	model        int32
	time         int32
}

func newShaderProgram(d Device, name string, vertex, fragment Shader, withTime bool) (*shaderProgram, error) {
	p, err := Link(d, name, vertex, fragment)
	if err != nil {
		return nil, err
	}

	uniforms := []string{colorUniform, orthographicUniform, modelUniform}
	if withTime {
		uniforms = append(uniforms, timeUniform)
	}

	b, err := ResolveBindings(d, name, p, []string{positionAttribute}, uniforms)
	if err != nil {
		return nil, err
	}

	Logger().Debug("program linked", "name", name, "handle", p)

	return &shaderProgram{
		name:    name,
		program: p,

		position: b.Attribute(positionAttribute),

		color:        b.Uniform(colorUniform),
		orthographic: b.Uniform(orthographicUniform),
		model:        b.Uniform(modelUniform),
		time:         b.Uniform(timeUniform),
	}, nil
}

// newPrograms builds the fill program for blob bodies and the line program
// for the proximity overlay. Both share the fragment stage.
func newPrograms(d Device) (fill, line *shaderProgram, err error) {
	fragment, err := Compile(d, "blob", blobFragmentSource, FragmentStage)
	if err != nil {
		return nil, nil, err
	}
	defer d.DeleteShader(fragment)

	fillVertex, err := Compile(d, "fill", blobVertexSource, VertexStage)
	if err != nil {
		return nil, nil, err
	}
	defer d.DeleteShader(fillVertex)

	lineVertex, err := Compile(d, "line", lineVertexSource, VertexStage)
	if err != nil {
		return nil, nil, err
	}
	defer d.DeleteShader(lineVertex)

	if fill, err = newShaderProgram(d, "fill", fillVertex, fragment, true); err != nil {
		return nil, nil, err
	}
	if line, err = newShaderProgram(d, "line", lineVertex, fragment, false); err != nil {
		return nil, nil, err
	}

	return fill, line, nil
}
