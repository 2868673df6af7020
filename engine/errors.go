package engine

import "fmt"

// ShaderCompileError is returned when the driver rejects a shader stage.
type ShaderCompileError struct {
	Program string
	Stage   ShaderStage
	Log     string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%v %v shader error: %v", e.Program, e.Stage, e.Log)
}

// ProgramLinkError is returned when linking or validating a program fails.
type ProgramLinkError struct {
	Program string
	Log     string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("%v program linker error: %v", e.Program, e.Log)
}

type BindingKind int

const (
	AttributeBinding BindingKind = iota
	UniformBinding
)

func (k BindingKind) String() string {
	if k == AttributeBinding {
		return "attribute"
	}
	return "uniform"
}

// MissingBindingError means the shader source does not declare (or the
// compiler optimized away) an input the renderer writes to.
type MissingBindingError struct {
	Program string
	Kind    BindingKind
	Name    string
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("%v program: unknown %v %q", e.Program, e.Kind, e.Name)
}
