package poet

// DiscardLabel is the argument label used when a parameter has neither a
// name nor an explicit label.
const DiscardLabel = "_"

// ParameterSpec is one parameter of a method, initializer or subscript.
type ParameterSpec struct {
	name         string
	label        string
	paramType    string
	defaultValue string
	inOut        bool
}

// Param is shorthand for NewParameter(name, paramType).Build().
func Param(name, paramType string) *ParameterSpec {
	return NewParameter(name, paramType).Build()
}

// ParameterBuilder accumulates a ParameterSpec.
type ParameterBuilder struct {
	spec ParameterSpec
}

// NewParameter starts a parameter. name may be empty.
func NewParameter(name, paramType string) *ParameterBuilder {
	return &ParameterBuilder{spec: ParameterSpec{name: name, paramType: paramType}}
}

// Label sets the external argument label ("of", "in", "_").
func (b *ParameterBuilder) Label(label string) *ParameterBuilder {
	b.spec.label = label
	return b
}

// Default sets the default value expression.
func (b *ParameterBuilder) Default(expr string) *ParameterBuilder {
	b.spec.defaultValue = expr
	return b
}

// InOut marks the parameter as passed by reference.
func (b *ParameterBuilder) InOut() *ParameterBuilder {
	b.spec.inOut = true
	return b
}

// Build freezes the parameter.
func (b *ParameterBuilder) Build() *ParameterSpec {
	spec := b.spec
	if spec.name == "" && spec.label == "" {
		spec.label = DiscardLabel
	}
	return &spec
}

// Name returns the internal parameter name, empty when absent.
func (p *ParameterSpec) Name() string { return p.name }

// Label returns the external argument label, empty when absent.
func (p *ParameterSpec) Label() string { return p.label }

// Type returns the declared type.
func (p *ParameterSpec) Type() string { return p.paramType }

// Emit writes "[label ][name]: [inout ]Type[ = default]".
func (p *ParameterSpec) Emit(w *Writer) {
	if p.label != "" {
		w.Emit(p.label)
		if p.name != "" {
			w.Emit(" ")
		}
	}
	w.Emit(p.name).Emit(":")
	if p.inOut {
		w.Emit(" inout")
	}
	w.Emit(" " + p.paramType)
	if p.defaultValue != "" {
		w.Emit(" = " + p.defaultValue)
	}
}

func emitParameters(w *Writer, params []*ParameterSpec) {
	w.Emit("(")
	for i, p := range params {
		if i > 0 {
			w.Emit(", ")
		}
		p.Emit(w)
	}
	w.Emit(")")
}
