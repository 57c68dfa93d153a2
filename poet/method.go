package poet

// MethodKind selects how a method declaration is introduced.
type MethodKind int

const (
	MethodNormal       MethodKind = iota // func name(...)
	MethodInit                           // init(...)
	MethodOptionalInit                   // init?(...)
	MethodSubscript                      // subscript(...)
	MethodAbstract                       // func name(...) without a body, for protocols
)

// String returns the kind name.
func (k MethodKind) String() string {
	switch k {
	case MethodNormal:
		return "normal"
	case MethodInit:
		return "init"
	case MethodOptionalInit:
		return "init?"
	case MethodSubscript:
		return "subscript"
	case MethodAbstract:
		return "abstract"
	default:
		return "unknown"
	}
}

// MethodSpec is a function, initializer, subscript or protocol requirement.
type MethodSpec struct {
	kind        MethodKind
	name        string
	modifiers   []Modifier
	generic     string
	params      []*ParameterSpec
	returnType  string
	whereClause string
	throws      bool
	body        *Block
}

// Name returns the method name. Initializers and subscripts report their keyword.
func (m *MethodSpec) Name() string { return m.name }

// Kind returns the method kind.
func (m *MethodSpec) Kind() MethodKind { return m.kind }

// IsAbstract reports whether the method is a body-less requirement.
func (m *MethodSpec) IsAbstract() bool { return m.kind == MethodAbstract }

// Parameters returns a copy of the parameter list.
func (m *MethodSpec) Parameters() []*ParameterSpec {
	return append([]*ParameterSpec(nil), m.params...)
}

// Emit writes the signature and, unless the method is abstract, the body
// in braces. Abstract methods emit no braces at all.
func (m *MethodSpec) Emit(w *Writer) {
	w.EmitModifiers(m.modifiers...)
	switch m.kind {
	case MethodNormal, MethodAbstract:
		w.Emit("func " + m.name)
	default:
		w.Emit(m.kind.String())
	}
	if m.generic != "" {
		w.Emit("<" + m.generic + ">")
	}
	emitParameters(w, m.params)
	if m.throws {
		w.Emit(" throws")
	}
	if m.returnType != "" {
		w.Emit(" -> " + m.returnType)
	}
	if m.whereClause != "" {
		w.Emit(" where " + m.whereClause)
	}
	if m.kind == MethodAbstract {
		return
	}

	w.Emit(" {\n")
	if !m.body.IsEmpty() {
		w.Indent()
		m.body.Emit(w)
		if !m.body.endsWithNewline() {
			w.Emit("\n")
		}
		w.Unindent()
	}
	w.Emit("}\n")
}

func (m *MethodSpec) component() {}

// MethodBuilder accumulates a MethodSpec.
type MethodBuilder struct {
	spec MethodSpec
}

// NewMethod starts a regular method.
func NewMethod(name string) *MethodBuilder {
	return &MethodBuilder{spec: MethodSpec{kind: MethodNormal, name: name}}
}

// NewAbstractMethod starts a protocol requirement. Any body is ignored.
func NewAbstractMethod(name string) *MethodBuilder {
	return &MethodBuilder{spec: MethodSpec{kind: MethodAbstract, name: name}}
}

// NewInitializer starts an init declaration.
func NewInitializer() *MethodBuilder {
	return &MethodBuilder{spec: MethodSpec{kind: MethodInit, name: MethodInit.String()}}
}

// NewOptionalInitializer starts a failable init? declaration.
func NewOptionalInitializer() *MethodBuilder {
	return &MethodBuilder{spec: MethodSpec{kind: MethodOptionalInit, name: MethodOptionalInit.String()}}
}

// NewSubscript starts a subscript declaration.
func NewSubscript() *MethodBuilder {
	return &MethodBuilder{spec: MethodSpec{kind: MethodSubscript, name: MethodSubscript.String()}}
}

// Returns sets the return type.
func (b *MethodBuilder) Returns(returnType string) *MethodBuilder {
	b.spec.returnType = returnType
	return b
}

// AddParam appends a parameter.
func (b *MethodBuilder) AddParam(param *ParameterSpec) *MethodBuilder {
	b.spec.params = append(b.spec.params, param)
	return b
}

// AddParams appends parameters in order.
func (b *MethodBuilder) AddParams(params ...*ParameterSpec) *MethodBuilder {
	b.spec.params = append(b.spec.params, params...)
	return b
}

// AddModifier appends modifiers in the given order.
func (b *MethodBuilder) AddModifier(mods ...Modifier) *MethodBuilder {
	b.spec.modifiers = append(b.spec.modifiers, mods...)
	return b
}

// Generic sets the generic parameter clause without angle brackets, e.g. "T: Equatable".
func (b *MethodBuilder) Generic(clause string) *MethodBuilder {
	b.spec.generic = clause
	return b
}

// Where sets the where clause without the keyword.
func (b *MethodBuilder) Where(clause string) *MethodBuilder {
	b.spec.whereClause = clause
	return b
}

// Throws marks the method as throwing.
func (b *MethodBuilder) Throws() *MethodBuilder {
	b.spec.throws = true
	return b
}

// Code sets the body to raw code.
func (b *MethodBuilder) Code(code string) *MethodBuilder {
	return b.Body(NewBlock(code))
}

// Body sets the body block.
func (b *MethodBuilder) Body(body *Block) *MethodBuilder {
	b.spec.body = body
	return b
}

// Build freezes the method.
func (b *MethodBuilder) Build() *MethodSpec {
	spec := b.spec
	spec.modifiers = cloneModifiers(b.spec.modifiers)
	spec.params = append([]*ParameterSpec(nil), b.spec.params...)
	spec.body = b.spec.body.clone()
	if spec.kind == MethodAbstract {
		spec.body = nil
	}
	return &spec
}
