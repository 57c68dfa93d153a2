package poet

// accessor is one of get/set/willSet/didSet. A nil body renders the bare keyword.
type accessor struct {
	param string
	body  *Block
}

func (a *accessor) emit(w *Writer, keyword string) {
	w.Emit(keyword)
	if a.param != "" {
		w.Emit("(" + a.param + ")")
	}
	if a.body == nil {
		w.Emit("\n")
		return
	}
	w.Emit(" {\n").EmitBlock(a.body)
	if !a.body.endsWithNewline() {
		w.Emit("\n")
	}
	w.Emit("}\n")
}

func (a *accessor) clone() *accessor {
	if a == nil {
		return nil
	}
	return &accessor{param: a.param, body: a.body.clone()}
}

// FieldSpec is a stored or computed variable: a type property, or a
// top-level var/let declaration.
type FieldSpec struct {
	name        string
	fieldType   string
	modifiers   []Modifier
	mutable     bool
	initializer *Block

	getter  *accessor
	setter  *accessor
	willSet *accessor
	didSet  *accessor
}

// Name returns the variable name.
func (f *FieldSpec) Name() string { return f.name }

// Type returns the declared type, empty when inferred.
func (f *FieldSpec) Type() string { return f.fieldType }

// Mutable reports whether the field is declared with var.
func (f *FieldSpec) Mutable() bool { return f.mutable }

// Modifiers returns a copy of the modifiers in declaration order.
func (f *FieldSpec) Modifiers() []Modifier { return cloneModifiers(f.modifiers) }

// HasAccessors reports whether any accessor was configured.
func (f *FieldSpec) HasAccessors() bool {
	return f.getter != nil || f.setter != nil || f.willSet != nil || f.didSet != nil
}

// Emit writes "[modifiers ][var|let] name[: Type][ = initializer]" followed by
// an accessor block when accessors are present. Accessors are always listed
// in the order get, set, willSet, didSet.
func (f *FieldSpec) Emit(w *Writer) {
	w.EmitModifiers(f.modifiers...)
	if f.mutable {
		w.Emit("var ")
	} else {
		w.Emit("let ")
	}
	w.Emit(f.name)
	if f.fieldType != "" {
		w.Emit(": " + f.fieldType)
	}
	if f.initializer != nil {
		w.Emit(" = ").EmitBlock(f.initializer)
	}
	if !f.HasAccessors() {
		return
	}
	w.Emit(" {\n")
	if f.getter != nil {
		f.getter.emit(w, "get")
	}
	if f.setter != nil {
		f.setter.emit(w, "set")
	}
	if f.willSet != nil {
		f.willSet.emit(w, "willSet")
	}
	if f.didSet != nil {
		f.didSet.emit(w, "didSet")
	}
	w.Emit("}")
}

func (f *FieldSpec) component() {}

// FieldBuilder accumulates a FieldSpec.
type FieldBuilder struct {
	spec FieldSpec
}

// NewField starts a field declaration. Fields are immutable (let) unless
// Modifiable is called.
func NewField(name string) *FieldBuilder {
	return &FieldBuilder{spec: FieldSpec{name: name}}
}

// Type sets the declared type.
func (b *FieldBuilder) Type(fieldType string) *FieldBuilder {
	b.spec.fieldType = fieldType
	return b
}

// Init sets the initializer expression.
func (b *FieldBuilder) Init(expr string) *FieldBuilder {
	b.spec.initializer = NewBlock(expr)
	return b
}

// InitBlock sets a multi-line initializer such as a closure.
func (b *FieldBuilder) InitBlock(block *Block) *FieldBuilder {
	b.spec.initializer = block
	return b
}

// Modifiable declares the field with var instead of let.
func (b *FieldBuilder) Modifiable() *FieldBuilder {
	b.spec.mutable = true
	return b
}

// AddModifier appends modifiers in the given order.
func (b *FieldBuilder) AddModifier(mods ...Modifier) *FieldBuilder {
	b.spec.modifiers = append(b.spec.modifiers, mods...)
	return b
}

// Getter sets the get accessor. A nil body declares a bare "get" requirement.
// Setting an accessor twice replaces the earlier one.
func (b *FieldBuilder) Getter(body *Block) *FieldBuilder {
	b.spec.getter = &accessor{body: body}
	return b
}

// Setter sets the set accessor; param names the new value and may be empty.
func (b *FieldBuilder) Setter(param string, body *Block) *FieldBuilder {
	b.spec.setter = &accessor{param: param, body: body}
	return b
}

// WillSet sets the willSet observer; param may be empty.
func (b *FieldBuilder) WillSet(param string, body *Block) *FieldBuilder {
	b.spec.willSet = &accessor{param: param, body: body}
	return b
}

// DidSet sets the didSet observer.
func (b *FieldBuilder) DidSet(body *Block) *FieldBuilder {
	b.spec.didSet = &accessor{body: body}
	return b
}

// Build freezes the field.
func (b *FieldBuilder) Build() *FieldSpec {
	return &FieldSpec{
		name:        b.spec.name,
		fieldType:   b.spec.fieldType,
		modifiers:   cloneModifiers(b.spec.modifiers),
		mutable:     b.spec.mutable,
		initializer: b.spec.initializer.clone(),
		getter:      b.spec.getter.clone(),
		setter:      b.spec.setter.clone(),
		willSet:     b.spec.willSet.clone(),
		didSet:      b.spec.didSet.clone(),
	}
}
