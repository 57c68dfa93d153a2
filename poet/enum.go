package poet

// EnumTupleSpec is one element of an enum case's associated value tuple.
type EnumTupleSpec struct {
	label     string
	tupleType string
}

// Tuple creates an unlabeled associated value.
func Tuple(tupleType string) *EnumTupleSpec {
	return &EnumTupleSpec{tupleType: tupleType}
}

// LabeledTuple creates a labeled associated value ("code: String").
func LabeledTuple(label, tupleType string) *EnumTupleSpec {
	return &EnumTupleSpec{label: label, tupleType: tupleType}
}

// Emit writes "[label: ]Type".
func (t *EnumTupleSpec) Emit(w *Writer) {
	if t.label != "" {
		w.Emit(t.label + ": ")
	}
	w.Emit(t.tupleType)
}

// EnumConstantSpec is a single enum case.
type EnumConstantSpec struct {
	name     string
	tuples   []*EnumTupleSpec
	value    string
	indirect bool
}

// Name returns the case name.
func (c *EnumConstantSpec) Name() string { return c.name }

// Emit writes "[indirect ]case name[(tuple, ...)][ = value]".
func (c *EnumConstantSpec) Emit(w *Writer) {
	if c.indirect {
		w.Emit("indirect ")
	}
	w.Emit("case " + c.name)
	if len(c.tuples) > 0 {
		w.Emit("(")
		for i, t := range c.tuples {
			if i > 0 {
				w.Emit(", ")
			}
			t.Emit(w)
		}
		w.Emit(")")
	}
	if c.value != "" {
		w.Emit(" = " + c.value)
	}
}

// EnumCaseBuilder accumulates an EnumConstantSpec.
type EnumCaseBuilder struct {
	spec EnumConstantSpec
}

// NewEnumCase starts an enum case.
func NewEnumCase(name string) *EnumCaseBuilder {
	return &EnumCaseBuilder{spec: EnumConstantSpec{name: name}}
}

// AddTuple appends an associated value.
func (b *EnumCaseBuilder) AddTuple(t *EnumTupleSpec) *EnumCaseBuilder {
	b.spec.tuples = append(b.spec.tuples, t)
	return b
}

// Value sets the raw value literal. It is independent of the tuple list.
func (b *EnumCaseBuilder) Value(literal string) *EnumCaseBuilder {
	b.spec.value = literal
	return b
}

// Indirect marks the case as indirectly stored.
func (b *EnumCaseBuilder) Indirect() *EnumCaseBuilder {
	b.spec.indirect = true
	return b
}

// Build freezes the case.
func (b *EnumCaseBuilder) Build() *EnumConstantSpec {
	spec := b.spec
	spec.tuples = append([]*EnumTupleSpec(nil), b.spec.tuples...)
	return &spec
}
