package poet

import (
	"strings"

	"github.com/teranos/swiftpoet/errors"
)

// TypeKind is the keyword introducing a type declaration.
type TypeKind string

const (
	KindClass     TypeKind = "class"
	KindStruct    TypeKind = "struct"
	KindProtocol  TypeKind = "protocol"
	KindEnum      TypeKind = "enum"
	KindExtension TypeKind = "extension"
)

// Structural validation failures reported by TypeBuilder.Build.
// Both match errors.ErrInvalidDeclaration.
var (
	ErrNonAbstractProtocolMethod = errors.Mark(
		errors.New("only abstract methods are allowed inside a protocol"),
		errors.ErrInvalidDeclaration,
	)
	ErrEnumCaseOutsideEnum = errors.Mark(
		errors.New("enum cases are only allowed inside an enum"),
		errors.ErrInvalidDeclaration,
	)
)

// TypeSpec is a class, struct, protocol, enum or extension declaration.
type TypeSpec struct {
	kind       TypeKind
	name       string
	generic    string
	supertypes []string
	modifiers  []Modifier
	properties []*FieldSpec
	methods    []*MethodSpec
	types      []*TypeSpec
	enumCases  []*EnumConstantSpec
}

// Kind returns the type kind.
func (t *TypeSpec) Kind() TypeKind { return t.kind }

// Name returns the type name, or the extended type for extensions.
func (t *TypeSpec) Name() string { return t.name }

// Methods returns a copy of the method list.
func (t *TypeSpec) Methods() []*MethodSpec { return append([]*MethodSpec(nil), t.methods...) }

// Properties returns a copy of the property list.
func (t *TypeSpec) Properties() []*FieldSpec { return append([]*FieldSpec(nil), t.properties...) }

// NestedTypes returns a copy of the nested type list.
func (t *TypeSpec) NestedTypes() []*TypeSpec { return append([]*TypeSpec(nil), t.types...) }

// EnumCases returns a copy of the enum case list.
func (t *TypeSpec) EnumCases() []*EnumConstantSpec {
	return append([]*EnumConstantSpec(nil), t.enumCases...)
}

// Emit writes the header and the members in a fixed order: enum cases,
// properties (followed by one blank line when present), methods, nested types.
func (t *TypeSpec) Emit(w *Writer) {
	w.EmitModifiers(t.modifiers...).
		Emit(string(t.kind)).
		Emit(" " + t.name)
	if t.generic != "" {
		w.Emit("<" + t.generic + ">")
	}
	if len(t.supertypes) > 0 {
		w.Emit(" : " + strings.Join(t.supertypes, ", "))
	}
	w.Emit(" {\n").Indent()

	for _, c := range t.enumCases {
		c.Emit(w)
		w.Emit("\n")
	}

	for _, p := range t.properties {
		p.Emit(w)
		w.Emit("\n")
	}
	if len(t.properties) > 0 {
		w.Emit("\n")
	}

	for _, m := range t.methods {
		m.Emit(w)
		w.Emit("\n")
	}

	for _, nested := range t.types {
		nested.Emit(w)
		w.Emit("\n")
	}

	w.Unindent().Emit("}\n")
}

func (t *TypeSpec) component() {}

// TypeBuilder accumulates a TypeSpec.
type TypeBuilder struct {
	spec TypeSpec
}

func newTypeBuilder(kind TypeKind, name string) *TypeBuilder {
	return &TypeBuilder{spec: TypeSpec{kind: kind, name: name}}
}

// NewClass starts a class declaration.
func NewClass(name string) *TypeBuilder { return newTypeBuilder(KindClass, name) }

// NewStruct starts a struct declaration.
func NewStruct(name string) *TypeBuilder { return newTypeBuilder(KindStruct, name) }

// NewProtocol starts a protocol declaration. Only abstract methods are accepted.
func NewProtocol(name string) *TypeBuilder { return newTypeBuilder(KindProtocol, name) }

// NewEnum starts an enum declaration.
func NewEnum(name string) *TypeBuilder { return newTypeBuilder(KindEnum, name) }

// NewExtension starts an extension of an existing type.
func NewExtension(ofType string) *TypeBuilder { return newTypeBuilder(KindExtension, ofType) }

// AddSuperType appends supertypes and protocol conformances in order.
func (b *TypeBuilder) AddSuperType(names ...string) *TypeBuilder {
	b.spec.supertypes = append(b.spec.supertypes, names...)
	return b
}

// AddModifier appends modifiers in the given order.
func (b *TypeBuilder) AddModifier(mods ...Modifier) *TypeBuilder {
	b.spec.modifiers = append(b.spec.modifiers, mods...)
	return b
}

// Generic sets the generic parameter clause without angle brackets.
func (b *TypeBuilder) Generic(clause string) *TypeBuilder {
	b.spec.generic = clause
	return b
}

// AddProperty appends a property.
func (b *TypeBuilder) AddProperty(f *FieldSpec) *TypeBuilder {
	b.spec.properties = append(b.spec.properties, f)
	return b
}

// AddMethod appends a method.
func (b *TypeBuilder) AddMethod(m *MethodSpec) *TypeBuilder {
	b.spec.methods = append(b.spec.methods, m)
	return b
}

// AddType appends a nested type.
func (b *TypeBuilder) AddType(t *TypeSpec) *TypeBuilder {
	b.spec.types = append(b.spec.types, t)
	return b
}

// AddEnumCase appends an enum case. Only valid for enums; checked in Build.
func (b *TypeBuilder) AddEnumCase(c *EnumConstantSpec) *TypeBuilder {
	b.spec.enumCases = append(b.spec.enumCases, c)
	return b
}

// Build validates and freezes the type. It fails when a protocol holds a
// non-abstract method or when a non-enum type holds enum cases; no node is
// returned in that case.
func (b *TypeBuilder) Build() (*TypeSpec, error) {
	if err := b.checkMethods(); err != nil {
		return nil, err
	}
	if err := b.checkEnumCases(); err != nil {
		return nil, err
	}

	spec := b.spec
	spec.supertypes = append([]string(nil), b.spec.supertypes...)
	spec.modifiers = cloneModifiers(b.spec.modifiers)
	spec.properties = append([]*FieldSpec(nil), b.spec.properties...)
	spec.methods = append([]*MethodSpec(nil), b.spec.methods...)
	spec.types = append([]*TypeSpec(nil), b.spec.types...)
	spec.enumCases = append([]*EnumConstantSpec(nil), b.spec.enumCases...)
	return &spec, nil
}

// MustBuild is like Build but panics on a validation error.
func (b *TypeBuilder) MustBuild() *TypeSpec {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func (b *TypeBuilder) checkMethods() error {
	if b.spec.kind != KindProtocol {
		return nil
	}
	for _, m := range b.spec.methods {
		if !m.IsAbstract() {
			return errors.WithHintf(
				errors.Wrapf(ErrNonAbstractProtocolMethod, "protocol %s: method %s is %s", b.spec.name, m.name, m.kind),
				"declare %s with NewAbstractMethod", m.name,
			)
		}
	}
	return nil
}

func (b *TypeBuilder) checkEnumCases() error {
	if b.spec.kind == KindEnum || len(b.spec.enumCases) == 0 {
		return nil
	}
	return errors.Wrapf(ErrEnumCaseOutsideEnum, "%s %s declares %d enum case(s)",
		b.spec.kind, b.spec.name, len(b.spec.enumCases))
}
