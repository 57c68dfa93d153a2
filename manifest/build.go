package manifest

import (
	"fmt"

	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
	"github.com/teranos/swiftpoet/poet"
)

// Build drives the poet builders for every file in the manifest.
// Errors carry the path of the failing declaration, e.g.
// "files[0] Model: declarations[2] type Store: ...".
func (m *Manifest) Build() ([]*poet.SourceFile, error) {
	if len(m.Files) == 0 {
		return nil, errors.NewInvalidRequestError("manifest declares no files")
	}

	files := make([]*poet.SourceFile, 0, len(m.Files))
	seen := make(map[string]int, len(m.Files))
	for i, f := range m.Files {
		sf, err := f.build()
		if err != nil {
			return nil, errors.Wrapf(err, "files[%d] %s", i, f.Name)
		}
		if prev, ok := seen[sf.Name()]; ok {
			return nil, errors.Wrapf(errors.ErrInvalidDeclaration,
				"files[%d] and files[%d] both render %s", prev, i, sf.Name())
		}
		seen[sf.Name()] = i
		files = append(files, sf)
	}

	logger.Debugw("Built manifest", logger.FieldManifest, m.Path, logger.FieldCount, len(files))
	return files, nil
}

func (f File) build() (*poet.SourceFile, error) {
	if f.Name == "" {
		return nil, errors.Wrap(errors.ErrInvalidDeclaration, "file name is required")
	}

	fb := poet.NewFile(f.Name).AddImport(f.Imports...)
	for i, d := range f.Declarations {
		if err := d.addTo(fb); err != nil {
			return nil, errors.Wrapf(err, "declarations[%d]", i)
		}
	}
	return fb.Build(), nil
}

func (d Declaration) addTo(fb *poet.FileBuilder) error {
	set := 0
	for _, present := range []bool{d.Type != nil, d.Method != nil, d.Property != nil, d.Code != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidDeclaration, "declaration sets %d of type, method, property, code", set),
			"set exactly one",
		)
	}

	switch {
	case d.Type != nil:
		t, err := d.Type.build()
		if err != nil {
			return err
		}
		fb.AddType(t)
	case d.Method != nil:
		m, err := d.Method.build()
		if err != nil {
			return err
		}
		fb.AddMethod(m)
	case d.Property != nil:
		p, err := d.Property.build()
		if err != nil {
			return err
		}
		fb.AddProperty(p)
	default:
		b, err := buildBody(d.Code)
		if err != nil {
			return errors.Wrap(err, "code")
		}
		fb.AddBlock(b)
	}
	return nil
}

var typeFactories = map[string]func(string) *poet.TypeBuilder{
	string(poet.KindClass):     poet.NewClass,
	string(poet.KindStruct):    poet.NewStruct,
	string(poet.KindProtocol):  poet.NewProtocol,
	string(poet.KindEnum):      poet.NewEnum,
	string(poet.KindExtension): poet.NewExtension,
}

func (t *Type) build() (*poet.TypeSpec, error) {
	label := fmt.Sprintf("%s %s", t.Kind, t.Name)
	factory, ok := typeFactories[t.Kind]
	if !ok {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidDeclaration, "%s: unknown kind %q", label, t.Kind),
			"kind is one of class, struct, protocol, enum, extension",
		)
	}
	if t.Name == "" {
		return nil, errors.Wrapf(errors.ErrInvalidDeclaration, "%s: name is required", t.Kind)
	}

	mods, err := parseModifiers(t.Modifiers)
	if err != nil {
		return nil, errors.Wrap(err, label)
	}

	tb := factory(t.Name).
		Generic(t.Generic).
		AddSuperType(t.SuperTypes...).
		AddModifier(mods...)

	for _, c := range t.Cases {
		tb.AddEnumCase(c.build())
	}
	for i, p := range t.Properties {
		f, err := p.build()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: properties[%d]", label, i)
		}
		tb.AddProperty(f)
	}
	for i, m := range t.Methods {
		spec, err := m.build()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: methods[%d]", label, i)
		}
		tb.AddMethod(spec)
	}
	for i, nested := range t.Types {
		spec, err := nested.build()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: types[%d]", label, i)
		}
		tb.AddType(spec)
	}

	// Validation errors already name the type.
	return tb.Build()
}

func (m *Method) build() (*poet.MethodSpec, error) {
	var mb *poet.MethodBuilder
	name := m.Name
	switch m.Kind {
	case "", "func":
		mb = poet.NewMethod(m.Name)
	case "abstract":
		mb = poet.NewAbstractMethod(m.Name)
	case poet.MethodInit.String():
		mb, name = poet.NewInitializer(), poet.MethodInit.String()
	case poet.MethodOptionalInit.String():
		mb, name = poet.NewOptionalInitializer(), poet.MethodOptionalInit.String()
	case poet.MethodSubscript.String():
		mb, name = poet.NewSubscript(), poet.MethodSubscript.String()
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidDeclaration, "method %s: unknown kind %q", m.Name, m.Kind),
			"kind is one of func, abstract, init, init?, subscript",
		)
	}
	if name == "" {
		return nil, errors.Wrap(errors.ErrInvalidDeclaration, "method name is required")
	}

	label := "method " + name
	mods, err := parseModifiers(m.Modifiers)
	if err != nil {
		return nil, errors.Wrap(err, label)
	}
	mb.AddModifier(mods...).
		Generic(m.Generic).
		Returns(m.Returns).
		Where(m.Where)
	if m.Throws {
		mb.Throws()
	}

	for _, p := range m.Params {
		mb.AddParam(p.build())
	}

	if len(m.Body) > 0 {
		body, err := buildBody(m.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: body", label)
		}
		mb.Body(body)
	}
	return mb.Build(), nil
}

func (p Param) build() *poet.ParameterSpec {
	pb := poet.NewParameter(p.Name, p.Type).Label(p.Label).Default(p.Default)
	if p.InOut {
		pb.InOut()
	}
	return pb.Build()
}

func (p *Property) build() (*poet.FieldSpec, error) {
	if p.Name == "" {
		return nil, errors.Wrap(errors.ErrInvalidDeclaration, "property name is required")
	}
	label := "property " + p.Name

	mods, err := parseModifiers(p.Modifiers)
	if err != nil {
		return nil, errors.Wrap(err, label)
	}

	fb := poet.NewField(p.Name).Type(p.Type).AddModifier(mods...)
	if p.Mutable {
		fb.Modifiable()
	}
	if p.Init != "" {
		fb.Init(p.Init)
	}

	accessors := []struct {
		name string
		acc  *Accessor
		set  func(param string, body *poet.Block)
	}{
		{"get", p.Get, func(_ string, b *poet.Block) { fb.Getter(b) }},
		{"set", p.Set, func(param string, b *poet.Block) { fb.Setter(param, b) }},
		{"will_set", p.WillSet, func(param string, b *poet.Block) { fb.WillSet(param, b) }},
		{"did_set", p.DidSet, func(_ string, b *poet.Block) { fb.DidSet(b) }},
	}
	for _, a := range accessors {
		if a.acc == nil {
			continue
		}
		var body *poet.Block
		if len(a.acc.Body) > 0 {
			body, err = buildBody(a.acc.Body)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: %s", label, a.name)
			}
		}
		a.set(a.acc.Param, body)
	}
	return fb.Build(), nil
}

func (c Case) build() *poet.EnumConstantSpec {
	cb := poet.NewEnumCase(c.Name).Value(c.Value)
	if c.Indirect {
		cb.Indirect()
	}
	for _, t := range c.Tuples {
		if t.Label != "" {
			cb.AddTuple(poet.LabeledTuple(t.Label, t.Type))
		} else {
			cb.AddTuple(poet.Tuple(t.Type))
		}
	}
	return cb.Build()
}

// buildBody turns steps into a block and rejects unbalanced control flow.
func buildBody(steps []Step) (*poet.Block, error) {
	b := poet.NewBlock()
	for i, s := range steps {
		if err := s.apply(b); err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
	}
	if err := b.CheckBalanced(); err != nil {
		return nil, err
	}
	return b, nil
}

func (s Step) apply(b *poet.Block) error {
	set := 0
	for _, present := range []bool{s.Statement != "", s.Raw != "", s.Begin != "", s.Next != "", s.End != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidDeclaration, "step sets %d of statement, raw, begin, next, end", set),
			`set exactly one; use end: "" to close with "}"`,
		)
	}

	switch {
	case s.Statement != "":
		b.Statement(s.Statement)
	case s.Raw != "":
		b.Add(s.Raw)
	case s.Begin != "":
		b.BeginControlFlow(s.Begin)
	case s.Next != "":
		b.NextControlFlow(s.Next)
	case *s.End == "":
		b.EndControlFlow()
	default:
		b.EndControlFlowWith(*s.End)
	}
	return nil
}

func parseModifiers(names []string) ([]poet.Modifier, error) {
	if len(names) == 0 {
		return nil, nil
	}
	mods := make([]poet.Modifier, 0, len(names))
	for _, n := range names {
		m, err := poet.ParseModifier(n)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}
