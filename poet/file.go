package poet

import (
	"io"
	"path/filepath"
	"strings"
)

// FileExtension is appended to file names that carry no extension.
const FileExtension = ".swift"

// SourceFile is the composition root: imports followed by top-level
// components, rendered in insertion order.
type SourceFile struct {
	name       string
	imports    []string
	components []Component
}

// Name returns the file name including its extension.
func (f *SourceFile) Name() string { return f.name }

// Imports returns a copy of the import list.
func (f *SourceFile) Imports() []string { return append([]string(nil), f.imports...) }

// Components returns a copy of the top-level components.
func (f *SourceFile) Components() []Component {
	return append([]Component(nil), f.components...)
}

// Emit writes one import per line, then each component. A line break follows
// every component except bare variable declarations.
func (f *SourceFile) Emit(w *Writer) {
	for _, imp := range f.imports {
		w.Emit("import " + imp + "\n")
	}
	for _, c := range f.components {
		c.Emit(w)
		if _, isField := c.(*FieldSpec); !isField {
			w.Emit("\n")
		}
	}
}

// Render returns the file contents.
func (f *SourceFile) Render(opts ...WriterOption) (string, error) {
	var sb strings.Builder
	if _, err := f.RenderTo(&sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderTo streams the file into sink and returns the number of bytes written.
func (f *SourceFile) RenderTo(sink io.Writer, opts ...WriterOption) (int64, error) {
	w := NewWriter(sink, opts...)
	f.Emit(w)
	return w.Written(), w.Err()
}

// WriteTo implements io.WriterTo with the default indent unit.
func (f *SourceFile) WriteTo(sink io.Writer) (int64, error) {
	return f.RenderTo(sink)
}

// FileBuilder accumulates a SourceFile.
type FileBuilder struct {
	name       string
	imports    []string
	components []Component
}

// NewFile starts a source file. FileExtension is appended unless name already
// has an extension.
func NewFile(name string) *FileBuilder {
	if filepath.Ext(name) == "" {
		name += FileExtension
	}
	return &FileBuilder{name: name}
}

// NewSingleTypeFile starts a file holding one type declaration.
func NewSingleTypeFile(name string, t *TypeSpec) *FileBuilder {
	return NewFile(name).AddType(t)
}

// AddImport appends module imports in order.
func (b *FileBuilder) AddImport(modules ...string) *FileBuilder {
	b.imports = append(b.imports, modules...)
	return b
}

// AddProperty appends a top-level variable.
func (b *FileBuilder) AddProperty(f *FieldSpec) *FileBuilder {
	b.components = append(b.components, f)
	return b
}

// AddMethod appends a top-level function.
func (b *FileBuilder) AddMethod(m *MethodSpec) *FileBuilder {
	b.components = append(b.components, m)
	return b
}

// AddType appends a top-level type.
func (b *FileBuilder) AddType(t *TypeSpec) *FileBuilder {
	b.components = append(b.components, t)
	return b
}

// AddBlock appends free-form code. The block is copied.
func (b *FileBuilder) AddBlock(block *Block) *FileBuilder {
	if block == nil {
		return b
	}
	b.components = append(b.components, block.clone())
	return b
}

// Build freezes the file.
func (b *FileBuilder) Build() *SourceFile {
	return &SourceFile{
		name:       b.name,
		imports:    append([]string(nil), b.imports...),
		components: append([]Component(nil), b.components...),
	}
}
