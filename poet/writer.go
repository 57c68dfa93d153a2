package poet

import (
	"io"
	"strings"
)

// DefaultIndent is the indent unit used when no WithIndent option is given.
const DefaultIndent = "  "

// Writer is the emission engine. It wraps a single sink, tracks the indent
// depth and whether the last byte written was a newline, and prefixes every
// non-empty line with the current indentation.
//
// Write errors are sticky: after the first failure nothing else reaches the
// sink and Err reports the failure.
type Writer struct {
	sink         io.Writer
	indentUnit   string
	depth        int
	afterNewline bool
	written      int64
	err          error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithIndent sets the string repeated once per indent level.
func WithIndent(unit string) WriterOption {
	return func(w *Writer) {
		w.indentUnit = unit
	}
}

// NewWriter creates a Writer bound to sink for its whole lifetime.
func NewWriter(sink io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		sink:       sink,
		indentUnit: DefaultIndent,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Indent increases the indent depth by one level.
func (w *Writer) Indent() *Writer {
	return w.IndentBy(1)
}

// IndentBy increases the indent depth by levels.
func (w *Writer) IndentBy(levels int) *Writer {
	w.depth += levels
	return w
}

// Unindent decreases the indent depth by one level.
func (w *Writer) Unindent() *Writer {
	return w.UnindentBy(1)
}

// UnindentBy decreases the indent depth by levels. The depth is not guarded
// and may become negative; a negative depth renders no prefix.
func (w *Writer) UnindentBy(levels int) *Writer {
	w.depth -= levels
	return w
}

// Depth returns the current indent depth.
func (w *Writer) Depth() int {
	return w.depth
}

// Emit writes code, splitting it on line boundaries. Only non-empty segments
// that directly follow a written newline receive the indent prefix, so blank
// lines never carry trailing whitespace and the first write is never indented.
func (w *Writer) Emit(code string) *Writer {
	code = strings.ReplaceAll(code, "\r\n", "\n")
	for i, line := range strings.Split(code, "\n") {
		if i > 0 {
			w.write("\n")
			w.afterNewline = true
		}
		if line == "" {
			continue
		}
		if w.afterNewline && w.depth > 0 {
			w.write(strings.Repeat(w.indentUnit, w.depth))
		}
		w.write(line)
		w.afterNewline = false
	}
	return w
}

// EmitModifiers writes each modifier keyword followed by a single space, in
// input order. Duplicates and conflicting pairs are written as given.
func (w *Writer) EmitModifiers(mods ...Modifier) *Writer {
	for _, m := range mods {
		w.Emit(m.String())
		w.Emit(" ")
	}
	return w
}

// EmitBlock emits b if it is non-nil.
func (w *Writer) EmitBlock(b *Block) *Writer {
	if b != nil {
		b.Emit(w)
	}
	return w
}

// Err returns the first error returned by the sink, if any.
func (w *Writer) Err() error {
	return w.err
}

// Written returns the number of bytes accepted by the sink.
func (w *Writer) Written() int64 {
	return w.written
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	n, err := io.WriteString(w.sink, s)
	w.written += int64(n)
	w.err = err
}
