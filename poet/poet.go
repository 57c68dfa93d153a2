// Package poet generates Swift source code from an in-memory declaration model.
//
// # Architecture
//
// The package uses a builder/node split:
//  1. Builders (FieldBuilder, MethodBuilder, TypeBuilder, ...) accumulate
//     configuration through chained calls and validate it in Build()
//  2. Nodes (FieldSpec, MethodSpec, TypeSpec, ...) are immutable once built and
//     render themselves onto a Writer through the Emitter interface
//
// A SourceFile aggregates nodes; rendering it is a depth-first, pre-order walk
// over the tree against a single Writer. Output order always equals insertion
// order at every nesting level.
//
// # Example
//
//	method := poet.NewMethod("greet").
//		AddParam(poet.Param("name", "String")).
//		Returns("String").
//		Body(poet.NewBlock().Statement(`return "Hello, \(name)"`)).
//		Build()
//
//	file := poet.NewFile("Greeter").AddImport("Foundation").AddMethod(method).Build()
//	src, err := file.Render()
//
// Builders are single-owner values and must not be shared between goroutines
// while being configured. Built nodes are safe to render concurrently, each
// rendering using its own Writer.
package poet

import "strings"

// Emitter is implemented by every node that can render itself onto a Writer.
type Emitter interface {
	Emit(w *Writer)
}

// Component is a top-level element of a SourceFile.
// Implemented by *FieldSpec, *MethodSpec, *TypeSpec and *Block only.
type Component interface {
	Emitter
	component()
}

// Render emits e into a fresh in-memory sink and returns the text.
func Render(e Emitter, opts ...WriterOption) string {
	var sb strings.Builder
	e.Emit(NewWriter(&sb, opts...))
	return sb.String()
}

func cloneModifiers(mods []Modifier) []Modifier {
	if len(mods) == 0 {
		return nil
	}
	return append([]Modifier(nil), mods...)
}
