package poet

import (
	"fmt"
	"strings"

	"github.com/teranos/swiftpoet/errors"
)

type tokenKind int

const (
	tokenCode tokenKind = iota
	tokenIndent
	tokenUnindent
)

type token struct {
	kind tokenKind
	text string
}

// Block is an ordered sequence of statements and control-flow markers, used
// for method bodies, initializers, accessor bodies and free-form top-level code.
//
// Block is mutable while being assembled; declaration builders take a private
// copy in Build(), so later changes to a Block never leak into built nodes.
//
// Begin/next/end calls must be balanced by the caller. Emission does not check
// this; use CheckBalanced when the block comes from untrusted input.
type Block struct {
	tokens []token
}

// NewBlock creates a block seeded with raw code. Each argument is appended
// verbatim, without a trailing newline.
func NewBlock(code ...string) *Block {
	b := &Block{}
	for _, c := range code {
		b.Add(c)
	}
	return b
}

// Code is shorthand for a block holding a single piece of raw code.
func Code(text string) *Block {
	return NewBlock(text)
}

// Add appends code verbatim.
func (b *Block) Add(code string) *Block {
	b.tokens = append(b.tokens, token{kind: tokenCode, text: code})
	return b
}

// Statement appends text followed by a newline.
func (b *Block) Statement(text string) *Block {
	return b.Add(text + "\n")
}

// Statementf appends a formatted statement followed by a newline.
func (b *Block) Statementf(format string, args ...any) *Block {
	return b.Statement(fmt.Sprintf(format, args...))
}

// BeginControlFlow opens a brace-delimited construct such as "if x" or
// "for i in 0..<n" and indents what follows.
func (b *Block) BeginControlFlow(header string) *Block {
	b.Add(header + " {\n")
	b.tokens = append(b.tokens, token{kind: tokenIndent})
	return b
}

// NextControlFlow closes the current construct and opens a continuation
// ("else", "catch") at the original brace depth.
func (b *Block) NextControlFlow(header string) *Block {
	b.tokens = append(b.tokens, token{kind: tokenUnindent})
	b.Add("} " + header + " {\n")
	b.tokens = append(b.tokens, token{kind: tokenIndent})
	return b
}

// EndControlFlow closes the current construct with "}".
func (b *Block) EndControlFlow() *Block {
	return b.EndControlFlowWith("}")
}

// EndControlFlowWith closes the current construct with closer, e.g. "})" for
// a trailing closure argument.
func (b *Block) EndControlFlowWith(closer string) *Block {
	b.tokens = append(b.tokens, token{kind: tokenUnindent})
	return b.Add(closer + "\n")
}

// Block splices the tokens of other into b. Nothing is wrapped; the result is
// the same as if other's calls had been made on b directly.
func (b *Block) Block(other *Block) *Block {
	if other != nil {
		b.tokens = append(b.tokens, other.tokens...)
	}
	return b
}

// IsEmpty reports whether the block holds no tokens.
func (b *Block) IsEmpty() bool {
	return b == nil || len(b.tokens) == 0
}

// Depth returns the net indent change the block applies when emitted.
// Zero for a balanced block.
func (b *Block) Depth() int {
	if b == nil {
		return 0
	}
	depth := 0
	for _, t := range b.tokens {
		switch t.kind {
		case tokenIndent:
			depth++
		case tokenUnindent:
			depth--
		}
	}
	return depth
}

// CheckBalanced returns an error when a control flow is closed before it was
// opened or when the block leaves constructs open.
func (b *Block) CheckBalanced() error {
	if b == nil {
		return nil
	}
	depth := 0
	for i, t := range b.tokens {
		switch t.kind {
		case tokenIndent:
			depth++
		case tokenUnindent:
			depth--
			if depth < 0 {
				return errors.Wrapf(errors.ErrUnbalancedBlock, "control flow closed without a matching begin at token %d", i)
			}
		}
	}
	if depth != 0 {
		return errors.WithHint(
			errors.Wrapf(errors.ErrUnbalancedBlock, "%d control flow construct(s) left open", depth),
			"close every BeginControlFlow with EndControlFlow",
		)
	}
	return nil
}

// Emit walks the tokens in order against w.
func (b *Block) Emit(w *Writer) {
	if b == nil {
		return
	}
	for _, t := range b.tokens {
		switch t.kind {
		case tokenIndent:
			w.Indent()
		case tokenUnindent:
			w.Unindent()
		default:
			w.Emit(t.text)
		}
	}
}

// String renders the block with the default indent unit.
func (b *Block) String() string {
	return Render(b)
}

func (b *Block) component() {}

// clone returns an independent copy, or nil for a nil block.
func (b *Block) clone() *Block {
	if b == nil {
		return nil
	}
	return &Block{tokens: append([]token(nil), b.tokens...)}
}

// endsWithNewline reports whether the last code written by the block ends a line.
func (b *Block) endsWithNewline() bool {
	for i := len(b.tokens) - 1; i >= 0; i-- {
		if b.tokens[i].kind != tokenCode {
			continue
		}
		if b.tokens[i].text == "" {
			continue
		}
		return strings.HasSuffix(b.tokens[i].text, "\n")
	}
	return true
}
