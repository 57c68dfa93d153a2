package poet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/swiftpoet/errors"
)

func TestBlockStatements(t *testing.T) {
	b := NewBlock().Statement("let a = 1").Statementf("let %s = %d", "b", 2)
	assert.Equal(t, "let a = 1\nlet b = 2\n", b.String())
}

func TestBlockControlFlow(t *testing.T) {
	b := NewBlock().
		BeginControlFlow("if x > 0").
		Statement("return 1").
		NextControlFlow("else").
		Statement("return 0").
		EndControlFlow()

	assert.Equal(t, "if x > 0 {\n  return 1\n} else {\n  return 0\n}\n", b.String())
	assert.Equal(t, 0, b.Depth())
	assert.NoError(t, b.CheckBalanced())
}

func TestBlockNestedControlFlow(t *testing.T) {
	b := NewBlock().
		BeginControlFlow("for item in items").
		BeginControlFlow("guard item.isValid else").
		Statement("continue").
		EndControlFlow().
		Statement("process(item)").
		EndControlFlow()

	want := "for item in items {\n" +
		"  guard item.isValid else {\n" +
		"    continue\n" +
		"  }\n" +
		"  process(item)\n" +
		"}\n"
	assert.Equal(t, want, b.String())
}

func TestBlockEndControlFlowWith(t *testing.T) {
	b := NewBlock().
		BeginControlFlow("DispatchQueue.main.async").
		Statement("reload()").
		EndControlFlowWith("})")

	assert.Equal(t, "DispatchQueue.main.async {\n  reload()\n})\n", b.String())
}

func TestBlockSplice(t *testing.T) {
	inner := NewBlock().Statement("try load()")
	outer := NewBlock().
		BeginControlFlow("do").
		Block(inner).
		NextControlFlow("catch").
		Statement("print(error)").
		EndControlFlow()

	assert.Equal(t, "do {\n  try load()\n} catch {\n  print(error)\n}\n", outer.String())

	// Splicing copies the tokens; later changes to inner are not seen.
	inner.Statement("never")
	assert.NotContains(t, outer.String(), "never")
}

func TestBlockPreservesWriterDepth(t *testing.T) {
	for n := 0; n < 4; n++ {
		b := NewBlock()
		for i := 0; i < n; i++ {
			b.BeginControlFlow("if a")
		}
		b.Statement("work()")
		for i := 0; i < n; i++ {
			b.EndControlFlow()
		}

		var sb strings.Builder
		w := NewWriter(&sb).IndentBy(2)
		b.Emit(w)
		assert.Equal(t, 2, w.Depth(), "%d balanced pairs", n)
	}
}

func TestBlockCheckBalanced(t *testing.T) {
	tests := []struct {
		name  string
		block *Block
		depth int
		ok    bool
	}{
		{"nil", nil, 0, true},
		{"empty", NewBlock(), 0, true},
		{"left open", NewBlock().BeginControlFlow("if x").Statement("y()"), 1, false},
		{"closed early", NewBlock().Statement("y()").EndControlFlow(), -1, false},
		{"closed then reopened", NewBlock().EndControlFlow().BeginControlFlow("if x"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.depth, tt.block.Depth())
			err := tt.block.CheckBalanced()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrUnbalancedBlock))
		})
	}
}

func TestBlockCheckBalancedHint(t *testing.T) {
	err := NewBlock().BeginControlFlow("while true").CheckBalanced()
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "EndControlFlow")
}

func TestBlockIsEmpty(t *testing.T) {
	var nilBlock *Block
	assert.True(t, nilBlock.IsEmpty())
	assert.True(t, NewBlock().IsEmpty())
	assert.False(t, NewBlock("x").IsEmpty())
}

func TestBlockEndsWithNewline(t *testing.T) {
	assert.True(t, NewBlock().endsWithNewline())
	assert.True(t, NewBlock().Statement("a").Add("").endsWithNewline())
	assert.False(t, NewBlock("return 0").endsWithNewline())
}

func TestBlockReemitIsStable(t *testing.T) {
	b := NewBlock().BeginControlFlow("switch x").Statement("case 1: break").EndControlFlow()
	assert.Equal(t, b.String(), b.String())
}

func TestCodeShorthand(t *testing.T) {
	assert.Equal(t, "x + 1", Code("x + 1").String())
	assert.Equal(t, "ab", NewBlock("a", "b").String())
}
