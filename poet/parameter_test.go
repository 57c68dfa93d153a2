package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterEmit(t *testing.T) {
	tests := []struct {
		name  string
		param *ParameterSpec
		want  string
	}{
		{"plain", Param("count", "Int"), "count: Int"},
		{"label", NewParameter("value", "Int").Label("of").Build(), "of value: Int"},
		{"explicit discard", NewParameter("value", "Int").Label(DiscardLabel).Build(), "_ value: Int"},
		{"discard sentinel", NewParameter("", "Int").Build(), "_: Int"},
		{"label only", NewParameter("", "Int").Label("at").Build(), "at: Int"},
		{"inout", NewParameter("x", "Int").InOut().Build(), "x: inout Int"},
		{"default", NewParameter("animated", "Bool").Default("true").Build(), "animated: Bool = true"},
		{
			"everything",
			NewParameter("values", "[Int]").Label("into").InOut().Default("[]").Build(),
			"into values: inout [Int] = []",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.param))
		})
	}
}

func TestParameterDiscardLabel(t *testing.T) {
	p := NewParameter("", "String").Build()
	assert.Equal(t, DiscardLabel, p.Label())
	assert.Empty(t, p.Name())
	assert.Equal(t, "String", p.Type())

	named := Param("name", "String")
	assert.Empty(t, named.Label())
}
