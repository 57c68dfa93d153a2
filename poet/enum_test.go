package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumCaseEmit(t *testing.T) {
	tests := []struct {
		name string
		spec *EnumConstantSpec
		want string
	}{
		{"simple", NewEnumCase("north").Build(), "case north"},
		{"raw value", NewEnumCase("north").Value(`"N"`).Build(), `case north = "N"`},
		{
			"associated values",
			NewEnumCase("upc").AddTuple(Tuple("Int")).AddTuple(LabeledTuple("check", "Int")).Build(),
			"case upc(Int, check: Int)",
		},
		{"indirect", NewEnumCase("node").AddTuple(Tuple("Tree")).Indirect().Build(), "indirect case node(Tree)"},
		{
			"tuple and value are independent",
			NewEnumCase("odd").AddTuple(Tuple("Int")).Value("1").Build(),
			"case odd(Int) = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.spec))
		})
	}
}

func TestEnumCaseBuildIsolation(t *testing.T) {
	builder := NewEnumCase("qr").AddTuple(Tuple("String"))
	spec := builder.Build()
	builder.AddTuple(Tuple("Int"))

	assert.Equal(t, "qr", spec.Name())
	assert.Equal(t, "case qr(String)", Render(spec))
}
