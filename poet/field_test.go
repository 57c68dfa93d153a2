package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldEmit(t *testing.T) {
	tests := []struct {
		name  string
		field *FieldSpec
		want  string
	}{
		{
			name:  "modifiable private",
			field: NewField("field").Modifiable().AddModifier(Private).Build(),
			want:  "private var field",
		},
		{
			name:  "initializer",
			field: NewField("field").Init("1").AddModifier(Private).Build(),
			want:  "private let field = 1",
		},
		{
			name:  "getter",
			field: NewField("field").Type("Int").Getter(NewBlock().Statement("return 0")).Build(),
			want:  "let field: Int {\nget {\nreturn 0\n}\n}",
		},
		{
			name:  "modifiers in order",
			field: NewField("field").AddModifier(Private, Lazy, Dynamic).Build(),
			want:  "private lazy dynamic let field",
		},
		{
			name:  "typed with initializer",
			field: NewField("count").Type("Int").Modifiable().Init("0").Build(),
			want:  "var count: Int = 0",
		},
		{
			name:  "weak optional",
			field: NewField("delegate").Type("Delegate?").Modifiable().AddModifier(Weak).Build(),
			want:  "weak var delegate: Delegate?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.field))
		})
	}
}

func TestFieldAccessorOrder(t *testing.T) {
	// Accessors render get, set, willSet, didSet regardless of call order.
	field := NewField("value").
		Type("Int").
		Modifiable().
		Setter("", nil).
		Getter(nil).
		Build()

	assert.Equal(t, "var value: Int {\nget\nset\n}", Render(field))
}

func TestFieldAccessorBodies(t *testing.T) {
	field := NewField("value").
		Type("Int").
		Modifiable().
		Setter("newValue", NewBlock().Statement("storage = newValue")).
		Getter(NewBlock("return storage")).
		Build()

	want := "var value: Int {\n" +
		"get {\nreturn storage\n}\n" +
		"set(newValue) {\nstorage = newValue\n}\n" +
		"}"
	assert.Equal(t, want, Render(field))
}

func TestFieldObservers(t *testing.T) {
	field := NewField("score").
		Type("Int").
		Modifiable().
		Init("0").
		DidSet(NewBlock().Statement("refresh()")).
		WillSet("next", NewBlock().Statement("log(next)")).
		Build()

	want := "var score: Int = 0 {\n" +
		"willSet(next) {\nlog(next)\n}\n" +
		"didSet {\nrefresh()\n}\n" +
		"}"
	assert.Equal(t, want, Render(field))
}

func TestFieldAccessorReplaced(t *testing.T) {
	field := NewField("x").
		Type("Int").
		Getter(NewBlock().Statement("return 1")).
		Getter(NewBlock().Statement("return 2")).
		Build()

	assert.Equal(t, "let x: Int {\nget {\nreturn 2\n}\n}", Render(field))
}

func TestFieldBuildIsolation(t *testing.T) {
	body := NewBlock().Statement("return 0")
	builder := NewField("field").Type("Int").Getter(body).AddModifier(Private)
	field := builder.Build()

	body.Statement("unreachable()")
	builder.AddModifier(Static).Modifiable()

	assert.Equal(t, "private let field: Int {\nget {\nreturn 0\n}\n}", Render(field))
	assert.Equal(t, []Modifier{Private}, field.Modifiers())
	assert.False(t, field.Mutable())
}

func TestFieldAccessors(t *testing.T) {
	field := NewField("name").Type("String").Build()

	assert.Equal(t, "name", field.Name())
	assert.Equal(t, "String", field.Type())
	assert.False(t, field.HasAccessors())
	assert.Nil(t, field.Modifiers())
}
