// Package manifest reads declarative descriptions of Swift source files
// (YAML, TOML or JSON) and drives the poet builders with them.
//
// A manifest lists files; each file has imports and an ordered list of
// declarations. Every declaration sets exactly one of type, method,
// property or code:
//
//	schema: "1.0"
//	files:
//	  - name: Point
//	    imports: [Foundation]
//	    declarations:
//	      - type:
//	          kind: struct
//	          name: Point
//	          properties:
//	            - {name: x, type: Double, mutable: true}
//
// Bodies are lists of steps (statement, raw, begin, next, end) mirroring
// the poet.Block operations.
package manifest

import "github.com/teranos/swiftpoet/internal/util"

// Manifest is the decoded form of a manifest document.
type Manifest struct {
	Schema string `yaml:"schema" toml:"schema" json:"schema"`
	Files  []File `yaml:"files" toml:"files" json:"files"`

	// Path is the file the manifest was loaded from, empty when decoded from memory
	Path string `yaml:"-" toml:"-" json:"-"`
}

// File describes one generated source file.
type File struct {
	Name         string        `yaml:"name" toml:"name" json:"name"`
	Imports      []string      `yaml:"imports,omitempty" toml:"imports" json:"imports,omitempty"`
	Declarations []Declaration `yaml:"declarations" toml:"declarations" json:"declarations"`
}

// Declaration is a top-level component. Exactly one field must be set.
type Declaration struct {
	Type     *Type     `yaml:"type,omitempty" toml:"type" json:"type,omitempty"`
	Method   *Method   `yaml:"method,omitempty" toml:"method" json:"method,omitempty"`
	Property *Property `yaml:"property,omitempty" toml:"property" json:"property,omitempty"`
	Code     []Step    `yaml:"code,omitempty" toml:"code" json:"code,omitempty"`
}

// Type is a class, struct, protocol, enum or extension.
type Type struct {
	Kind       string     `yaml:"kind" toml:"kind" json:"kind"`
	Name       string     `yaml:"name" toml:"name" json:"name"`
	Generic    string     `yaml:"generic,omitempty" toml:"generic" json:"generic,omitempty"`
	Modifiers  []string   `yaml:"modifiers,omitempty" toml:"modifiers" json:"modifiers,omitempty"`
	SuperTypes []string   `yaml:"supertypes,omitempty" toml:"supertypes" json:"supertypes,omitempty"`
	Cases      []Case     `yaml:"cases,omitempty" toml:"cases" json:"cases,omitempty"`
	Properties []Property `yaml:"properties,omitempty" toml:"properties" json:"properties,omitempty"`
	Methods    []Method   `yaml:"methods,omitempty" toml:"methods" json:"methods,omitempty"`
	Types      []Type     `yaml:"types,omitempty" toml:"types" json:"types,omitempty"`
}

// Method is a function, initializer, subscript or protocol requirement.
// Kind is one of func (default), abstract, init, init? or subscript.
type Method struct {
	Kind      string   `yaml:"kind,omitempty" toml:"kind" json:"kind,omitempty"`
	Name      string   `yaml:"name,omitempty" toml:"name" json:"name,omitempty"`
	Modifiers []string `yaml:"modifiers,omitempty" toml:"modifiers" json:"modifiers,omitempty"`
	Generic   string   `yaml:"generic,omitempty" toml:"generic" json:"generic,omitempty"`
	Params    []Param  `yaml:"params,omitempty" toml:"params" json:"params,omitempty"`
	Returns   string   `yaml:"returns,omitempty" toml:"returns" json:"returns,omitempty"`
	Where     string   `yaml:"where,omitempty" toml:"where" json:"where,omitempty"`
	Throws    bool     `yaml:"throws,omitempty" toml:"throws" json:"throws,omitempty"`
	Body      []Step   `yaml:"body,omitempty" toml:"body" json:"body,omitempty"`
}

// Param is a method parameter.
type Param struct {
	Name    string `yaml:"name,omitempty" toml:"name" json:"name,omitempty"`
	Label   string `yaml:"label,omitempty" toml:"label" json:"label,omitempty"`
	Type    string `yaml:"type" toml:"type" json:"type"`
	Default string `yaml:"default,omitempty" toml:"default" json:"default,omitempty"`
	InOut   bool   `yaml:"inout,omitempty" toml:"inout" json:"inout,omitempty"`
}

// Property is a type property or top-level variable.
type Property struct {
	Name      string    `yaml:"name" toml:"name" json:"name"`
	Type      string    `yaml:"type,omitempty" toml:"type" json:"type,omitempty"`
	Modifiers []string  `yaml:"modifiers,omitempty" toml:"modifiers" json:"modifiers,omitempty"`
	Mutable   bool      `yaml:"mutable,omitempty" toml:"mutable" json:"mutable,omitempty"`
	Init      string    `yaml:"init,omitempty" toml:"init" json:"init,omitempty"`
	Get       *Accessor `yaml:"get,omitempty" toml:"get" json:"get,omitempty"`
	Set       *Accessor `yaml:"set,omitempty" toml:"set" json:"set,omitempty"`
	WillSet   *Accessor `yaml:"will_set,omitempty" toml:"will_set" json:"will_set,omitempty"`
	DidSet    *Accessor `yaml:"did_set,omitempty" toml:"did_set" json:"did_set,omitempty"`
}

// Accessor is a get/set/willSet/didSet clause. An empty body renders the
// bare keyword.
type Accessor struct {
	Param string `yaml:"param,omitempty" toml:"param" json:"param,omitempty"`
	Body  []Step `yaml:"body,omitempty" toml:"body" json:"body,omitempty"`
}

// Case is an enum case.
type Case struct {
	Name     string  `yaml:"name" toml:"name" json:"name"`
	Value    string  `yaml:"value,omitempty" toml:"value" json:"value,omitempty"`
	Indirect bool    `yaml:"indirect,omitempty" toml:"indirect" json:"indirect,omitempty"`
	Tuples   []Tuple `yaml:"tuples,omitempty" toml:"tuples" json:"tuples,omitempty"`
}

// Tuple is one associated value of an enum case.
type Tuple struct {
	Label string `yaml:"label,omitempty" toml:"label" json:"label,omitempty"`
	Type  string `yaml:"type" toml:"type" json:"type"`
}

// Close returns a step ending a control flow with closer; "" closes with "}".
func Close(closer string) Step {
	return Step{End: util.Ptr(closer)}
}

// Step is one body operation. Exactly one field must be set.
// End closes a control flow; an empty string means "}".
type Step struct {
	Statement string  `yaml:"statement,omitempty" toml:"statement" json:"statement,omitempty"`
	Raw       string  `yaml:"raw,omitempty" toml:"raw" json:"raw,omitempty"`
	Begin     string  `yaml:"begin,omitempty" toml:"begin" json:"begin,omitempty"`
	Next      string  `yaml:"next,omitempty" toml:"next" json:"next,omitempty"`
	End       *string `yaml:"end,omitempty" toml:"end" json:"end,omitempty"`
}
