package poet

import "github.com/teranos/swiftpoet/errors"

// Modifier is a declaration keyword such as an access level or storage
// qualifier. Modifiers are written in the order they were added.
type Modifier string

// Access levels
const (
	Open        Modifier = "open"
	Public      Modifier = "public"
	Internal    Modifier = "internal"
	FilePrivate Modifier = "fileprivate"
	Private     Modifier = "private"
)

// Declaration qualifiers
const (
	Static      Modifier = "static"
	Final       Modifier = "final"
	Lazy        Modifier = "lazy"
	Dynamic     Modifier = "dynamic"
	Weak        Modifier = "weak"
	Override    Modifier = "override"
	Required    Modifier = "required"
	Convenience Modifier = "convenience"
	Mutating    Modifier = "mutating"
	Indirect    Modifier = "indirect"
)

// String returns the keyword.
func (m Modifier) String() string {
	return string(m)
}

var modifiers = map[string]Modifier{}

func init() {
	for _, m := range []Modifier{
		Open, Public, Internal, FilePrivate, Private,
		Static, Final, Lazy, Dynamic, Weak, Override, Required, Convenience, Mutating, Indirect,
	} {
		modifiers[string(m)] = m
	}
}

// ParseModifier returns the Modifier spelled s.
func ParseModifier(s string) (Modifier, error) {
	if m, ok := modifiers[s]; ok {
		return m, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidDeclaration, "unknown modifier %q", s)
}
