package framework

import "sort"

// Func is the body of a test or lifecycle hook. Returning a non-nil error, or
// panicking, means the body failed.
type Func func() error

// Body is what a test name maps to in a set of definitions: either Bare or
// Attributed.
type Body interface {
	procedure() Func
}

// Bare is a test body with no attributes.
type Bare struct {
	Func Func
}

// Attributed is a test body together with the attributes that apply to it.
type Attributed struct {
	Attributes []Attribute
	Func       Func
}

func (b Bare) procedure() Func       { return b.Func }
func (a Attributed) procedure() Func { return a.Func }

// Entry is one named test definition.
type Entry struct {
	Name string
	Body Body
}

// Definitions is an ordered set of test definitions. Tests run in this order.
type Definitions []Entry

// Def is a convenience for building an Entry. With no attributes the body is
// Bare, otherwise it is Attributed.
func Def(name string, fn Func, attrs ...Attribute) Entry {
	if len(attrs) == 0 {
		return Entry{Name: name, Body: Bare{Func: fn}}
	}
	return Entry{Name: name, Body: Attributed{Attributes: attrs, Func: fn}}
}

// DefinitionsFromMap converts a map of bodies into Definitions ordered by
// name, since map iteration order is not stable.
func DefinitionsFromMap(m map[string]Body) Definitions {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	defs := make(Definitions, 0, len(names))
	for _, name := range names {
		defs = append(defs, Entry{Name: name, Body: m[name]})
	}
	return defs
}
