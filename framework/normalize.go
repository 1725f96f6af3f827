package framework

import (
	"sort"
	"strings"
)

// Test is a normalized test definition.
type Test struct {
	Name       string
	Func       Func
	Attributes []Attribute
	expected   []Kind
}

// ExpectException adds kind to the set of error kinds the test accepts as a
// successful outcome.
func (t *Test) ExpectException(kind Kind) {
	if kind == "" || t.Expects(kind) {
		return
	}
	t.expected = append(t.expected, kind)
}

// Expects reports whether kind is one of the test's expected error kinds.
func (t *Test) Expects(kind Kind) bool {
	for _, k := range t.expected {
		if k == kind {
			return true
		}
	}
	return false
}

func (t *Test) ExpectsAnyException() bool {
	return len(t.expected) > 0
}

// ExpectedExceptions returns the expected kinds in the order they were added.
func (t *Test) ExpectedExceptions() []Kind {
	return append([]Kind(nil), t.expected...)
}

func (t *Test) expectedExceptionList() string {
	names := make([]string, 0, len(t.expected))
	for _, k := range t.expected {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

// Normalize converts definitions into Tests, keeping their order. The
// attributes of each test are sorted with CompareAttributes. Entries without a
// body or without a function are dropped.
func Normalize(defs Definitions) []*Test {
	var tests []*Test
	for _, entry := range defs {
		if entry.Body == nil || entry.Body.procedure() == nil {
			continue
		}
		test := &Test{Name: entry.Name, Func: entry.Body.procedure()}
		if attributed, ok := entry.Body.(Attributed); ok {
			attrs := append([]Attribute{}, attributed.Attributes...)
			sort.SliceStable(attrs, func(i, j int) bool {
				return CompareAttributes(attrs[i], attrs[j]) < 0
			})
			test.Attributes = attrs
		}
		tests = append(tests, test)
	}
	return tests
}
