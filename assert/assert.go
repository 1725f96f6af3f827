// Package assert provides the six predicates test bodies use to check their
// results. Each returns nil when its condition holds and a *Failure
// otherwise, so a body can simply return the result of the last check.
package assert

import (
	"fmt"
	"reflect"

	"github.com/massalabs/attest/framework"
)

// Failure is the error returned by a violated assertion. Its kind is
// framework.KindAssertFailure.
type Failure struct {
	Message string
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Kind() framework.Kind { return framework.KindAssertFailure }

func fail(format string, args ...interface{}) error {
	return &Failure{Message: fmt.Sprintf(format, args...)}
}

// Equal fails unless actual and expected are strictly equal: same dynamic
// type and same value. Slices, maps and funcs are equal only to themselves.
// A struct or array holding a slice, map or func (directly or through an
// interface field) cannot be compared and is never equal, not even to a copy
// of itself.
func Equal(actual, expected interface{}) error {
	if strictEqual(actual, expected) {
		return nil
	}
	tagActual, tagExpected := typeTags(actual, expected)
	return fail("Expected %s%s but received %s%s.",
		tagExpected, display(expected), tagActual, display(actual))
}

// NotEqual fails if a and b are strictly equal.
func NotEqual(a, b interface{}) error {
	if !strictEqual(a, b) {
		return nil
	}
	tagA, tagB := typeTags(a, b)
	return fail("Values should not be equal: %s%s and %s%s.",
		tagA, display(a), tagB, display(b))
}

// NotNull fails if value is nil.
func NotNull(value interface{}) error {
	if isNil(value) {
		return fail("Unexpected null Value.")
	}
	return nil
}

// IsNull fails unless value is nil.
func IsNull(value interface{}) error {
	if !isNil(value) {
		return fail("Expected null Value, but got %s.", display(value))
	}
	return nil
}

// IsTrue fails unless flag is the boolean true.
func IsTrue(flag interface{}) error {
	if b, ok := flag.(bool); !ok || !b {
		return fail("Expected true.")
	}
	return nil
}

// IsFalse fails unless flag is the boolean false.
func IsFalse(flag interface{}) error {
	if b, ok := flag.(bool); !ok || b {
		return fail("Expected false.")
	}
	return nil
}

func strictEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch ta.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

// typeTags returns the "(type)" prefixes for two values in a message. They
// are only worth showing when the types differ, and never for objects or
// functions, whose printed form already says enough. Values of the same
// family but different Go types, such as int and int64, are tagged with
// their Go type names.
func typeTags(a, b interface{}) (string, string) {
	ta, tb := typeOf(a), typeOf(b)
	if ta == tb {
		if a == nil || b == nil || reflect.TypeOf(a) == reflect.TypeOf(b) {
			return "", ""
		}
		return "(" + reflect.TypeOf(a).String() + ")", "(" + reflect.TypeOf(b).String() + ")"
	}
	return tagFor(ta), tagFor(tb)
}

func tagFor(t string) string {
	if t == "object" || t == "function" {
		return ""
	}
	return "(" + t + ")"
}

func typeOf(v interface{}) string {
	if v == nil {
		return "object"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "number"
	case reflect.Func:
		return "function"
	default:
		return "object"
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func display(v interface{}) string {
	if isNil(v) {
		return "null"
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return "function"
	}
	return fmt.Sprint(v)
}
