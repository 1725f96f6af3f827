package framework

import "runtime/debug"

// Trace returns a stack trace of the calling goroutine. It is meant for test
// bodies that want to include their call site in a diagnostic.
func Trace() string {
	return string(debug.Stack())
}
