package framework

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Results is the outcome of one suite run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of a single executed test.
type TestResult struct {
	Name     string
	Passed   bool
	Message  string
	Err      error
	Kind     Kind
	Duration time.Duration
	Stack    string // set when the test body panicked
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) Passed() int { return len(r.Tests) - len(r.Failures) }

func (r Results) Failed() int { return len(r.Failures) }

func (r Results) Total() int { return len(r.Tests) }

// Percentage returns the share of passed tests. An empty run is 0%.
func (r Results) Percentage() float64 {
	total := r.Total()
	if total < 1 {
		total = 1
	}
	return float64(r.Passed()) / float64(total) * 100
}

// PercentageText formats Percentage, cutting fractional values down to five
// characters so that long repeating decimals stay readable.
func (r Results) PercentageText() string {
	percent := strconv.FormatFloat(r.Percentage(), 'f', -1, 64)
	if strings.Index(percent, ".") > 0 && len(percent) > 5 {
		percent = percent[:5]
	}
	return percent
}

// Summary is the one-line footer of a report, e.g. "Passed: 1 / 4 = 25%".
func (r Results) Summary() string {
	return fmt.Sprintf("Passed: %d / %d = %s%%", r.Passed(), r.Total(), r.PercentageText())
}

// HookError is returned when a lifecycle hook fails. A failing hook stops the
// run.
type HookError struct {
	Hook Tag
	Test string // the test that was running, if any
	Err  error
}

func (e *HookError) Error() string {
	if e.Test != "" {
		return fmt.Sprintf("%s hook failed while running [%s]: %s", e.Hook, e.Test, e.Err)
	}
	return fmt.Sprintf("%s hook failed: %s", e.Hook, e.Err)
}

func (e *HookError) Unwrap() error { return e.Err }
