package framework

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(name string) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// NewRegexFilters compiles the run and skip patterns.
func NewRegexFilters(run, skip []string) (RegexFilters, error) {
	var r RegexFilters
	for _, p := range run {
		if err := r.MustMatch.Set(p); err != nil {
			return RegexFilters{}, err
		}
	}
	for _, p := range skip {
		if err := r.MustNotMatch.Set(p); err != nil {
			return RegexFilters{}, err
		}
	}
	return r, nil
}

func (r RegexFilters) AsFilter(name string) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

// IsDefined reports whether any pattern was given at all.
func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// Describe returns a human-readable explanation of which tests will be
// skipped, or "" if no filters are defined.
func (r RegexFilters) Describe() string {
	if !r.IsDefined() {
		return ""
	}
	var b strings.Builder
	b.WriteString("Some tests will be skipped based on the filter criteria for this test run:\n")
	if r.MustMatch.IsDefined() {
		fmt.Fprintf(&b, "  skip any not matching %s\n", r.MustMatch)
	}
	if r.MustNotMatch.IsDefined() {
		fmt.Fprintf(&b, "  skip any matching %s\n", r.MustNotMatch)
	}
	return b.String()
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set adds a pattern; it also lets RegexList act as a flag.Value.
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
