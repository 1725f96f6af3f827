package framework

import (
	"errors"
	"fmt"
)

// ErrDuplicateHook is returned when more than one test claims the same
// lifecycle hook.
var ErrDuplicateHook = errors.New("duplicate lifecycle hook")

// Suite is an ordered list of executable tests plus the four lifecycle hooks.
// A nil hook does nothing.
type Suite struct {
	SuiteSetup    Func
	SuiteTeardown Func
	TestSetup     Func
	TestTeardown  Func
	Tests         []*Test

	hookOwners map[Tag]string
}

// NewSuite normalizes the definitions and builds a Suite from them.
func NewSuite(defs Definitions) (*Suite, error) {
	return BuildSuite(Normalize(defs))
}

// BuildSuite applies the attributes of each test. A test tagged Ignore is
// dropped and none of its other attributes take effect. Lifecycle attributes
// make the test's function the corresponding hook; only one test may supply
// each hook. ExpectException attributes add to the test's expected kinds.
// Tests with ExpectException or unknown attributes, or with no attributes at
// all, are added to the list of tests to run.
func BuildSuite(tests []*Test) (*Suite, error) {
	s := &Suite{hookOwners: make(map[Tag]string)}
	for _, test := range tests {
		if len(test.Attributes) == 0 {
			s.Tests = append(s.Tests, test)
			continue
		}
		if err := s.apply(test); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Suite) apply(test *Test) error {
	included := false
	include := func() {
		if !included {
			s.Tests = append(s.Tests, test)
			included = true
		}
	}
	for _, attr := range test.Attributes {
		switch attr.Tag() {
		case TagIgnore:
			// Ignore sorts first, so nothing has been applied yet.
			return nil
		case TagTestSetup:
			if err := s.assignHook(attr.Tag(), &s.TestSetup, test); err != nil {
				return err
			}
		case TagTestTeardown:
			if err := s.assignHook(attr.Tag(), &s.TestTeardown, test); err != nil {
				return err
			}
		case TagSuiteSetup:
			if err := s.assignHook(attr.Tag(), &s.SuiteSetup, test); err != nil {
				return err
			}
		case TagSuiteTeardown:
			if err := s.assignHook(attr.Tag(), &s.SuiteTeardown, test); err != nil {
				return err
			}
		case TagExpectException:
			test.ExpectException(attr.Kind())
			include()
		default:
			include()
		}
	}
	return nil
}

func (s *Suite) assignHook(tag Tag, slot *Func, test *Test) error {
	if owner, ok := s.hookOwners[tag]; ok {
		if owner == test.Name {
			return nil
		}
		return fmt.Errorf("cannot use more than one %s attribute (tests %q and %q): %w",
			tag, owner, test.Name, ErrDuplicateHook)
	}
	s.hookOwners[tag] = test.Name
	*slot = test.Func
	return nil
}

// HookOwner returns the name of the test that supplies the given lifecycle
// hook, if any.
func (s *Suite) HookOwner(tag Tag) (string, bool) {
	name, ok := s.hookOwners[tag]
	return name, ok
}
