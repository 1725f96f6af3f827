package framework

import "fmt"

// Tag identifies what an Attribute does to the test it is attached to.
type Tag int

const (
	// TagUnknown is the tag of the zero Attribute. Tests carrying only unknown
	// attributes run like tests with no attributes at all.
	TagUnknown Tag = iota
	TagIgnore
	TagTestSetup
	TagTestTeardown
	TagSuiteSetup
	TagSuiteTeardown
	TagExpectException
)

func (t Tag) String() string {
	switch t {
	case TagIgnore:
		return "Ignore"
	case TagTestSetup:
		return "TestSetup"
	case TagTestTeardown:
		return "TestTeardown"
	case TagSuiteSetup:
		return "SuiteSetup"
	case TagSuiteTeardown:
		return "SuiteTeardown"
	case TagExpectException:
		return "ExpectException"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// rank gives the position of a tag in the attribute processing order. Ignore
// must come first so that the suite builder can stop at it.
func (t Tag) rank() int {
	switch t {
	case TagIgnore:
		return 0
	case TagTestSetup, TagTestTeardown, TagSuiteSetup, TagSuiteTeardown:
		return int(t)
	case TagExpectException:
		return 7
	default:
		return 6
	}
}

// Attribute is a marker attached to a test definition. It controls whether the
// test runs, whether it serves as a lifecycle hook, and which error kinds it
// expects.
type Attribute struct {
	tag  Tag
	kind Kind
}

var (
	Ignore        = Attribute{tag: TagIgnore}
	TestSetup     = Attribute{tag: TagTestSetup}
	TestTeardown  = Attribute{tag: TagTestTeardown}
	SuiteSetup    = Attribute{tag: TagSuiteSetup}
	SuiteTeardown = Attribute{tag: TagSuiteTeardown}
)

// ExpectException returns an attribute saying that the test passes if its body
// fails with an error of the given kind. A test may carry several of these;
// any one of the kinds is then accepted.
func ExpectException(kind Kind) Attribute {
	return Attribute{tag: TagExpectException, kind: kind}
}

func (a Attribute) Tag() Tag { return a.tag }

// Kind returns the expected error kind of an ExpectException attribute, or ""
// for any other attribute.
func (a Attribute) Kind() Kind { return a.kind }

func (a Attribute) String() string {
	if a.tag == TagExpectException {
		return fmt.Sprintf("ExpectException(%s)", a.kind)
	}
	return a.tag.String()
}

// CompareAttributes defines the order in which attributes of one test are
// processed: Ignore, then the lifecycle tags in ascending order, then unknown
// attributes, then ExpectException markers. ExpectException markers are equal
// to each other.
func CompareAttributes(a, b Attribute) int {
	ra, rb := a.tag.rank(), b.tag.rank()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}
