package framework

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreSortsBeforeEverything(t *testing.T) {
	others := []Attribute{
		TestSetup, TestTeardown, SuiteSetup, SuiteTeardown,
		ExpectException(KindRange), {},
	}
	for _, a := range others {
		assert.Equal(t, -1, CompareAttributes(Ignore, a), "Ignore vs %s", a)
		assert.Equal(t, 1, CompareAttributes(a, Ignore), "%s vs Ignore", a)
	}
}

func TestLifecycleTagsSortAscending(t *testing.T) {
	assert.Equal(t, -1, CompareAttributes(TestSetup, TestTeardown))
	assert.Equal(t, -1, CompareAttributes(TestTeardown, SuiteSetup))
	assert.Equal(t, -1, CompareAttributes(SuiteSetup, SuiteTeardown))
	assert.Equal(t, 0, CompareAttributes(SuiteSetup, SuiteSetup))
}

func TestExpectExceptionSortsLast(t *testing.T) {
	ex := ExpectException("MyError")
	for _, a := range []Attribute{TestSetup, SuiteTeardown, {}} {
		assert.Equal(t, 1, CompareAttributes(ex, a), "%s", a)
	}
	assert.Equal(t, 0, CompareAttributes(ExpectException("A"), ExpectException("B")))
}

func TestStableSortKeepsExceptionOrder(t *testing.T) {
	attrs := []Attribute{ExpectException("A"), SuiteSetup, ExpectException("B"), Ignore}
	sort.SliceStable(attrs, func(i, j int) bool { return CompareAttributes(attrs[i], attrs[j]) < 0 })
	assert.Equal(t, []Attribute{Ignore, SuiteSetup, ExpectException("A"), ExpectException("B")}, attrs)
}

func TestAttributeString(t *testing.T) {
	assert.Equal(t, "Ignore", Ignore.String())
	assert.Equal(t, "SuiteTeardown", SuiteTeardown.String())
	assert.Equal(t, "ExpectException(RangeError)", ExpectException(KindRange).String())
	assert.Equal(t, "Tag(0)", Attribute{}.String())
	assert.Equal(t, Kind(""), TestSetup.Kind())
}
