package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFilters(t *testing.T) {
	f, err := NewRegexFilters([]string{"^test", "Setup$"}, []string{"_FAIL$"})
	require.NoError(t, err)

	assert.True(t, f.AsFilter("testLength"))
	assert.True(t, f.AsFilter("attributeSetup"))
	assert.False(t, f.AsFilter("testNotEqual_FAIL"))
	assert.False(t, f.AsFilter("other"))
}

func TestEmptyRegexFiltersAcceptEverything(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter("anything"))
	assert.False(t, f.IsDefined())
	assert.Equal(t, "", f.Describe())
}

func TestRegexFiltersDescribe(t *testing.T) {
	f, err := NewRegexFilters([]string{"a"}, []string{"b", "c"})
	require.NoError(t, err)
	assert.Equal(t,
		"Some tests will be skipped based on the filter criteria for this test run:\n"+
			"  skip any not matching \"a\"\n"+
			"  skip any matching \"b\" or \"c\"\n",
		f.Describe())
}

func TestInvalidRegex(t *testing.T) {
	_, err := NewRegexFilters([]string{"("}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
}
