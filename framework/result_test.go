package framework

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeResults(passed, failed int) Results {
	var r Results
	for i := 0; i < passed; i++ {
		r.Tests = append(r.Tests, TestResult{Name: fmt.Sprintf("pass%d", i), Passed: true})
	}
	for i := 0; i < failed; i++ {
		result := TestResult{Name: fmt.Sprintf("fail%d", i)}
		r.Tests = append(r.Tests, result)
		r.Failures = append(r.Failures, result)
	}
	return r
}

func TestPercentage(t *testing.T) {
	for _, p := range []struct {
		passed, failed int
		text           string
	}{
		{0, 0, "0"},
		{1, 3, "25"},
		{1, 0, "100"},
		{0, 2, "0"},
		{1, 2, "33.33"},
		{2, 1, "66.66"},
		{1, 6, "14.28"},
		{1, 7, "12.5"},
	} {
		t.Run(fmt.Sprintf("%d passed %d failed", p.passed, p.failed), func(t *testing.T) {
			r := makeResults(p.passed, p.failed)
			assert.Equal(t, p.text, r.PercentageText())
			assert.Equal(t, p.passed, r.Passed())
			assert.Equal(t, p.failed, r.Failed())
			assert.Equal(t, p.passed+p.failed, r.Total())
		})
	}
}

func TestEmptyResultsPercentageIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Results{}.Percentage())
	assert.Equal(t, "Passed: 0 / 0 = 0%", Results{}.Summary())
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Passed: 1 / 4 = 25%", makeResults(1, 3).Summary())
}

func TestHookErrorMessage(t *testing.T) {
	err := &HookError{Hook: TagSuiteSetup, Err: fmt.Errorf("no database")}
	assert.Equal(t, "SuiteSetup hook failed: no database", err.Error())

	err = &HookError{Hook: TagTestTeardown, Test: "t1", Err: fmt.Errorf("no database")}
	assert.Equal(t, "TestTeardown hook failed while running [t1]: no database", err.Error())
}
