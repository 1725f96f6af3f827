package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results     Results
	testLogger  TestLogger
	debugLogger Logger
	filter      Filter
}

// RunSuite runs the suite's hooks and tests one after another and returns
// the results.
//
// A test whose body returns an error or panics fails, unless the error's kind
// is one the test expects, in which case it passes. A test that expects an
// error kind but returns normally fails. Test failures never stop the run.
//
// Hook failures are not recovered. If a hook returns an error the run stops
// at that point and the results so far are returned together with a
// *HookError; suite teardown does not run in that case. A panicking hook
// panics out of RunSuite.
//
// Tests rejected by filter are reported to testLogger as skipped and are not
// counted. filter, testLogger and debugLogger may be nil.
func RunSuite(suite *Suite, filter Filter, testLogger TestLogger, debugLogger Logger) (Results, error) {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	env := &environment{
		filter:      filter,
		testLogger:  testLogger,
		debugLogger: debugLogger,
	}
	err := env.run(suite)
	return env.results, err
}

func (env *environment) run(suite *Suite) error {
	if err := env.runHook(TagSuiteSetup, suite.SuiteSetup, ""); err != nil {
		return err
	}
	for _, test := range suite.Tests {
		if env.filter != nil && !env.filter(test.Name) {
			env.testLogger.TestSkipped(test.Name, "excluded by filter parameters")
			continue
		}
		if err := env.runHook(TagTestSetup, suite.TestSetup, test.Name); err != nil {
			return err
		}
		env.testLogger.TestStarted(test.Name)
		result := runTest(test)
		env.results.Tests = append(env.results.Tests, result)
		if !result.Passed {
			env.results.Failures = append(env.results.Failures, result)
		}
		env.testLogger.TestFinished(result)
		if err := env.runHook(TagTestTeardown, suite.TestTeardown, test.Name); err != nil {
			return err
		}
	}
	if err := env.runHook(TagSuiteTeardown, suite.SuiteTeardown, ""); err != nil {
		return err
	}
	env.debugLogger.Printf("%s", env.results.Summary())
	return nil
}

func (env *environment) runHook(hook Tag, fn Func, testName string) error {
	if fn == nil {
		return nil
	}
	env.debugLogger.Printf("Running %s hook", hook)
	if err := fn(); err != nil {
		env.debugLogger.Printf("%s hook failed: %s", hook, err)
		return &HookError{Hook: hook, Test: testName, Err: err}
	}
	return nil
}

func runTest(test *Test) TestResult {
	result := TestResult{Name: test.Name}
	start := time.Now()
	stack, err := invoke(test.Func)
	result.Duration = time.Since(start)

	switch {
	case err == nil && !test.ExpectsAnyException():
		result.Passed = true
	case err == nil:
		result.Message = "Expected Exception(s): " + test.expectedExceptionList()
	default:
		result.Err = err
		result.Kind = KindOf(err)
		if test.Expects(result.Kind) {
			result.Passed = true
		} else {
			result.Message = err.Error()
			result.Stack = stack
		}
	}
	return result
}

func invoke(fn Func) (stack string, err error) {
	defer func() {
		if r := recover(); r != nil {
			stack = string(debug.Stack())
			err = panicError(r)
		}
	}()
	return "", fn()
}

func panicError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("%+v", v)
	}
}
