package attest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/massalabs/attest/assert"
	"github.com/massalabs/attest/framework"
	"github.com/massalabs/attest/report"
)

func sampleDefinitions(log *[]string) Definitions {
	record := func(s string) Func {
		return func() error {
			*log = append(*log, s)
			return nil
		}
	}
	return Definitions{
		Def("suiteSetup", record("suiteSetup"), SuiteSetup),
		Def("setup", record("setup"), TestSetup),
		Def("testLength", func() error { return assert.Equal(len("abc"), 3) }),
		Def("testNotEqual", func() error { return assert.NotEqual(1, 1) }),
		Def("testRange", func() error { return Raise(KindRange, "out of range") }, ExpectException(KindRange)),
		Def("testIgnored", func() error { return errors.New("never runs") }, Ignore),
	}
}

func TestRunReportsToConsole(t *testing.T) {
	var log []string
	var out bytes.Buffer
	results, err := Run(sampleDefinitions(&log), Config{Output: &out, Color: report.ColorNever})
	require.NoError(t, err)

	require.Equal(t, 2, results.Passed())
	require.Equal(t, 3, results.Total())
	require.Equal(t, []string{"suiteSetup", "setup", "setup", "setup"}, log)
	require.Equal(t, "testLength: Passed!\n"+
		"testNotEqual: Failed!\n"+
		"  Values should not be equal: 1 and 1.\n"+
		"testRange: Passed!\n"+
		"\n"+
		"FAILED TESTS:\n"+
		"  testNotEqual\n"+
		"Passed: 2 / 3 = 66.66%\n", out.String())
}

func TestRunRejectsDuplicateHooks(t *testing.T) {
	var out bytes.Buffer
	ran := false
	_, err := Run(Definitions{
		Def("a", func() error { return nil }, SuiteSetup),
		Def("b", func() error { return nil }, SuiteSetup),
		Def("c", func() error { ran = true; return nil }),
	}, Config{Output: &out})
	require.True(t, errors.Is(err, framework.ErrDuplicateHook))
	require.False(t, ran)
	require.Equal(t, "", out.String())
}

func TestRunStopsOnHookError(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()
	results, err := Run(Definitions{
		Def("setup", func() error { return errors.New("no fixtures") }, TestSetup),
		Def("t1", func() error { return nil }),
	}, Config{Output: &out, Color: report.ColorNever, ReportDir: dir})

	var hookErr *framework.HookError
	require.True(t, errors.As(err, &hookErr))
	require.Equal(t, framework.TagTestSetup, hookErr.Hook)
	require.Equal(t, 0, results.Total())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 0)
}

func TestRunAppliesFilters(t *testing.T) {
	var log []string
	var out bytes.Buffer
	results, err := Run(sampleDefinitions(&log), Config{
		Output: &out,
		Color:  report.ColorNever,
		Skip:   []string{"NotEqual"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, results.Total())
	require.Contains(t, out.String(), "skip any matching \"NotEqual\"")
	require.Contains(t, out.String(), "testNotEqual: Skipped (excluded by filter parameters)")
	require.Contains(t, out.String(), "Passed: 2 / 2 = 100%")
}

func TestRunWritesReports(t *testing.T) {
	var log []string
	var out bytes.Buffer
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "results.json")
	handler := report.NewHandler("sample", nil)

	results, err := Run(sampleDefinitions(&log), Config{
		Title:     "sample",
		Output:    &out,
		Color:     report.ColorNever,
		Table:     true,
		ReportDir: filepath.Join(dir, "html"),
		JSONFile:  jsonFile,
		Handler:   handler,
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "TOTAL")

	data, err := os.ReadFile(jsonFile)
	require.NoError(t, err)
	doc := ldvalue.Parse(data)
	require.Equal(t, results.Summary(), doc.GetByKey("summary").StringValue())
	runID := doc.GetByKey("runId").StringValue()
	require.NotEqual(t, "", runID)

	html, err := os.ReadFile(filepath.Join(dir, "html", "testrun-"+runID, "results.html"))
	require.NoError(t, err)
	require.Contains(t, string(html), "Passed: 2 / 3 = 66.66%")
}

func TestRunRejectsInvalidFilter(t *testing.T) {
	_, err := Run(Definitions{}, Config{Run: []string{"("}, Output: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestRunDumpsDebugOutput(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(Definitions{
		Def("setup", func() error { return errors.New("no fixtures") }, TestSetup),
		Def("t1", func() error { return nil }),
	}, Config{Output: &out, Color: report.ColorNever, Debug: true})
	require.Error(t, err)
	require.Regexp(t, `(?m)^DEBUG \[[^\]]+\] Running TestSetup hook$`, out.String())
	require.Regexp(t, `(?m)^DEBUG \[[^\]]+\] TestSetup hook failed: no fixtures$`, out.String())
}

func TestRunWithoutDebugHasNoDebugOutput(t *testing.T) {
	var log []string
	var out bytes.Buffer
	_, err := Run(sampleDefinitions(&log), Config{Output: &out, Color: report.ColorNever})
	require.NoError(t, err)
	require.NotContains(t, out.String(), "DEBUG")
}

func TestRunValidatesConfig(t *testing.T) {
	ran := false
	defs := Definitions{Def("t1", func() error { ran = true; return nil })}

	_, err := Run(defs, Config{Output: &bytes.Buffer{}, Color: "bogus"})
	require.EqualError(t, err, `invalid color mode "bogus"`)

	_, err = Run(defs, Config{Output: &bytes.Buffer{}, ServePort: -1})
	require.EqualError(t, err, "invalid port -1")
	require.False(t, ran)
}
