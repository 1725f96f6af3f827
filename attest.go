// Package attest runs a set of named test functions and reports how many
// passed.
//
//	attest.Run(attest.Definitions{
//		attest.Def("addition", func() error {
//			return assert.Equal(1+1, 2)
//		}),
//		attest.Def("rejects negative sizes", func() error {
//			return parse(-1)
//		}, attest.ExpectException(attest.KindRange)),
//		attest.Def("reset", resetFixtures, attest.TestSetup),
//	}, attest.Config{})
//
// The definition model and the engine live in the framework package; this
// package re-exports the vocabulary needed to write definitions.
package attest

import (
	"fmt"
	"os"

	"github.com/massalabs/attest/framework"
	"github.com/massalabs/attest/report"
)

type (
	Definitions = framework.Definitions
	Entry       = framework.Entry
	Func        = framework.Func
	Attribute   = framework.Attribute
	Kind        = framework.Kind
	Results     = framework.Results
)

var (
	Ignore        = framework.Ignore
	TestSetup     = framework.TestSetup
	TestTeardown  = framework.TestTeardown
	SuiteSetup    = framework.SuiteSetup
	SuiteTeardown = framework.SuiteTeardown
)

const (
	KindError         = framework.KindError
	KindAssertFailure = framework.KindAssertFailure
	KindRange         = framework.KindRange
	KindType          = framework.KindType
)

// ExpectException marks a test as passing when it fails with an error of the
// given kind.
func ExpectException(kind Kind) Attribute { return framework.ExpectException(kind) }

// Def defines a named test, optionally with attributes.
func Def(name string, fn Func, attrs ...Attribute) Entry { return framework.Def(name, fn, attrs...) }

// Raise returns an error of the given kind.
func Raise(kind Kind, message string) error { return framework.Raise(kind, message) }

// Trace returns the stack trace of the caller.
func Trace() string { return framework.Trace() }

// Run builds a suite from defs and runs it, reporting to the surfaces selected
// by cfg: the console always, plus the HTML report, JSON file, summary table
// and live report server when configured.
//
// An error is returned without running anything if the definitions are
// invalid, for instance if two tests claim the same lifecycle hook. If a hook
// fails, the run stops and the error is returned with the results so far; the
// final report is not written in that case.
//
// With cfg.Debug set, the engine's debug messages are collected during the
// run and written to the output, one "DEBUG [time] message" line each, when
// Run returns.
func Run(defs Definitions, cfg Config) (Results, error) {
	if err := cfg.Validate(); err != nil {
		return Results{}, err
	}
	filters, err := cfg.filters()
	if err != nil {
		return Results{}, err
	}
	out := cfg.output()

	console := report.NewConsoleTestLogger(out, cfg.colorMode(), cfg.Debug)
	testLoggers := framework.MultiTestLogger{console}
	handler := cfg.Handler
	if handler == nil && cfg.ServePort != 0 {
		handler = report.NewHandler(cfg.title(), nil)
	}
	if handler != nil {
		testLoggers = append(testLoggers, handler)
	}
	var sink *report.HTMLSink
	if cfg.ReportDir != "" {
		sink = report.NewHTMLSink(cfg.ReportDir, cfg.title())
	}
	debugLogger := framework.NullLogger()
	if cfg.Debug {
		captured := &framework.CapturingLogger{}
		debugLogger = captured
		defer func() { captured.Output().Dump(out, "DEBUG ") }()
	}

	suite, err := framework.NewSuite(defs)
	if err != nil {
		return Results{}, err
	}

	if cfg.ServePort != 0 {
		server, err := report.StartServer(cfg.ServePort, handler)
		if err != nil {
			return Results{}, err
		}
		defer server.Close()
		fmt.Fprintf(out, "Serving results at http://localhost:%d/\n", cfg.ServePort)
	}

	if description := filters.Describe(); description != "" {
		fmt.Fprintln(out, description)
	}

	results, err := framework.RunSuite(suite, filters.AsFilter, testLoggers, debugLogger)
	if err != nil {
		return results, err
	}

	console.PrintResults(results)
	if cfg.Table {
		fmt.Fprintln(out, report.TableSummary(cfg.title(), results))
	}

	var runID string
	if sink != nil {
		runID = sink.RunID()
		path, err := sink.Complete(results)
		if err != nil {
			return results, err
		}
		debugLogger.Printf("Wrote HTML report to %s", path)
	}
	if handler != nil {
		handler.Complete(runID, results)
	}
	if cfg.JSONFile != "" {
		doc := report.JSONDocument(runID, results)
		if err := os.WriteFile(cfg.JSONFile, []byte(doc.JSONString()), 0644); err != nil {
			return results, fmt.Errorf("failed to write JSON report: %w", err)
		}
	}
	return results, nil
}
