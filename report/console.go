package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/massalabs/attest/framework"
)

// ColorMode says whether console output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ConsoleTestLogger writes one line per finished test to a text stream,
// followed by the failure message if there is one.
type ConsoleTestLogger struct {
	out                  io.Writer
	debugOutputOnFailure bool
	pass                 *color.Color
	fail                 *color.Color
	skip                 *color.Color
}

// NewConsoleTestLogger creates a console logger. With ColorAuto, colors are
// used only if out is a terminal. If debugOutputOnFailure is set, the stack of
// a panicking test is printed below its failure.
func NewConsoleTestLogger(out io.Writer, mode ColorMode, debugOutputOnFailure bool) *ConsoleTestLogger {
	if out == nil {
		out = os.Stdout
	}
	c := &ConsoleTestLogger{
		out:                  out,
		debugOutputOnFailure: debugOutputOnFailure,
		pass:                 color.New(color.FgGreen),
		fail:                 color.New(color.FgRed, color.Bold),
		skip:                 color.New(color.FgYellow),
	}
	useColor := mode == ColorAlways || (mode != ColorNever && isTerminal(out))
	for _, col := range []*color.Color{c.pass, c.fail, c.skip} {
		if useColor {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *ConsoleTestLogger) TestStarted(name string) {}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult) {
	if result.Passed {
		fmt.Fprintf(c.out, "%s: %s\n", result.Name, c.pass.Sprint("Passed!"))
		return
	}
	fmt.Fprintf(c.out, "%s: %s\n", result.Name, c.fail.Sprint("Failed!"))
	for _, line := range strings.Split(result.Message, "\n") {
		if line != "" {
			fmt.Fprintf(c.out, "  %s\n", line)
		}
	}
	if c.debugOutputOnFailure && result.Stack != "" {
		for _, line := range strings.Split(strings.TrimRight(result.Stack, "\n"), "\n") {
			fmt.Fprintf(c.out, "    DEBUG %s\n", line)
		}
	}
}

func (c *ConsoleTestLogger) TestSkipped(name string, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out, "%s: %s\n", name, c.skip.Sprint("Skipped"))
	} else {
		fmt.Fprintf(c.out, "%s: %s (%s)\n", name, c.skip.Sprint("Skipped"), reason)
	}
}

// PrintResults writes the summary footer, preceded by the names of the failed
// tests if there were any.
func (c *ConsoleTestLogger) PrintResults(results framework.Results) {
	fmt.Fprintln(c.out)
	if !results.OK() {
		fmt.Fprintln(c.out, "FAILED TESTS:")
		for _, f := range results.Failures {
			fmt.Fprintf(c.out, "  %s\n", f.Name)
		}
	}
	summary := results.Summary()
	if results.OK() {
		fmt.Fprintln(c.out, c.pass.Sprint(summary))
	} else {
		fmt.Fprintln(c.out, c.fail.Sprint(summary))
	}
}
