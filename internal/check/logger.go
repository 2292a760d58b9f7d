// internal/check/logger.go
package check

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Logger receives status information about each check.
type Logger interface {
	CheckStarted(name string)
	CheckPassed(name string)
	CheckFailed(name string, errs []error)
	Summary(results Results)
}

type nullLogger struct{}

func (nullLogger) CheckStarted(string)         {}
func (nullLogger) CheckPassed(string)          {}
func (nullLogger) CheckFailed(string, []error) {}
func (nullLogger) Summary(Results)             {}

// ConsoleLogger prints progress and a pass/fail summary to Out.
type ConsoleLogger struct {
	Out     io.Writer
	Verbose bool

	passColor *color.Color
	failColor *color.Color
	okColor   *color.Color
}

// NewConsoleLogger returns a logger writing to out. Colors are disabled
// entirely when useColor is false (no-color flag or non-TTY output).
func NewConsoleLogger(out io.Writer, useColor, verbose bool) *ConsoleLogger {
	l := &ConsoleLogger{
		Out:       out,
		Verbose:   verbose,
		passColor: color.New(color.FgGreen),
		failColor: color.New(color.FgRed),
		okColor:   color.New(color.FgGreen, color.Bold),
	}
	if !useColor {
		l.passColor.DisableColor()
		l.failColor.DisableColor()
		l.okColor.DisableColor()
	} else {
		l.passColor.EnableColor()
		l.failColor.EnableColor()
		l.okColor.EnableColor()
	}
	return l
}

func (l *ConsoleLogger) CheckStarted(name string) {
	if l.Verbose {
		_, _ = fmt.Fprintf(l.Out, "[%s]\n", name)
	}
}

func (l *ConsoleLogger) CheckPassed(name string) {
	if l.Verbose {
		_, _ = l.passColor.Fprintf(l.Out, "  ok: %s\n", name)
	}
}

func (l *ConsoleLogger) CheckFailed(name string, errs []error) {
	_, _ = l.failColor.Fprintf(l.Out, "FAILED: %s\n", name)
	for _, err := range errs {
		_, _ = fmt.Fprintf(l.Out, "  %s\n", err)
	}
}

func (l *ConsoleLogger) Summary(results Results) {
	if results.OK() {
		_, _ = l.okColor.Fprintf(l.Out, "%d checks passed\n", results.Passed())
		return
	}
	_, _ = l.failColor.Fprintf(l.Out, "%d of %d checks failed:\n",
		len(results.Failures), len(results.Checks))
	for _, f := range results.Failures {
		_, _ = l.failColor.Fprintf(l.Out, "  * %s\n", f.Name)
	}
}
