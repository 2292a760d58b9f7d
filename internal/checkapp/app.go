// internal/checkapp/app.go
package checkapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"seqscore/internal/check"
	"seqscore/internal/checkcli"
	"seqscore/internal/cli"
	"seqscore/internal/version"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("seqscore-check")
	fs.SetOutput(io.Discard)

	opts, err := checkcli.ParseArgs(fs, argv)
	if err != nil {
		checkcli.Usage(fs, "seqscore-check")
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return exitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "seqscore-check version %s\n", version.Version)
		return exitOK
	}

	checks := check.Builtin()
	for _, path := range opts.CaseFiles {
		extra, err := check.LoadCases(path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return exitUsage
		}
		checks = append(checks, extra...)
	}

	if opts.List {
		for _, c := range checks {
			_, _ = fmt.Fprintln(stdout, c.Name)
		}
		return exitOK
	}

	runner := check.Runner{
		Logger: check.NewConsoleLogger(stdout, useColor(stdout, opts.NoColor), opts.Verbose),
		Filter: opts.Run,
	}
	results := runner.Run(checks)
	if !results.OK() {
		return exitFailed
	}
	return exitOK
}

// useColor enables color only for a real terminal and when not disabled.
func useColor(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
