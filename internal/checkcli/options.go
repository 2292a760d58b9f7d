// internal/checkcli/options.go
package checkcli

import (
	"flag"
	"fmt"
	"strings"

	"seqscore/internal/version"
)

// Options holds CLI flags for the self-check tool.
type Options struct {
	CaseFiles []string // extra YAML case files
	Run       string   // substring filter on check names
	List      bool
	NoColor   bool
	Verbose   bool
	Version   bool
}

// Usage installs the tool's help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: run the built-in scoring checks

Executes every named test_* check against the scoring and
reverse-complement functions, reports each failure with expected and
actual values, and exits nonzero if any check fails.

Version: %s

Usage:
  %s [options]
  %s --cases extra.yaml --run gap

`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var cases stringSlice
	fs.Var(&cases, "cases", "YAML file with extra checks (repeatable)")
	fs.Var(&cases, "c", "alias of --cases")
	fs.StringVar(&opt.Run, "run", "", "only run checks whose name contains this substring")
	fs.BoolVar(&opt.List, "list", false, "list check names and exit [false]")
	fs.BoolVar(&opt.NoColor, "no-color", false, "disable colored output [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "print every check as it runs [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	opt.CaseFiles = cases
	return opt, nil
}

type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
