// internal/rccli/options.go
package rccli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"seqscore/internal/cliutil"
	"seqscore/internal/version"
)

// Options holds CLI flags for the reverse-complement tool.
type Options struct {
	Seqs       []string // positional sequences
	FastaFiles []string

	Quiet   bool
	Version bool
}

// Usage installs the tool's help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: reverse complement of DNA sequences

Reverses the order and maps A<->T, C<->G. The gap marker '-' passes
through unchanged; other symbols are rejected.

Version: %s

Usage:
  %s [options] SEQ [SEQ ...]
  %s --fasta in.fa

`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var fastas stringSlice
	fs.Var(&fastas, "fasta", "FASTA file; each record is reverse-complemented (repeatable)")
	fs.Var(&fastas, "F", "alias of --fasta")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Seqs = posArgs
	opt.FastaFiles = fastas

	if len(opt.Seqs) == 0 && len(opt.FastaFiles) == 0 {
		return opt, errors.New("provide at least one sequence or --fasta file")
	}
	return opt, nil
}

type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
