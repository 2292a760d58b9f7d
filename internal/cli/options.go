// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"seqscore/internal/cliutil"
	"seqscore/internal/output"
	"seqscore/internal/version"
)

// Options holds all CLI flags and arguments for the scoring tool.
type Options struct {
	// Inline pair
	ID   string
	SeqA string
	SeqB string

	// Batch input
	PairFiles  []string
	FastaFiles []string

	// Output
	Output   string
	WithSeqs bool
	Pretty   bool
	Sort     bool
	Header   bool // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// Usage installs the tool's help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: pairwise match scoring for gapped DNA sequences

Scores two equal-length sequences position by position:
gap on either side counts 0, a match +1, a mismatch -1.

Version: %s

Usage:
  %s [options] [pairs.tsv ...]
  %s -a AC-G- -b AC-AT

`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positionals are pair TSV paths and may appear anywhere; globs expand.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.SeqA, "seq-a", "", "first sequence of an inline pair [*]")
	fs.StringVar(&opt.SeqB, "seq-b", "", "second sequence of an inline pair [*]")
	fs.StringVar(&opt.SeqA, "a", "", "alias of --seq-a")
	fs.StringVar(&opt.SeqB, "b", "", "alias of --seq-b")
	fs.StringVar(&opt.ID, "id", "pair", "label for the inline pair [pair]")
	var pairs, fastas stringSlice
	fs.Var(&pairs, "pairs", "TSV pair file (id seqA seqB; repeatable) [*]")
	fs.Var(&pairs, "p", "alias of --pairs")
	fs.Var(&fastas, "fasta", "FASTA file; records are scored pairwise in order (repeatable) [*]")
	fs.Var(&fastas, "F", "alias of --fasta")

	fs.StringVar(&opt.Output, "output", "text", "output format: "+output.Formats()+" [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.WithSeqs, "seqs", false, "include input sequences in JSON output [false]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "ASCII alignment block per pair (text) [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs by pair id [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

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
	opt.Header = !noHeader
	opt.PairFiles = pairs
	opt.FastaFiles = fastas

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.PairFiles = append(opt.PairFiles, exp...)
	}

	// Validation
	usingInline := opt.SeqA != "" || opt.SeqB != ""
	usingFiles := len(opt.PairFiles) > 0 || len(opt.FastaFiles) > 0
	switch {
	case usingInline && (opt.SeqA == "" || opt.SeqB == ""):
		return opt, errors.New("--seq-a and --seq-b must be supplied together")
	case usingInline && usingFiles:
		return opt, errors.New("--seq-a/--seq-b conflicts with --pairs/--fasta")
	case !usingInline && !usingFiles:
		return opt, errors.New("provide --seq-a/--seq-b, --pairs, or --fasta")
	}
	if !output.Known(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q (want %s)", opt.Output, output.Formats())
	}
	if opt.Pretty && opt.Output != "text" {
		return opt, errors.New("--pretty applies to text output only")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
