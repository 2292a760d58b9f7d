// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"seqscore-core/align"
	"seqscore-core/fasta"
	"seqscore-core/pairfile"
	"seqscore-core/seq"
	"seqscore/internal/cli"
	"seqscore/internal/output"
	"seqscore/internal/pretty"
	"seqscore/internal/version"
)

// Exit codes: 0 scored, 1 input rejected by validation, 2 usage/load error,
// 3 write error.
const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
	exitWrite    = 3
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqscore")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		cli.Usage(fs, "seqscore")
		fs.SetOutput(outw)
		fs.Usage()
		return exitOK
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		cli.Usage(fs, "seqscore")
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return exitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqscore version %s\n", version.Version)
		return exitOK
	}

	pairs, code := collectPairs(opts, stderr)
	if code != exitOK {
		return code
	}

	scored := make([]output.ScoredPair, 0, len(pairs))
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			_, _ = fmt.Fprintln(stderr, "seqscore: interrupted")
			return 130
		}
		r, err := align.Score(p.A, p.B)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "seqscore: %s: %v\n", p.ID, err)
			return exitRejected
		}
		scored = append(scored, output.ScoredPair{ID: p.ID, A: p.A, B: p.B, Result: r})
	}

	if len(scored) == 0 && !opts.Quiet {
		_, _ = fmt.Fprintln(stderr, "WARN: no pairs to score")
	}

	if opts.Sort {
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].ID < scored[j].ID })
	}

	if opts.Pretty {
		for _, sp := range scored {
			if _, err := io.WriteString(outw, pretty.RenderPair(sp)); err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return exitWrite
			}
		}
	}
	o := output.Options{Header: opts.Header, WithSeqs: opts.WithSeqs}
	if err := output.Write(opts.Output, outw, scored, o); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWrite
	}
	if err := outw.Flush(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWrite
	}
	return exitOK
}

// collectPairs gathers the inline pair, pair files, and FASTA files into one
// list, preserving command-line order.
func collectPairs(opts cli.Options, stderr io.Writer) ([]pairfile.Pair, int) {
	var pairs []pairfile.Pair

	if opts.SeqA != "" || opts.SeqB != "" {
		pairs = append(pairs, pairfile.Pair{
			ID: opts.ID,
			A:  seq.Normalize(opts.SeqA),
			B:  seq.Normalize(opts.SeqB),
		})
	}
	for _, path := range opts.PairFiles {
		list, err := pairfile.LoadTSV(path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return nil, exitUsage
		}
		pairs = append(pairs, list...)
	}
	for _, path := range opts.FastaFiles {
		recs, err := fasta.ReadFile(path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return nil, exitUsage
		}
		if len(recs)%2 != 0 {
			_, _ = fmt.Fprintf(stderr, "%s: odd record count %d; records are scored pairwise\n", path, len(recs))
			return nil, exitUsage
		}
		for i := 0; i+1 < len(recs); i += 2 {
			pairs = append(pairs, pairfile.Pair{
				ID: recs[i].ID + "|" + recs[i+1].ID,
				A:  recs[i].Seq,
				B:  recs[i+1].Seq,
			})
		}
	}
	return pairs, exitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
