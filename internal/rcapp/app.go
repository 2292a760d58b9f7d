// internal/rcapp/app.go
package rcapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqscore-core/align"
	"seqscore-core/fasta"
	"seqscore-core/seq"
	"seqscore/internal/cli"
	"seqscore/internal/rccli"
	"seqscore/internal/version"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
	exitWrite    = 3
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqscore-rc")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = rccli.ParseArgs(fs, []string{"-h"})
		rccli.Usage(fs, "seqscore-rc")
		fs.SetOutput(outw)
		fs.Usage()
		return exitOK
	}

	opts, err := rccli.ParseArgs(fs, argv)
	if err != nil {
		rccli.Usage(fs, "seqscore-rc")
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
		_, _ = fmt.Fprintf(outw, "seqscore-rc version %s\n", version.Version)
		return exitOK
	}

	for _, s := range opts.Seqs {
		rc, err := align.RevComp(seq.Normalize(s))
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "seqscore-rc: %v\n", err)
			return exitRejected
		}
		if _, err := fmt.Fprintln(outw, rc); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return exitWrite
		}
	}

	for _, path := range opts.FastaFiles {
		recs, err := fasta.ReadFile(path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return exitUsage
		}
		if len(recs) == 0 && !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, "WARN: %s: no records\n", path)
		}
		for _, rec := range recs {
			if err := ctx.Err(); err != nil {
				_, _ = fmt.Fprintln(stderr, "seqscore-rc: interrupted")
				return 130
			}
			rc, err := align.RevComp(rec.Seq)
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "seqscore-rc: %s: %v\n", rec.ID, err)
				return exitRejected
			}
			if _, err := fmt.Fprintf(outw, ">%s_rc\n%s\n", rec.ID, rc); err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return exitWrite
			}
		}
	}

	if err := outw.Flush(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWrite
	}
	return exitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
