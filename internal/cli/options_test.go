// internal/cli/options_test.go
package cli

import (
	"strings"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	return ParseArgs(NewFlagSet("seqscore"), argv)
}

func TestParseInlinePair(t *testing.T) {
	opt, err := parse(t, "-a", "AAA", "-b", "AAA", "--output", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.SeqA != "AAA" || opt.SeqB != "AAA" || opt.Output != "json" {
		t.Errorf("unexpected options: %+v", opt)
	}
	if !opt.Header {
		t.Error("header should default to true")
	}
}

func TestParseInlineRequiresBoth(t *testing.T) {
	if _, err := parse(t, "-a", "AAA"); err == nil {
		t.Fatal("want error when only --seq-a is given")
	}
}

func TestParseInlineConflictsWithFiles(t *testing.T) {
	if _, err := parse(t, "-a", "AAA", "-b", "TTT", "--pairs", "x.tsv"); err == nil {
		t.Fatal("want error for inline pair plus --pairs")
	}
}

func TestParseNeedsInput(t *testing.T) {
	_, err := parse(t, "--output", "text")
	if err == nil || !strings.Contains(err.Error(), "provide") {
		t.Fatalf("want missing-input error, got %v", err)
	}
}

func TestParseInvalidOutput(t *testing.T) {
	if _, err := parse(t, "-a", "A", "-b", "T", "--output", "xml"); err == nil {
		t.Fatal("want error for unknown output format")
	}
}

func TestParsePrettyTextOnly(t *testing.T) {
	if _, err := parse(t, "-a", "A", "-b", "T", "--pretty", "--output", "json"); err == nil {
		t.Fatal("want error for --pretty with non-text output")
	}
}

func TestParsePositionalsAreFairFiles(t *testing.T) {
	opt, err := parse(t, "one.tsv", "--no-header", "two.tsv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opt.PairFiles) != 2 || opt.PairFiles[1] != "two.tsv" {
		t.Errorf("unexpected pair files: %v", opt.PairFiles)
	}
	if opt.Header {
		t.Error("--no-header should clear Header")
	}
}

func TestParseVersionShortCircuits(t *testing.T) {
	opt, err := parse(t, "-v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opt.Version {
		t.Error("Version not set")
	}
}
