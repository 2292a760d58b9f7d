// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"seqscore-core/seq"
	"seqscore/internal/output"
)

// Options control the ASCII rendering.
type Options struct {
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "."
	GapGlyph      string // default " "
}

var DefaultOptions = Options{
	MatchGlyph:    "|",
	MismatchGlyph: ".",
	GapGlyph:      " ",
}

const (
	linePrefix = "# "
	prefix     = "5'-"
	suffix     = "-3'"
)

// Bars returns the per-position glyph row for two equal-length sequences:
// match, mismatch, or gap glyph, following the same precedence as scoring
// (gap first).
func Bars(a, b string, opt Options) string {
	var sb strings.Builder
	sb.Grow(len(a))
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] == seq.Gap || b[i] == seq.Gap:
			sb.WriteString(glyph(opt.GapGlyph, DefaultOptions.GapGlyph))
		case a[i] == b[i]:
			sb.WriteString(glyph(opt.MatchGlyph, DefaultOptions.MatchGlyph))
		default:
			sb.WriteString(glyph(opt.MismatchGlyph, DefaultOptions.MismatchGlyph))
		}
	}
	return sb.String()
}

func glyph(g, def string) string {
	if g == "" {
		return def
	}
	return g
}

// RenderPairWithOptions prints a '#'-prefixed block: both sequences with a
// bars row between them and a one-line summary.
func RenderPairWithOptions(p output.ScoredPair, opt Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, prefix, p.A, suffix)
	fmt.Fprintf(&b, "%s%s%s\n", linePrefix, strings.Repeat(" ", len(prefix)), Bars(p.A, p.B, opt))
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, prefix, p.B, suffix)
	fmt.Fprintf(&b, "%sid=%s score=%d matches=%d mismatches=%d gaps=%d\n",
		linePrefix, p.ID, p.Result.Score, p.Result.Matches, p.Result.Mismatches, p.Result.Gaps)
	b.WriteString("#\n")
	return b.String()
}

// RenderPair uses DefaultOptions.
func RenderPair(p output.ScoredPair) string {
	return RenderPairWithOptions(p, DefaultOptions)
}
