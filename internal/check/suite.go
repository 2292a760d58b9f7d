// internal/check/suite.go
package check

import (
	"seqscore-core/align"
	"seqscore-core/seq"
)

// Builtin returns the built-in suite covering the documented scoring and
// reverse-complement behavior.
func Builtin() []Check {
	return []Check{
		{Name: "test_identical_sequences", Run: func(t *T) {
			r, err := align.Score("AAA", "AAA")
			NoError(t, err)
			Equal(t, 3, r.Score)
		}},
		{Name: "test_gap_positions_score_zero", Run: func(t *T) {
			r, err := align.Score("AC-G-", "AC-AT")
			NoError(t, err)
			Equal(t, 1, r.Score)
		}},
		{Name: "test_all_mismatches", Run: func(t *T) {
			r, err := align.Score("AAA", "GGG")
			NoError(t, err)
			Equal(t, -3, r.Score)
		}},
		{Name: "test_all_gaps", Run: func(t *T) {
			r, err := align.Score("---", "---")
			NoError(t, err)
			Equal(t, 0, r.Score)
		}},
		{Name: "test_score_symmetry", Run: func(t *T) {
			for _, p := range [][2]string{
				{"ACGT", "TGCA"},
				{"A-C-", "AGC-"},
				{"AAAA", "AAAT"},
			} {
				ab, err := align.Score(p[0], p[1])
				NoError(t, err)
				ba, err := align.Score(p[1], p[0])
				NoError(t, err)
				Equal(t, ab.Score, ba.Score)
			}
		}},
		{Name: "test_gap_free_self_score_is_length", Run: func(t *T) {
			r, err := align.Score("ACGTACGT", "ACGTACGT")
			NoError(t, err)
			Equal(t, 8, r.Score)
		}},
		{Name: "test_invalid_symbols_rejected", Run: func(t *T) {
			// Must fail with a symbol error, never return a score.
			var se *seq.SymbolError
			_, err := align.Score("AB7", "AB7")
			ErrorAs(t, err, &se)
			Equal(t, "seq-a", se.Arg)
		}},
		{Name: "test_length_mismatch_rejected", Run: func(t *T) {
			var lm *align.LengthMismatchError
			_, err := align.Score("ACGT", "ACG")
			ErrorAs(t, err, &lm)
		}},
		{Name: "test_reverse_complement", Run: func(t *T) {
			got, err := align.RevComp("ACCG")
			NoError(t, err)
			Equal(t, "CGGT", got)
		}},
		{Name: "test_reverse_complement_keeps_gaps", Run: func(t *T) {
			got, err := align.RevComp("A-CG")
			NoError(t, err)
			Equal(t, "CG-T", got)
		}},
		{Name: "test_reverse_complement_rejects_unknown", Run: func(t *T) {
			var se *seq.SymbolError
			_, err := align.RevComp("ACNG")
			ErrorAs(t, err, &se)
		}},
	}
}
