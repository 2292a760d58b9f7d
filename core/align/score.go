// core/align/score.go
package align

import (
	"fmt"

	"seqscore-core/seq"
)

// Result is the outcome of scoring one pair of equal-length sequences.
type Result struct {
	Score      int
	Length     int
	Matches    int
	Mismatches int
	Gaps       int // positions where either side is a gap
}

// LengthMismatchError reports two sequences of unequal length. Comparing
// them position by position would be meaningless, so scoring refuses.
type LengthMismatchError struct {
	LenA, LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: seq-a is %d, seq-b is %d", e.LenA, e.LenB)
}

// Score compares a and b position by position and sums the per-position
// award: 0 when either side is the gap marker, +1 when the symbols are
// equal, -1 otherwise. Both arguments are checked against the alphabet and
// for equal length before any scoring runs.
func Score(a, b string) (Result, error) {
	if err := seq.Check("seq-a", a); err != nil {
		return Result{}, err
	}
	if err := seq.Check("seq-b", b); err != nil {
		return Result{}, err
	}
	if len(a) != len(b) {
		return Result{}, &LengthMismatchError{LenA: len(a), LenB: len(b)}
	}
	r := Result{Length: len(a)}
	for i := 0; i < len(a); i++ {
		switch {
		case a[i] == seq.Gap || b[i] == seq.Gap:
			r.Gaps++
		case a[i] == b[i]:
			r.Matches++
			r.Score++
		default:
			r.Mismatches++
			r.Score--
		}
	}
	return r, nil
}
