// internal/output/rows.go
package output

import (
	"seqscore-core/align"
	"seqscore/pkg/api"
)

// ScoredPair couples a pair identifier and its inputs with the scoring result.
type ScoredPair struct {
	ID     string
	A      string
	B      string
	Result align.Result
}

// Options control rendering shared by all formats.
type Options struct {
	Header   bool // text header line
	WithSeqs bool // include the input sequences in JSON output
}

// ToAPIScore converts a domain result to the stable wire schema (v1).
func ToAPIScore(p ScoredPair, withSeqs bool) api.ScoreV1 {
	v := api.ScoreV1{
		ID:         p.ID,
		Length:     p.Result.Length,
		Score:      p.Result.Score,
		Matches:    p.Result.Matches,
		Mismatches: p.Result.Mismatches,
		Gaps:       p.Result.Gaps,
	}
	if withSeqs {
		v.SeqA = p.A
		v.SeqB = p.B
	}
	return v
}

func toAPIScores(list []ScoredPair, withSeqs bool) []api.ScoreV1 {
	out := make([]api.ScoreV1, 0, len(list))
	for _, p := range list {
		out = append(out, ToAPIScore(p, withSeqs))
	}
	return out
}
