// pkg/api/scores_v1.go
package api

// ScoreV1 is the stable wire schema for one scored pair. Field names and
// meanings must stay backward compatible; add fields, never repurpose them.
type ScoreV1 struct {
	ID         string `json:"id"`
	Length     int    `json:"length"`
	Score      int    `json:"score"`
	Matches    int    `json:"matches"`
	Mismatches int    `json:"mismatches"`
	Gaps       int    `json:"gaps"`
	SeqA       string `json:"seq_a,omitempty"`
	SeqB       string `json:"seq_b,omitempty"`
}
