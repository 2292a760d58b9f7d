// internal/output/json.go
package output

import (
	"io"

	"seqscore/internal/jsonutil"
)

// WriteJSON writes a single pretty-indented JSON array of v1 scores.
func WriteJSON(w io.Writer, list []ScoredPair, o Options) error {
	return jsonutil.EncodePretty(w, toAPIScores(list, o.WithSeqs))
}

// WriteJSONL writes one compact JSON object per line.
func WriteJSONL(w io.Writer, list []ScoredPair, o Options) error {
	return jsonutil.EncodeLines(w, toAPIScores(list, o.WithSeqs))
}

func init() {
	Register("json", WriteJSON)
	Register("jsonl", WriteJSONL)
}
