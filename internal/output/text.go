// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

const textHeader = "id\tlength\tscore\tmatches\tmismatches\tgaps"

// WriteText prints one TSV row per scored pair.
func WriteText(w io.Writer, list []ScoredPair, o Options) error {
	if o.Header {
		if _, err := fmt.Fprintln(w, textHeader); err != nil {
			return err
		}
	}
	for _, p := range list {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			p.ID, p.Result.Length, p.Result.Score,
			p.Result.Matches, p.Result.Mismatches, p.Result.Gaps,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func init() { Register("text", WriteText) }
