// core/seq/errors.go
package seq

import "fmt"

// SymbolError reports a symbol outside the {A C G T -} alphabet. Scoring
// never runs on input that produces one; the caller gets the offending
// argument, position, and symbol instead of a misleading score.
type SymbolError struct {
	Arg    string // which argument failed
	Pos    int    // 1-based position of the offending symbol
	Symbol byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: invalid symbol %q at position %d; allowed: A C G T -", e.Arg, e.Symbol, e.Pos)
}

// EmptyError reports a sequence that is empty after normalization.
type EmptyError struct {
	Arg string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%s: empty sequence", e.Arg)
}
