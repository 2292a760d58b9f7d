// core/align/revcomp.go
package align

import "seqscore-core/seq"

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement[seq.Gap] = seq.Gap
}

// RevComp returns the reverse complement of s: reverse the order, then map
// A<->T and C<->G. The gap marker maps to itself so gapped sequences keep
// their gaps; any other symbol outside the alphabet is rejected.
func RevComp(s string) (string, error) {
	n := len(s)
	if n == 0 {
		return "", nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := s[n-1-i]
		c := complement[b]
		if c == 0 {
			return "", &seq.SymbolError{Arg: "seq", Pos: n - i, Symbol: b}
		}
		out[i] = c
	}
	return string(out), nil
}
