// core/seq/seq.go
package seq

import "unicode"

// Gap is the marker for a missing base at a position.
const Gap = '-'

// Valid reports whether b is one of the accepted symbols: the four DNA
// bases plus the gap marker.
func Valid(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', Gap:
		return true
	}
	return false
}

// Normalize removes spaces/quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Check verifies every symbol of s against the alphabet. arg names the
// argument in error messages. Empty input passes; use Validate where an
// empty sequence is itself an error.
func Check(arg, s string) error {
	for i := 0; i < len(s); i++ {
		if !Valid(s[i]) {
			return &SymbolError{Arg: arg, Pos: i + 1, Symbol: s[i]}
		}
	}
	return nil
}

// Validate returns the normalized sequence or an error if it is empty or
// carries a symbol outside the alphabet.
func Validate(arg, raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", &EmptyError{Arg: arg}
	}
	if err := Check(arg, s); err != nil {
		return "", err
	}
	return s, nil
}
