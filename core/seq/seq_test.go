// core/seq/seq_test.go
package seq

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	if got := Normalize(" ac gt\t"); got != "ACGT" {
		t.Errorf("Normalize = %q, want ACGT", got)
	}
	if got := Normalize(`"ac-'gt"`); got != "AC-GT" {
		t.Errorf("Normalize = %q, want AC-GT", got)
	}
}

func TestValidateOK(t *testing.T) {
	s, err := Validate("seq-a", "ac-gt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "AC-GT" {
		t.Errorf("Validate = %q, want AC-GT", s)
	}
}

func TestValidateBadSymbol(t *testing.T) {
	_, err := Validate("seq-b", "ACXG")
	var se *SymbolError
	if !errors.As(err, &se) {
		t.Fatalf("want *SymbolError, got %v", err)
	}
	if se.Arg != "seq-b" || se.Pos != 3 || se.Symbol != 'X' {
		t.Errorf("unexpected error detail: %+v", se)
	}
}

func TestValidateEmpty(t *testing.T) {
	_, err := Validate("seq-a", "  ")
	var ee *EmptyError
	if !errors.As(err, &ee) {
		t.Fatalf("want *EmptyError, got %v", err)
	}
}

func TestCheckAllowsEmpty(t *testing.T) {
	if err := Check("seq-a", ""); err != nil {
		t.Errorf("Check(\"\") = %v, want nil", err)
	}
}
