// internal/check/assert.go
package check

import "errors"

// Equal records a failure carrying both values unless got == want.
func Equal[E comparable](t *T, want, got E) bool {
	if got != want {
		t.Errorf("expected %v, actual %v", want, got)
		return false
	}
	return true
}

// NoError aborts the check if err is non-nil; a broken precondition makes
// every later assertion meaningless.
func NoError(t *T, err error) {
	if err != nil {
		t.Fatalf("expected no error, actual %v", err)
	}
}

// ErrorAs aborts the check unless err is non-nil and matches target, which
// must be a pointer to a concrete error type.
func ErrorAs(t *T, err error, target any) {
	if err == nil {
		t.Fatalf("expected an error, actual nil")
	}
	if !errors.As(err, target) {
		t.Fatalf("expected error of type %T, actual %v", target, err)
	}
}
