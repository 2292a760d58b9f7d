// internal/check/scope.go
package check

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// T is the scope handed to a running check. Errorf records a failure and
// continues; Fatalf records and aborts the check. The runner recovers the
// abort, so checks never take the process down.
type T struct {
	name   string
	failed bool
	errors []error
}

// Name returns the name of the running check.
func (t *T) Name() string { return t.name }

// Errorf records a failure and lets the check continue.
func (t *T) Errorf(format string, args ...any) {
	t.failed = true
	t.errors = append(t.errors, fmt.Errorf(format, args...))
}

// Fatalf records a failure and aborts the check immediately.
func (t *T) Fatalf(format string, args ...any) {
	t.Errorf(format, args...)
	t.FailNow()
}

// FailNow aborts the check. It panics with the scope itself; the runner
// recognizes the value and recovers.
func (t *T) FailNow() {
	t.failed = true
	panic(t)
}

// run executes fn, converting aborts and unexpected panics into a Result.
func (t *T) run(fn func(*T)) (result Result) {
	result.Name = t.name
	defer func() {
		if r := recover(); r != nil {
			t.failed = true
			if _, ok := r.(*T); !ok {
				t.errors = append(t.errors,
					fmt.Errorf("unexpected panic in check: %+v\n%s", r, debug.Stack()))
			} else if len(t.errors) == 0 {
				t.errors = append(t.errors, errors.New("check failed with no failure message"))
			}
		}
		result.Errors = t.errors
	}()
	fn(t)
	return result
}
