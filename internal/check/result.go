// internal/check/result.go
package check

// Result is the outcome of one named check.
type Result struct {
	Name   string
	Errors []error
}

// Results accumulates every executed check plus the failing subset.
type Results struct {
	Checks   []Result
	Failures []Result
}

// OK reports whether every executed check passed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Passed returns the number of checks that ran without failure.
func (r Results) Passed() int {
	return len(r.Checks) - len(r.Failures)
}
