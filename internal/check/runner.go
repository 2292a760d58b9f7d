// internal/check/runner.go
package check

import "strings"

// Check is one independently runnable named check. Names follow the
// test_* convention.
type Check struct {
	Name string
	Run  func(*T)
}

// Runner executes checks and reports to a Logger.
type Runner struct {
	Logger Logger
	Filter string // substring match on check names; empty runs everything
}

// Run executes every check whose name matches the filter and returns the
// accumulated results.
func (r Runner) Run(checks []Check) Results {
	log := r.Logger
	if log == nil {
		log = nullLogger{}
	}
	var results Results
	for _, c := range checks {
		if r.Filter != "" && !strings.Contains(c.Name, r.Filter) {
			continue
		}
		log.CheckStarted(c.Name)
		t := &T{name: c.Name}
		res := t.run(c.Run)
		results.Checks = append(results.Checks, res)
		if len(res.Errors) > 0 {
			results.Failures = append(results.Failures, res)
			log.CheckFailed(c.Name, res.Errors)
		} else {
			log.CheckPassed(c.Name)
		}
	}
	log.Summary(results)
	return results
}
