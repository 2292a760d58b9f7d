// internal/check/cases.go
package check

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seqscore-core/align"
	"seqscore-core/seq"
)

// caseEntry is one data-driven check from a YAML file. Exactly one of the
// two forms is valid per entry:
//
//	- name: test_custom_pair
//	  a: AC-G-
//	  b: AC-AT
//	  score: 1
//	- name: test_custom_rc
//	  revcomp: ACCG
//	  want: CGGT
//
// Either form may instead set fail: symbol | length to expect rejection.
type caseEntry struct {
	Name    string `yaml:"name"`
	A       string `yaml:"a"`
	B       string `yaml:"b"`
	Score   int    `yaml:"score"`
	RevComp string `yaml:"revcomp"`
	Want    string `yaml:"want"`
	Fail    string `yaml:"fail"`
}

// LoadCases parses a YAML case file into runnable checks.
func LoadCases(path string) ([]Check, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []caseEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	checks := make([]Check, 0, len(entries))
	for i, e := range entries {
		c, err := e.toCheck()
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
		checks = append(checks, c)
	}
	return checks, nil
}

func (e caseEntry) toCheck() (Check, error) {
	if e.Name == "" {
		return Check{}, fmt.Errorf("missing name")
	}
	scoring := e.A != "" || e.B != ""
	rc := e.RevComp != ""
	switch {
	case scoring && rc:
		return Check{}, fmt.Errorf("a/b and revcomp are mutually exclusive")
	case !scoring && !rc:
		return Check{}, fmt.Errorf("need either a/b or revcomp")
	}
	switch e.Fail {
	case "", "symbol", "length":
	default:
		return Check{}, fmt.Errorf("invalid fail %q (want symbol or length)", e.Fail)
	}
	if rc && e.Fail == "length" {
		return Check{}, fmt.Errorf("fail: length applies to scoring entries only")
	}

	if scoring {
		return Check{Name: e.Name, Run: func(t *T) {
			r, err := align.Score(seq.Normalize(e.A), seq.Normalize(e.B))
			if e.Fail != "" {
				expectFailure(t, err, e.Fail)
				return
			}
			NoError(t, err)
			Equal(t, e.Score, r.Score)
		}}, nil
	}
	return Check{Name: e.Name, Run: func(t *T) {
		got, err := align.RevComp(seq.Normalize(e.RevComp))
		if e.Fail != "" {
			expectFailure(t, err, e.Fail)
			return
		}
		NoError(t, err)
		Equal(t, e.Want, got)
	}}, nil
}

func expectFailure(t *T, err error, kind string) {
	switch kind {
	case "symbol":
		var se *seq.SymbolError
		ErrorAs(t, err, &se)
	case "length":
		var lm *align.LengthMismatchError
		ErrorAs(t, err, &lm)
	}
}
