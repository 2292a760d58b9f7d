// internal/check/suite_test.go
package check

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinSuitePasses(t *testing.T) {
	results := Runner{}.Run(Builtin())
	for _, f := range results.Failures {
		t.Errorf("builtin check %s failed: %v", f.Name, f.Errors)
	}
	assert.True(t, results.OK())
	assert.Equal(t, len(Builtin()), len(results.Checks))
}

func TestBuiltinNamingConvention(t *testing.T) {
	for _, c := range Builtin() {
		if !strings.HasPrefix(c.Name, "test_") {
			t.Errorf("check %q does not follow the test_ naming convention", c.Name)
		}
	}
}

func TestBuiltinNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Builtin() {
		assert.False(t, seen[c.Name], "duplicate check name %q", c.Name)
		seen[c.Name] = true
	}
}
