// internal/output/registry.go
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriterFunc renders a batch of scored pairs in one format.
type WriterFunc func(w io.Writer, list []ScoredPair, o Options) error

// writers maps format name to handler. Filled from init() in the per-format
// files; last registration wins.
var writers = map[string]WriterFunc{}

func Register(format string, fn WriterFunc) { writers[format] = fn }

// Known reports whether format has a registered writer.
func Known(format string) bool {
	_, ok := writers[format]
	return ok
}

// Formats returns the registered format names, sorted, for usage text.
func Formats() string {
	names := make([]string, 0, len(writers))
	for n := range writers {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, " | ")
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, list []ScoredPair, o Options) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, o)
}
