// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"seqscore-core/align"
	"seqscore/pkg/api"
)

func samplePairs() []ScoredPair {
	return []ScoredPair{
		{ID: "p1", A: "AAA", B: "AAA", Result: align.Result{Score: 3, Length: 3, Matches: 3}},
		{ID: "p2", A: "AC-G-", B: "AC-AT", Result: align.Result{Score: 1, Length: 5, Matches: 2, Mismatches: 1, Gaps: 2}},
	}
}

func TestWriteTextWithHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, samplePairs(), Options{Header: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "id\tlength\tscore\tmatches\tmismatches\tgaps" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[2] != "p2\t5\t1\t2\t1\t2" {
		t.Errorf("unexpected row: %q", lines[2])
	}
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, samplePairs(), Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "id\t") {
		t.Errorf("header present despite Options.Header=false:\n%s", buf.String())
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, samplePairs(), Options{WithSeqs: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []api.ScoreV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 || got[1].Score != 1 || got[1].SeqA != "AC-G-" {
		t.Errorf("unexpected decode: %+v", got)
	}
}

func TestWriteJSONLOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONL(&buf, samplePairs(), Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	var one api.ScoreV1
	if err := json.Unmarshal([]byte(lines[0]), &one); err != nil {
		t.Fatalf("line 1 not valid JSON: %v", err)
	}
	if one.SeqA != "" {
		t.Errorf("sequences included without WithSeqs: %+v", one)
	}
}

func TestRegistryDispatch(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("text", &buf, samplePairs(), Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Write("tsv", &buf, samplePairs(), Options{}); err == nil {
		t.Fatal("want error for unregistered format")
	}
	for _, f := range []string{"text", "json", "jsonl"} {
		if !Known(f) {
			t.Errorf("format %q not registered", f)
		}
	}
}
