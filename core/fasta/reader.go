// core/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"seqscore-core/seq"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq string
}

// Read parses all records from r. Sequence lines are normalized (spaces
// stripped, uppercased); headers keep only the first whitespace-separated
// token after '>'.
func Read(r io.Reader) ([]Record, error) {
	var (
		list []Record
		cur  *Record
		ln   int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if cur != nil {
				list = append(list, *cur)
			}
			id := strings.Fields(line[1:])
			name := ""
			if len(id) > 0 {
				name = id[0]
			}
			cur = &Record{ID: name}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("line %d: sequence data before first header", ln)
		}
		cur.Seq += seq.Normalize(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		list = append(list, *cur)
	}
	return list, nil
}

// ReadFile parses all records from path; "-" reads stdin.
func ReadFile(path string) ([]Record, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	recs, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
