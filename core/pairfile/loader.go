// core/pairfile/loader.go
package pairfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"seqscore-core/seq"
)

// Pair is one row of a pair file: an identifier and the two sequences to
// score against each other.
type Pair struct {
	ID string
	A  string
	B  string
}

// LoadTSV reads whitespace-separated rows of "id seqA seqB". Blank lines
// and '#' comments are skipped. Sequences are normalized but not validated;
// validation happens at scoring time so every row gets a precise error.
func LoadTSV(path string) ([]Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Pair
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, fmt.Errorf("%s:%d bad field count (want id seqA seqB)", path, ln)
		}
		list = append(list, Pair{
			ID: f[0],
			A:  seq.Normalize(f[1]),
			B:  seq.Normalize(f[2]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
