// internal/app/app_test.go
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := Run(argv, &out, &errb)
	return code, out.String(), errb.String()
}

func TestRunInlinePairText(t *testing.T) {
	code, out, errb := run(t, "-a", "AC-G-", "-b", "AC-AT")
	require.Equal(t, 0, code, "stderr: %s", errb)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, 2, len(lines))
	assert.Equal(t, "id\tlength\tscore\tmatches\tmismatches\tgaps", lines[0])
	assert.Equal(t, "pair\t5\t1\t2\t1\t2", lines[1])
}

func TestRunLowercaseInlineIsNormalized(t *testing.T) {
	code, out, _ := run(t, "-a", "aaa", "-b", "aaa", "--no-header")
	require.Equal(t, 0, code)
	assert.Equal(t, "pair\t3\t3\t3\t0\t0\n", out)
}

func TestRunRejectsBadSymbol(t *testing.T) {
	code, _, errb := run(t, "-a", "AB7", "-b", "AB7")
	assert.Equal(t, 1, code)
	assert.Contains(t, errb, "invalid symbol")
	assert.Contains(t, errb, "seq-a")
}

func TestRunRejectsLengthMismatch(t *testing.T) {
	code, _, errb := run(t, "-a", "ACGT", "-b", "ACG")
	assert.Equal(t, 1, code)
	assert.Contains(t, errb, "length mismatch")
}

func TestRunUsageErrors(t *testing.T) {
	code, _, errb := run(t, "--output", "text")
	assert.Equal(t, 2, code)
	assert.Contains(t, errb, "provide")

	code, out, _ := run(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage")
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	code, out, _ := run(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "pairwise match scoring")
}

func TestRunVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "seqscore version")
}

func TestRunPairFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "pairs.tsv")
	require.NoError(t, os.WriteFile(p, []byte("p1\tAAA\tAAA\np2\tAAA\tGGG\n"), 0o600))

	code, out, errb := run(t, "--pairs", p, "--no-header")
	require.Equal(t, 0, code, "stderr: %s", errb)
	assert.Equal(t, "p1\t3\t3\t3\t0\t0\np2\t3\t-3\t0\t3\t0\n", out)
}

func TestRunPairFileAsPositionalWithSort(t *testing.T) {
	p := filepath.Join(t.TempDir(), "pairs.tsv")
	require.NoError(t, os.WriteFile(p, []byte("zz\tAAA\tAAA\naa\tTTT\tTTT\n"), 0o600))

	code, out, _ := run(t, p, "--no-header", "--sort")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "aa\t"), "output not sorted:\n%s", out)
}

func TestRunFastaPairing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(p, []byte(">ref\nAAA\n>query\nGGG\n"), 0o600))

	code, out, errb := run(t, "--fasta", p, "--no-header")
	require.Equal(t, 0, code, "stderr: %s", errb)
	assert.Equal(t, "ref|query\t3\t-3\t0\t3\t0\n", out)
}

func TestRunFastaOddRecordCount(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(p, []byte(">only\nAAA\n"), 0o600))

	code, _, errb := run(t, "--fasta", p)
	assert.Equal(t, 2, code)
	assert.Contains(t, errb, "odd record count")
}

func TestRunJSONOutput(t *testing.T) {
	code, out, _ := run(t, "-a", "AAA", "-b", "AAA", "--output", "json", "--seqs")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"score": 3`)
	assert.Contains(t, out, `"seq_a": "AAA"`)
}

func TestRunPrettyBlock(t *testing.T) {
	code, out, _ := run(t, "-a", "AC-G-", "-b", "AC-AT", "--pretty", "--no-header")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "# 5'-AC-G--3'")
	assert.Contains(t, out, "score=1")
	// Rows still follow the pretty block.
	assert.Contains(t, out, "pair\t5\t1\t2\t1\t2\n")
}

func TestRunMissingPairFile(t *testing.T) {
	code, _, errb := run(t, "--pairs", filepath.Join(t.TempDir(), "nope.tsv"))
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errb)
}
