package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with args and returns stdout, stderr and the error.
// Exit codes are returned as errors instead of terminating the test binary.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"lcs"}, args...))

	return stdout.String(), stderr.String(), err
}

// TestAnalyze_Text prints both tables, the LCS, the matching and the count.
func TestAnalyze_Text(t *testing.T) {
	out, _, err := run(t, "analyze", "ABC", "ACB")
	require.NoError(t, err)

	assert.Contains(t, out, "LLCS table for ABC and ACB:\n\n"+
		"  3|0 1 2 2 \n"+
		"  2|0 1 1 2 \n"+
		"  1|0 1 1 1 \n"+
		"  0|0 0 0 0 \n"+
		"   +--------\n"+
		"    0 1 2 3 \n")
	assert.Contains(t, out, "Length of any LCS is 2\n")
	assert.Contains(t, out, "A longest common subsequence is AC\n")
	assert.Contains(t, out, "A maximal matching is:\n  0   2 \n  0   1 \n")
	assert.Contains(t, out, "NLCS table for ABC and ACB:\n\n  3|1 1 1 2 \n")
	assert.Contains(t, out, "Number of maximal matchings is 2\n")
	assert.NotContains(t, out, "** Error")
}

// TestAnalyze_Prefix restricts the report to a prefix pair.
func TestAnalyze_Prefix(t *testing.T) {
	out, _, err := run(t, "analyze", "-m", "3", "-n", "3", "AGCAT", "GAC")
	require.NoError(t, err)
	assert.Contains(t, out, "A longest common subsequence is GC\n")

	_, _, err = run(t, "analyze", "-m", "9", "AGCAT", "GAC")
	require.Error(t, err)
}

// TestAnalyze_JSON emits a machine-readable report.
func TestAnalyze_JSON(t *testing.T) {
	out, _, err := run(t, "--format", "json", "analyze", "--counting", "big", "AGCAT", "GAC")
	require.NoError(t, err)

	v, err := fastjson.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, 2, v.GetInt("length"))
	assert.Equal(t, "GA", string(v.GetStringBytes("lcs")))
	assert.Equal(t, 3, v.GetInt("count"))
	assert.Equal(t, 1, v.GetInt("matching", "0", "0"))
	assert.Equal(t, 3, v.GetInt("matching", "0", "1"))
	assert.Equal(t, 3, v.GetInt("nlcs", "5", "3"))
	assert.Len(t, v.GetArray("llcs"), 6)
	assert.Empty(t, v.GetArray("problems"))
}

// TestAnalyze_YAML round-trips through yaml.v3.
func TestAnalyze_YAML(t *testing.T) {
	out, _, err := run(t, "--format", "yaml", "analyze", "abc", "abc")
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, 3, r.Length)
	assert.Equal(t, "abc", r.LCS)
	assert.Equal(t, "1", r.Count)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 1, 2}}, r.Matching)
	assert.Equal(t, []int{0, 1, 2, 3}, r.Lengths[3])
}

// TestAnalyze_Overflow notes the overflow and suggests big counting.
func TestAnalyze_Overflow(t *testing.T) {
	// C(70,35) distinct choices of 35 positions out of 70.
	x := strings.Repeat("a", 70)
	out, _, err := run(t, "--format", "yaml", "analyze", x, x[:35])
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Empty(t, r.Count)
	assert.Contains(t, r.Note, "--counting big")
	assert.Equal(t, "ovf", r.Counts[70][35])

	out, _, err = run(t, "--format", "yaml", "analyze", "--counting", "big", x, x[:35])
	require.NoError(t, err)

	var exact report
	require.NoError(t, yaml.Unmarshal([]byte(out), &exact))
	assert.Equal(t, "112186277816662845432", exact.Count)
	assert.Empty(t, exact.Note)
}

// TestAnalyze_CountingNone omits the count table.
func TestAnalyze_CountingNone(t *testing.T) {
	out, _, err := run(t, "analyze", "--counting", "none", "ABC", "ACB")
	require.NoError(t, err)
	assert.NotContains(t, out, "NLCS table")
	assert.NotContains(t, out, "Number of maximal matchings")
}

// TestBadArguments covers argument and flag errors.
func TestBadArguments(t *testing.T) {
	_, _, err := run(t, "analyze", "ABC")
	require.ErrorContains(t, err, "exactly two arguments")

	_, _, err = run(t, "analyze", "--counting", "huge", "A", "B")
	require.Error(t, err)

	_, _, err = run(t, "--format", "xml", "analyze", "A", "B")
	require.ErrorContains(t, err, "unsupported")
}

// TestValidate_Maximal accepts the matching printed by analyze.
func TestValidate_Maximal(t *testing.T) {
	out, _, err := run(t, "validate", "--matching", "[[0,2],[0,1]]", "ABC", "ACB")
	require.NoError(t, err)
	assert.Contains(t, out, "valid: true\nmaximal: true\n")
	assert.NotContains(t, out, "problems")
}

// TestValidate_NotMaximal: valid, not maximal, still exit 0.
func TestValidate_NotMaximal(t *testing.T) {
	out, _, err := run(t, "--format", "json", "validate", "--matching", `{"f":[0,2],"g":[0,2]}`, "ABC", "ABC")
	require.NoError(t, err)

	v, err := fastjson.Parse(out)
	require.NoError(t, err)
	assert.True(t, v.GetBool("valid"))
	assert.False(t, v.GetBool("maximal"))
	assert.Contains(t, string(v.GetStringBytes("problems")), "not maximal")
}

// TestValidate_Invalid exits non-zero.
func TestValidate_Invalid(t *testing.T) {
	out, _, err := run(t, "validate", "--matching", "[[1,0],[0,1]]", "ABC", "ABC")
	require.Error(t, err)
	assert.Contains(t, out, "valid: false\n")

	var exit cli.ExitCoder
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 1, exit.ExitCode())
}

// TestLattice prints the raw path-count table.
func TestLattice(t *testing.T) {
	out, _, err := run(t, "lattice", "ABC", "ACB")
	require.NoError(t, err)
	assert.Contains(t, out, "  3| 1  5 17 34 \n")
}

// TestVerbose logs debug records to stderr.
func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "--verbose", "analyze", "AB", "BA")
	require.NoError(t, err)
	assert.Contains(t, stderr, "analysis built")
}
