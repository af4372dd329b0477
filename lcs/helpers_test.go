package lcs_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lcskit/lcs"
	"github.com/stretchr/testify/require"
)

// mustStrings builds an Analysis over runes with default options.
func mustStrings(t testing.TB, x, y string) *lcs.Analysis[rune] {
	t.Helper()
	a, err := lcs.NewStrings(x, y, lcs.DefaultOptions())
	require.NoError(t, err)

	return a
}

// randomString returns a string of length n over alphabet, from a seeded source.
func randomString(r *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.IntN(len(alphabet))]
	}

	return string(b)
}

// enumerateMatchings lists every matching of x[0..m) and y[0..n) by DFS over
// strictly increasing index pairs. Each matching is produced exactly once.
// Exponential; for tiny inputs only.
func enumerateMatchings(x, y string, m, n int) []lcs.Matching {
	var (
		out []lcs.Matching
		f   []int
		g   []int
		rec func(pi, pj int)
	)
	rec = func(pi, pj int) {
		out = append(out, lcs.Matching{
			F: append([]int(nil), f...),
			G: append([]int(nil), g...),
		})
		for i := pi; i < m; i++ {
			for j := pj; j < n; j++ {
				if x[i] != y[j] {
					continue
				}
				f = append(f, i)
				g = append(g, j)
				rec(i+1, j+1)
				f = f[:len(f)-1]
				g = g[:len(g)-1]
			}
		}
	}
	rec(0, 0)

	return out
}

// bruteForce returns the LCS length and the number of distinct maximal
// matchings of x[0..m) and y[0..n).
func bruteForce(x, y string, m, n int) (length int, count uint64) {
	for _, mt := range enumerateMatchings(x, y, m, n) {
		switch {
		case mt.Len() > length:
			length, count = mt.Len(), 1
		case mt.Len() == length:
			count++
		}
	}

	return length, count
}
