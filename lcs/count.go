package lcs

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/katalvlaran/lcskit/table"
)

// Count table
//
// nlcs[m][n] is the number of distinct maximal (m,n)-matchings. With
// L = llcs[m][n], a maximal matching of (m,n) either
//
//   - avoids X[m-1]: it is a maximal (m-1,n)-matching, possible iff llcs[m-1][n]==L;
//   - avoids Y[n-1]: it is a maximal (m,n-1)-matching, possible iff llcs[m][n-1]==L;
//   - uses both: then they are paired with each other (both are last), which
//     needs X[m-1]==Y[n-1], and the rest is a maximal (m-1,n-1)-matching.
//
// The first two sets overlap in the maximal (m-1,n-1)-matchings of length L,
// which exist iff llcs[m-1][n-1]==L. Hence:
//
//	nlcs[m][0] = nlcs[0][n] = 1
//	nlcs[m][n] = [up==L]·nlcs[m-1][n] + [left==L]·nlcs[m][n-1]
//	           - [diag==L]·nlcs[m-1][n-1] + [X[m-1]==Y[n-1]]·nlcs[m-1][n-1]
//
// On a match diag==L-1, so the subtraction and the match term never apply
// together. When diag==L both up==L and left==L hold, so up-diag ≥ 0.

// term is one step of the recurrence, decoded from the length table.
type term struct {
	up, left, diag, match bool
}

// termAt decides which neighbours contribute to nlcs[m][n] (m,n ≥ 1).
func termAt[T comparable](x, y []T, lengths *table.Grid[int], m, n int) term {
	l := lengths.Get(m, n)

	return term{
		up:    lengths.Get(m-1, n) == l,
		left:  lengths.Get(m, n-1) == l,
		diag:  lengths.Get(m-1, n-1) == l,
		match: x[m-1] == y[n-1],
	}
}

// addSat adds with saturation at CountOverflow.
func addSat(a, b uint64) uint64 {
	if a == CountOverflow || b == CountOverflow {
		return CountOverflow
	}
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s == CountOverflow {
		return CountOverflow
	}

	return s
}

// subSat subtracts b ≤ a, keeping a saturated minuend saturated.
func subSat(a, b uint64) uint64 {
	if a == CountOverflow {
		return CountOverflow
	}

	return a - b
}

// buildCounts fills nlcs in uint64 with saturating arithmetic.
func buildCounts[T comparable](x, y []T, lengths *table.Grid[int]) *table.Grid[uint64] {
	rows, cols := len(x)+1, len(y)+1
	g := newGrid[uint64](rows, cols)
	for m := 0; m < rows; m++ {
		g.Put(m, 0, 1)
	}
	for n := 0; n < cols; n++ {
		g.Put(0, n, 1)
	}

	var sum uint64
	for m := 1; m < rows; m++ {
		for n := 1; n < cols; n++ {
			t := termAt(x, y, lengths, m, n)
			sum = 0
			if t.up {
				sum = g.Get(m-1, n)
			}
			if t.diag {
				sum = subSat(sum, g.Get(m-1, n-1))
			}
			if t.left {
				sum = addSat(sum, g.Get(m, n-1))
			}
			if t.match {
				sum = addSat(sum, g.Get(m-1, n-1))
			}
			g.Put(m, n, sum)
		}
	}

	return g
}

// buildBigCounts fills nlcs with arbitrary-precision integers.
func buildBigCounts[T comparable](x, y []T, lengths *table.Grid[int]) *table.Grid[*big.Int] {
	rows, cols := len(x)+1, len(y)+1
	g := newGrid[*big.Int](rows, cols)
	for m := 0; m < rows; m++ {
		g.Put(m, 0, big.NewInt(1))
	}
	for n := 1; n < cols; n++ {
		g.Put(0, n, big.NewInt(1))
	}

	for m := 1; m < rows; m++ {
		for n := 1; n < cols; n++ {
			t := termAt(x, y, lengths, m, n)
			sum := new(big.Int)
			if t.up {
				sum.Add(sum, g.Get(m-1, n))
			}
			if t.left {
				sum.Add(sum, g.Get(m, n-1))
			}
			if t.diag {
				sum.Sub(sum, g.Get(m-1, n-1))
			}
			if t.match {
				sum.Add(sum, g.Get(m-1, n-1))
			}
			g.Put(m, n, sum)
		}
	}

	return g
}

// NumMaxMatchings returns nlcs[M][N], the number of distinct maximal
// (M,N)-matchings. See NumMaxMatchingsAt for errors.
func (a *Analysis[T]) NumMaxMatchings() (uint64, error) {
	return a.NumMaxMatchingsAt(len(a.x), len(a.y))
}

// NumMaxMatchingsAt returns nlcs[m][n] as uint64.
//
// Errors:
//   - ErrOutOfRange: (m,n) outside [0..M]×[0..N].
//   - ErrCountsDisabled: built with CountNone.
//   - ErrCountOverflow: CountFixed cell saturated, or CountBig value > 2^64-1.
func (a *Analysis[T]) NumMaxMatchingsAt(m, n int) (uint64, error) {
	if err := a.checkPrefix("NumMaxMatchingsAt", m, n); err != nil {
		return 0, err
	}
	switch {
	case a.counts != nil:
		v := a.counts.Get(m, n)
		if v == CountOverflow {
			return 0, fmt.Errorf("lcs.NumMaxMatchingsAt(%d,%d): %w", m, n, ErrCountOverflow)
		}

		return v, nil
	case a.bigs != nil:
		v := a.bigs.Get(m, n)
		if !v.IsUint64() || v.Uint64() == CountOverflow {
			return 0, fmt.Errorf("lcs.NumMaxMatchingsAt(%d,%d): %w", m, n, ErrCountOverflow)
		}

		return v.Uint64(), nil
	default:
		return 0, ErrCountsDisabled
	}
}

// NumMaxMatchingsBig returns nlcs[M][N] as a new big.Int.
func (a *Analysis[T]) NumMaxMatchingsBig() (*big.Int, error) {
	return a.NumMaxMatchingsBigAt(len(a.x), len(a.y))
}

// NumMaxMatchingsBigAt returns nlcs[m][n] as a new big.Int. Under CountFixed
// it fails with ErrCountOverflow for saturated cells.
func (a *Analysis[T]) NumMaxMatchingsBigAt(m, n int) (*big.Int, error) {
	if err := a.checkPrefix("NumMaxMatchingsBigAt", m, n); err != nil {
		return nil, err
	}
	if a.bigs != nil {
		return new(big.Int).Set(a.bigs.Get(m, n)), nil
	}
	v, err := a.NumMaxMatchingsAt(m, n)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetUint64(v), nil
}

// Counts returns a read-only view of the CountFixed table. Saturated cells
// hold CountOverflow. Returns ErrCountsDisabled in other modes.
func (a *Analysis[T]) Counts() (table.View[uint64], error) {
	if a.counts == nil {
		return nil, fmt.Errorf("lcs.Counts: %w (mode %v)", ErrCountsDisabled, a.opts.Counting)
	}

	return table.ReadOnly(a.counts), nil
}

// BigCounts returns a read-only view of the CountBig table; every At returns
// a fresh copy. Returns ErrCountsDisabled in other modes.
func (a *Analysis[T]) BigCounts() (table.View[*big.Int], error) {
	if a.bigs == nil {
		return nil, fmt.Errorf("lcs.BigCounts: %w (mode %v)", ErrCountsDisabled, a.opts.Counting)
	}

	return bigView{g: a.bigs}, nil
}

// bigView copies each cell so callers cannot mutate the table.
type bigView struct {
	g *table.Grid[*big.Int]
}

func (v bigView) Rows() int { return v.g.Rows() }
func (v bigView) Cols() int { return v.g.Cols() }

func (v bigView) At(i, j int) (*big.Int, error) {
	c, err := v.g.At(i, j)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(c), nil
}

// LatticePaths builds the raw lattice-path table for x and y:
//
//	P[m][0] = P[0][n] = 1
//	P[m][n] = P[m-1][n-1] + P[m-1][n] + P[m][n-1]   if X[m-1] == Y[n-1]
//	        = P[m-1][n] + P[m][n-1]                 otherwise
//
// P counts monotone paths through the edit lattice in which diagonal steps
// are allowed only on matching symbols. It ignores lengths, so it is NOT the
// number of maximal matchings (for "abc","abc" P[3][3]=43, not 1); use
// NumMaxMatchings for that. The grid is owned by the caller.
//
// Complexity: O(M·N) big-integer additions.
func LatticePaths[T comparable](x, y []T) *table.Grid[*big.Int] {
	rows, cols := len(x)+1, len(y)+1
	g := newGrid[*big.Int](rows, cols)
	for m := 0; m < rows; m++ {
		g.Put(m, 0, big.NewInt(1))
	}
	for n := 1; n < cols; n++ {
		g.Put(0, n, big.NewInt(1))
	}
	for m := 1; m < rows; m++ {
		for n := 1; n < cols; n++ {
			p := new(big.Int).Add(g.Get(m-1, n), g.Get(m, n-1))
			if x[m-1] == y[n-1] {
				p.Add(p, g.Get(m-1, n-1))
			}
			g.Put(m, n, p)
		}
	}

	return g
}
