package lcs

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/lcskit/table"
)

// Analysis holds the LCS tables of one fixed pair of sequences.
// It is immutable once New returns.
type Analysis[T comparable] struct {
	x, y []T
	opts Options

	lengths *table.Grid[int]      // llcs, (M+1)×(N+1)
	counts  *table.Grid[uint64]   // nlcs when Counting==CountFixed
	bigs    *table.Grid[*big.Int] // nlcs when Counting==CountBig
}

// New builds the length table and, depending on opts.Counting, the count
// table for x and y. Both inputs are copied.
//
// Returns ErrBadOptions for an unknown CountMode; with DefaultOptions it
// never fails, including for empty inputs.
//
// Complexity: O(M·N) time and memory.
func New[T comparable](x, y []T, opts Options) (*Analysis[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	a := &Analysis[T]{
		x:    slices.Clone(x),
		y:    slices.Clone(y),
		opts: opts,
	}
	a.lengths = buildLengths(a.x, a.y)
	switch opts.Counting {
	case CountFixed:
		a.counts = buildCounts(a.x, a.y, a.lengths)
	case CountBig:
		a.bigs = buildBigCounts(a.x, a.y, a.lengths)
	}

	return a, nil
}

// NewStrings is New over the runes of x and y.
func NewStrings(x, y string, opts Options) (*Analysis[rune], error) {
	return New([]rune(x), []rune(y), opts)
}

// newGrid allocates an (M+1)×(N+1) grid. The shape is always positive.
func newGrid[V any](rows, cols int) *table.Grid[V] {
	g, err := table.New[V](rows, cols)
	if err != nil {
		panic(err) // unreachable: rows, cols >= 1
	}

	return g
}

// buildLengths fills llcs row-major:
//
//	llcs[0][*] = llcs[*][0] = 0
//	llcs[m][n] = llcs[m-1][n-1] + 1              if X[m-1] == Y[n-1]
//	           = max(llcs[m-1][n], llcs[m][n-1]) otherwise
func buildLengths[T comparable](x, y []T) *table.Grid[int] {
	rows, cols := len(x)+1, len(y)+1
	g := newGrid[int](rows, cols)
	// Row and column 0 are already zero.
	for m := 1; m < rows; m++ {
		for n := 1; n < cols; n++ {
			if x[m-1] == y[n-1] {
				g.Put(m, n, g.Get(m-1, n-1)+1)
				continue
			}
			g.Put(m, n, max(g.Get(m-1, n), g.Get(m, n-1)))
		}
	}

	return g
}

// M returns the length of X.
func (a *Analysis[T]) M() int {
	return len(a.x)
}

// N returns the length of Y.
func (a *Analysis[T]) N() int {
	return len(a.y)
}

// X returns a copy of the first sequence.
func (a *Analysis[T]) X() []T {
	return slices.Clone(a.x)
}

// Y returns a copy of the second sequence.
func (a *Analysis[T]) Y() []T {
	return slices.Clone(a.y)
}

// Options returns the options the analysis was built with.
func (a *Analysis[T]) Options() Options {
	return a.opts
}

// checkPrefix reports ErrOutOfRange unless 0≤m≤M and 0≤n≤N.
func (a *Analysis[T]) checkPrefix(method string, m, n int) error {
	if !a.lengths.InBounds(m, n) {
		return fmt.Errorf("lcs.%s(%d,%d): %w", method, m, n, ErrOutOfRange)
	}

	return nil
}

// Length returns llcs[M][N], the length of any LCS of X and Y.
func (a *Analysis[T]) Length() int {
	return a.lengths.Get(len(a.x), len(a.y))
}

// LengthAt returns llcs[m][n], the length of any LCS of X[0..m) and Y[0..n).
// Returns ErrOutOfRange unless 0≤m≤M and 0≤n≤N.
func (a *Analysis[T]) LengthAt(m, n int) (int, error) {
	if err := a.checkPrefix("LengthAt", m, n); err != nil {
		return 0, err
	}

	return a.lengths.Get(m, n), nil
}

// Lengths returns a read-only view of the whole length table.
func (a *Analysis[T]) Lengths() table.View[int] {
	return table.ReadOnly(a.lengths)
}
