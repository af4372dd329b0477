package lcs

// Reconstruction
//
// Both reconstructions walk backward from (m,n) to the first zero row or
// column:
//
//	X[i-1] == Y[j-1]            → record (i-1, j-1), move to (i-1, j-1)
//	llcs[i-1][j] > llcs[i][j-1] → move up to (i-1, j)
//	otherwise (ties included)   → move left to (i, j-1)
//
// The tie rule fixes which of several LCSs is returned. Subsequence and
// MaxMatching share walk, so the symbols of MaxMatchingAt(m,n) always spell
// SubsequenceAt(m,n).

// walk visits the matched pairs of the canonical path from (m,n), last pair
// first. k counts down from llcs[m][n]-1 to 0. (m,n) must be in range.
// Complexity: O(m+n), no recursion.
func (a *Analysis[T]) walk(m, n int, visit func(k, i, j int)) {
	i, j := m, n
	k := a.lengths.Get(m, n) - 1
	for i > 0 && j > 0 {
		switch {
		case a.x[i-1] == a.y[j-1]:
			visit(k, i-1, j-1)
			k--
			i--
			j--
		case a.lengths.Get(i-1, j) > a.lengths.Get(i, j-1):
			i--
		default:
			j--
		}
	}
}

// Subsequence returns one LCS of X and Y.
func (a *Analysis[T]) Subsequence() []T {
	s, _ := a.SubsequenceAt(len(a.x), len(a.y))

	return s
}

// SubsequenceAt returns one LCS of X[0..m) and Y[0..n); its length is
// exactly llcs[m][n]. The result is never nil.
// Returns ErrOutOfRange unless 0≤m≤M and 0≤n≤N.
func (a *Analysis[T]) SubsequenceAt(m, n int) ([]T, error) {
	if err := a.checkPrefix("SubsequenceAt", m, n); err != nil {
		return nil, err
	}
	out := make([]T, a.lengths.Get(m, n))
	a.walk(m, n, func(k, i, _ int) {
		out[k] = a.x[i]
	})

	return out, nil
}

// MaxMatching returns one maximal (M,N)-matching.
func (a *Analysis[T]) MaxMatching() Matching {
	mt, _ := a.MaxMatchingAt(len(a.x), len(a.y))

	return mt
}

// MaxMatchingAt returns one maximal (m,n)-matching: F and G are strictly
// increasing, of length llcs[m][n], and X[F[k]] == Y[G[k]].
// Returns ErrOutOfRange unless 0≤m≤M and 0≤n≤N.
func (a *Analysis[T]) MaxMatchingAt(m, n int) (Matching, error) {
	if err := a.checkPrefix("MaxMatchingAt", m, n); err != nil {
		return Matching{}, err
	}
	l := a.lengths.Get(m, n)
	mt := Matching{F: make([]int, l), G: make([]int, l)}
	a.walk(m, n, func(k, i, j int) {
		mt.F[k] = i
		mt.G[k] = j
	})

	return mt, nil
}
