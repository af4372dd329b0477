package lcs

import (
	"fmt"

	"cloudeng.io/errors"
)

// Validation
//
// A (m,n)-matching (F, G) is valid when:
//  1. len(F) == len(G);
//  2. F and G are strictly increasing;
//  3. every F[k] ∈ [0,m) and every G[k] ∈ [0,n);
//  4. X[F[k]] == Y[G[k]] for every k.
//
// It is maximal when additionally len(F) == llcs[m][n]. The empty matching
// is valid. The Is* predicates never fail; the Check* variants return nil or
// one error listing every violated rule, each wrapping a sentinel.

// IsValidMatching reports whether mt is a valid (M,N)-matching.
func (a *Analysis[T]) IsValidMatching(mt Matching) bool {
	return a.IsValidMatchingAt(mt, len(a.x), len(a.y))
}

// IsValidMatchingAt reports whether mt is a valid (not necessarily maximal)
// (m,n)-matching. An out-of-range (m,n) yields false.
func (a *Analysis[T]) IsValidMatchingAt(mt Matching, m, n int) bool {
	return a.CheckMatchingAt(mt, m, n) == nil
}

// IsValidMaxMatching reports whether mt is a valid maximal (M,N)-matching.
func (a *Analysis[T]) IsValidMaxMatching(mt Matching) bool {
	return a.IsValidMaxMatchingAt(mt, len(a.x), len(a.y))
}

// IsValidMaxMatchingAt reports whether mt is a valid (m,n)-matching of
// length llcs[m][n]. An out-of-range (m,n) yields false.
func (a *Analysis[T]) IsValidMaxMatchingAt(mt Matching, m, n int) bool {
	return a.CheckMaxMatchingAt(mt, m, n) == nil
}

// CheckMatchingAt explains why mt is not a valid (m,n)-matching, or returns nil.
// The error matches (errors.Is) one sentinel per violated rule:
// ErrRowLengthMismatch, ErrNotIncreasing, ErrMatchingOutOfRange,
// ErrSymbolMismatch; or ErrOutOfRange alone for a bad (m,n).
func (a *Analysis[T]) CheckMatchingAt(mt Matching, m, n int) error {
	if err := a.checkPrefix("CheckMatchingAt", m, n); err != nil {
		return err
	}
	errs := &errors.M{}
	a.check(errs, mt, m, n)

	return errs.Err()
}

// CheckMaxMatchingAt is CheckMatchingAt plus ErrNotMaximal when the length
// differs from llcs[m][n].
func (a *Analysis[T]) CheckMaxMatchingAt(mt Matching, m, n int) error {
	if err := a.checkPrefix("CheckMaxMatchingAt", m, n); err != nil {
		return err
	}
	errs := &errors.M{}
	a.check(errs, mt, m, n)
	if want := a.lengths.Get(m, n); len(mt.F) != want {
		errs.Append(fmt.Errorf("%w: length %d, llcs[%d][%d]=%d", ErrNotMaximal, len(mt.F), m, n, want))
	}

	return errs.Err()
}

// check appends one error per violated rule. Only the first offending
// position of each rule is reported.
func (a *Analysis[T]) check(errs *errors.M, mt Matching, m, n int) {
	f, g := mt.F, mt.G

	// Rule 1: shape.
	if len(f) != len(g) {
		errs.Append(fmt.Errorf("%w: len(f)=%d, len(g)=%d", ErrRowLengthMismatch, len(f), len(g)))
	}

	// Rule 2: strictly increasing rows.
	if k := firstNonIncreasing(f); k > 0 {
		errs.Append(fmt.Errorf("%w: f[%d]=%d after f[%d]=%d", ErrNotIncreasing, k, f[k], k-1, f[k-1]))
	}
	if k := firstNonIncreasing(g); k > 0 {
		errs.Append(fmt.Errorf("%w: g[%d]=%d after g[%d]=%d", ErrNotIncreasing, k, g[k], k-1, g[k-1]))
	}

	// Rule 3: bounds against the prefix.
	if k := firstOutside(f, m); k >= 0 {
		errs.Append(fmt.Errorf("%w: f[%d]=%d not in [0,%d)", ErrMatchingOutOfRange, k, f[k], m))
	}
	if k := firstOutside(g, n); k >= 0 {
		errs.Append(fmt.Errorf("%w: g[%d]=%d not in [0,%d)", ErrMatchingOutOfRange, k, g[k], n))
	}

	// Rule 4: symbols, over the pairs that exist and are addressable.
	pairs := min(len(f), len(g))
	for k := 0; k < pairs; k++ {
		i, j := f[k], g[k]
		if i < 0 || i >= m || j < 0 || j >= n {
			continue
		}
		if a.x[i] != a.y[j] {
			errs.Append(fmt.Errorf("%w: X[%d]=%v, Y[%d]=%v", ErrSymbolMismatch, i, a.x[i], j, a.y[j]))

			break
		}
	}
}

// firstNonIncreasing returns the first k>0 with s[k-1] >= s[k], or -1.
func firstNonIncreasing(s []int) int {
	for k := 1; k < len(s); k++ {
		if s[k-1] >= s[k] {
			return k
		}
	}

	return -1
}

// firstOutside returns the first k with s[k] ∉ [0,limit), or -1.
func firstOutside(s []int, limit int) int {
	for k, v := range s {
		if v < 0 || v >= limit {
			return k
		}
	}

	return -1
}
