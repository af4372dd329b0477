package lcs_test

import (
	"testing"

	"github.com/katalvlaran/lcskit/lcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_NonIncreasing: a non-increasing f row is invalid.
func TestValidate_NonIncreasing(t *testing.T) {
	a := mustStrings(t, "ABC", "ABC")
	mt := lcs.Matching{F: []int{1, 0}, G: []int{0, 1}}

	assert.False(t, a.IsValidMatching(mt))
	assert.False(t, a.IsValidMaxMatching(mt))
	require.ErrorIs(t, a.CheckMatchingAt(mt, 3, 3), lcs.ErrNotIncreasing)

	dup := lcs.Matching{F: []int{0, 1}, G: []int{1, 1}}
	assert.False(t, a.IsValidMatching(dup))
}

// TestValidate_PartialMatching: 2 of 3 pairs is valid but not maximal.
func TestValidate_PartialMatching(t *testing.T) {
	a := mustStrings(t, "ABC", "ABC")
	mt := lcs.Matching{F: []int{0, 2}, G: []int{0, 2}}

	assert.True(t, a.IsValidMatching(mt))
	assert.False(t, a.IsValidMaxMatching(mt))
	require.NoError(t, a.CheckMatchingAt(mt, 3, 3))
	require.ErrorIs(t, a.CheckMaxMatchingAt(mt, 3, 3), lcs.ErrNotMaximal)

	// Index 2 lies outside the (2,2) prefix.
	assert.False(t, a.IsValidMatchingAt(mt, 2, 2))
}

// TestValidate_Empty: the empty matching is always valid, maximal only when llcs==0.
func TestValidate_Empty(t *testing.T) {
	a := mustStrings(t, "ab", "ab")
	empty := lcs.Matching{}

	assert.True(t, a.IsValidMatching(empty))
	assert.False(t, a.IsValidMaxMatching(empty))
	assert.True(t, a.IsValidMaxMatchingAt(empty, 0, 2))
	assert.True(t, a.IsValidMaxMatchingAt(lcs.Matching{F: []int{}, G: []int{}}, 2, 0))
}

// TestValidate_Shape: rows of different length are rejected without panicking.
func TestValidate_Shape(t *testing.T) {
	a := mustStrings(t, "ABC", "ABC")
	mt := lcs.Matching{F: []int{0, 1, 2}, G: []int{0}}

	assert.False(t, a.IsValidMatching(mt))
	require.ErrorIs(t, a.CheckMatchingAt(mt, 3, 3), lcs.ErrRowLengthMismatch)

	_, err := lcs.MatchingFromRows([][]int{{0}})
	require.ErrorIs(t, err, lcs.ErrMalformedMatching)
	_, err = lcs.MatchingFromRows([][]int{{0}, {0}, {0}})
	require.ErrorIs(t, err, lcs.ErrMalformedMatching)

	got, err := lcs.MatchingFromRows([][]int{{0, 2}, {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2}, {1, 2}}, got.Rows())
}

// TestValidate_Bounds: indices must lie inside the prefix.
func TestValidate_Bounds(t *testing.T) {
	a := mustStrings(t, "ABC", "ABC")

	neg := lcs.Matching{F: []int{-1}, G: []int{0}}
	assert.False(t, a.IsValidMatching(neg))
	require.ErrorIs(t, a.CheckMatchingAt(neg, 3, 3), lcs.ErrMatchingOutOfRange)

	far := lcs.Matching{F: []int{0}, G: []int{3}}
	assert.False(t, a.IsValidMatching(far))
	require.ErrorIs(t, a.CheckMatchingAt(far, 3, 3), lcs.ErrMatchingOutOfRange)
}

// TestValidate_Symbols: pairs must match symbol for symbol.
func TestValidate_Symbols(t *testing.T) {
	a := mustStrings(t, "ABC", "ACB")
	mt := lcs.Matching{F: []int{0, 1}, G: []int{0, 1}} // A-A, B-C

	assert.False(t, a.IsValidMatching(mt))
	require.ErrorIs(t, a.CheckMatchingAt(mt, 3, 3), lcs.ErrSymbolMismatch)

	ok := lcs.Matching{F: []int{0, 1}, G: []int{0, 2}} // A-A, B-B
	assert.True(t, a.IsValidMaxMatching(ok))
}

// TestValidate_ReportsEveryRule: one error carries all violated sentinels.
func TestValidate_ReportsEveryRule(t *testing.T) {
	a := mustStrings(t, "ABC", "ABC")
	mt := lcs.Matching{F: []int{2, 1, 5}, G: []int{1, 2}}

	err := a.CheckMaxMatchingAt(mt, 3, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, lcs.ErrRowLengthMismatch)
	assert.ErrorIs(t, err, lcs.ErrNotIncreasing)
	assert.ErrorIs(t, err, lcs.ErrMatchingOutOfRange)
	assert.ErrorIs(t, err, lcs.ErrSymbolMismatch)
	assert.NotErrorIs(t, err, lcs.ErrNotMaximal)
}

// TestValidate_PrefixOutOfRange: a bad (m,n) is false, and ErrOutOfRange in Check.
func TestValidate_PrefixOutOfRange(t *testing.T) {
	a := mustStrings(t, "AB", "AB")
	mt := a.MaxMatching()

	assert.False(t, a.IsValidMatchingAt(mt, 3, 2))
	assert.False(t, a.IsValidMaxMatchingAt(mt, 2, -1))
	require.ErrorIs(t, a.CheckMatchingAt(mt, 3, 2), lcs.ErrOutOfRange)
	require.ErrorIs(t, a.CheckMaxMatchingAt(mt, 3, 2), lcs.ErrOutOfRange)
}

// TestValidate_CountAgreesWithEnumeration: every enumerated maximal matching
// validates, and their number equals NumMaxMatchings.
func TestValidate_CountAgreesWithEnumeration(t *testing.T) {
	x, y := "ABCBDAB", "BDCABA"
	a := mustStrings(t, x, y)

	var maximal uint64
	for _, mt := range enumerateMatchings(x, y, len(x), len(y)) {
		require.True(t, a.IsValidMatching(mt))
		if a.IsValidMaxMatching(mt) {
			maximal++
		}
	}
	cnt, err := a.NumMaxMatchings()
	require.NoError(t, err)
	assert.Equal(t, cnt, maximal)
}
