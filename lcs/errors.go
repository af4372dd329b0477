// SPDX-License-Identifier: MIT
// Package lcs: sentinel error set.
// Every message is prefixed with "lcs: ". Public methods wrap these with
// method context; callers match them with errors.Is. Validator predicates
// never return errors; the Check* variants report every violated rule.

package lcs

import "errors"

var (
	// ErrBadOptions indicates an Options value with an unknown CountMode.
	ErrBadOptions = errors.New("lcs: invalid options")

	// ErrOutOfRange indicates a prefix pair (m, n) outside [0..M]×[0..N].
	ErrOutOfRange = errors.New("lcs: prefix index out of range")

	// ErrCountsDisabled is returned by count queries when Options.Counting
	// does not provide the requested table.
	ErrCountsDisabled = errors.New("lcs: count table not available in this counting mode")

	// ErrCountOverflow indicates that a fixed-width count did not fit in uint64.
	// Rebuild with CountBig to obtain the exact value.
	ErrCountOverflow = errors.New("lcs: matching count overflows uint64")

	// ErrMalformedMatching indicates a raw matching that does not have exactly two rows.
	ErrMalformedMatching = errors.New("lcs: matching must have exactly two rows")

	// ErrRowLengthMismatch indicates f and g of different lengths.
	ErrRowLengthMismatch = errors.New("lcs: matching rows differ in length")

	// ErrNotIncreasing indicates a matching row that is not strictly increasing.
	ErrNotIncreasing = errors.New("lcs: matching row is not strictly increasing")

	// ErrMatchingOutOfRange indicates a matching index outside the prefix.
	ErrMatchingOutOfRange = errors.New("lcs: matching index outside prefix")

	// ErrSymbolMismatch indicates a matched pair whose symbols differ.
	ErrSymbolMismatch = errors.New("lcs: matched symbols differ")

	// ErrNotMaximal indicates a valid matching shorter than the LCS length.
	ErrNotMaximal = errors.New("lcs: matching is not maximal")
)
