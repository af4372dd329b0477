package lcs

import (
	"fmt"
	"math"
	"slices"
)

// CountMode selects how the count table is stored.
//
//   - CountFixed: uint64 cells with saturating arithmetic. A saturated
//     cell (CountOverflow) is reported as ErrCountOverflow. Memory: 8·(M+1)(N+1) bytes.
//
//   - CountBig: *big.Int cells; exact for any input size, slower.
//
//   - CountNone: skip the count table; only lengths are built.
type CountMode int

const (
	// CountFixed stores counts as overflow-checked uint64.
	CountFixed CountMode = iota

	// CountBig stores counts as arbitrary-precision integers.
	CountBig

	// CountNone builds no count table.
	CountNone
)

// CountOverflow is the saturated value stored in a CountFixed table for
// counts that reached 2^64-1, and for counts derived from such a cell.
const CountOverflow uint64 = math.MaxUint64

// String implements fmt.Stringer.
func (c CountMode) String() string {
	switch c {
	case CountFixed:
		return "fixed"
	case CountBig:
		return "big"
	case CountNone:
		return "none"
	default:
		return fmt.Sprintf("CountMode(%d)", int(c))
	}
}

// ParseCountMode maps "fixed", "big" or "none" to a CountMode.
func ParseCountMode(s string) (CountMode, error) {
	for _, c := range []CountMode{CountFixed, CountBig, CountNone} {
		if c.String() == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown counting mode %q", ErrBadOptions, s)
}

// Options configures an Analysis.
//
// Fields:
//   - Counting: storage strategy of the count table (see CountMode).
//
// Example:
//
//	opts := lcs.DefaultOptions()
//	opts.Counting = lcs.CountBig // exact counts for long inputs
//	a, err := lcs.NewStrings(x, y, opts)
type Options struct {
	Counting CountMode
}

// DefaultOptions returns Options with Counting=CountFixed.
func DefaultOptions() Options {
	return Options{Counting: CountFixed}
}

// validate checks Options for unknown enum values.
func (o Options) validate() error {
	switch o.Counting {
	case CountFixed, CountBig, CountNone:
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrBadOptions, o.Counting)
	}
}

// Matching is an alignment between prefixes of X and Y: X[F[k]] is matched
// with Y[G[k]]. A valid matching has len(F)==len(G) and both rows strictly
// increasing; the validators accept any shape and classify it.
type Matching struct {
	F []int // positions in X
	G []int // positions in Y
}

// Len returns the number of matched pairs (len(F)).
func (mt Matching) Len() int {
	return len(mt.F)
}

// Rows returns the matching as a two-row matrix [F, G], copying both rows.
func (mt Matching) Rows() [][]int {
	return [][]int{slices.Clone(mt.F), slices.Clone(mt.G)}
}

// MatchingFromRows converts a two-row matrix into a Matching, copying the rows.
// Returns ErrMalformedMatching unless len(rows)==2. Row lengths are not checked
// here; that is the validator's job.
func MatchingFromRows(rows [][]int) (Matching, error) {
	if len(rows) != 2 {
		return Matching{}, fmt.Errorf("%w: got %d", ErrMalformedMatching, len(rows))
	}

	return Matching{F: slices.Clone(rows[0]), G: slices.Clone(rows[1])}, nil
}
