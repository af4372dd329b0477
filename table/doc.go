// Package table provides the fixed-size two-dimensional grids that back the
// LCS length and count tables, and the pure text renderers used to print them.
//
// What:
//
//   - Grid[V] is a row-major grid stored in one flat slice with a stride.
//     It is allocated once and never resized.
//   - View[V] is the read-only surface handed to callers; it has no setter.
//   - Format / Fprint render a grid as the classic DP table: row index,
//     '|', right-justified cells, a rule and a trailing axis of column indices.
//   - FormatMatching renders an index-pair alignment as two rows.
//
// Why:
//
//   - Owners (package lcs) fill a Grid during construction and expose only a
//     View afterwards, so tables are immutable to the outside world.
//   - Rendering returns a string; writing it anywhere is the caller's choice.
//
// Complexity:
//
//   - New:    O(r·c) time and memory.
//   - At/Set: O(1).
//   - Format: O(m·n) for an (m+1)×(n+1) window.
//
// Errors:
//
//   - ErrBadShape: requested rows or cols is not positive.
//   - ErrOutOfRange: an index lies outside the grid.
package table
