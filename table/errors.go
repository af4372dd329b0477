// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// Every message is prefixed with "table: ". Public indexers wrap these with
// method context; callers match them with errors.Is.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("table: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("table: index out of range")
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
