package table

// View is the read-only surface of a grid.
//
// At returns ErrOutOfRange (wrapped) if i<0, i>=Rows(), j<0 or j>=Cols().
// Implementations are safe for concurrent readers once fully built.
type View[V any] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the cell at (i, j).
	At(i, j int) (V, error)
}

// Grid is a row-major grid of V values.
// r is rows, c is columns (the stride), and data holds r*c cells.
type Grid[V any] struct {
	r, c int // number of rows and columns
	data []V // flat backing storage, length == r*c
}

// New creates an r×c Grid initialized to the zero value of V.
// Returns ErrBadShape if rows or cols is not positive.
// Complexity: O(r*c) time and memory.
func New[V any](rows, cols int) (*Grid[V], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Grid[V]{r: rows, c: cols, data: make([]V, rows*cols)}, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid[V]) Rows() int {
	return g.r
}

// Cols returns the number of columns in the grid.
func (g *Grid[V]) Cols() int {
	return g.c
}

// InBounds reports whether (i, j) addresses a cell of g.
// Complexity: O(1).
func (g *Grid[V]) InBounds(i, j int) bool {
	return i >= 0 && i < g.r && j >= 0 && j < g.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (g *Grid[V]) indexOf(method string, row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (g *Grid[V]) At(row, col int) (V, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		var zero V
		return zero, err
	}

	return g.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (g *Grid[V]) Set(row, col int, v V) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns a copy of row i, or ErrOutOfRange.
// Complexity: O(c).
func (g *Grid[V]) Row(i int) ([]V, error) {
	if i < 0 || i >= g.r {
		return nil, gridErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]V, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out, nil
}

// Clone returns a shallow copy of the grid: the backing slice is copied,
// but pointer-typed cells (e.g. *big.Int) still share their targets.
// Complexity: O(r*c).
func (g *Grid[V]) Clone() *Grid[V] {
	data := make([]V, len(g.data))
	copy(data, g.data)

	return &Grid[V]{r: g.r, c: g.c, data: data}
}

// Unchecked accessors for owners that have already validated their loop
// bounds. They panic like any slice index on misuse.

// Get returns the cell at (row, col) without bounds reporting.
func (g *Grid[V]) Get(row, col int) V {
	return g.data[row*g.c+col]
}

// Put stores v at (row, col) without bounds reporting.
func (g *Grid[V]) Put(row, col int, v V) {
	g.data[row*g.c+col] = v
}

// readOnly hides the setters of a Grid behind View.
type readOnly[V any] struct {
	g *Grid[V]
}

func (r readOnly[V]) Rows() int              { return r.g.Rows() }
func (r readOnly[V]) Cols() int              { return r.g.Cols() }
func (r readOnly[V]) At(i, j int) (V, error) { return r.g.At(i, j) }

// ReadOnly returns a View of g that cannot be type-asserted back to a Grid.
// Pointer-typed cells are returned as stored; wrap further if they must not
// be mutated.
func ReadOnly[V any](g *Grid[V]) View[V] {
	return readOnly[V]{g: g}
}
