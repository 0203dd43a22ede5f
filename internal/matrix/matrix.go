// Package matrix implements a dense, rectangular, row-major float64
// matrix with in-place chained arithmetic: elementwise add/subtract,
// chain multiplication over matrix and scalar operands, division via
// inversion, power, transpose, and a recursive cofactor-expansion
// engine for determinant and inverse.
//
// Instance operations mutate the receiver and return it, so calls
// chain:
//
//	m := matrix.New(3, 3)
//	m.Multiply(a, matrix.Scalar(2)).Transpose()
//
// Structural problems (shape mismatches, non-square inversion,
// singular matrices, ambiguous resizes) never panic and never return
// errors: the offending operand or call is silently skipped, so one bad
// argument does not abort a whole chain. The only signals a caller can
// observe are the ok result of Determinant and an unchanged matrix.
package matrix

import (
	"fmt"
	"strings"

	"github.com/foldmat/foldmat/internal/pool"
)

// bufs is the buffer pool backing temporary storage in multiplication
// and transpose. Replaceable via SetPool; intended to be set once
// during program initialization.
var bufs = pool.Default

// SetPool redirects temporary-buffer allocation to p. A nil p restores
// the process-wide default pool.
func SetPool(p *pool.Pool) {
	if p == nil {
		p = pool.Default
	}
	bufs = p
}

// Matrix is a dense rows×cols matrix of float64 values stored row-major
// in a flat buffer: data[r*cols+c] holds the element at row r, column
// c. len(data) == rows*cols always holds.
//
// A Matrix (including its lazily created scratch workspace) is confined
// to one goroutine at a time; the buffer pool underneath is safe for
// concurrent use.
type Matrix struct {
	rows, cols int
	data       []float64

	// scratch caches the two workspace matrices used by the
	// determinant/inverse engine. Lazily created, dropped whenever the
	// shape changes.
	scratch *scratch
}

// New creates a rows×cols matrix. Square matrices are initialized to
// the identity pattern, the neutral element for multiplication;
// non-square matrices are zero-filled. Negative dimensions are treated
// as zero.
func New(rows, cols int) *Matrix {
	m := NewZero(rows, cols)
	if m.rows == m.cols {
		for i := 0; i < len(m.data); i += m.cols + 1 {
			m.data[i] = 1
		}
	}
	return m
}

// NewZero creates a zero-filled rows×cols matrix. Negative dimensions
// are treated as zero.
func NewZero(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromSlice creates a rows×cols matrix from row-major values. The
// slice is copied. Returns an error when len(values) != rows*cols.
func FromSlice(values []float64, rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("matrix: negative dimensions %dx%d", rows, cols)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("matrix: %dx%d requires %d values, got %d", rows, cols, rows*cols, len(values))
	}
	m := NewZero(rows, cols)
	copy(m.data, values)
	return m, nil
}

// FromRows creates a matrix from row slices. Returns an error when the
// rows have differing lengths.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return NewZero(0, 0), nil
	}
	cols := len(rows[0])
	m := NewZero(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix: ragged input, row 0 has %d values but row %d has %d", cols, r, len(row))
		}
		copy(m.data[r*cols:], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Len returns the total number of elements (rows*cols).
func (m *Matrix) Len() int { return len(m.data) }

// At returns the element at (row, col). Panics if the indices are out
// of bounds.
func (m *Matrix) At(row, col int) float64 {
	m.checkIndex(row, col)
	return m.data[row*m.cols+col]
}

// Set stores v at (row, col) and returns the receiver. Panics if the
// indices are out of bounds.
func (m *Matrix) Set(v float64, row, col int) *Matrix {
	m.checkIndex(row, col)
	m.data[row*m.cols+col] = v
	return m
}

func (m *Matrix) checkIndex(row, col int) {
	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("matrix: row index %d out of bounds for %dx%d", row, m.rows, m.cols))
	}
	if col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: column index %d out of bounds for %dx%d", col, m.rows, m.cols))
	}
}

// setShape records new dimensions, dropping the cached scratch
// workspace when they actually change.
func (m *Matrix) setShape(rows, cols int) {
	if rows != m.rows || cols != m.cols {
		m.scratch = nil
	}
	m.rows, m.cols = rows, cols
}

// String returns a compact single-line representation for diagnostics.
// Use the render package for configurable multi-line formatting.
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix(%dx%d)[", m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteString("; ")
		}
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%g", m.data[r*m.cols+c])
		}
	}
	b.WriteString("]")
	return b.String()
}
