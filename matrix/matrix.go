package matrix

import (
	"github.com/foldmat/foldmat/internal/matrix"
	"github.com/foldmat/foldmat/internal/pool"
)

// Type aliases for the public API.

// Matrix is a dense rows×cols matrix of float64 values in row-major
// order. See the internal/matrix documentation for the full method
// set: Add, Subtract, Multiply, Divide, Power, Invert, Determinant,
// Transpose, Equals, IsIdentity, SetData, GetData, ToArray, Copy,
// Clone.
type Matrix = matrix.Matrix

// Operand is one element of a multiplication chain: either a Scalar or
// a *Matrix.
type Operand = matrix.Operand

// Scalar is a numeric operand in a multiplication chain.
//
//	m.Multiply(matrix.Scalar(2), other)
type Scalar = matrix.Scalar

// Data is a snapshot of a matrix's values plus shape metadata, as
// returned by GetData and accepted by SetData.
type Data = matrix.Data

// Creation functions.

// New creates a rows×cols matrix, identity-initialized when square and
// zero-filled otherwise.
func New(rows, cols int) *Matrix { return matrix.New(rows, cols) }

// NewZero creates a zero-filled rows×cols matrix.
func NewZero(rows, cols int) *Matrix { return matrix.NewZero(rows, cols) }

// FromSlice creates a rows×cols matrix from row-major values (copied).
// Errors when len(values) != rows*cols.
func FromSlice(values []float64, rows, cols int) (*Matrix, error) {
	return matrix.FromSlice(values, rows, cols)
}

// FromRows creates a matrix from row slices. Errors on ragged input.
func FromRows(rows [][]float64) (*Matrix, error) { return matrix.FromRows(rows) }

// Chain operations producing a new matrix. Each clones its first
// argument and folds the rest into the clone.

// AddOf returns first + rest..., elementwise, skipping mismatched
// shapes.
func AddOf(first *Matrix, rest ...*Matrix) *Matrix { return matrix.AddOf(first, rest...) }

// SubtractOf returns first - rest..., elementwise, skipping mismatched
// shapes.
func SubtractOf(first *Matrix, rest ...*Matrix) *Matrix { return matrix.SubtractOf(first, rest...) }

// MultiplyOf returns the chain product of first and the operands.
func MultiplyOf(first *Matrix, ops ...Operand) *Matrix { return matrix.MultiplyOf(first, ops...) }

// DivideOf returns first multiplied by the inverses of rest..., in
// order, dropping non-square arguments.
func DivideOf(first *Matrix, rest ...*Matrix) *Matrix { return matrix.DivideOf(first, rest...) }

// SetPool redirects the engine's temporary-buffer allocation to p,
// typically once during program initialization. A nil p restores the
// process-wide default pool.
func SetPool(p *pool.Pool) { matrix.SetPool(p) }
