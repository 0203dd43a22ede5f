package matrix

import (
	"math"

	"github.com/foldmat/foldmat/internal/parallel"
)

// Operand is one element of a multiplication chain: either a Scalar or
// a *Matrix.
type Operand interface {
	isOperand()
}

// Scalar is a numeric operand in a multiplication chain.
type Scalar float64

func (Scalar) isOperand()  {}
func (*Matrix) isOperand() {}

// mulCfg sizes the row-parallel inner product. Products below
// mulParallelFlops multiply-adds stay sequential; the goroutine
// handoff costs more than it saves.
var mulCfg = parallel.DefaultConfig()

const mulParallelFlops = 1 << 15

// Multiply folds the operands into the receiver left to right, starting
// from the receiver's current contents. Scalars scale every element of
// the running result; matrices combine via the standard product into a
// pool-backed temporary sized runningRows×argCols, which becomes the
// running result for the next operand. A matrix operand whose row count
// does not match the running result's column count is silently skipped.
// The final accumulation is written back into the receiver, which is
// returned.
//
// When the receiver is currently the identity matrix, the leading run
// of Scalar(1) and identity-matrix operands is skipped and the first
// effective compatible matrix operand is copied in as the starting
// accumulator instead of being multiplied through the identity. The
// result is identical to the plain fold; only the wasted work differs.
func (m *Matrix) Multiply(ops ...Operand) *Matrix {
	if len(ops) == 0 {
		return m
	}

	cur := bufs.Acquire(len(m.data))
	copy(cur.Data, m.data)
	curRows, curCols := m.rows, m.cols

	start := 0
	// The positional identity pattern can hold for non-square shapes
	// like 2x1; only a square identity receiver starts a neutral run.
	if m.rows == m.cols && m.IsIdentity() {
		start = leadingNeutralRun(ops, curCols)
		if start < len(ops) {
			if a, isMat := ops[start].(*Matrix); isMat && a != nil && curCols == a.rows {
				// Adopt the first effective operand as the accumulator.
				bufs.Release(cur)
				cur = bufs.Acquire(len(a.data))
				copy(cur.Data, a.data)
				curRows, curCols = a.rows, a.cols
				start++
			}
		}
	}

	for _, op := range ops[start:] {
		switch v := op.(type) {
		case Scalar:
			scale(cur.Data[:curRows*curCols], float64(v))
		case *Matrix:
			if v == nil || curCols != v.rows {
				// Shape mismatch: drop this operand, keep folding.
				continue
			}
			next := bufs.Acquire(curRows * v.cols)
			matmul(next.Data, cur.Data, v.data, curRows, curCols, v.cols)
			bufs.Release(cur)
			cur = next
			curCols = v.cols
		}
	}

	m.SetData(cur.Data[:curRows*curCols], curRows, curCols)
	bufs.Release(cur)
	return m
}

// leadingNeutralRun returns the index of the first operand that is
// neither Scalar(1) nor an identity matrix compatible with an identity
// accumulator of column count cols. Incompatible operands end the run;
// the fold decides their fate so skip decisions match the plain path.
func leadingNeutralRun(ops []Operand, cols int) int {
	i := 0
	for ; i < len(ops); i++ {
		if s, isScalar := ops[i].(Scalar); isScalar && float64(s) == 1 {
			continue
		}
		// Only a square identity is truly neutral; the positional
		// identity pattern can hold for shapes like 2x1, and those
		// change the running dimensions in the plain fold.
		if a, isMat := ops[i].(*Matrix); isMat && a != nil && a.rows == cols && a.rows == a.cols && a.IsIdentity() {
			continue
		}
		break
	}
	return i
}

// scale multiplies every element by s using the rounding normalization
// v * (s*(1/s)) / (1/s). The normalization makes scalar folding exact:
// Multiply(Scalar(6)) and Multiply(Scalar(2), Scalar(3)) produce
// bit-identical results, because each step reduces to one division by
// the rounded reciprocal. Zero and non-finite scalars would turn the
// trick into NaN, so they multiply plainly.
func scale(data []float64, s float64) {
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		for i := range data {
			data[i] *= s
		}
		return
	}
	inv := 1 / s
	norm := s * inv
	for i := range data {
		data[i] = data[i] * norm / inv
	}
}

// matmul computes dst = a·b for row-major a (m×k) and b (k×n), writing
// the m×n result into dst. Rows are independent, so large products run
// the outer loop through the parallel helper; the per-row accumulation
// order is fixed either way, keeping results bit-identical.
func matmul(dst, a, b []float64, m, k, n int) {
	cfg := mulCfg
	if m*k*n < mulParallelFlops {
		cfg.Enabled = false
	}
	parallel.For(m, func(i int) {
		ai := a[i*k : (i+1)*k]
		di := dst[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			var sum float64
			for kk := 0; kk < k; kk++ {
				sum += ai[kk] * b[kk*n+j]
			}
			di[j] = sum
		}
	}, cfg)
}

// Divide multiplies the receiver by the inverses of the arguments, in
// order. Non-square arguments are dropped from the chain. A singular
// argument's Invert is a no-op, so the chain multiplies by the original
// singular matrix itself; callers needing to detect that case should
// check Determinant first.
func (m *Matrix) Divide(args ...*Matrix) *Matrix {
	ops := make([]Operand, 0, len(args))
	for _, a := range args {
		if a == nil || a.rows != a.cols {
			continue
		}
		ops = append(ops, a.Clone().Invert())
	}
	return m.Multiply(ops...)
}

// Power raises the receiver to the n-th power. Non-square matrices are
// left unchanged. Power(0) resets to identity; negative powers invert
// first (a no-op for singular matrices, with the same caveat as
// Divide) and then raise to -n. Returns the receiver.
func (m *Matrix) Power(n int) *Matrix {
	if m.rows != m.cols {
		return m
	}
	switch {
	case n == 0:
		for i := range m.data {
			if i%(m.cols+1) == 0 {
				m.data[i] = 1
			} else {
				m.data[i] = 0
			}
		}
	case n < 0:
		m.Invert()
		return m.Power(-n)
	default:
		base := m.Clone()
		ops := make([]Operand, n-1)
		for i := range ops {
			ops[i] = base
		}
		m.Multiply(ops...)
	}
	return m
}

// MultiplyOf returns first.Clone().Multiply(ops...), leaving every
// argument untouched.
func MultiplyOf(first *Matrix, ops ...Operand) *Matrix {
	return first.Clone().Multiply(ops...)
}

// DivideOf returns first.Clone().Divide(rest...), leaving every
// argument untouched.
func DivideOf(first *Matrix, rest ...*Matrix) *Matrix {
	return first.Clone().Divide(rest...)
}
