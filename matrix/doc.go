// Package matrix is the public API of the foldmat dense-matrix engine.
//
// The engine is built around in-place chained arithmetic on a flat
// row-major float64 buffer:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {4, 1}})
//	a.Power(3)                              // [[25 22] [44 25]]
//	b := matrix.MultiplyOf(a, matrix.Scalar(2), a)
//	det, ok := b.Determinant()
//
// Instance operations mutate the receiver and return it; the *Of
// package functions clone first and leave their arguments untouched.
// Structural problems never panic and never error: mismatched operands
// are dropped from the chain, non-square or singular matrices make
// Invert and Power no-ops, and an ambiguous SetData resize is ignored.
//
// Determinant and inverse use direct cofactor expansion with closed
// forms for sizes 1-3. The cost is exponential in the matrix size by
// design; this package is an arithmetic engine, not a general
// linear-algebra library.
package matrix
