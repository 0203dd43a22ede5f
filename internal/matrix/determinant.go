package matrix

// scratch holds the two workspace matrices the determinant/inverse
// engine reuses across minor extractions: minor is (n-1)×(n-1), work is
// n×n. Cached per instance so the n extractions at one expansion level
// share storage; recursion happens on the minor matrix, which carries
// its own scratch for the level below.
type scratch struct {
	minor *Matrix
	work  *Matrix
}

// scratchFor returns the cached workspace, creating it on first use.
// setShape drops the cache whenever the dimensions change. Only called
// with n >= 2.
func (m *Matrix) scratchFor() *scratch {
	if m.scratch == nil {
		n := m.rows
		m.scratch = &scratch{
			minor: NewZero(n-1, n-1),
			work:  NewZero(n, n),
		}
	}
	return m.scratch
}

// minorInto fills dst with the minor of m obtained by deleting skipRow
// and skipCol. dst must be (rows-1)×(cols-1).
func (m *Matrix) minorInto(dst *Matrix, skipRow, skipCol int) {
	n := m.cols
	i := 0
	for r := 0; r < m.rows; r++ {
		if r == skipRow {
			continue
		}
		base := r * n
		for c := 0; c < n; c++ {
			if c == skipCol {
				continue
			}
			dst.data[i] = m.data[base+c]
			i++
		}
	}
}

// Determinant computes the determinant by cofactor expansion. The ok
// result is false for non-square matrices, which have no determinant.
//
// Sizes 1-3 use the closed forms; size >= 4 is a Laplace expansion
// along the first row, O(n!) by construction. The exponential cost is
// the accepted contract of this engine; a decomposition-based method
// would produce different floating-point sequences.
func (m *Matrix) Determinant() (float64, bool) {
	if m.rows != m.cols {
		return 0, false
	}
	return m.det(), true
}

func (m *Matrix) det() float64 {
	d := m.data
	switch n := m.rows; n {
	case 0:
		// Empty product convention.
		return 1
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[1]*d[2]
	case 3:
		return d[0]*(d[4]*d[8]-d[5]*d[7]) -
			d[1]*(d[3]*d[8]-d[5]*d[6]) +
			d[2]*(d[3]*d[7]-d[4]*d[6])
	default:
		scr := m.scratchFor()
		det := 0.0
		sign := 1.0
		for c := 0; c < n; c++ {
			m.minorInto(scr.minor, 0, c)
			det += sign * d[c] * scr.minor.det()
			sign = -sign
		}
		return det
	}
}

// Invert replaces the receiver with its inverse and returns the
// receiver. Non-square and singular (zero-determinant) matrices are
// left unchanged; callers that care must check Determinant themselves.
//
// Size 2 uses the closed cofactor form. Size >= 3 builds the full
// cofactor matrix into the cached workspace, reads the determinant off
// the first-row cofactors, transposes the cofactors into the adjugate,
// and scales by the reciprocal determinant.
func (m *Matrix) Invert() *Matrix {
	if m.rows != m.cols {
		return m
	}
	d := m.data
	switch n := m.rows; n {
	case 0:
		return m
	case 1:
		if d[0] == 0 {
			return m
		}
		d[0] = 1 / d[0]
		return m
	case 2:
		det := d[0]*d[3] - d[1]*d[2]
		if det == 0 {
			return m
		}
		inv := 1 / det
		d[0], d[1], d[2], d[3] = d[3]*inv, -d[1]*inv, -d[2]*inv, d[0]*inv
		return m
	default:
		scr := m.scratchFor()
		cof := scr.work
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				m.minorInto(scr.minor, r, c)
				v := scr.minor.det()
				if (r+c)%2 == 1 {
					v = -v
				}
				cof.data[r*n+c] = v
			}
		}

		// First-row cofactors are already on hand; the determinant is
		// their dot product with the first row.
		det := 0.0
		for c := 0; c < n; c++ {
			det += d[c] * cof.data[c]
		}
		if det == 0 {
			return m
		}

		cof.Transpose()
		scale(cof.data, 1/det)
		copy(m.data, cof.data)
		return m
	}
}
