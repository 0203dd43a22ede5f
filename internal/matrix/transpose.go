package matrix

// Transpose replaces the matrix with its transpose, swapping the row
// and column counts. Pure structural transform; returns the receiver.
func (m *Matrix) Transpose() *Matrix {
	if m.rows > 1 && m.cols > 1 {
		tmp := bufs.Acquire(len(m.data))
		for r := 0; r < m.rows; r++ {
			base := r * m.cols
			for c := 0; c < m.cols; c++ {
				tmp.Data[c*m.rows+r] = m.data[base+c]
			}
		}
		copy(m.data, tmp.Data)
		bufs.Release(tmp)
	}
	// Row and column vectors keep their storage order; only the shape
	// flips.
	m.setShape(m.cols, m.rows)
	return m
}

// Equals reports exact elementwise equality. Shapes must match: a 2x3
// and a 3x2 with the same flat values are not equal. There is no
// epsilon tolerance; floating-point exactness is the contract.
func (m *Matrix) Equals(other *Matrix) bool {
	if other == nil || other.rows != m.rows || other.cols != m.cols {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// IsIdentity reports whether every element matches the positional
// identity pattern: data[i] == 1 when i is a multiple of cols+1, 0
// otherwise. The pattern assumes a square shape, so non-square
// matrices generally report false.
func (m *Matrix) IsIdentity() bool {
	step := m.cols + 1
	for i, v := range m.data {
		want := 0.0
		if i%step == 0 {
			want = 1
		}
		if v != want {
			return false
		}
	}
	return true
}
