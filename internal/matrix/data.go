package matrix

// Data is a snapshot of a matrix's values plus shape metadata. It
// round-trips through SetData.
type Data struct {
	Values     []float64
	Rows, Cols int
}

// ToArray returns a copy of the row-major values.
func (m *Matrix) ToArray() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// GetData returns a snapshot of the values tagged with the current
// shape.
func (m *Matrix) GetData() Data {
	return Data{Values: m.ToArray(), Rows: m.rows, Cols: m.cols}
}

// SetData replaces the matrix contents with values (copied). With no
// dims, the value count must match the current element count and the
// shape is kept. Passing rows and cols re-shapes, provided rows*cols
// matches len(values). Any other combination is an ambiguous resize
// and the call is a no-op: silently replacing a 2x3 with 7 values would
// corrupt every positional invariant downstream.
func (m *Matrix) SetData(values []float64, dims ...int) *Matrix {
	rows, cols, ok := m.resolveShape(len(values), dims)
	if !ok {
		return m
	}
	if len(values) != len(m.data) {
		m.data = make([]float64, len(values))
	}
	copy(m.data, values)
	m.setShape(rows, cols)
	return m
}

// resolveShape decides the shape a buffer of n values takes, given the
// optional explicit dims from SetData.
func (m *Matrix) resolveShape(n int, dims []int) (rows, cols int, ok bool) {
	if len(dims) >= 2 {
		rows, cols = dims[0], dims[1]
		return rows, cols, rows >= 0 && cols >= 0 && rows*cols == n
	}
	if n == len(m.data) {
		return m.rows, m.cols, true
	}
	return 0, 0, false
}

// Copy resizes the receiver to other's shape (reusing the buffer when
// the element counts match) and copies all values. Returns the
// receiver. Copying from nil or from itself is a no-op.
func (m *Matrix) Copy(other *Matrix) *Matrix {
	if other == nil || other == m {
		return m
	}
	if len(m.data) != len(other.data) {
		m.data = make([]float64, len(other.data))
	}
	copy(m.data, other.data)
	m.setShape(other.rows, other.cols)
	return m
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	return NewZero(m.rows, m.cols).Copy(m)
}
