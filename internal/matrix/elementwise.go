package matrix

// Add accumulates each argument into the receiver elementwise, in
// argument order. Arguments whose shape differs from the receiver are
// silently skipped; they drop their own contribution without aborting
// the rest of the chain. Returns the receiver.
func (m *Matrix) Add(args ...*Matrix) *Matrix {
	for _, a := range args {
		if a == nil || a.rows != m.rows || a.cols != m.cols {
			continue
		}
		for i, v := range a.data {
			m.data[i] += v
		}
	}
	return m
}

// Subtract subtracts each argument from the receiver elementwise, in
// argument order, with the same shape-mismatch skipping as Add.
// Returns the receiver.
func (m *Matrix) Subtract(args ...*Matrix) *Matrix {
	for _, a := range args {
		if a == nil || a.rows != m.rows || a.cols != m.cols {
			continue
		}
		for i, v := range a.data {
			m.data[i] -= v
		}
	}
	return m
}

// AddOf returns first.Clone().Add(rest...), leaving every argument
// untouched.
func AddOf(first *Matrix, rest ...*Matrix) *Matrix {
	return first.Clone().Add(rest...)
}

// SubtractOf returns first.Clone().Subtract(rest...), leaving every
// argument untouched.
func SubtractOf(first *Matrix, rest ...*Matrix) *Matrix {
	return first.Clone().Subtract(rest...)
}
