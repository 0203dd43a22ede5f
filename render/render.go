// Package render formats matrices for logs. It is a presentation
// collaborator: its only interface to the engine is the Source
// snapshot (Rows, Cols, ToArray), so it never touches live matrix
// storage.
package render

import (
	"fmt"
	"strings"
)

// Source is the read-only view render consumes. *matrix.Matrix
// satisfies it.
type Source interface {
	Rows() int
	Cols() int
	ToArray() []float64
}

// Options configures LogString output.
type Options struct {
	Indent    string // Prefix for each row line.
	Separator string // Between values within a row.
	Start     string // Opening marker on its own line.
	End       string // Closing marker on its own line.
}

// DefaultOptions returns the bracketed, comma-separated layout.
func DefaultOptions() Options {
	return Options{
		Indent:    "\t",
		Separator: ", ",
		Start:     "[",
		End:       "]",
	}
}

// LogString renders the matrix one row per line between the start and
// end markers:
//
//	[
//	        1, 2
//	        3, 4
//	]
func LogString(m Source, opts Options) string {
	rows, cols := m.Rows(), m.Cols()
	values := m.ToArray()

	var b strings.Builder
	b.WriteString(opts.Start)
	b.WriteString("\n")
	for r := 0; r < rows; r++ {
		b.WriteString(opts.Indent)
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteString(opts.Separator)
			}
			fmt.Fprintf(&b, "%g", values[r*cols+c])
		}
		b.WriteString("\n")
	}
	b.WriteString(opts.End)
	return b.String()
}
