// Package pool is the public API for the exact-length buffer pool used
// by the matrix engine. Supply a private pool to matrix.SetPool to
// isolate recycling per subsystem, or rely on Default.
package pool

import (
	"github.com/foldmat/foldmat/internal/pool"
)

// Pool hands out zeroed buffers of an exact requested length, reusing
// released ones before allocating. Safe for concurrent use.
type Pool = pool.Pool

// Buffer is a pooled float64 slice with optional caller-attached shape
// metadata. Release validates that a buffer came from the releasing
// pool and silently ignores foreign ones.
type Buffer = pool.Buffer

// New creates an empty Pool.
func New() *Pool { return pool.New() }

// Default is the process-wide pool.
var Default = pool.Default
