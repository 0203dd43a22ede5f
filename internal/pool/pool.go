// Package pool provides reusable fixed-length float64 buffers keyed by
// exact length. It exists to absorb the churn of temporary buffers in
// the hot paths of the matrix engine (chain multiplication, transpose,
// minor extraction); arithmetic results are identical whether or not
// buffers are recycled.
package pool

import "sync"

// Buffer is a pooled slice of float64 plus the bookkeeping the pool
// needs to validate a release. Callers may attach transient shape
// metadata (Rows, Cols); Release clears it.
type Buffer struct {
	// Data holds exactly origLen values for the Buffer's whole life.
	Data []float64

	// Rows and Cols are caller-owned shape metadata. The pool never
	// interprets them; they are reset on Release.
	Rows, Cols int

	origLen int
	inUse   bool
	owner   *Pool
}

// Len returns the fixed length the buffer was issued with.
func (b *Buffer) Len() int { return b.origLen }

// Pool hands out buffers of an exact requested length, reusing released
// ones before allocating. Safe for concurrent use.
type Pool struct {
	mu   sync.Mutex
	free map[int][]*Buffer
}

// New creates an empty Pool.
func New() *Pool {
	return &Pool{free: make(map[int][]*Buffer)}
}

// Default is the process-wide pool used when callers do not supply
// their own.
var Default = New()

// Acquire returns a zeroed buffer of exactly length elements. A
// previously released buffer of that length is reused when one is
// available; otherwise a new one is allocated. Acquire(0) is legal and
// returns a buffer with an empty Data slice.
func (p *Pool) Acquire(length int) *Buffer {
	if length < 0 {
		length = 0
	}

	p.mu.Lock()
	list := p.free[length]
	if n := len(list); n > 0 {
		b := list[n-1]
		p.free[length] = list[:n-1]
		b.inUse = true
		p.mu.Unlock()
		return b
	}
	p.mu.Unlock()

	return &Buffer{
		Data:    make([]float64, length),
		origLen: length,
		inUse:   true,
		owner:   p,
	}
}

// Release returns a buffer to the pool. Only buffers issued by this
// pool are accepted; nil, foreign, and already-released buffers are
// silently ignored. The slots are zeroed and any attached shape
// metadata is cleared before the buffer becomes reusable.
func (p *Pool) Release(b *Buffer) {
	if b == nil || b.owner != p || !b.inUse || len(b.Data) != b.origLen {
		return
	}

	for i := range b.Data {
		b.Data[i] = 0
	}
	b.Rows, b.Cols = 0, 0
	b.inUse = false

	p.mu.Lock()
	p.free[b.origLen] = append(p.free[b.origLen], b)
	p.mu.Unlock()
}
