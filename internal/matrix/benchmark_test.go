package matrix

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/foldmat/foldmat/internal/pool"
)

func randomMatrix(n int, rng *rand.Rand) *Matrix {
	m := NewZero(n, n)
	for i := range m.data {
		m.data[i] = rng.Float64()*2 - 1
	}
	return m
}

func BenchmarkMultiply(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{8, 32, 64} {
		a := randomMatrix(n, rng)
		c := randomMatrix(n, rng)

		b.Run(sizeName(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				MultiplyOf(a, c)
			}
		})
	}
}

func BenchmarkMultiplyChain(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	a := randomMatrix(16, rng)
	c := randomMatrix(16, rng)
	d := randomMatrix(16, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MultiplyOf(a, c, Scalar(0.5), d)
	}
}

func BenchmarkDeterminant(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{3, 5, 7} {
		m := randomMatrix(n, rng)

		b.Run(sizeName(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m.Determinant()
			}
		})
	}
}

func BenchmarkInvert(b *testing.B) {
	rng := rand.New(rand.NewSource(4))
	m := randomMatrix(5, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Clone().Invert()
	}
}

// BenchmarkMultiplyFreshPool measures the cost of multiplication when
// every temporary misses the pool.
func BenchmarkMultiplyFreshPool(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	a := randomMatrix(32, rng)
	c := randomMatrix(32, rng)

	defer SetPool(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SetPool(pool.New())
		MultiplyOf(a, c)
	}
}

func sizeName(n int) string {
	return fmt.Sprintf("%dx%d", n, n)
}
