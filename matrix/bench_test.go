package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/floydpaths/matrix"
)

// randomAdjacency builds an n×n adjacency literal with roughly density·n²
// positive integer weights in [1,10]; the rest are 0 (no edge).
func randomAdjacency(n int, density float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < density {
				rows[i][j] = float64(rng.Intn(10) + 1)
			}
		}
	}

	return rows
}

func benchmarkRelaxThrough(b *testing.B, n int) {
	d, err := matrix.NewDenseFromRows(randomAdjacency(n, 0.3, 1))
	if err != nil {
		b.Fatalf("NewDenseFromRows: %v", err)
	}
	if err = matrix.NormalizeNoEdge(d); err != nil {
		b.Fatalf("NormalizeNoEdge: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = matrix.RelaxThrough(d, i%n); err != nil {
			b.Fatalf("RelaxThrough: %v", err)
		}
	}
}

func BenchmarkRelaxThrough_64(b *testing.B)  { benchmarkRelaxThrough(b, 64) }
func BenchmarkRelaxThrough_256(b *testing.B) { benchmarkRelaxThrough(b, 256) }
