package prim_test

import (
	"testing"

	"github.com/katalvlaran/fibheap/prim"
)

// BenchmarkPrim runs on a 500-vertex graph with 2000 extra edges from "V0".
func BenchmarkPrim(b *testing.B) {
	g := buildRandomGraph(500, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim.Prim(g, "V0")
	}
}
