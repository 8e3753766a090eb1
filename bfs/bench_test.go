package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/railpath/bfs"
	"github.com/katalvlaran/railpath/builder"
	"github.com/katalvlaran/railpath/core"
)

// BenchmarkSearch_Chain measures a goal at the far end of a linear line of N stations.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	g, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("s"))},
		builder.Corridor("L", N+1))
	if err != nil {
		b.Fatal(err)
	}
	goal := fmt.Sprintf("s%d", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, "s0", goal)
	}
}

// BenchmarkSearch_BinaryTree searches for a leaf in a complete binary tree of depth 10.
func BenchmarkSearch_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1
	g := core.NewGraph()
	for i := 1; i < nodeCount; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("n%d", (i-1)/2), fmt.Sprintf("n%d", i), "L", 1, 1, 1)
	}
	goal := fmt.Sprintf("n%d", nodeCount-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, "n0", goal)
	}
}
