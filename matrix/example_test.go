package matrix_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/moldesc/matrix"
)

// ExampleEigen decomposes a 2×2 symmetric matrix.
func ExampleEigen() {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, 2)
	_ = m.Set(0, 1, 1)
	_ = m.Set(1, 0, 1)
	_ = m.Set(1, 1, 2)

	vals, _, err := matrix.Eigen(m, matrix.WithEpsilon(1e-12))
	if err != nil {
		fmt.Println(err)
		return
	}
	sort.Float64s(vals)
	fmt.Printf("%.6f %.6f\n", vals[0], vals[1])

	// Output:
	// 1.000000 3.000000
}

// ExampleShortestPaths closes the adjacency matrix of a 3-atom chain.
func ExampleShortestPaths() {
	adj, _ := matrix.NewDense(3, 3)
	for _, e := range [][2]int{{0, 1}, {1, 2}} {
		_ = adj.Set(e[0], e[1], 1)
		_ = adj.Set(e[1], e[0], 1)
	}

	d, err := matrix.ShortestPaths(adj)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(d)

	// Output:
	// [0, 1, 2]
	// [1, 0, 1]
	// [2, 1, 0]
}
