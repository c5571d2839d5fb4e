package spectral_test

import (
	"fmt"

	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/katalvlaran/moldesc/molecule"
	"github.com/katalvlaran/moldesc/spectral"
	"github.com/katalvlaran/moldesc/topomatrix"
)

// ExampleIndex computes spectral indices of n-butane's carbon skeleton.
func ExampleIndex() {
	mol, _ := molecule.Chain(4, "C")
	ctx := descriptor.NewContext(mol)

	for _, m := range []spectral.Method{spectral.SpMax, spectral.SpAbs, spectral.SpDiam} {
		d := spectral.New(m, topomatrix.TypeAdjacency)
		v, _ := ctx.Evaluate(d)
		fmt.Printf("%s = %.6f\n", d.Name(), v.Float())
	}
	fmt.Println("decompositions:", ctx.Computations(spectral.Eigen{Matrix: topomatrix.TypeAdjacency}))

	// Output:
	// SpMax_A = 1.618034
	// SpAbs_A = 4.472136
	// SpDiam_A = 3.236068
	// decompositions: 1
}
