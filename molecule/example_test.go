package molecule_test

import (
	"fmt"

	"github.com/katalvlaran/moldesc/molecule"
)

// ExampleMol builds ethanol's heavy-atom skeleton and inspects it.
func ExampleMol() {
	m := molecule.New()
	c1, _ := m.AddAtom("C", molecule.WithHydrogens(3))
	c2, _ := m.AddAtom("C", molecule.WithHydrogens(2))
	o, _ := m.AddAtom("O", molecule.WithHydrogens(1))
	_ = m.AddBond(c1, c2)
	_ = m.AddBond(c2, o)

	for _, a := range m.Atoms() {
		fmt.Printf("%d %s degree=%d H=%d\n", a.Index(), a.Symbol(), a.Degree(), a.TotalHydrogens())
	}
	fmt.Println("connected:", m.Connected())

	// Output:
	// 0 C degree=1 H=3
	// 1 C degree=2 H=2
	// 2 O degree=1 H=1
	// connected: true
}
