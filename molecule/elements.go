package molecule

// elementSymbols lists symbols by atomic number; index 0 is the dummy atom.
var elementSymbols = [...]string{
	"*",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
}

var atomicNumbers = func() map[string]int {
	out := make(map[string]int, len(elementSymbols))
	for z, s := range elementSymbols {
		out[s] = z
	}

	return out
}()

// AtomicNumber resolves an element symbol to Z.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := atomicNumbers[symbol]

	return z, ok
}
