// Package moldesc computes molecular descriptors: numeric features of a
// molecule's graph, evaluated through a memoizing dependency graph.
//
// What is inside?
//
//	matrix/       dense matrices, Jacobi eigen-decomposition, Floyd-Warshall
//	molecule/     the molecule interface and a thread-safe in-memory graph
//	atomprop/     per-atom properties backed by an embedded element table
//	descriptor/   descriptor identity, Context evaluator, Calculator, Batch
//	topomatrix/   Adjacency, Distance and Laplacian matrix descriptors
//	spectral/     eigenvalue-based indices (SpMax, SpAbs, LogEE, VR1, ...)
//	bcut/         Burden matrix eigenvalues (BCUT)
//	config/       YAML run configuration and slog logger
//	catalog/      registration table of every family
//
// Quick start:
//
//	calc, err := catalog.NewCalculator(config.Default(), nil, nil)
//	if err != nil {
//		return err
//	}
//	mol, _ := molecule.Chain(4, "C")
//	res, err := calc.Calculate(mol)
//	// res.AsMap()["SpMax_A"] == 1.618...
//
// A value that cannot be computed for a molecule (division by zero, an
// undefined atomic property, a fragmented graph) is missing: it is NaN in
// the Result and every descriptor depending on it is missing too. Errors
// returned by the Calculator are reserved for defects in the descriptor
// set itself.
package moldesc
