// Package descriptor is the molecular descriptor evaluation engine.
//
// A Descriptor is an immutable value identified by its kind and its
// parameter tuple. Descriptors declare named Dependencies on other
// descriptors; a Context evaluates a descriptor for one molecule by
// resolving that dependency graph depth first, computing every distinct
// descriptor at most once and caching the outcome.
//
// Two failure kinds are kept apart:
//
//   - Missing values (*MissingError, created with Fail or Numeric): the value
//     is undefined for this molecule. They are cached, propagate to every
//     dependent descriptor without calling it, and surface as NaN.
//   - Defects (ErrUnknownKind, ErrUnsupported, ErrDependencyCycle, ...): the
//     descriptor set itself is wrong. They are returned as errors and abort
//     registration or the batch.
//
// A Registry is the explicit table of known kinds; a Calculator validates a
// descriptor set against it and runs the set over molecules, one Context per
// molecule, optionally in parallel (Batch), logging with log/slog and
// exporting Prometheus counters.
//
// Example:
//
//	reg := catalog.Registry()
//	calc := descriptor.NewCalculator(reg, descriptor.WithWorkers(4))
//	if err := calc.RegisterPreset("SpMax", "BCUT"); err != nil { ... }
//	res, err := calc.Calculate(mol)
//	fmt.Println(res.AsMap())
package descriptor
