// Package atomprop is the atomic-property registry used by weighted-matrix
// descriptors.
//
// A Property maps an atom to a scalar (mass, electronegativity, partial
// charge, intrinsic state, ...). Properties are addressed by a short symbol
// ("m", "pe", "c", ...) and enumerated in a fixed order, so descriptor
// presets built on top of them are deterministic.
//
// Undefined values are reported as NaN, never as an error: an element missing
// from the table, an atom without a partial charge, or an isolated atom for
// the intrinsic state. Callers are expected to check with math.IsNaN.
//
// Element constants live in elements.yaml, embedded at build time.
package atomprop
