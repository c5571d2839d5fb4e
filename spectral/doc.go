// Package spectral implements eigenvalue-based graph indices.
//
// Eigen decomposes a topological matrix (package topomatrix) once per
// molecule and form; every index below depends on it, some also on another
// index, so a whole family over one matrix costs a single decomposition.
//
//	SpAbs   graph energy                      sum |w|
//	SpMax   leading eigenvalue                w[max]
//	SpDiam  spectral diameter                 SpMax - w[min]
//	SpMean  mean of eigenvalues               mean(w)          (helper)
//	SpAD    spectral absolute deviation       sum |w - SpMean|
//	SpMAD   spectral mean absolute deviation  SpAD / N
//	LogEE   Estrada-like index                log-sum-exp of w
//	SM1     spectral moment                   sum w
//	VE1     leading eigenvector sum           sum |v[:,max]|
//	VE2     average of VE1                    VE1 / N
//	VE3     logarithmic VE1                   log(0.1 N VE1)
//	VR1     Randic-like eigenvector index     sum over bonds (v_i v_j)^-0.5
//	VR2     normalized VR1                    VR1 / N
//	VR3     logarithmic VR1                   log(0.1 N VR1)
//
// The matrices are real symmetric, so the decomposition is done with the
// Jacobi method and has no imaginary part to discard. Non-finite results
// (a non-positive product in VR1, log of zero) are missing values.
package spectral
