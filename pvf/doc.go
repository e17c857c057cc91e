// Package pvf computes proto-value function (PVF) bases: families of
// smooth, locally-adapted functions obtained by spectrally decomposing
// the graph Laplacian of a gridworld's active cells.
//
// What:
//
//   - Compute extracts the subgraph induced by the active cells of a
//     gridworld.Grid, builds its symmetric-normalized Laplacian
//     L = I − D^{−1/2} A D^{−1/2}, and eigendecomposes it.
//   - Degree correction adds (1 − rowSum) to each diagonal entry so
//     removed neighbors count as self-weight, keeping the spectrum
//     stable under disconnection.
//   - Eigenvalues are ascending and floored at 0; each eigenvector is
//     rescaled by its largest-magnitude component so values lie in
//     [−1, 1], then re-embedded into the full grid shape with zeros at
//     inactive cells.
//   - Basis offers ordered access by index, Python-style slicing, and
//     lower-bound search by eigenvalue.
//
// Why:
//
//   - PVFs form a basis for representing smooth value functions over a
//     discrete state space, ordered from smoothest (eigenvalue ≈ 0)
//     to roughest.
//   - Selector UIs drive Len/MinEigenvalue/MaxEigenvalue/EigenvalueIndex
//     to map a continuous slider onto a discrete basis index.
//
// Complexity:
//
//   - Compute: O(n³) time, O(n²) memory for n active cells
//     (dominated by the symmetric eigensolve).
//   - At / MinEigenvalue / MaxEigenvalue: O(W×H) for the grid copy.
//   - EigenvalueIndex: O(log n).
//
// Errors:
//
//   - ErrEigenFailed: the symmetric eigendecomposition did not converge.
//   - ErrEmptyBasis: min/max eigenvalue queried on a basis with no members.
//   - ErrIndexOutOfRange: basis index outside [0, Len()).
//   - ErrZeroStep: Slice called with step 0.
//
// A Basis is immutable once computed and is rebuilt in full after any
// change to the grid's active set; there is no incremental update.
package pvf
