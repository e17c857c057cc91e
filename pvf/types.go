// Package pvf defines the basis types for the pvf subpackage of
// github.com/roshanshariff/protovalue.
package pvf

// Function is one member of a proto-value function basis.
//
// Fields:
//   - Eigenvalue — the Laplacian eigenvalue this function belongs to;
//     non-negative, and smaller means smoother.
//   - Grid       — the eigenvector re-embedded into the full grid
//     shape, Height×Width, indexed [y][x]. Values lie in [−1, 1];
//     every cell that was inactive at computation time holds 0.
type Function struct {
	Eigenvalue float64
	Grid       [][]float64
}

// Basis is an ordered family of proto-value functions computed from one
// snapshot of a gridworld.Grid, ranked by ascending eigenvalue. It is
// immutable once computed and safe for concurrent reads; it holds
// exactly one member per cell that was active at computation time.
type Basis struct {
	width, height int
	activeIndices []int
	eigenvalues   []float64
	grids         [][][]float64 // per function, Height×Width
}

// Len returns the number of basis functions, which equals the number of
// cells that were active when the basis was computed.
// Complexity: O(1).
func (b *Basis) Len() int {
	return len(b.eigenvalues)
}
