package pvf

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/roshanshariff/protovalue/gridworld"
)

// Compute builds the proto-value function basis for the current active
// set of g. The grid is read as a snapshot; later mutations of g do not
// affect the returned Basis.
//
// Pipeline: extract the active-cell adjacency submatrix (row-major
// order), apply the self-weight degree correction, form the
// symmetric-normalized Laplacian, eigendecompose it, floor eigenvalues
// at 0, rescale each eigenvector by its largest-magnitude component,
// and re-embed into Height×Width grids with zeros at inactive cells.
//
// A grid with zero active cells yields an empty basis and a nil error.
// Returns ErrEigenFailed if the eigensolver does not converge.
// Complexity: O(n³) time, O(n²) memory for n active cells.
func Compute(g *gridworld.Grid) (*Basis, error) {
	active := g.ActiveIndices()
	n := len(active)
	b := &Basis{
		width:         g.Width,
		height:        g.Height,
		activeIndices: active,
	}
	if n == 0 {
		return b, nil
	}

	adj := adjacencySubmatrix(g, active)
	lap := normalizedLaplacian(adj)

	var eig mat.EigenSym
	if ok := eig.Factorize(lap, true); !ok {
		return nil, ErrEigenFailed
	}

	// Eigenvalues arrive in ascending order; floor numerical noise below
	// the known lower bound of a normalized Laplacian spectrum.
	b.eigenvalues = eig.Values(nil)
	for i, v := range b.eigenvalues {
		if v < 0 {
			b.eigenvalues[i] = 0
		}
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	b.grids = make([][][]float64, n)
	col := make([]float64, n)
	for k := 0; k < n; k++ {
		mat.Col(col, k, &vecs)
		normalizeScale(col)
		b.grids[k] = b.embed(col)
	}

	return b, nil
}

// adjacencySubmatrix builds the weighted adjacency matrix restricted to
// the active cells, in the order given by active, then applies the
// degree correction: each diagonal entry absorbs (1 − rowSum) as
// self-weight, so neighbors lost to the grid boundary or to inactive
// cells do not inflate the Laplacian spectrum.
func adjacencySubmatrix(g *gridworld.Grid, active []int) *mat.SymDense {
	n := len(active)
	sub := make(map[int]int, n) // full-grid index -> submatrix index
	for i, idx := range active {
		sub[idx] = i
	}

	adj := mat.NewSymDense(n, nil)
	for i, idx := range active {
		x, y := g.Coordinate(idx)
		for _, d := range g.NeighborOffsets() {
			nx, ny := x+d[0], y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			j, ok := sub[g.Index(nx, ny)]
			if !ok {
				continue // inactive neighbor
			}
			if j > i {
				adj.SetSym(i, j, g.EdgeWeight(x, y, nx, ny))
			}
		}
	}

	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, adj)
		adj.SetSym(i, i, adj.At(i, i)+1-floats.Sum(row))
	}

	return adj
}

// normalizedLaplacian computes L = I − D^{−1/2} A D^{−1/2} for the
// adjacency matrix adj, where D is the diagonal of row sums. Rows with
// a non-positive sum are left unnormalized to avoid division by zero;
// after the degree correction every row sums to 1, so this guard only
// fires on degenerate input.
func normalizedLaplacian(adj *mat.SymDense) *mat.SymDense {
	n := adj.SymmetricDim()
	dinv := make([]float64, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, adj)
		if sum := floats.Sum(row); sum > 0 {
			dinv[i] = 1 / math.Sqrt(sum)
		} else {
			dinv[i] = 1
		}
	}

	lap := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := -dinv[i] * adj.At(i, j) * dinv[j]
			if i == j {
				v++
			}
			lap.SetSym(i, j, v)
		}
	}

	return lap
}

// normalizeScale rescales vec in place by its component of largest
// absolute value, fixing the eigensolver's arbitrary sign and scale:
// the pivot component becomes exactly 1 and all values lie in [−1, 1].
// The pivot is the first largest-magnitude component in active-index
// order, keeping results deterministic across rebuilds. An all-zero
// vector is left untouched.
func normalizeScale(vec []float64) {
	pivot := 0.0
	for _, v := range vec {
		if math.Abs(v) > math.Abs(pivot) {
			pivot = v
		}
	}
	if pivot == 0 {
		return
	}
	for i := range vec {
		vec[i] /= pivot
	}
}

// embed scatters the eigenvector components into a zero-filled
// Height×Width grid at the positions of the active cells.
func (b *Basis) embed(vec []float64) [][]float64 {
	grid := make([][]float64, b.height)
	for y := range grid {
		grid[y] = make([]float64, b.width)
	}
	for i, idx := range b.activeIndices {
		grid[idx/b.width][idx%b.width] = vec[i]
	}

	return grid
}
