package gridworld

import "math"

// New constructs a Grid with the given dimensions and options. Every
// cell starts active, and every pair of adjacent in-bounds cells (per
// opts.Conn) is connected by an edge of weight opts.EdgeWeight.
// Returns ErrInvalidDimensions if width or height is not positive,
// ErrBadWeight if opts.EdgeWeight is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts Options) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if opts.EdgeWeight <= 0 || math.IsInf(opts.EdgeWeight, 1) || math.IsNaN(opts.EdgeWeight) {
		return nil, ErrBadWeight
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	active := make([]bool, width*height)
	for i := range active {
		active[i] = true
	}
	g := &Grid{
		Width:   width,
		Height:  height,
		active:  active,
		weight:  opts.EdgeWeight,
		offsets: offsets,
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.offsets
}

// IsActive reports whether cell (x,y) is active.
// Returns ErrOutOfBounds for coordinates outside the grid; callers
// deriving coordinates from pointer events must pre-validate.
// Complexity: O(1).
func (g *Grid) IsActive(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, ErrOutOfBounds
	}
	return g.active[g.Index(x, y)], nil
}

// SetActive sets the activation state of cell (x,y).
// Returns ErrOutOfBounds for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) SetActive(x, y int, active bool) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.active[g.Index(x, y)] = active

	return nil
}

// SetAll sets every cell to the given activation state.
// Complexity: O(W×H).
func (g *Grid) SetAll(active bool) {
	for i := range g.active {
		g.active[i] = active
	}
}

// EdgeWeight returns the weight of the edge between cells (x0,y0) and
// (x1,y1): the fixed construction weight when both cells are in bounds
// and adjacent under the grid's connectivity, 0 otherwise. Weights are
// symmetric and the grid carries no self-loops.
// Complexity: O(d), d = number of neighbor offsets.
func (g *Grid) EdgeWeight(x0, y0, x1, y1 int) float64 {
	if !g.InBounds(x0, y0) || !g.InBounds(x1, y1) {
		return 0
	}
	for _, d := range g.offsets {
		if x0+d[0] == x1 && y0+d[1] == y1 {
			return g.weight
		}
	}

	return 0
}

// ActiveIndices returns the row-major indices of all active cells, in
// ascending order. This ordering is the contract downstream spectral
// code relies on for submatrix extraction and re-embedding.
// Complexity: O(W×H).
func (g *Grid) ActiveIndices() []int {
	idx := make([]int, 0, len(g.active))
	for i, a := range g.active {
		if a {
			idx = append(idx, i)
		}
	}

	return idx
}

// CountActive returns the number of active cells.
// Complexity: O(W×H).
func (g *Grid) CountActive() int {
	n := 0
	for _, a := range g.active {
		if a {
			n++
		}
	}

	return n
}
