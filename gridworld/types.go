// Package gridworld defines core types and options for the gridworld
// subpackage of github.com/roshanshariff/protovalue.
package gridworld

// DefaultEdgeWeight is the weight assigned to every grid-adjacency edge
// unless overridden via Options.EdgeWeight.
const DefaultEdgeWeight = 0.25

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters fixed at grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// EdgeWeight is the weight of every edge between adjacent cells.
	// Must be positive.
	EdgeWeight float64
}

// DefaultOptions returns an Options with default settings:
// Conn=Conn4, EdgeWeight=0.25.
func DefaultOptions() Options {
	return Options{
		Conn:       Conn4,
		EdgeWeight: DefaultEdgeWeight,
	}
}

// Grid is a W×H grid of cells connected by fixed-weight adjacency edges.
// Width and Height are immutable after construction, as are the edge
// weights; the per-cell activation mask is mutated in place by the
// owning layer. Grid is not safe for concurrent mutation.
type Grid struct {
	Width, Height int
	active        []bool // row-major, len Width*Height
	weight        float64
	offsets       [][2]int
}
