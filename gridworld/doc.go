// Package gridworld models a W×H grid of cells as a weighted graph, the
// state space over which proto-value function bases are computed.
//
// What:
//
//   - Grid holds fixed dimensions, a mutable per-cell activation mask
//     (all cells start active), and an immutable edge-weight function.
//   - Grid-adjacent cell pairs (Conn4 or Conn8) carry a fixed weight,
//     0.25 by default; all other pairs, including self-loops, weigh 0.
//   - ActiveIndices exposes the row-major ordering of active cells that
//     downstream spectral code uses for submatrix extraction and
//     re-embedding.
//   - ActiveComponents identifies contiguous regions of active cells.
//
// Why:
//
//   - Painting a subset of a grid active/inactive induces a subgraph;
//     its Laplacian spectrum yields smooth, locally-adapted basis
//     functions (see package pvf).
//   - Disconnected active sets are legal and common when painting;
//     ActiveComponents lets callers inspect them.
//
// Complexity:
//
//   - IsActive / SetActive / EdgeWeight: O(1).
//   - SetAll / ActiveIndices / CountActive: O(W×H).
//   - ActiveComponents: O(W×H×d), d = 4 or 8 neighbors.
//
// Options:
//
//   - Options.Conn: Conn4 (orthogonal) or Conn8 (including diagonals).
//   - Options.EdgeWeight: weight of every adjacency edge; must be > 0.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrBadWeight: non-positive edge weight.
//   - ErrOutOfBounds: cell coordinates outside the grid.
package gridworld
