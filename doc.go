// Package protovalue computes proto-value function (PVF) bases over 2D
// grid worlds: smooth, locally-adapted basis functions obtained by
// spectrally decomposing the graph Laplacian of a paintable grid.
//
// 🚀 What is protovalue?
//
//	A small numeric library that brings together:
//		• gridworld/ — a W×H grid of cells with a mutable activation mask
//		  and fixed-weight adjacency edges (4- or 8-connected)
//		• pvf/       — extraction of the active-cell subgraph, its
//		  symmetric-normalized Laplacian L = I − D^{−1/2} A D^{−1/2},
//		  and a full symmetric eigendecomposition into an ordered,
//		  deterministically scaled family of basis functions
//
// ✨ Why choose protovalue?
//
//   - Deterministic – fixed row-major ordering, signed-pivot scale
//     normalization, reproducible spectra across rebuilds
//   - Degenerate-safe – disconnected regions, isolated cells and empty
//     active sets are handled by explicit policy, never NaN/Inf
//   - Pure library – no rendering, persistence or network concerns;
//     selector UIs drive it through Len/At/EigenvalueIndex
//
// Quick ASCII example:
//
//	    ■ ■ ■        eigenvalues: 0 ≤ λ₁ ≤ … ≤ λₙ
//	    ■ · ■   →    one basis function per active cell (■),
//	    ■ ■ ■        zeros at inactive cells (·)
//
// Dive into the gridworld and pvf package docs for contracts,
// complexity notes and examples.
//
//	go get github.com/roshanshariff/protovalue
package protovalue
