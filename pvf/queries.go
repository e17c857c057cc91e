package pvf

import "sort"

// At returns basis function i: its eigenvalue and its eigenvector
// re-embedded into the full grid shape. The returned grid is a copy;
// the Basis itself stays immutable.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
// Complexity: O(W×H).
func (b *Basis) At(i int) (Function, error) {
	if i < 0 || i >= b.Len() {
		return Function{}, ErrIndexOutOfRange
	}
	return Function{
		Eigenvalue: b.eigenvalues[i],
		Grid:       copyGrid(b.grids[i]),
	}, nil
}

// Slice returns the basis functions selected by [start:stop:step] with
// Python sequence-slice semantics: negative indices count from the end,
// out-of-range bounds clamp, and a negative step walks the basis in
// descending index order. An empty selection yields an empty slice.
// Returns ErrZeroStep if step is 0.
// Complexity: O(k×W×H) for k selected functions.
func (b *Basis) Slice(start, stop, step int) ([]Function, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	start, stop = clampSliceBounds(start, stop, step, b.Len())

	var fns []Function
	if step > 0 {
		for i := start; i < stop; i += step {
			fn, _ := b.At(i)
			fns = append(fns, fn)
		}
	} else {
		for i := start; i > stop; i += step {
			fn, _ := b.At(i)
			fns = append(fns, fn)
		}
	}

	return fns, nil
}

// clampSliceBounds normalizes start/stop the way Python's
// slice.indices does for a sequence of the given length.
func clampSliceBounds(start, stop, step, length int) (int, int) {
	low, high := 0, length
	if step < 0 {
		low, high = -1, length-1
	}
	norm := func(i int) int {
		if i < 0 {
			i += length
		}
		if i < low {
			return low
		}
		if i > high {
			return high
		}
		return i
	}

	return norm(start), norm(stop)
}

// MinEigenvalue returns the smallest eigenvalue (the first of the
// ascending sequence). Returns ErrEmptyBasis if the basis is empty.
// Complexity: O(1).
func (b *Basis) MinEigenvalue() (float64, error) {
	if b.Len() == 0 {
		return 0, ErrEmptyBasis
	}
	return b.eigenvalues[0], nil
}

// MaxEigenvalue returns the largest eigenvalue (the last of the
// ascending sequence). Returns ErrEmptyBasis if the basis is empty.
// Complexity: O(1).
func (b *Basis) MaxEigenvalue() (float64, error) {
	if b.Len() == 0 {
		return 0, ErrEmptyBasis
	}
	return b.eigenvalues[b.Len()-1], nil
}

// EigenvalueIndex returns the smallest index i such that
// eigenvalues[i] >= target, or Len() when target exceeds every
// eigenvalue. The clamp is a documented saturating contract, not an
// error path; it lets a continuous selector map onto a discrete index.
// Complexity: O(log n).
func (b *Basis) EigenvalueIndex(target float64) int {
	return sort.SearchFloat64s(b.eigenvalues, target)
}

// Eigenvalues returns a copy of the ascending eigenvalue sequence.
// Complexity: O(n).
func (b *Basis) Eigenvalues() []float64 {
	vals := make([]float64, len(b.eigenvalues))
	copy(vals, b.eigenvalues)

	return vals
}

// copyGrid deep-copies a Height×Width grid.
func copyGrid(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for y, row := range src {
		dst[y] = make([]float64, len(row))
		copy(dst[y], row)
	}

	return dst
}
