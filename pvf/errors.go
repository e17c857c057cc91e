package pvf

import "errors"

var (
	// ErrEigenFailed indicates the symmetric eigendecomposition did not converge.
	ErrEigenFailed = errors.New("pvf: eigendecomposition did not converge")
	// ErrEmptyBasis indicates a spectrum query on a basis with no members.
	ErrEmptyBasis = errors.New("pvf: basis has no members")
	// ErrIndexOutOfRange indicates a basis index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("pvf: basis index out of range")
	// ErrZeroStep indicates Slice was called with step 0.
	ErrZeroStep = errors.New("pvf: slice step must be nonzero")
)
