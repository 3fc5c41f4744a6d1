package gridworld

import "errors"

// Error implements errors unique to building or parsing grids. Op names
// the operation which failed.
type Error struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

var (
	// ErrDimensions reports a grid with non-positive rows or columns
	ErrDimensions = errors.New("grid dimensions must be positive")

	// ErrCellCount reports negative special cell counts or more special
	// cells than the grid can hold
	ErrCellCount = errors.New("invalid number of special cells")

	// ErrSymbol reports a symbol outside of the cell alphabet
	ErrSymbol = errors.New("unknown cell symbol")

	// ErrLayout reports a malformed layout, such as ragged rows or a
	// missing start or goal cell
	ErrLayout = errors.New("malformed layout")
)

// IsConfigError returns whether err reports an invalid grid
// configuration
func IsConfigError(err error) bool {
	return errors.Is(err, ErrDimensions) || errors.Is(err, ErrCellCount) ||
		errors.Is(err, ErrSymbol) || errors.Is(err, ErrLayout)
}
