package tilecoder

import "errors"

// Error implements errors unique to a TileCoder. Op names the
// operation that failed and Err describes why.
type Error struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error so that errors.Is and errors.As
// can inspect it
func (e *Error) Unwrap() error {
	return e.Err
}

var (
	// ErrInvalidConfig reports construction parameters that cannot
	// describe a valid set of tilings
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDimensionMismatch reports an input whose shape does not match
	// the geometry of the TileCoder
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidIndex reports a tile index outside [0, NTiles())
	ErrInvalidIndex = errors.New("invalid tile index")

	// ErrOutOfRange reports an input component outside its value
	// range when the TileCoder does not extrapolate, or any non-finite
	// input component
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotTileCoded reports a dense vector that is not a binary
	// tile-coded vector
	ErrNotTileCoded = errors.New("not a tile-coded vector")

	// ErrUnsupportedDtype reports a tensor of a data type that cannot
	// be encoded or decoded
	ErrUnsupportedDtype = errors.New("unsupported tensor dtype")
)

// IsInvalidConfig returns whether or not an error reports invalid
// TileCoder construction parameters
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsInvalidIndex returns whether or not an error reports a tile index
// which no tiling of the TileCoder could have produced
func IsInvalidIndex(err error) bool {
	return errors.Is(err, ErrInvalidIndex)
}

// IsOutOfRange returns whether or not an error reports an input
// component outside its value range
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsDimensionMismatch returns whether or not an error reports an input
// of the wrong shape
func IsDimensionMismatch(err error) bool {
	return errors.Is(err, ErrDimensionMismatch)
}
