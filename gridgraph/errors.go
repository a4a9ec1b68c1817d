package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is wrapped by every grid validation error, so callers can
	// test for "the map itself is unusable" with a single errors.Is.
	ErrInvalidGrid = errors.New("gridgraph: invalid grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrReservedSymbols indicates Open and Wall were configured to the same symbol.
	ErrReservedSymbols = fmt.Errorf("%w: open and wall symbols must differ", ErrInvalidGrid)
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
