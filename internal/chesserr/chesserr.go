// Package chesserr defines the sentinel error kinds shared by the core
// packages. Callers use errors.Is to test for a kind; all errors are
// fatal at the point of origin, none are silently recovered inside core.
package chesserr

import "errors"

var (
	// OutOfBounds is returned by setters called with coordinates outside
	// [0,W)x[0,H).
	OutOfBounds = errors.New("chessadvent: coordinates out of bounds")

	// NoPieceAt is returned by move generation when called at a
	// coordinate containing no piece.
	NoPieceAt = errors.New("chessadvent: no piece at coordinate")

	// InvalidDocument is returned when serialization input violates the
	// board document schema (wrong length, unknown character, malformed
	// team).
	InvalidDocument = errors.New("chessadvent: invalid board document")

	// InvalidDirection is returned when a direction outside 0..7 is
	// passed to a helper that requires one.
	InvalidDirection = errors.New("chessadvent: invalid direction")
)
