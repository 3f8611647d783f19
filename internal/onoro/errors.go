package onoro

import "errors"

// Sentinel errors surfaced across the core boundary, matching the
// teacher's structured-error style in internal/tablebase: exported vars
// wrapped with context via fmt.Errorf("%w: ...").
var (
	// ErrInvalidBoardString is returned by Parse for a malformed or
	// semantically invalid board-string notation.
	ErrInvalidBoardString = errors.New("onoro: invalid board string")

	// ErrInvalidDecompression is returned by Decompress for a 64-bit
	// word that doesn't decode to a legal 16-pawn board.
	ErrInvalidDecompression = errors.New("onoro: invalid compressed board")
)

// debugAssertions gates InternalInvariant checks, which panic when they
// fail. It is a constant set to true, so the checks always run. The
// core's own code paths are the only writers to Board, so these should
// never fire outside a bug.
const debugAssertions = true

func assertInvariant(cond bool, msg string) {
	if debugAssertions && !cond {
		panic("onoro: internal invariant violated: " + msg)
	}
}
