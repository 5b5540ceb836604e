package planar

import "github.com/pkg/errors"

// The tools that call this package historically aborted the whole run on
// malformed input. Here the same conditions come back as typed errors, so a
// batch tool can choose to skip the offending record instead. Match on them
// with errors.Is.
var (
	// ErrMalformedRing reports a polygon ring whose first vertex does not
	// exactly equal its last. The predicates never auto-close input.
	ErrMalformedRing = errors.New("planar: ring is not closed")

	// ErrDegenerateInput reports geometry the operation has no defined
	// answer for, such as an empty point set or coincident segments whose
	// overlap cannot be resolved.
	ErrDegenerateInput = errors.New("planar: degenerate input")

	// ErrInvalidConfiguration reports a structurally invalid request, such
	// as a zero-capacity minimizer.
	ErrInvalidConfiguration = errors.New("planar: invalid configuration")

	// ErrIndexOutOfRange reports a bounds-checked accessor miss.
	ErrIndexOutOfRange = errors.New("planar: index out of range")
)
