package factory

import "errors"

var (
	// ErrMalformed is returned for machines that violate the input contract:
	// indicator indices out of range, negative joltages or weights, or text
	// that does not parse.
	ErrMalformed = errors.New("factory: malformed machine")

	// ErrUnsatisfiable is returned when no combination of button presses
	// reaches the requested lights or joltages.
	ErrUnsatisfiable = errors.New("factory: no solution")
)
