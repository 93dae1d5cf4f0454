package domain

import "errors"

var (
	// ErrIncompleteInput indicates a required reading is missing, unparseable or not finite.
	ErrIncompleteInput = errors.New("incomplete input")

	// ErrDegenerateArithmetic indicates a saturation pressure divisor is not a
	// positive finite number, or a derived percentage is not finite.
	ErrDegenerateArithmetic = errors.New("degenerate arithmetic")
)
