package domain

import "errors"

// Domain errors represent analysis and input failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidArgument indicates a numeric parameter is out of range,
	// such as a non-positive reading rate or a negative result count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput indicates an adapter was given no text to analyse.
	// The analysis functions themselves accept empty text.
	ErrEmptyInput = errors.New("no input text")

	// ErrUnsupportedType indicates no normaliser handles a MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidSetting indicates an unknown settings key or a value
	// that cannot be stored under it.
	ErrInvalidSetting = errors.New("invalid setting")
)
