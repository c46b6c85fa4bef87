package qrgen

import "errors"

var (
	// ErrInputTooLarge is returned when the text does not fit the largest
	// supported version.
	ErrInputTooLarge = errors.New("qrgen: input too large")

	// ErrEmptyInput is returned when there is no text to encode.
	ErrEmptyInput = errors.New("qrgen: empty input")

	// ErrText is returned when the text cannot be represented one byte per
	// character (ISO 8859-1).
	ErrText = errors.New("qrgen: text not representable in Latin-1")

	// ErrOptions is returned when encoding options name an unsupported
	// version or mask identifier.
	ErrOptions = errors.New("qrgen: invalid options")

	// ErrInternal indicates an invariant violation at a pipeline boundary.
	// It is a bug in this package, not a caller error.
	ErrInternal = errors.New("qrgen: internal error")
)
