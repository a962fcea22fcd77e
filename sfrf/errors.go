package sfrf

import "errors"

var (
	// ErrEmptyAxis is returned when a frequency axis has no bins.
	ErrEmptyAxis = errors.New("sfrf: frequency axis must not be empty")

	// ErrAmbiguousInput is returned when both a spectrum and a
	// time-domain signal are supplied to the response computation.
	ErrAmbiguousInput = errors.New("sfrf: both spectrum and signal supplied")

	// ErrNoInput is returned when neither a spectrum nor a time-domain
	// signal is supplied.
	ErrNoInput = errors.New("sfrf: neither spectrum nor signal supplied")

	// ErrConditionNotFound is returned when no mask row matches the
	// selected operating condition.
	ErrConditionNotFound = errors.New("sfrf: no row matches the selected condition")

	// ErrMaskLength is returned when a gain mask length differs from
	// the spectrum bin count.
	ErrMaskLength = errors.New("sfrf: mask length does not match spectrum bin count")

	// ErrMalformedBands is returned when a band container is
	// structurally invalid.
	ErrMalformedBands = errors.New("sfrf: malformed band container")
)
