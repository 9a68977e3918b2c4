package celestial

import "errors"

var (
	// ErrUnknownParam indicates a primary input name that the body does not have.
	ErrUnknownParam = errors.New("celestial: unknown parameter")

	// ErrUnknownOutput indicates a derived output name that the body does not have.
	ErrUnknownOutput = errors.New("celestial: unknown output")
)
