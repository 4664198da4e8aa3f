package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the title request fails for any
	// general reason (network error, timeout, quota).
	ErrGenerationFailed = errors.New("failed to generate title from description")

	// ErrInvalidResponse is returned when the model response is empty or malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyDescription is returned when no description is provided to
	// generate a title from.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
