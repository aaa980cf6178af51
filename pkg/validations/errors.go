package validations

import "errors"

var (
	// ErrMissingMessageSource is returned when a violation is built without a message and without a rule.
	ErrMissingMessageSource = errors.New("violation requires a message or a rule")

	// ErrCheckNotFound is returned by a resource that has no check registered under the requested name.
	ErrCheckNotFound = errors.New("check not found")

	// ErrUnsupportedResource is returned when a rule is run against a resource lacking a required capability.
	ErrUnsupportedResource = errors.New("resource does not support rule")

	// ErrNoErrorSink is returned by Rule.Call when the resource cannot record errors.
	ErrNoErrorSink = errors.New("resource cannot record validation errors")

	// ErrValidationFailed describes a validation pass that produced at least one violation.
	ErrValidationFailed = errors.New("validation failed")
)
