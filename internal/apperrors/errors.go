package apperrors

import "errors"

// ErrNotFound indicates that a referenced resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvariant indicates an internal invariant was violated, e.g. a trial
// balance built from validated entries that does not balance. This should
// never occur from valid input and must be reported loudly, not hidden.
var ErrInvariant = errors.New("accounting invariant violation")
