package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Construction errors
	ErrMsgInvalidItem     = "invalid item"
	ErrMsgInvalidModifier = "invalid modifier"
	ErrMsgInvalidFilter   = "invalid filter"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidItem     = errors.New(ErrMsgInvalidItem)
	ErrInvalidModifier = errors.New(ErrMsgInvalidModifier)
	ErrInvalidFilter   = errors.New(ErrMsgInvalidFilter)
)
