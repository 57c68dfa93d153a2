// Package errors provides error handling for swiftpoet.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//   - Reference marks, so domain errors match shared sentinels
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := file.Render(); err != nil {
//	    return errors.Wrap(err, "failed to render file")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "declare the method with NewAbstractMethod")
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidDeclaration) {
//	    // reject the model
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
	CombineErrors  = crdb.CombineErrors
)

// Common sentinel errors for use across swiftpoet.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates a requested file or resource does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates a malformed command or argument
	ErrInvalidRequest = New("invalid request")

	// ErrInvalidDeclaration indicates a declaration model that cannot be built
	ErrInvalidDeclaration = New("invalid declaration")

	// ErrUnbalancedBlock indicates begin/next/end control flow calls that do not pair up
	ErrUnbalancedBlock = New("unbalanced control flow block")

	// ErrUnsupportedFormat indicates an input format with no decoder
	ErrUnsupportedFormat = New("unsupported format")

	// ErrAlreadyExists indicates an output that would be overwritten
	ErrAlreadyExists = New("already exists")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsInvalidDeclarationError checks if an error is or wraps ErrInvalidDeclaration
func IsInvalidDeclarationError(err error) bool {
	return err != nil && Is(err, ErrInvalidDeclaration)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidRequest, format, args...)
}
