package domain

import "errors"

// Domain errors
var (
	ErrNotFound              = errors.New("source file not found")
	ErrCorruptDocument       = errors.New("document is corrupt or not a PDF")
	ErrPageOutOfRange        = errors.New("page index out of range")
	ErrInsufficientInputs    = errors.New("merge requires at least one input file")
	ErrPasswordRequired      = errors.New("document is password protected")
	ErrAuthenticationFailed  = errors.New("wrong password")
	ErrEncryptionUnsupported = errors.New("encryption not supported for this document")
	ErrExternalToolMissing   = errors.New("external conversion tool not found")
	ErrConversionFailed      = errors.New("conversion failed")
	ErrInvalidSelection      = errors.New("invalid page selection")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
