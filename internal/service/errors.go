package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	// ErrUnknownSubject is returned when a structurally valid token names a
	// user that no longer exists in the store.
	ErrUnknownSubject = errors.New("token subject is unknown")
)

// Validation errors returned by the catalog service when a new book is
// rejected before any mutation happens. Each error names the offending field
// so the HTTP layer can surface field-level detail.
var (
	ErrValidationEmptyTitle    = errors.New("title cannot be empty or only whitespace")
	ErrValidationTitleTooLong  = errors.New("title exceeds maximum length")
	ErrValidationEmptyAuthor   = errors.New("author cannot be empty or only whitespace")
	ErrValidationAuthorTooLong = errors.New("author exceeds maximum length")
)
