package application

import "errors"

var (
	// ErrInvalidQuery is returned when a filter combination or input value is malformed.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrNotFound is returned when a referenced business or review does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller is not the author of the resource.
	ErrForbidden = errors.New("forbidden")
)
