package services

import "errors"

var (
	// ErrContactNotFound means the id does not resolve to any contact,
	// active or deleted.
	ErrContactNotFound = errors.New("contact person was not found with this id")

	// ErrInvalidPage means the 1-based page number is below 1.
	ErrInvalidPage = errors.New("page number must be 1 or greater")

	// ErrInvalidPhoneNumber means the phone number could not be parsed
	// or is not valid for the configured region.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)
