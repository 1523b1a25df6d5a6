package repo

import (
	"errors"
	"fmt"
)

// Domain errors

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	CodeFetchFailure    = "FETCH_FAILURE"
	CodeMalformedRecord = "MALFORMED_RECORD"
	CodeNoOrganizations = "NO_ORGANIZATIONS"
	CodeInvalidPageSize = "INVALID_PAGE_SIZE"
)

// Predefined domain errors

// ErrFetchFailure reports that repositories of an organization could not be read
func ErrFetchFailure(org string, err error) *DomainError {
	return &DomainError{
		Code:    CodeFetchFailure,
		Message: fmt.Sprintf("failed to fetch repositories for %s", org),
		Err:     err,
	}
}

// ErrMalformedRecord reports an upstream item that is missing or has an invalid field
func ErrMalformedRecord(field string, err error) *DomainError {
	return &DomainError{
		Code:    CodeMalformedRecord,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

func ErrNoOrganizations() *DomainError {
	return &DomainError{
		Code:    CodeNoOrganizations,
		Message: "at least one organization identifier is required",
	}
}

func ErrInvalidPageSize(size int) *DomainError {
	return &DomainError{
		Code:    CodeInvalidPageSize,
		Message: fmt.Sprintf("page size must be positive, got %d", size),
	}
}

// HasCode reports whether err wraps a DomainError with the given code
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}
