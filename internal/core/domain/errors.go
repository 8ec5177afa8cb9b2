package domain

import "errors"

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source format or output format.
	ErrUnsupportedType = errors.New("unsupported type")

	// Table Errors.

	// ErrDuplicateEntry indicates a country (or country/year pair) appears twice.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrYearNotFound indicates the target year is not a column of a table.
	ErrYearNotFound = errors.New("year not found")

	// ErrColumnNotFound indicates a configured column is missing from a source.
	ErrColumnNotFound = errors.New("column not found")

	// Source Errors.

	// ErrFetchFailed indicates a source could not be downloaded.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrRateLimited indicates the server refused a download for sending too many requests.
	ErrRateLimited = errors.New("rate limited")

	// ErrInvalidSettings indicates the effective settings failed validation.
	ErrInvalidSettings = errors.New("invalid settings")
)
