package domain

import "errors"

// FetchFailedMessage is the single user-facing message for any failed page load
const FetchFailedMessage = "Failed to load artworks. Please try again."

// Sentinel errors for domain operations
var (
	// ErrFetchFailed indicates the catalog could not be reached
	ErrFetchFailed = errors.New("catalog fetch failed")

	// ErrUnexpectedStatus indicates the catalog answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected catalog status")

	// ErrMalformedResponse indicates the body could not be decoded or lacked required fields
	ErrMalformedResponse = errors.New("malformed catalog response")

	// ErrInvalidPageSize indicates a page size outside the catalog's accepted range
	ErrInvalidPageSize = errors.New("invalid page size")

	// ErrNothingSelected indicates an export was requested with an empty selection
	ErrNothingSelected = errors.New("no artworks selected")
)
