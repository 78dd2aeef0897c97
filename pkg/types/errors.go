package types

import "errors"

// Error kinds for the calculator. Any of these aborts the whole computation;
// there is never a partial or degraded answer. Callers match them with
// errors.Is.
var (
	// ErrInvalidPostcode means the postcode maps to no jurisdiction.
	ErrInvalidPostcode = errors.New("postcode does not exist")

	// ErrLocationNotFound means the suburb/postcode pair could not be
	// resolved to a location.
	ErrLocationNotFound = errors.New("location not found")

	// ErrUpstreamUnavailable means a remote data provider failed or returned
	// a non-success status.
	ErrUpstreamUnavailable = errors.New("upstream data provider unavailable")
)
