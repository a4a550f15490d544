package service

import "errors"

// Resolution error kinds. Every kind is terminal for the query that produced it.
var (
	ErrMissingQueryInput    = errors.New("missing query input")
	ErrDatasetUnavailable   = errors.New("address dataset unavailable")
	ErrNoLocationMatch      = errors.New("no location match")
	ErrNoRecordsForLocation = errors.New("no address records for resolved location")
)

// ResolutionError reports a failed query together with the query as received, so callers
// can echo it back. errors.Is matches on Kind.
type ResolutionError struct {
	Kind  error
	Query Query
}

func newResolutionError(kind error, q Query) *ResolutionError {
	return &ResolutionError{Kind: kind, Query: q}
}

func (e *ResolutionError) Error() string {
	return "service: " + e.Kind.Error()
}

func (e *ResolutionError) Unwrap() error {
	return e.Kind
}
