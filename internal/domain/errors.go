package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDomainName is returned when a caller submits a blank domain name.
	ErrEmptyDomainName = errors.New("domain name is required")

	// ErrDomainNotFound is returned when the subgraph has no record for a name.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrUnknownChain is returned for a chain with no configured endpoint.
	ErrUnknownChain = errors.New("unsupported chain")

	// ErrFeatureArity is returned when the predictor receives a feature
	// slice whose length does not match the trained arity. This indicates
	// a caller bug, not a recoverable condition.
	ErrFeatureArity = errors.New("feature vector arity mismatch")
)

// UpstreamError wraps a subgraph transport or query failure.
//
// The core never swallows these: they propagate to the presentation
// layer with the underlying message attached. No retry is attempted.
type UpstreamError struct {
	Chain string
	Err   error
}

func (e *UpstreamError) Error() string {
	if e.Chain != "" {
		return fmt.Sprintf("subgraph %s: %v", e.Chain, e.Err)
	}
	return fmt.Sprintf("subgraph: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
