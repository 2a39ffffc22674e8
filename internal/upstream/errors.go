package upstream

import "errors"

// Domain-level errors the gateway surfaces to higher layers.
var (
	// ErrUnavailable means the provider could not be reached or refused
	// the request. In non-production deployments the client swallows it
	// and serves the fixture dataset instead.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrBadPayload means the provider answered with something the
	// payload mapping could not make sense of.
	ErrBadPayload = errors.New("malformed upstream payload")
)
