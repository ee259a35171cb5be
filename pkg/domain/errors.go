package domain

import "errors"

var (
	// ErrNoMatch is returned when a query fits none of a resolver's
	// interpretations. It is not a failure: the caller tries the next
	// resolver in its priority chain.
	ErrNoMatch = errors.New("query does not match this interpretation")

	// ErrRateUnavailable is returned when a live rate or price could not
	// be resolved (fetch failure, timeout, or malformed response).
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)
