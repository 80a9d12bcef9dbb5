package domain

import "errors"

// Sentinel errors resolved to envelopes by the central HTTP error handler.
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
