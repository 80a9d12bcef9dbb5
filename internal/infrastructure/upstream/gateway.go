// Package upstream implements the ports store interfaces by forwarding each
// call to the external backend and relaying its envelope verbatim.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/api/metrics"
	"github.com/yu-shop/storefront-api/internal/core/domain"
)

// requestTimeout bounds every outbound call. On expiry the call is treated as
// a failure and surfaces through the standard error envelope.
const requestTimeout = 10 * time.Second

// Gateway issues forwarded calls against a single configured base URL.
type Gateway struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewGateway builds a Gateway. A missing or malformed base URL is logged but
// not fatal: each request still attempts the call and fails through the
// envelope.
func NewGateway(baseURL string, log zerolog.Logger) *Gateway {
	switch {
	case baseURL == "":
		log.Warn().Msg("upstream base URL not configured; forwarded calls will fail")
	case strings.Contains(baseURL, "%"):
		log.Warn().Str("base_url", baseURL).Msg("upstream base URL contains invalid characters")
	default:
		if _, err := url.Parse(baseURL); err != nil {
			log.Warn().Err(err).Str("base_url", baseURL).Msg("upstream base URL is malformed")
		}
	}

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// Do forwards method+path with the given query and JSON body, and returns the
// upstream envelope untouched. Transport failures, timeouts, and bodies that
// are not envelopes all come back as ErrUpstreamUnavailable.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body any) (*envelope.Envelope, error) {
	var rdr io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode body: %v", domain.ErrUpstreamUnavailable, err)
		}
		rdr = bytes.NewReader(payload)
	}

	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrUpstreamUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(method, path).Inc()

	resp, err := g.client.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("network").Inc()
		g.log.Error().Err(err).Str("method", method).Str("path", path).Msg("upstream call failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("decode").Inc()
		g.log.Error().Err(err).Str("method", method).Str("path", path).Int("http_status", resp.StatusCode).Msg("upstream response is not an envelope")
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamUnavailable, err)
	}

	// Some backends only signal through the transport status.
	if env.Status == 0 {
		env.Status = resp.StatusCode
	}

	return &env, nil
}
