// Package cdtt adapts the Czech Railways timetable upstream API to the
// domain ports. The upstream is an undocumented, stateful JSON-over-HTTPS
// protocol: session creation, station-name matching, timestamped
// connection search and a separate price lookup keyed by connection IDs.
// Vendor wire shapes never leave this package.
package cdtt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JanProvaznik/cd-mcp/internal/domain"
	"github.com/JanProvaznik/cd-mcp/internal/infrastructure/logger"
	"github.com/JanProvaznik/cd-mcp/internal/infrastructure/ratelimit"
)

// maxResponseBytes bounds how much of an upstream body is read, both for
// payloads and for error diagnostics.
const maxResponseBytes = 1 << 20

// Config holds the settings for a Client.
type Config struct {
	// BaseURL is the root of the upstream API, without a trailing slash.
	BaseURL string

	// HTTPTimeout bounds each individual call. Zero means 10s.
	HTTPTimeout time.Duration

	// RateLimit throttles calls per endpoint.
	RateLimit ratelimit.Config

	// StationCandidates is the bounded candidate count requested when
	// resolving a station name. Zero means 7.
	StationCandidates int

	// Logger receives call-level diagnostics. Nil means no logging.
	Logger *logger.Logger
}

// Client issues individual calls to the timetable upstream and decodes the
// envelope format. It implements domain.StationDirectory,
// domain.SessionOpener and domain.ConnectionGateway.
//
// A Client holds no per-search state and is safe for concurrent use; all
// search-scoped state lives in the domain.SearchContext owned by the
// caller.
type Client struct {
	baseURL           string
	httpClient        *http.Client
	limiter           *ratelimit.EndpointLimiter
	stationCandidates int
	log               *logger.Logger
}

// NewClient creates a Client for the given upstream configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := cfg.RateLimit
	if limit.RequestsPerSecond <= 0 {
		limit = ratelimit.DefaultConfig()
	}

	candidates := cfg.StationCandidates
	if candidates <= 0 {
		candidates = 7
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL:           cfg.BaseURL,
		httpClient:        &http.Client{Timeout: timeout},
		limiter:           ratelimit.NewEndpointLimiter(limit),
		stationCandidates: candidates,
		log:               log,
	}
}

// call POSTs a JSON body to one upstream endpoint and decodes the
// enveloped response into out. All transport and protocol failures come
// back as a *domain.UpstreamError carrying the endpoint, status and raw
// body for diagnostics.
func (c *Client) call(ctx context.Context, endpoint string, reqBody, out interface{}) error {
	if err := c.limiter.Wait(ctx, endpoint); err != nil {
		return domain.NewUpstreamError(endpoint, 0, "", err)
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return domain.NewUpstreamError(endpoint, 0, "", fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.NewUpstreamError(endpoint, 0, "", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewUpstreamError(endpoint, 0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.NewUpstreamError(endpoint, resp.StatusCode, "", fmt.Errorf("read response: %w", err))
	}

	c.log.WithEndpoint(endpoint).Debug().
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("upstream call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewUpstreamError(endpoint, resp.StatusCode, string(body), nil)
	}

	var env envelope
	env.D = out
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.NewUpstreamError(endpoint, resp.StatusCode, string(body),
			fmt.Errorf("decode envelope: %w", err))
	}

	return nil
}

// Compile-time port checks.
var (
	_ domain.StationDirectory  = (*Client)(nil)
	_ domain.SessionOpener     = (*Client)(nil)
	_ domain.ConnectionGateway = (*Client)(nil)
)
