package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/intelligrit/travel-optimizer/internal/model"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://127.0.0.1:8000"

// ErrCountriesUnavailable is returned when the countries endpoint answers
// with a non-success status.
var ErrCountriesUnavailable = errors.New("failed to load countries")

const genericPlanError = "Failed to generate plan"

// StatusError is returned by GeneratePlan when the planning service answers
// with a non-success status. Its message is the response body text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if msg := strings.TrimSpace(e.Body); msg != "" {
		return msg
	}
	return genericPlanError
}

// Client calls the remote planning service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *RateLimiter
	Logger     *slog.Logger

	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A nil client keeps the
// default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithTimeout sets a per-request timeout. It is applied to a copy of the HTTP
// client, so a shared client passed to WithHTTPClient is left alone.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit throttles outbound calls to rps requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.Limiter = NewRateLimiter(rps) }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.Logger = l }
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.HTTPClient
		hc.Timeout = c.timeout
		c.HTTPClient = &hc
	}
	return c
}

// FetchCountries returns the list of countries the planning service supports.
func (c *Client) FetchCountries(ctx context.Context) ([]string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/countries", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrCountriesUnavailable, resp.StatusCode)
	}

	var data model.CountriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("parsing countries: %w", err)
	}
	if data.Countries == nil {
		return []string{}, nil
	}
	return data.Countries, nil
}

// GeneratePlan submits a trip request and returns the generated plan.
func (c *Client) GeneratePlan(ctx context.Context, req model.TripRequest) (*model.PlanResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/plan", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var plan model.PlanResponse
	if err := json.Unmarshal(respBody, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &plan, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Debug("planner request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("planner request failed: %w", err)
	}
	c.Logger.Debug("planner request", "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))
	return resp, nil
}
