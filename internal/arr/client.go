package arr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultSlowTimeout = 90 * time.Second
	apiPrefix          = "/api/v3"
)

// Client executes requests against any number of instances.
type Client struct {
	httpClient *http.Client
	slowClient *http.Client
	reach      Reachability
	userAgent  string
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for regular instances.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSlowHTTPClient sets the HTTP client used for instances flagged as slow.
func WithSlowHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.slowClient = hc
	}
}

// WithTimeouts sets the request timeouts for regular and slow instances.
func WithTimeouts(regular, slow time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: regular}
		c.slowClient = &http.Client{Timeout: slow}
	}
}

// WithReachability sets the network monitor consulted before every request.
func WithReachability(r Reachability) Option {
	return func(c *Client) {
		c.reach = r
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		slowClient: &http.Client{Timeout: defaultSlowTimeout},
		reach:      NewNetworkMonitor(),
		userAgent:  "arrsync",
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "arr")
	return c
}

// Execute sends a request to inst and decodes the response into out. A nil
// body sends no payload and a nil out discards the response body. Every
// returned error is an *Error.
func (c *Client) Execute(ctx context.Context, method, path string, inst Instance, body, out any) error {
	return c.ExecuteQuery(ctx, method, path, nil, inst, body, out)
}

// ExecuteQuery is Execute with query parameters.
func (c *Client) ExecuteQuery(ctx context.Context, method, path string, query url.Values, inst Instance, body, out any) error {
	if !c.reach.Reachable() {
		return &Error{Kind: NoInternet}
	}
	err := c.do(ctx, method, path, query, inst, body, out)
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return &Error{Kind: Cancelled, Err: err}
	}
	return &Error{Kind: RequestFailure, Err: err}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, inst Instance, body, out any) error {
	endpoint, err := inst.Endpoint(path, query)
	if err != nil {
		return err
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+inst.APIKey)
	req.Header.Set("X-Api-Key", inst.APIKey)
	req.Header.Set("User-Agent", c.userAgent)

	hc := c.httpClient
	if inst.Slow {
		hc = c.slowClient
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		c.log.Debug("request failed", "instance", inst.String(), "method", method, "path", path, "error", err)
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("request complete", "instance", inst.String(), "method", method, "path", path,
		"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return StatusCode(resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return &Error{Kind: Cancelled, Err: ctx.Err()}
		}
		return &Error{Kind: DecodeFailure, Err: err}
	}
	return nil
}

func get[T any](ctx context.Context, c *Client, inst Instance, path string, query url.Values) (T, error) {
	var out T
	err := c.ExecuteQuery(ctx, http.MethodGet, apiPrefix+path, query, inst, nil, &out)
	return out, err
}

func send[T any](ctx context.Context, c *Client, method string, inst Instance, path string, query url.Values, body any) (T, error) {
	var out T
	err := c.ExecuteQuery(ctx, method, apiPrefix+path, query, inst, body, &out)
	return out, err
}

func exec(ctx context.Context, c *Client, method string, inst Instance, path string, query url.Values, body any) error {
	return c.ExecuteQuery(ctx, method, apiPrefix+path, query, inst, body, nil)
}

func libraryID(item interface{ LibraryID() (int, bool) }) (int, error) {
	id, ok := item.LibraryID()
	if !ok {
		return 0, &Error{Kind: RequestFailure, Err: ErrNotInLibrary}
	}
	return id, nil
}
