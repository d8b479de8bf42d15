package pincode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public postal pincode API.
const DefaultBaseURL = "https://api.postalpincode.in"

const (
	userAgent       = "pincode-lookup"
	maxResponseSize = 4 << 20
)

var (
	errEmptyResponse = errors.New("empty response array")
	errNullResponse  = errors.New("null response element")
)

// Result is a successful lookup.
type Result struct {
	Pincode string
	Message string
	Offices []PostOffice
	Cached  bool
}

// Client fetches post office data for a pincode.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	cache   *Cache
	limit   *throttle
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each lookup. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithCache answers repeat lookups from cache.
func WithCache(cache *Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithMinInterval spaces requests to the API at least d apart. Cache hits
// are not delayed.
func WithMinInterval(d time.Duration) Option {
	return func(c *Client) {
		c.limit = newThrottle(d)
	}
}

// NewClient returns a client rooted at baseURL. An empty baseURL uses
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	c := &Client{
		baseURL: base,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Lookup validates code and issues a single GET for it. Invalid input
// returns a *ValidationError without touching the network.
func (c *Client) Lookup(ctx context.Context, code string) (Result, error) {
	if err := Validate(code); err != nil {
		return Result{}, err
	}
	if cached, ok := c.cache.Get(code); ok {
		cached.Cached = true
		return cached, nil
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.limit.wait(ctx); err != nil {
		return Result{}, &NetworkError{Op: "wait", Err: err}
	}

	endpoint := c.baseURL + "/pincode/" + url.PathEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, &NetworkError{Op: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, &NetworkError{Op: "get " + endpoint, Err: err}
	}
	defer resp.Body.Close()

	var body []*Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return Result{}, &NetworkError{Op: "get " + endpoint, Err: fmt.Errorf("unexpected status %s", resp.Status)}
		}
		return Result{}, &NetworkError{Op: "decode response", Err: err}
	}
	result, err := interpret(code, body)
	if err != nil {
		return Result{}, err
	}
	c.cache.Set(code, result)
	return result, nil
}

// interpret applies the API's status rules to a decoded body. The HTTP
// status is not consulted once the body decodes.
func interpret(code string, body []*Response) (Result, error) {
	if len(body) == 0 {
		return Result{}, &NetworkError{Op: "decode response", Err: errEmptyResponse}
	}
	first := body[0]
	if first == nil {
		return Result{}, &NetworkError{Op: "decode response", Err: errNullResponse}
	}
	if first.Status == StatusError || len(first.PostOffice) == 0 {
		return Result{}, ErrNoData
	}
	return Result{
		Pincode: code,
		Message: first.Message,
		Offices: Clone(first.PostOffice),
	}, nil
}
