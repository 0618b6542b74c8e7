// Client construction, auth, and retry logic for Gigasheet.
//
// Example:
//
//	ctx := context.Background()
//	client, err := gigasheet.NewClient()
//	if err != nil { … }
//
//	handle, err := client.UploadURL(ctx, "https://example.com/data.csv", "data.csv", nil)
package gigasheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	authHeader = "X-GIGASHEET-TOKEN"

	defaultRetryAttempts   = 3
	defaultRetryBaseDelay  = 100 * time.Millisecond
	defaultRetryMaxDelay   = 1 * time.Second
	defaultRetryBackoffMul = 2.0
)

var defaultRetryable = map[int]struct{}{
	http.StatusRequestTimeout:      {},
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// ClientOptions configure a Client beyond the defaults resolved from the
// environment and ~/.gigasheet.toml.
type ClientOptions struct {
	APIKey  string // overrides the resolved profile
	APIURL  string // overrides the resolved profile
	AppURL  string // overrides the resolved profile
	Profile string // named profile in ~/.gigasheet.toml

	Retries        *int          // nil means the default of 3
	RetryBaseDelay time.Duration // starting backoff, default 100ms
	RetryMaxDelay  time.Duration // backoff cap, default 1s

	// HTTPClient supplies the underlying transport. Auth and retry wrap
	// its Transport, so timeouts and proxies set on it are honoured.
	HTTPClient *http.Client
}

// Client talks to the Gigasheet REST API. All methods return an *APIError
// when the service responds with a non-2xx status.
type Client struct {
	profile Profile
	httpc   *http.Client
}

// NewClient builds a Client from the default profile resolution (env vars
// layered over ~/.gigasheet.toml).
func NewClient() (*Client, error) {
	return NewClientWithOptions(ClientOptions{})
}

// NewClientWithOptions builds a Client with explicit overrides. An APIKey
// in options makes the config file optional.
func NewClientWithOptions(options ClientOptions) (*Client, error) {
	var profile Profile
	if options.APIKey != "" {
		profile = Profile{APIKey: options.APIKey, APIURL: defaultAPIURL, AppURL: defaultAppURL}
	} else {
		var err error
		profile, err = GetProfile(options.Profile)
		if err != nil {
			return nil, err
		}
	}
	if options.APIURL != "" {
		profile.APIURL = options.APIURL
	}
	if options.AppURL != "" {
		profile.AppURL = options.AppURL
	}

	retries := defaultRetryAttempts
	if options.Retries != nil {
		retries = *options.Retries
	}
	baseDelay := options.RetryBaseDelay
	if baseDelay == 0 {
		baseDelay = defaultRetryBaseDelay
	}
	maxDelay := options.RetryMaxDelay
	if maxDelay == 0 {
		maxDelay = defaultRetryMaxDelay
	}

	httpc := options.HTTPClient
	if httpc == nil {
		httpc = &http.Client{}
	}
	base := httpc.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	// Chain transports the way interceptors chain: auth outermost so the
	// token also rides on every retry attempt.
	wrapped := *httpc
	wrapped.Transport = authTransport(profile.APIKey,
		retryTransport(retryConfig{
			retries:   retries,
			baseDelay: baseDelay,
			maxDelay:  maxDelay,
			factor:    defaultRetryBackoffMul,
			retryable: defaultRetryable,
		}, base))

	return &Client{profile: profile, httpc: &wrapped}, nil
}

// Profile returns the resolved profile this client was built with.
func (c *Client) Profile() Profile { return c.profile }

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func authTransport(apiKey string, next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		r = r.Clone(r.Context())
		r.Header.Set(authHeader, apiKey)
		r.Header.Set("Content-Type", "application/json") // Required by Gigasheet API
		return next.RoundTrip(r)
	})
}

type retryConfig struct {
	retries   int
	baseDelay time.Duration
	maxDelay  time.Duration
	factor    float64
	retryable map[int]struct{}
}

func retryTransport(cfg retryConfig, next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		idempotency := uuid.NewString()
		start := time.Now()
		delay := cfg.baseDelay

		var resp *http.Response
		var err error
		for attempt := 0; attempt <= cfg.retries; attempt++ {
			req := r.Clone(r.Context())
			req.Header.Set("x-idempotency-key", idempotency)
			req.Header.Set("x-retry-attempt", strconv.Itoa(attempt))
			req.Header.Set("x-retry-delay", strconv.FormatFloat(time.Since(start).Seconds(), 'f', 3, 64))
			if attempt > 0 && r.GetBody != nil {
				body, err := r.GetBody()
				if err != nil {
					return nil, err
				}
				req.Body = body
			}

			// A request body we cannot replay must not be retried.
			replayable := r.Body == nil || r.GetBody != nil

			resp, err = next.RoundTrip(req)
			if err == nil {
				if _, ok := cfg.retryable[resp.StatusCode]; !ok || !replayable || attempt == cfg.retries {
					return resp, nil
				}
				// Drain so the connection can be reused across attempts.
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			} else if !replayable || attempt == cfg.retries {
				return nil, err
			}

			if sleepCtx(r.Context(), delay) != nil {
				if err == nil {
					err = r.Context().Err()
				}
				return nil, err // ctx cancelled or deadline exceeded
			}

			// exponential back-off
			delay = min(delay*time.Duration(cfg.factor), cfg.maxDelay)
		}
		return resp, err
	})
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// do issues a request against the API and decodes the JSON response into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	u := c.profile.APIURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gigasheet: encoding %s %s body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("gigasheet: building %s %s: %w", method, endpoint, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("gigasheet: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gigasheet: reading %s %s response: %w", method, endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("gigasheet: decoding %s %s response: %w", method, endpoint, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, query, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, out)
}

func (c *Client) put(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, nil, body, out)
}

func (c *Client) del(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, body, out)
}
