package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/client/securestore"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
)

const (
	// DefaultTimeout bounds every request, including reading the body.
	DefaultTimeout = 10 * time.Second

	maxResponseBody = 4 << 20
)

// Options is fixed at construction.
type Options struct {
	// BaseURL includes the API prefix, e.g. http://127.0.0.1:3000/api.
	BaseURL string
	Timeout time.Duration
	// Transport defaults to a tuned *http.Transport.
	Transport http.RoundTripper
	// OnUnauthorized runs after a 401 has cleared the stored credentials.
	OnUnauthorized func(ctx context.Context)
}

// Gateway is the single configured HTTP client used by resource services.
// It is safe for concurrent use.
type Gateway struct {
	base   *url.URL
	http   *http.Client
	logger logging.Logger
}

func New(opts Options, store securestore.Store, logger logging.Logger) (*Gateway, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rt := opts.Transport
	if rt == nil {
		rt = newTransport()
	}

	return &Gateway{
		base: base,
		http: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				base:           rt,
				store:          store,
				logger:         logger,
				onUnauthorized: opts.OnUnauthorized,
			},
		},
		logger: logger,
	}, nil
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		ForceAttemptHTTP2:   true,
	}
}

// BaseURL returns the configured API root.
func (g *Gateway) BaseURL() string {
	return g.base.String()
}

func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (g *Gateway) Patch(ctx context.Context, path string, body, out any) error {
	return g.Do(ctx, http.MethodPatch, path, nil, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do sends a JSON request to path (relative to the base URL) and decodes a
// JSON response into out. A nil body sends no payload; a nil out discards
// the response body.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := g.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return g.mapError(ctx, method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return g.mapError(ctx, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(method, path, resp.StatusCode, payload)
		g.logger.Debug(ctx, "api request failed", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// mapError classifies transport failures. Cancellation by the caller is
// returned as is; everything else counts as the server being unavailable.
func (g *Gateway) mapError(ctx context.Context, method, path string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	g.logger.Debug(ctx, "api request did not complete", "method", method, "path", path, "error", err)
	return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
}
