// Package backend is the HTTP client for the store REST API that owns all catalog,
// people and order data.
package backend

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"

	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/ports"
)

const maxResponseBytes = 8 << 20

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// EnvelopePath is a JMESPath expression selecting the payload from an
	// enveloped response. Defaults to "data".
	EnvelopePath       string
	InsecureSkipVerify bool
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client calls the store API. The bearer token travels on the request context; see WithToken.
type Client struct {
	base     *url.URL
	http     *http.Client
	timeout  time.Duration
	envelope string
	logger   *slog.Logger
}

// New builds a Client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("backend base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base url must be http or https, got %q", base.Scheme)
	}

	envelope := strings.TrimSpace(cfg.EnvelopePath)
	if envelope == "" {
		envelope = "data"
	}
	if _, err := jmespath.Compile(envelope); err != nil {
		return nil, fmt.Errorf("invalid envelope path %q: %w", envelope, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	hc := cfg.HTTPClient
	if hc == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.InsecureSkipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // dev-only self-signed API certificates
		}
		hc = &http.Client{Transport: transport}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:     base,
		http:     hc,
		timeout:  timeout,
		envelope: envelope,
		logger:   logger.With("component", "backend"),
	}, nil
}

// WithToken returns a context whose backend calls carry token as a bearer credential.
func WithToken(ctx context.Context, token string) context.Context {
	return ports.WithBearer(ctx, token)
}

// TokenFrom returns the bearer token stored by WithToken.
func TokenFrom(ctx context.Context) string {
	return ports.BearerFrom(ctx)
}

// clientFor returns an HTTP client that attaches the context's bearer token.
func (c *Client) clientFor(ctx context.Context) *http.Client {
	tok := TokenFrom(ctx)
	if tok == "" {
		return c.http
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"}))
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// getJSON fetches path and decodes the unwrapped payload into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

// sendJSON encodes in as the request body. out may be nil for calls whose payload is ignored.
func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	req := request{method: method, path: path, query: query}
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		req.body = bytes.NewReader(b)
		req.contentType = "application/json"
	}
	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path, r.query), r.body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", r.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	start := time.Now()
	resp, err := c.clientFor(ctx).Do(req)
	if err != nil {
		return transportError(ctx, r.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportError(ctx, r.path, err)
	}

	c.logger.DebugContext(ctx, "backend call",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, body)
	}

	payload, err := c.unwrap(body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "Unexpected response from %s", r.path)
	}
	return nil
}

func transportError(ctx context.Context, path string, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "The store API did not respond in time")
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "Request canceled")
	default:
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "The store API is unreachable (%s)", path)
	}
}
