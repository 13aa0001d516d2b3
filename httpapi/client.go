// Package httpapi provides the single configured HTTP client every
// resource service calls through. It owns the base URL, the fixed request
// timeout, JSON headers, bearer-token injection from an explicit session
// store, and the translation of non-2xx responses into errors.
//
// The client never recovers silently: every transport or status failure
// surfaces as an error. Soft-fail policies (degrading to a default value)
// belong to individual call sites, not here. There are no retries at this
// layer either; a superseded request is cancelled by its caller through
// the context.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/utafrali/StorefrontGo/session"
)

const tracerName = "github.com/utafrali/StorefrontGo/httpapi"

// Config holds HTTP client configuration.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	MaxConnsPerHost int
}

// DefaultConfig returns sensible defaults for the API client.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:         baseURL,
		Timeout:         15 * time.Second,
		MaxConnsPerHost: 100,
	}
}

// Client is the shared API client. All resource services go through it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     session.TokenStore
	logger     *slog.Logger
	tracer     trace.Tracer
}

// New creates an API client. The token store is explicit: login writes to
// it, logout and 401 responses clear it, and every request reads the
// current bearer token from it.
func New(cfg Config, tokens session.TokenStore, logger *slog.Logger) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokens:  tokens,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// Tokens returns the session store this client reads bearer tokens from.
// Auth flows write through it on login and logout.
func (c *Client) Tokens() session.TokenStore {
	return c.tokens
}

// GetJSON performs a GET request and returns the decoded response body.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values) (any, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create GET request: %w", err)
	}
	return c.doJSON(req)
}

// PostJSON performs a POST request with a JSON payload and returns the
// decoded response body. A nil payload sends an empty body.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (any, error) {
	return c.writeJSON(ctx, http.MethodPost, path, payload)
}

// PutJSON performs a PUT request with a JSON payload.
func (c *Client) PutJSON(ctx context.Context, path string, payload any) (any, error) {
	return c.writeJSON(ctx, http.MethodPut, path, payload)
}

// PatchJSON performs a PATCH request with a JSON payload.
func (c *Client) PatchJSON(ctx context.Context, path string, payload any) (any, error) {
	return c.writeJSON(ctx, http.MethodPatch, path, payload)
}

// DeleteJSON performs a DELETE request and returns the decoded response
// body, which may be nil for 204 responses.
func (c *Client) DeleteJSON(ctx context.Context, path string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create DELETE request: %w", err)
	}
	return c.doJSON(req)
}

// PostMultipart uploads a file under the given form field and returns the
// decoded response body.
func (c *Client) PostMultipart(ctx context.Context, path, field, filename string, r io.Reader) (any, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy upload body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.doJSON(req)
}

func (c *Client) writeJSON(ctx context.Context, method, path string, payload any) (any, error) {
	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req)
}

// doJSON executes the request and decodes a JSON response body. Non-2xx
// responses become errors; a 401 additionally clears the session tokens
// but deliberately triggers no navigation or retry.
func (c *Client) doJSON(req *http.Request) (any, error) {
	ctx, span := c.tracer.Start(req.Context(), fmt.Sprintf("%s %s", req.Method, req.URL.Path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		),
	)
	defer span.End()
	req = req.WithContext(ctx)

	req.Header.Set("Accept", "application/json")
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observeRequest(req.Method, 0, time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	observeRequest(req.Method, resp.StatusCode, time.Since(start))
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		// Expired or revoked token: clear local state. Navigation on auth
		// failure is left to each page's own guard logic.
		if clearErr := c.tokens.Clear(); clearErr != nil {
			c.logger.Warn("clear session after 401 failed",
				slog.String("error", clearErr.Error()),
			)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := ParseResponseError(resp)
		c.logger.Warn("api request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()),
		)
		span.SetStatus(codes.Error, strconv.Itoa(resp.StatusCode))
		return nil, err
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		// Tolerate non-JSON 2xx bodies the way the normalizers tolerate
		// shape drift: hand back the raw text.
		return string(data), nil
	}
	return body, nil
}
