package github

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const formContentType = "application/x-www-form-urlencoded; charset=UTF-8"

// HTTPClient is the transport used by the executor (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Field is a single form name/value pair.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered list of form fields.
type Fields []Field

// Encode returns the url-encoded form body, keeping field order.
func (f Fields) Encode() string {
	var b strings.Builder
	for i, field := range f {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	return b.String()
}

// Credentials identify the caller to the API. They are sent as form fields,
// never as headers, and are never persisted.
type Credentials struct {
	Username string
	Token    string
}

// Anonymous reports whether no credentials were supplied.
func (c Credentials) Anonymous() bool {
	return c.Username == "" && c.Token == ""
}

// Fields returns the login and token form fields.
func (c Credentials) Fields() Fields {
	return Fields{
		{Name: "login", Value: c.Username},
		{Name: "token", Value: c.Token},
	}
}

// executor performs one synchronous request per call and classifies the result.
type executor struct {
	httpClient HTTPClient
	logger     *slog.Logger
}

// endpoint joins base with path-escaped segments.
func endpoint(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// post sends fields as a form-encoded POST body.
func (e *executor) post(ctx context.Context, op, rawURL string, fields Fields) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(fields.Encode()))
	if err != nil {
		return nil, &ServiceError{Kind: KindTransport, Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", formContentType)
	return e.do(op, req)
}

// get sends a GET with the given query parameters.
func (e *executor) get(ctx context.Context, op, rawURL string, query url.Values) ([]byte, error) {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &ServiceError{Kind: KindTransport, Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}
	return e.do(op, req)
}

// do executes req once. The response body is always drained and closed.
func (e *executor) do(op string, req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Warn("request failed", "op", op, "method", req.Method, "url", req.URL.Redacted(), "error", err)
		return nil, &ServiceError{Kind: KindTransport, Op: op, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	e.logger.Debug("request",
		"op", op,
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized, http.StatusForbidden:
		e.logger.Warn("permission denied", "op", op, "status", resp.Status)
		return nil, &PermissionDeniedError{Op: op, Status: resp.Status}
	default:
		e.logger.Warn("unexpected status", "op", op, "status", resp.Status)
		return nil, &ServiceError{Kind: KindStatus, Op: op, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceError{Kind: KindTransport, Op: op, Status: resp.Status, Err: fmt.Errorf("reading response body: %w", err)}
	}
	return body, nil
}
