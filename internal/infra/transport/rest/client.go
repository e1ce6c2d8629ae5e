package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tour-storefront/internal/infra"
	"tour-storefront/internal/pkg/metrics"
)

const transportName = "rest"

// Request describes one JSON call against the client's base URL.
type Request struct {
	Operation string // metrics and log label, e.g. "reservation.hold"
	Method    string
	Path      string
	Query     url.Values
	Body      any
	// FailureMessage is reported when the backend rejects the call without a message of its own.
	FailureMessage string
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// NewClientWithHTTP lets callers supply their own transport, e.g. an httptest server client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req and decodes a 2xx JSON body into out when out is non-nil.
// An empty 2xx body leaves out untouched.
func (c *Client) Do(ctx context.Context, req Request, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveBackendCall(transportName, req.Operation, err, time.Since(start))
	}()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindTransport, 0, "failed to build request for "+req.Operation, err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindTransport, 0, "failed to reach backend for "+req.Operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindTransport, resp.StatusCode, "failed to read backend response for "+req.Operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ExtractMessage(body)
		if msg == "" {
			msg = req.FailureMessage
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return infra.WrapGatewayErr(c.logger, infra.KindRejected, resp.StatusCode, msg, nil)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindMalformed, resp.StatusCode, "unexpected response body from "+req.Operation, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}

var messageKeys = []string{"message", "Message", "mensaje", "Mensaje", "error", "Error", "title"}

// ExtractMessage pulls a human-readable message out of an error body, or returns "".
func ExtractMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var fields map[string]any
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		var text string
		if json.Unmarshal(trimmed, &text) == nil {
			return text
		}
		if trimmed[0] != '<' && len(trimmed) < 512 {
			return string(trimmed)
		}
		return ""
	}

	for _, k := range messageKeys {
		switch v := fields[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			if m, ok := v["message"].(string); ok && m != "" {
				return m
			}
		}
	}
	return ""
}

// IsStatus reports whether err is a backend rejection with the given HTTP status.
func IsStatus(err error, status int) bool {
	var ge infra.GatewayError
	return errors.As(err, &ge) && ge.Status == status
}
