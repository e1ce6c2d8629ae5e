package soap

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tour-storefront/internal/infra"
	"tour-storefront/internal/pkg/metrics"
)

const transportName = "soap"

type Client struct {
	endpoint  string
	namespace string
	http      *http.Client
	logger    *slog.Logger
}

func NewClient(endpoint, namespace string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithHTTP(endpoint, namespace, &http.Client{Timeout: timeout}, logger)
}

func NewClientWithHTTP(endpoint, namespace string, httpClient *http.Client, logger *slog.Logger) *Client {
	if !strings.HasSuffix(namespace, "/") {
		namespace += "/"
	}
	return &Client{
		endpoint:  endpoint,
		namespace: namespace,
		http:      httpClient,
		logger:    logger,
	}
}

// Call invokes req.Action and returns the decoded <{Action}Result>: nil, a string, or a Node.
func (c *Client) Call(ctx context.Context, req Request) (res any, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveBackendCall(transportName, req.Action, err, time.Since(start))
	}()

	envelope, err := BuildEnvelope(c.namespace, req)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, 0, "failed to build envelope for "+req.Action, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(envelope))
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, 0, "failed to build request for "+req.Action, err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.Header.Set("SOAPAction", c.namespace+req.Action)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, 0, "failed to reach soap endpoint for "+req.Action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindTransport, resp.StatusCode, "failed to read soap response for "+req.Action, err)
	}
	c.logger.Debug("soap response received", "action", req.Action, "status", resp.StatusCode, "bytes", len(body))

	root, parseErr := parseTree(body)
	if parseErr == nil {
		if msg, isFault := faultString(root); isFault {
			return nil, infra.WrapGatewayErr(c.logger, infra.KindFault, resp.StatusCode, msg, nil)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "SOAP Error: " + http.StatusText(resp.StatusCode)
		if text := strings.TrimSpace(string(bytes.TrimSpace(body))); text != "" && parseErr != nil && len(text) < 512 {
			msg += " - " + text
		}
		return nil, infra.WrapGatewayErr(c.logger, infra.KindRejected, resp.StatusCode, msg, nil)
	}
	if parseErr != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindMalformed, resp.StatusCode, "unreadable soap response for "+req.Action, parseErr)
	}

	return result(root, req.Action), nil
}
