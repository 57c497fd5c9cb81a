// Package provider talks to the HorizonDataWave API. Every call is a JSON
// POST bounded by its own deadline; failures are reported as AppErrors of
// type config, upstream, timeout, connection or internal.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"prospect-finder/internal/common/errors"
	"prospect-finder/internal/common/logging"
)

// MissingTokenMessage is reported when no access token is configured.
const MissingTokenMessage = "HDW_ACCESS_TOKEN manquant"

// DefaultTimeout bounds calls made without an explicit timeout.
const DefaultTimeout = 10 * time.Second

// Config holds the provider connection settings
type Config struct {
	BaseURL        string
	AccessToken    string
	DefaultTimeout time.Duration
}

// Guard wraps a provider call, e.g. with a circuit breaker keyed by endpoint.
type Guard interface {
	Execute(ctx context.Context, name string, fn func() error) error
}

// Client issues bounded requests against the provider
type Client struct {
	config     Config
	httpClient *http.Client
	guard      Guard
	logger     logging.Logger
}

// Option customises a Client
type Option func(*Client)

// WithGuard routes every call through g
func WithGuard(g Guard) Option {
	return func(c *Client) {
		c.guard = g
	}
}

// WithLogger sets the client logger
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a provider client. A missing token is accepted here and
// reported by every call instead.
func NewClient(config Config, httpClient *http.Client, opts ...Option) *Client {
	if config.DefaultTimeout <= 0 {
		config.DefaultTimeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		config:     config,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.GetGlobalLogger()
	}
	return c
}

// CheckCredentials fails with a config error when no token is configured.
func (c *Client) CheckCredentials() error {
	if c.config.AccessToken == "" {
		return errors.ConfigError(MissingTokenMessage)
	}
	return nil
}

// Call posts payload as JSON to endpoint and returns the raw JSON answer.
// A zero timeout uses the configured default. The request context is
// cancelled when the call returns, so an expired deadline aborts the
// in-flight transport operation and releases its connection.
func (c *Client) Call(ctx context.Context, endpoint string, payload interface{}, timeout time.Duration) (json.RawMessage, error) {
	if err := c.CheckCredentials(); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = c.config.DefaultTimeout
	}

	if c.guard == nil {
		return c.do(ctx, endpoint, payload, timeout)
	}

	var result json.RawMessage
	err := c.guard.Execute(ctx, endpoint, func() error {
		var callErr error
		result, callErr = c.do(ctx, endpoint, payload, timeout)
		return callErr
	})
	return result, err
}

func (c *Client) do(ctx context.Context, endpoint string, payload interface{}, timeout time.Duration) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.InternalError(fmt.Sprintf("failed to encode payload for %s", endpoint), err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint), bytes.NewReader(body))
	if err != nil {
		return nil, errors.InternalError(fmt.Sprintf("failed to build request for %s", endpoint), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access-token", c.config.AccessToken)

	c.logger.WithContext(ctx).Debug("Calling provider",
		logging.String("endpoint", endpoint),
		logging.Duration("timeout", timeout),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.translateTransportError(ctx, endpoint, timeout, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.translateTransportError(ctx, endpoint, timeout, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.UpstreamError(resp.StatusCode, upstreamMessage(resp.StatusCode, data)).
			WithContext("endpoint", endpoint)
	}

	if !json.Valid(data) {
		return nil, errors.InternalError(fmt.Sprintf("invalid JSON returned by %s", endpoint), nil)
	}

	return json.RawMessage(data), nil
}

func (c *Client) translateTransportError(ctx context.Context, endpoint string, timeout time.Duration, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return errors.TimeoutError(timeout, endpoint)
	}
	if ctx.Err() == context.Canceled {
		return errors.InternalError(fmt.Sprintf("request to %s cancelled", endpoint), ctx.Err())
	}
	return errors.ConnectionError(fmt.Sprintf("request to %s failed", endpoint), err)
}

func (c *Client) endpointURL(endpoint string) string {
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// upstreamMessage pulls a human readable message out of an error body and
// falls back to the status text. It never fails.
func upstreamMessage(status int, data []byte) string {
	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if msg := messageFrom(body[key]); msg != "" {
				return msg
			}
		}
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

func messageFrom(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]interface{}:
		if msg, ok := val["message"].(string); ok {
			return msg
		}
	case []interface{}:
		// validation style: [{"msg": "..."}]
		if len(val) > 0 {
			if first, ok := val[0].(map[string]interface{}); ok {
				if msg, ok := first["msg"].(string); ok {
					return msg
				}
			}
		}
	}
	return ""
}
