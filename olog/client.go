package olog

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// apiRoot is the fixed path prefix of every Olog endpoint.
const apiRoot = "/Olog"

const (
	defaultTimeout    = 30 * time.Second
	defaultClientInfo = "Go Olog Client"
)

// Client wraps the Phoebus Olog REST API
type Client struct {
	baseURL    string
	clientInfo string
	httpClient *http.Client
	logger     zerolog.Logger

	authMu   sync.RWMutex
	username string
	password string
}

// NewClient creates a new Olog client. The base URL must point at the
// service root (the /Olog path prefix is added by the client).
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	options := clientOptions{
		timeout:    defaultTimeout,
		verifyTLS:  true,
		clientInfo: defaultClientInfo,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
		if !options.verifyTLS {
			httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}
	}

	return &Client{
		baseURL:    baseURL,
		clientInfo: options.clientInfo,
		httpClient: httpClient,
		logger:     logger,
		username:   options.username,
		password:   options.password,
	}, nil
}

// SetBasicAuth sets Basic Auth credentials for subsequent requests.
// Credentials are never read from configuration files or the environment.
func (c *Client) SetBasicAuth(username, password string) {
	c.authMu.Lock()
	c.username = username
	c.password = password
	c.authMu.Unlock()
}

// ClearAuth removes previously set credentials.
func (c *Client) ClearAuth() {
	c.SetBasicAuth("", "")
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the client's idle connections. The client must not be used
// after Close returns.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// doRequest performs an HTTP request against an Olog endpoint and returns
// the raw response body. Non-2xx responses are returned as *APIError.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, body io.Reader, contentType string) ([]byte, error) {
	requestURL := c.baseURL + apiRoot + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Olog-Client-Info", c.clientInfo)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.authMu.RLock()
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	c.authMu.RUnlock()

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making Olog API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	body, err := c.doRequest(ctx, http.MethodGet, endpoint, params, nil, "")
	if err != nil {
		return err
	}
	return decodeJSON(body, out)
}

// putJSON performs a PUT request with a JSON payload and decodes the response.
func (c *Client) putJSON(ctx context.Context, endpoint string, params url.Values, payload, out any) error {
	body, err := c.requestJSON(ctx, http.MethodPut, endpoint, params, payload)
	if err != nil {
		return err
	}
	return decodeJSON(body, out)
}

// postJSON performs a POST request with a JSON payload and decodes the response.
func (c *Client) postJSON(ctx context.Context, endpoint string, params url.Values, payload, out any) error {
	body, err := c.requestJSON(ctx, http.MethodPost, endpoint, params, payload)
	if err != nil {
		return err
	}
	return decodeJSON(body, out)
}

// del performs a DELETE request.
func (c *Client) del(ctx context.Context, endpoint string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, endpoint, nil, nil, "")
	return err
}

func (c *Client) requestJSON(ctx context.Context, method, endpoint string, params url.Values, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}
	return c.doRequest(ctx, method, endpoint, params, body, "application/json")
}

// decodeJSON decodes a response body into out. Empty bodies and nil targets
// are treated as a successful no-op.
func decodeJSON(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
