package olog

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	httpClient *http.Client
	verifyTLS  bool
	clientInfo string
	username   string
	password   string
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client. The timeout and TLS options are
// ignored when a custom client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithClientInfo sets the client identification string sent with every
// request in the X-Olog-Client-Info header.
func WithClientInfo(info string) Option {
	return func(o *clientOptions) {
		if info != "" {
			o.clientInfo = info
		}
	}
}

// WithBasicAuth sets Basic Auth credentials at construction time.
// Credentials can also be set later with Client.SetBasicAuth.
func WithBasicAuth(username, password string) Option {
	return func(o *clientOptions) {
		o.username = username
		o.password = password
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
// Use with caution and only for development/testing.
func WithInsecureSkipVerify() Option {
	return func(o *clientOptions) {
		o.verifyTLS = false
	}
}
