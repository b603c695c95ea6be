package olog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, zerolog.Nop(), opts...)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing URL", func(t *testing.T) {
		_, err := NewClient("", logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080/", logger)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", client.BaseURL())
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", logger)
		require.NoError(t, err)
		assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
		assert.Equal(t, defaultClientInfo, client.clientInfo)
	})
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with client info", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", logger, WithClientInfo("my-app v1.0"))
		require.NoError(t, err)
		assert.Equal(t, "my-app v1.0", client.clientInfo)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("http://localhost:8080", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with insecure skip verify", func(t *testing.T) {
		client, err := NewClient("https://localhost:8443", logger, WithInsecureSkipVerify())
		require.NoError(t, err)
		transport, ok := client.httpClient.Transport.(*http.Transport)
		require.True(t, ok)
		assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
	})
}

func TestRequestHeaders(t *testing.T) {
	var gotClientInfo, gotAccept string
	var gotUser, gotPass string
	var gotAuth bool

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotClientInfo = r.Header.Get("X-Olog-Client-Info")
		gotAccept = r.Header.Get("Accept")
		gotUser, gotPass, gotAuth = r.BasicAuth()
		json.NewEncoder(w).Encode([]Tag{})
	}, WithClientInfo("test-suite"))

	ctx := context.Background()

	_, err := client.GetTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test-suite", gotClientInfo)
	assert.Equal(t, "application/json", gotAccept)
	assert.False(t, gotAuth, "no credentials should be sent before SetBasicAuth")

	client.SetBasicAuth("admin", "adminPass")
	_, err = client.GetTags(ctx)
	require.NoError(t, err)
	require.True(t, gotAuth)
	assert.Equal(t, "admin", gotUser)
	assert.Equal(t, "adminPass", gotPass)

	client.ClearAuth()
	_, err = client.GetTags(ctx)
	require.NoError(t, err)
	assert.False(t, gotAuth, "credentials should be gone after ClearAuth")
}

func TestAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad credentials"))
	})

	_, err := client.GetLogbooks(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "bad credentials")
	assert.True(t, apiErr.IsUnauthorized())
	assert.False(t, apiErr.IsNotFound())
}

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		notFound     bool
		unauthorized bool
	}{
		{"not found", http.StatusNotFound, true, false},
		{"unauthorized", http.StatusUnauthorized, false, true},
		{"forbidden", http.StatusForbidden, false, true},
		{"server error", http.StatusInternalServerError, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := &APIError{StatusCode: tt.status}
			assert.Equal(t, tt.notFound, apiErr.IsNotFound())
			assert.Equal(t, tt.unauthorized, apiErr.IsUnauthorized())
		})
	}
}

func TestMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	_, err := client.GetLogbooks(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestEmptyResponseBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// An empty 200 body is a successful no-op, not a decode failure.
	_, err := client.GetLogbook(context.Background(), "operations")
	require.NoError(t, err)
}
