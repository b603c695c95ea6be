// Package olog provides a client for interacting with the Phoebus Olog REST API.
//
// Phoebus Olog is an electronic logbook service for accelerator and experiment
// operations. This package implements a clean, idiomatic Go client covering
// the full resource surface: log entries, logbooks, tags, properties, levels,
// templates, and file attachments.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The main API client holding the HTTP session and credentials
//   - Types: Wire models for Olog resources (logs, logbooks, tags, ...)
//   - Errors: Structured error types for better error handling
//
// Every endpoint method funnels through a small set of request helpers that
// attach authentication and the client identification header, and raise a
// structured error on non-2xx responses.
//
// # Usage
//
// Create a new client with the Olog service URL:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := olog.NewClient(
//		"https://olog.example.com:8443",
//		logger,
//		olog.WithTimeout(60*time.Second),
//		olog.WithClientInfo("my-app v1.0"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.SetBasicAuth("admin", "adminPass")
//
//	ctx := context.Background()
//	entry, err := client.CreateLog(ctx, olog.NewLogEntry{
//		Title:    "Beam restored",
//		Logbooks: []string{"operations"},
//	})
//
// Credentials are only ever set programmatically, either through
// WithBasicAuth at construction or SetBasicAuth afterwards; they are never
// read from configuration files or the environment.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the original status
// code and response body:
//
//	var apiErr *olog.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// Handle missing resource
//	}
package olog
