package olog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetServiceInfo returns service information and health status. The shape
// of the response is service-defined, so it is returned as a generic map.
func (c *Client) GetServiceInfo(ctx context.Context) (map[string]any, error) {
	var info map[string]any
	if err := c.getJSON(ctx, "", nil, &info); err != nil {
		return nil, fmt.Errorf("failed to get service info: %w", err)
	}
	return info, nil
}

// GetServiceConfiguration returns the service configuration.
func (c *Client) GetServiceConfiguration(ctx context.Context) (map[string]any, error) {
	var config map[string]any
	if err := c.getJSON(ctx, "/configuration", nil, &config); err != nil {
		return nil, fmt.Errorf("failed to get service configuration: %w", err)
	}
	return config, nil
}

// GetHelp returns the help document for a topic. Languages other than
// English are requested through the lang parameter.
func (c *Client) GetHelp(ctx context.Context, topic, language string) (string, error) {
	var params url.Values
	if language != "" && language != "en" {
		params = url.Values{"lang": {language}}
	}
	body, err := c.doRequest(ctx, http.MethodGet, "/help/"+url.PathEscape(topic), params, nil, "")
	if err != nil {
		return "", fmt.Errorf("failed to get help for %q: %w", topic, err)
	}
	return string(body), nil
}
