package olog

import (
	"context"
	"fmt"
	"net/url"
)

// GetProperties retrieves all properties. With inactive set, inactive
// properties are included in the result.
func (c *Client) GetProperties(ctx context.Context, inactive bool) ([]Property, error) {
	var params url.Values
	if inactive {
		params = url.Values{"inactive": {"true"}}
	}
	var properties []Property
	if err := c.getJSON(ctx, "/properties", params, &properties); err != nil {
		return nil, fmt.Errorf("failed to get properties: %w", err)
	}
	c.logger.Debug().Int("count", len(properties)).Msg("Retrieved properties")
	return properties, nil
}

// GetProperty retrieves a single property by name.
func (c *Client) GetProperty(ctx context.Context, name string) (*Property, error) {
	var property Property
	if err := c.getJSON(ctx, "/properties/"+url.PathEscape(name), nil, &property); err != nil {
		return nil, fmt.Errorf("failed to get property %q: %w", name, err)
	}
	return &property, nil
}

// CreateProperty creates a property. The state defaults to Active when
// unset, and a nil attribute list is sent as empty.
func (c *Client) CreateProperty(ctx context.Context, property Property) (*Property, error) {
	if property.Name == "" {
		return nil, fmt.Errorf("property name is required")
	}
	if property.State == "" {
		property.State = StateActive
	}
	if property.Attributes == nil {
		property.Attributes = []Attribute{}
	}
	var created Property
	if err := c.putJSON(ctx, "/properties/"+url.PathEscape(property.Name), nil, property, &created); err != nil {
		return nil, fmt.Errorf("failed to create property %q: %w", property.Name, err)
	}
	return &created, nil
}

// UpdateProperties creates or updates multiple properties in one request.
func (c *Client) UpdateProperties(ctx context.Context, properties []Property) ([]Property, error) {
	var updated []Property
	if err := c.putJSON(ctx, "/properties", nil, properties, &updated); err != nil {
		return nil, fmt.Errorf("failed to update properties: %w", err)
	}
	return updated, nil
}

// DeleteProperty deletes a property.
func (c *Client) DeleteProperty(ctx context.Context, name string) error {
	if err := c.del(ctx, "/properties/"+url.PathEscape(name)); err != nil {
		return fmt.Errorf("failed to delete property %q: %w", name, err)
	}
	c.logger.Info().Str("property", name).Msg("Deleted property")
	return nil
}
