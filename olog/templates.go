package olog

import (
	"context"
	"fmt"
	"net/url"
)

// GetTemplates retrieves all log templates.
func (c *Client) GetTemplates(ctx context.Context) ([]Template, error) {
	var templates []Template
	if err := c.getJSON(ctx, "/templates", nil, &templates); err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	c.logger.Debug().Int("count", len(templates)).Msg("Retrieved templates")
	return templates, nil
}

// GetTemplate retrieves a single template by ID.
func (c *Client) GetTemplate(ctx context.Context, id string) (*Template, error) {
	var template Template
	if err := c.getJSON(ctx, "/templates/"+url.PathEscape(id), nil, &template); err != nil {
		return nil, fmt.Errorf("failed to get template %q: %w", id, err)
	}
	return &template, nil
}

// CreateTemplate creates a log template. Name, title, and at least one
// logbook are required; nil tag and property lists are sent as empty.
func (c *Client) CreateTemplate(ctx context.Context, template Template) (*Template, error) {
	if err := template.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	if template.Tags == nil {
		template.Tags = []Tag{}
	}
	if template.Properties == nil {
		template.Properties = []Property{}
	}
	var created Template
	if err := c.putJSON(ctx, "/templates", nil, template, &created); err != nil {
		return nil, fmt.Errorf("failed to create template %q: %w", template.Name, err)
	}
	return &created, nil
}

// DeleteTemplate deletes a template by ID.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	if err := c.del(ctx, "/templates/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete template %q: %w", id, err)
	}
	c.logger.Info().Str("template", id).Msg("Deleted template")
	return nil
}
