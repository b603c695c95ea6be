package olog

import (
	"context"
	"fmt"
	"net/url"
)

// GetTags retrieves all tags.
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.getJSON(ctx, "/tags", nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	c.logger.Debug().Int("count", len(tags)).Msg("Retrieved tags")
	return tags, nil
}

// GetTag retrieves a single tag by name.
func (c *Client) GetTag(ctx context.Context, name string) (*Tag, error) {
	var tag Tag
	if err := c.getJSON(ctx, "/tags/"+url.PathEscape(name), nil, &tag); err != nil {
		return nil, fmt.Errorf("failed to get tag %q: %w", name, err)
	}
	return &tag, nil
}

// CreateTag creates a tag. The state defaults to Active when unset.
func (c *Client) CreateTag(ctx context.Context, tag Tag) (*Tag, error) {
	if tag.Name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if tag.State == "" {
		tag.State = StateActive
	}
	var created Tag
	if err := c.putJSON(ctx, "/tags/"+url.PathEscape(tag.Name), nil, tag, &created); err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", tag.Name, err)
	}
	return &created, nil
}

// UpdateTags creates or updates multiple tags in one request.
func (c *Client) UpdateTags(ctx context.Context, tags []Tag) ([]Tag, error) {
	var updated []Tag
	if err := c.putJSON(ctx, "/tags", nil, tags, &updated); err != nil {
		return nil, fmt.Errorf("failed to update tags: %w", err)
	}
	return updated, nil
}

// DeleteTag deletes a tag.
func (c *Client) DeleteTag(ctx context.Context, name string) error {
	if err := c.del(ctx, "/tags/"+url.PathEscape(name)); err != nil {
		return fmt.Errorf("failed to delete tag %q: %w", name, err)
	}
	c.logger.Info().Str("tag", name).Msg("Deleted tag")
	return nil
}
