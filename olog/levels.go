package olog

import (
	"context"
	"fmt"
	"net/url"
)

// GetLevels retrieves all levels.
func (c *Client) GetLevels(ctx context.Context) ([]Level, error) {
	var levels []Level
	if err := c.getJSON(ctx, "/levels", nil, &levels); err != nil {
		return nil, fmt.Errorf("failed to get levels: %w", err)
	}
	c.logger.Debug().Int("count", len(levels)).Msg("Retrieved levels")
	return levels, nil
}

// GetLevel retrieves a single level by name.
func (c *Client) GetLevel(ctx context.Context, name string) (*Level, error) {
	var level Level
	if err := c.getJSON(ctx, "/levels/"+url.PathEscape(name), nil, &level); err != nil {
		return nil, fmt.Errorf("failed to get level %q: %w", name, err)
	}
	return &level, nil
}

// CreateLevel creates a level.
func (c *Client) CreateLevel(ctx context.Context, level Level) (*Level, error) {
	if level.Name == "" {
		return nil, fmt.Errorf("level name is required")
	}
	var created Level
	if err := c.putJSON(ctx, "/levels/"+url.PathEscape(level.Name), nil, level, &created); err != nil {
		return nil, fmt.Errorf("failed to create level %q: %w", level.Name, err)
	}
	return &created, nil
}

// CreateLevels creates multiple levels in one request.
func (c *Client) CreateLevels(ctx context.Context, levels []Level) ([]Level, error) {
	var created []Level
	if err := c.putJSON(ctx, "/levels", nil, levels, &created); err != nil {
		return nil, fmt.Errorf("failed to create levels: %w", err)
	}
	return created, nil
}

// DeleteLevel deletes a level.
func (c *Client) DeleteLevel(ctx context.Context, name string) error {
	if err := c.del(ctx, "/levels/"+url.PathEscape(name)); err != nil {
		return fmt.Errorf("failed to delete level %q: %w", name, err)
	}
	c.logger.Info().Str("level", name).Msg("Deleted level")
	return nil
}
