package olog

import (
	"context"
	"fmt"
	"net/url"
)

// GetLogbooks retrieves all logbooks.
func (c *Client) GetLogbooks(ctx context.Context) ([]Logbook, error) {
	var logbooks []Logbook
	if err := c.getJSON(ctx, "/logbooks", nil, &logbooks); err != nil {
		return nil, fmt.Errorf("failed to get logbooks: %w", err)
	}
	c.logger.Debug().Int("count", len(logbooks)).Msg("Retrieved logbooks")
	return logbooks, nil
}

// GetLogbook retrieves a single logbook by name.
func (c *Client) GetLogbook(ctx context.Context, name string) (*Logbook, error) {
	var logbook Logbook
	if err := c.getJSON(ctx, "/logbooks/"+url.PathEscape(name), nil, &logbook); err != nil {
		return nil, fmt.Errorf("failed to get logbook %q: %w", name, err)
	}
	return &logbook, nil
}

// CreateLogbook creates a logbook. The state defaults to Active when unset.
func (c *Client) CreateLogbook(ctx context.Context, logbook Logbook) (*Logbook, error) {
	if logbook.Name == "" {
		return nil, fmt.Errorf("logbook name is required")
	}
	if logbook.State == "" {
		logbook.State = StateActive
	}
	var created Logbook
	if err := c.putJSON(ctx, "/logbooks/"+url.PathEscape(logbook.Name), nil, logbook, &created); err != nil {
		return nil, fmt.Errorf("failed to create logbook %q: %w", logbook.Name, err)
	}
	return &created, nil
}

// UpdateLogbooks creates or updates multiple logbooks in one request.
func (c *Client) UpdateLogbooks(ctx context.Context, logbooks []Logbook) ([]Logbook, error) {
	var updated []Logbook
	if err := c.putJSON(ctx, "/logbooks", nil, logbooks, &updated); err != nil {
		return nil, fmt.Errorf("failed to update logbooks: %w", err)
	}
	return updated, nil
}

// DeleteLogbook deletes a logbook.
func (c *Client) DeleteLogbook(ctx context.Context, name string) error {
	if err := c.del(ctx, "/logbooks/"+url.PathEscape(name)); err != nil {
		return fmt.Errorf("failed to delete logbook %q: %w", name, err)
	}
	c.logger.Info().Str("logbook", name).Msg("Deleted logbook")
	return nil
}
