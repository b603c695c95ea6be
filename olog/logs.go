package olog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SearchLogs searches log entries.
func (c *Client) SearchLogs(ctx context.Context, params SearchParams) (*SearchResult, error) {
	var result SearchResult
	if err := c.getJSON(ctx, "/logs/search", params.values(), &result); err != nil {
		return nil, fmt.Errorf("failed to search logs: %w", err)
	}
	c.logger.Debug().
		Int("hits", result.HitCount).
		Int("returned", len(result.Logs)).
		Msg("Searched log entries")
	return &result, nil
}

// GetLog retrieves a single log entry by ID.
func (c *Client) GetLog(ctx context.Context, id string) (*Log, error) {
	var entry Log
	if err := c.getJSON(ctx, "/logs/"+url.PathEscape(id), nil, &entry); err != nil {
		return nil, fmt.Errorf("failed to get log %q: %w", id, err)
	}
	return &entry, nil
}

// GetArchivedLog retrieves an archived log entry by ID.
func (c *Client) GetArchivedLog(ctx context.Context, id string) (*Log, error) {
	var entry Log
	if err := c.getJSON(ctx, "/logs/archived/"+url.PathEscape(id), nil, &entry); err != nil {
		return nil, fmt.Errorf("failed to get archived log %q: %w", id, err)
	}
	return &entry, nil
}

// CreateLog creates a new log entry. A title and at least one logbook are
// required.
func (c *Client) CreateLog(ctx context.Context, entry NewLogEntry) (*Log, error) {
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid log entry: %w", err)
	}
	var created Log
	if err := c.putJSON(ctx, "/logs", entry.params(), entry.payload(), &created); err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}
	c.logger.Info().Int64("id", created.ID).Str("title", entry.Title).Msg("Created log entry")
	return &created, nil
}

// UpdateLog updates an existing log entry. The current entry is fetched
// first and only the fields set in update are replaced, so unspecified
// fields keep their stored values.
func (c *Client) UpdateLog(ctx context.Context, id string, update LogUpdate) (*Log, error) {
	current, err := c.GetLog(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		current.Title = *update.Title
	}
	if update.Description != nil {
		current.Description = *update.Description
	}
	if update.Level != nil {
		current.Level = *update.Level
	}
	if update.Tags != nil {
		tags := make([]Tag, 0, len(update.Tags))
		for _, name := range update.Tags {
			tags = append(tags, Tag{Name: name})
		}
		current.Tags = tags
	}
	if update.Properties != nil {
		current.Properties = update.Properties
	}

	params := url.Values{}
	if update.Markup != "" {
		params.Set("markup", update.Markup)
	}

	var updated Log
	if err := c.postJSON(ctx, "/logs/"+url.PathEscape(id), params, current, &updated); err != nil {
		return nil, fmt.Errorf("failed to update log %q: %w", id, err)
	}
	c.logger.Info().Str("id", id).Msg("Updated log entry")
	return &updated, nil
}

// GroupLogs groups multiple log entries together.
func (c *Client) GroupLogs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("no log IDs to group")
	}
	if _, err := c.requestJSON(ctx, http.MethodPost, "/logs/group", nil, ids); err != nil {
		return fmt.Errorf("failed to group logs: %w", err)
	}
	c.logger.Info().Ints64("ids", ids).Msg("Grouped log entries")
	return nil
}
