// Package simple provides a simplified interface to the Olog service for
// creating and searching log entries, designed for data acquisition
// frameworks that want names-in, names-out semantics instead of the full
// wire types.
package simple

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/sligara7/go-olog/olog"
)

// Client wraps an olog.Client with convenience methods
type Client struct {
	client *olog.Client
	logger zerolog.Logger
}

// New creates a simple client around an existing olog.Client.
func New(client *olog.Client, logger zerolog.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// SetBasicAuth sets credentials on the underlying client.
func (s *Client) SetBasicAuth(username, password string) {
	s.client.SetBasicAuth(username, password)
}

// TagNames returns the names of all tags known to the service.
func (s *Client) TagNames(ctx context.Context) ([]string, error) {
	tags, err := s.client.GetTags(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag.Name != "" {
			names = append(names, tag.Name)
		}
	}
	return names, nil
}

// LogbookNames returns the names of all logbooks known to the service.
func (s *Client) LogbookNames(ctx context.Context) ([]string, error) {
	logbooks, err := s.client.GetLogbooks(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(logbooks))
	for _, lb := range logbooks {
		if lb.Name != "" {
			names = append(names, lb.Name)
		}
	}
	return names, nil
}

// PropertyNames returns all property names mapped to their attribute names.
func (s *Client) PropertyNames(ctx context.Context) (map[string][]string, error) {
	properties, err := s.client.GetProperties(ctx, false)
	if err != nil {
		return nil, err
	}
	result := make(map[string][]string, len(properties))
	for _, prop := range properties {
		if prop.Name == "" {
			continue
		}
		attrs := make([]string, 0, len(prop.Attributes))
		for _, attr := range prop.Attributes {
			if attr.Name != "" {
				attrs = append(attrs, attr.Name)
			}
		}
		result[prop.Name] = attrs
	}
	return result, nil
}

// Query describes a log entry search. ID takes precedence: when set, the
// single matching entry is returned and all other fields are ignored.
type Query struct {
	ID       int64
	Search   string
	Tag      string
	Logbook  string
	Property string
	Owner    string
	Level    string

	// Start/Stop bound the creation time; they are converted to the
	// service's YYYY-MM-DD from/to parameters.
	Start time.Time
	Stop  time.Time

	Size       int
	StartIndex int
}

// Find searches for log entries matching the query.
func (s *Client) Find(ctx context.Context, q Query) ([]olog.Log, error) {
	if q.ID != 0 {
		entry, err := s.client.GetLog(ctx, fmt.Sprintf("%d", q.ID))
		if err != nil {
			return nil, err
		}
		return []olog.Log{*entry}, nil
	}

	params := olog.SearchParams{
		Text:     q.Search,
		Tag:      q.Tag,
		Logbook:  q.Logbook,
		Property: q.Property,
		Owner:    q.Owner,
		Level:    q.Level,
		Size:     q.Size,
		Start:    q.StartIndex,
	}
	if !q.Start.IsZero() {
		params.From = q.Start.Format("2006-01-02")
	}
	if !q.Stop.IsZero() {
		params.To = q.Stop.Format("2006-01-02")
	}

	result, err := s.client.SearchLogs(ctx, params)
	if err != nil {
		return nil, err
	}
	return result.Logs, nil
}

// Message describes a log entry to create or overwrite. Text is used as
// both title and description, matching the behavior expected by data
// acquisition integrations.
type Message struct {
	Text     string
	Logbooks []string
	Tags     []string

	// Properties maps property names to attribute name/value pairs.
	Properties map[string]map[string]string

	// Attachments are file paths to attach to the entry.
	Attachments []string

	// SkipVerify disables checking that referenced logbooks, tags, and
	// properties exist before creating the entry.
	SkipVerify bool
	// Ensure creates missing logbooks, tags, and properties instead of
	// failing. Implies SkipVerify.
	Ensure bool
}

// Log creates a single log entry.
func (s *Client) Log(ctx context.Context, m Message) (*olog.Log, error) {
	if len(m.Logbooks) == 0 {
		return nil, fmt.Errorf("at least one logbook must be specified")
	}

	if err := s.checkReferences(ctx, m); err != nil {
		return nil, err
	}

	entry := olog.NewLogEntry{
		Title:       m.Text,
		Description: m.Text,
		Logbooks:    m.Logbooks,
		Tags:        m.Tags,
		Properties:  formatProperties(m.Properties),
	}

	if len(m.Attachments) > 0 {
		return s.client.CreateLogWithFiles(ctx, entry, m.Attachments)
	}
	return s.client.CreateLog(ctx, entry)
}

// Update overwrites an existing log entry. Zero-valued fields of the
// message are left unchanged.
func (s *Client) Update(ctx context.Context, id int64, m Message) (*olog.Log, error) {
	update := olog.LogUpdate{}
	if m.Text != "" {
		update.Title = &m.Text
		update.Description = &m.Text
	}
	if m.Tags != nil {
		update.Tags = m.Tags
	}
	if m.Properties != nil {
		update.Properties = formatProperties(m.Properties)
	}
	return s.client.UpdateLog(ctx, fmt.Sprintf("%d", id), update)
}

// checkReferences verifies or ensures the logbooks, tags, and properties a
// message refers to.
func (s *Client) checkReferences(ctx context.Context, m Message) error {
	verify := !m.SkipVerify && !m.Ensure
	if !verify && !m.Ensure {
		return nil
	}

	existing, err := s.LogbookNames(ctx)
	if err != nil {
		return err
	}
	for _, name := range m.Logbooks {
		if slices.Contains(existing, name) {
			continue
		}
		if m.Ensure {
			s.logger.Info().Str("logbook", name).Msg("Creating missing logbook")
			if _, err := s.client.CreateLogbook(ctx, olog.Logbook{Name: name}); err != nil {
				return err
			}
		} else {
			return fmt.Errorf("logbook %q does not exist", name)
		}
	}

	if len(m.Tags) > 0 {
		existingTags, err := s.TagNames(ctx)
		if err != nil {
			return err
		}
		for _, name := range m.Tags {
			if slices.Contains(existingTags, name) {
				continue
			}
			if m.Ensure {
				s.logger.Info().Str("tag", name).Msg("Creating missing tag")
				if _, err := s.client.CreateTag(ctx, olog.Tag{Name: name}); err != nil {
					return err
				}
			} else {
				return fmt.Errorf("tag %q does not exist", name)
			}
		}
	}

	if len(m.Properties) > 0 {
		existingProps, err := s.PropertyNames(ctx)
		if err != nil {
			return err
		}
		for name, attrs := range m.Properties {
			if _, ok := existingProps[name]; ok {
				continue
			}
			if m.Ensure {
				s.logger.Info().Str("property", name).Msg("Creating missing property")
				property := olog.Property{Name: name}
				for attrName := range attrs {
					property.Attributes = append(property.Attributes, olog.Attribute{
						Name:  attrName,
						State: olog.StateActive,
					})
				}
				if _, err := s.client.CreateProperty(ctx, property); err != nil {
					return err
				}
			} else {
				return fmt.Errorf("property %q does not exist", name)
			}
		}
	}

	return nil
}

// formatProperties converts the name->attributes map to wire properties.
func formatProperties(properties map[string]map[string]string) []olog.Property {
	if len(properties) == 0 {
		return nil
	}
	result := make([]olog.Property, 0, len(properties))
	for name, attrs := range properties {
		property := olog.Property{Name: name}
		for attrName, attrValue := range attrs {
			property.Attributes = append(property.Attributes, olog.Attribute{
				Name:  attrName,
				Value: attrValue,
			})
		}
		result = append(result, property)
	}
	return result
}
