package olog

import (
	"net/url"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Resource states used by logbooks, tags, and properties.
const (
	StateActive   = "Active"
	StateInactive = "Inactive"
)

// Logbook is a named container for log entries
type Logbook struct {
	Name  string `json:"name"`
	Owner string `json:"owner,omitempty"`
	State string `json:"state,omitempty"`
}

// Tag is a label attachable to log entries
type Tag struct {
	Name  string `json:"name"`
	State string `json:"state,omitempty"`
}

// Attribute is a single key/value pair within a property
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	State string `json:"state,omitempty"`
}

// Property is a named collection of attributes attachable to log entries
type Property struct {
	Name       string      `json:"name"`
	Owner      string      `json:"owner,omitempty"`
	State      string      `json:"state,omitempty"`
	Attributes []Attribute `json:"attributes"`
}

// Level is a severity/classification label for log entries
type Level struct {
	Name         string `json:"name"`
	DefaultLevel bool   `json:"defaultLevel"`
}

// Template is a reusable log entry skeleton
type Template struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	Title      string     `json:"title"`
	Source     string     `json:"source,omitempty"`
	Level      string     `json:"level,omitempty"`
	Logbooks   []Logbook  `json:"logbooks"`
	Tags       []Tag      `json:"tags"`
	Properties []Property `json:"properties"`
}

// Validate checks the fields required to create a template.
func (t Template) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Title, validation.Required),
		validation.Field(&t.Logbooks, validation.Required, validation.Length(1, 0)),
	)
}

// Attachment describes a file attached to a log entry
type Attachment struct {
	ID                      string `json:"id,omitempty"`
	Filename                string `json:"filename"`
	FileMetadataDescription string `json:"fileMetadataDescription,omitempty"`
}

// Log is a log entry as returned by the service. Timestamps are epoch
// milliseconds on the wire; use CreatedTime and ModifyTime for time.Time
// values.
type Log struct {
	ID          int64        `json:"id,omitempty"`
	Owner       string       `json:"owner,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Source      string       `json:"source,omitempty"`
	Level       string       `json:"level,omitempty"`
	State       string       `json:"state,omitempty"`
	CreatedDate int64        `json:"createdDate,omitempty"`
	ModifyDate  int64        `json:"modifyDate,omitempty"`
	Logbooks    []Logbook    `json:"logbooks,omitempty"`
	Tags        []Tag        `json:"tags,omitempty"`
	Properties  []Property   `json:"properties"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// CreatedTime returns the creation timestamp as a time.Time.
func (l Log) CreatedTime() time.Time {
	return time.UnixMilli(l.CreatedDate)
}

// ModifyTime returns the last modification timestamp as a time.Time.
func (l Log) ModifyTime() time.Time {
	return time.UnixMilli(l.ModifyDate)
}

// LogbookNames returns the names of the logbooks the entry belongs to.
func (l Log) LogbookNames() []string {
	names := make([]string, 0, len(l.Logbooks))
	for _, lb := range l.Logbooks {
		names = append(names, lb.Name)
	}
	return names
}

// TagNames returns the names of the entry's tags.
func (l Log) TagNames() []string {
	names := make([]string, 0, len(l.Tags))
	for _, tag := range l.Tags {
		names = append(names, tag.Name)
	}
	return names
}

// NewLogEntry describes a log entry to be created. Title and at least one
// logbook are required; everything else is optional.
type NewLogEntry struct {
	Title       string
	Description string
	Logbooks    []string
	Level       string
	Tags        []string
	Properties  []Property

	// Markup selects the markup scheme for the description.
	Markup string
	// InReplyTo references the entry this one replies to.
	InReplyTo string
}

// Validate checks that the entry can be submitted.
func (e NewLogEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Logbooks, validation.Required, validation.Length(1, 0)),
	)
}

// payload builds the wire representation of the new entry.
func (e NewLogEntry) payload() Log {
	logbooks := make([]Logbook, 0, len(e.Logbooks))
	for _, name := range e.Logbooks {
		logbooks = append(logbooks, Logbook{Name: name})
	}
	tags := make([]Tag, 0, len(e.Tags))
	for _, name := range e.Tags {
		tags = append(tags, Tag{Name: name})
	}
	properties := e.Properties
	if properties == nil {
		properties = []Property{}
	}
	return Log{
		Title:       e.Title,
		Description: e.Description,
		Level:       e.Level,
		Logbooks:    logbooks,
		Tags:        tags,
		Properties:  properties,
	}
}

// params builds the query parameters for entry creation.
func (e NewLogEntry) params() url.Values {
	params := url.Values{}
	if e.Markup != "" {
		params.Set("markup", e.Markup)
	}
	if e.InReplyTo != "" {
		params.Set("inReplyTo", e.InReplyTo)
	}
	return params
}

// LogUpdate describes a partial update of an existing entry. Nil fields are
// left unchanged; a non-nil empty slice clears the corresponding list.
type LogUpdate struct {
	Title       *string
	Description *string
	Level       *string
	Tags        []string
	Properties  []Property
	Markup      string
}

// SearchResult is the response of the log search endpoint
type SearchResult struct {
	HitCount int   `json:"hitCount"`
	Logs     []Log `json:"logs"`
}

// SearchParams describes a log entry search. Zero-valued fields are omitted
// from the request. Extra carries any additional parameters the service
// understands beyond the named ones.
type SearchParams struct {
	Start int
	Size  int

	// From/To bound the creation date (YYYY-MM-DD). FromDate and ToDate are
	// accepted aliases.
	From     string
	To       string
	FromDate string
	ToDate   string

	Text     string
	Logbook  string
	Tag      string
	Owner    string
	Level    string
	Property string

	Extra url.Values
}

// values maps the search parameters onto the service's query keys.
func (p SearchParams) values() url.Values {
	params := url.Values{}
	for key, vals := range p.Extra {
		params[key] = vals
	}
	if p.Start > 0 {
		params.Set("start", strconv.Itoa(p.Start))
	}
	if p.Size > 0 {
		params.Set("size", strconv.Itoa(p.Size))
	}
	from := p.From
	if from == "" {
		from = p.FromDate
	}
	if from != "" {
		params.Set("from", from)
	}
	to := p.To
	if to == "" {
		to = p.ToDate
	}
	if to != "" {
		params.Set("to", to)
	}
	setIfNotEmpty(params, "text", p.Text)
	setIfNotEmpty(params, "logbook", p.Logbook)
	setIfNotEmpty(params, "tag", p.Tag)
	setIfNotEmpty(params, "owner", p.Owner)
	setIfNotEmpty(params, "level", p.Level)
	setIfNotEmpty(params, "properties", p.Property)
	return params
}

func setIfNotEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
