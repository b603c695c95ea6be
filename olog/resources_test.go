package olog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogbooks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/Olog/logbooks", r.URL.Path)
		json.NewEncoder(w).Encode([]Logbook{
			{Name: "operations", Owner: "olog-logs", State: "Active"},
			{Name: "commissioning", State: "Active"},
		})
	})

	logbooks, err := client.GetLogbooks(context.Background())
	require.NoError(t, err)
	require.Len(t, logbooks, 2)
	assert.Equal(t, "operations", logbooks[0].Name)
	assert.Equal(t, "olog-logs", logbooks[0].Owner)
}

func TestCreateLogbook(t *testing.T) {
	var gotBody Logbook
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/Olog/logbooks/operations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(gotBody)
	})

	created, err := client.CreateLogbook(context.Background(), Logbook{Name: "operations", Owner: "ops"})
	require.NoError(t, err)
	assert.Equal(t, "operations", gotBody.Name)
	assert.Equal(t, "ops", gotBody.Owner)
	assert.Equal(t, "Active", gotBody.State, "state defaults to Active")
	assert.Equal(t, "operations", created.Name)
}

func TestCreateLogbookRequiresName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.CreateLogbook(context.Background(), Logbook{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestUpdateLogbooks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/Olog/logbooks", r.URL.Path)
		var gotBody []Logbook
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Len(t, gotBody, 2)
		json.NewEncoder(w).Encode(gotBody)
	})

	updated, err := client.UpdateLogbooks(context.Background(), []Logbook{
		{Name: "a", State: "Active"},
		{Name: "b", State: "Inactive"},
	})
	require.NoError(t, err)
	assert.Len(t, updated, 2)
}

func TestDeleteLogbook(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/Olog/logbooks/old%20book", r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.DeleteLogbook(context.Background(), "old book"))
	assert.True(t, called)
}

func TestTagLifecycle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/Olog/tags/magnets":
			var tag Tag
			require.NoError(t, json.NewDecoder(r.Body).Decode(&tag))
			assert.Equal(t, "Active", tag.State)
			json.NewEncoder(w).Encode(tag)
		case r.Method == http.MethodGet && r.URL.Path == "/Olog/tags/magnets":
			json.NewEncoder(w).Encode(Tag{Name: "magnets", State: "Active"})
		case r.Method == http.MethodGet && r.URL.Path == "/Olog/tags":
			json.NewEncoder(w).Encode([]Tag{{Name: "magnets"}})
		case r.Method == http.MethodDelete && r.URL.Path == "/Olog/tags/magnets":
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()

	created, err := client.CreateTag(ctx, Tag{Name: "magnets"})
	require.NoError(t, err)
	assert.Equal(t, "magnets", created.Name)

	tag, err := client.GetTag(ctx, "magnets")
	require.NoError(t, err)
	assert.Equal(t, "Active", tag.State)

	tags, err := client.GetTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	require.NoError(t, client.DeleteTag(ctx, "magnets"))
}

func TestGetProperties(t *testing.T) {
	t.Run("active only", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.Query().Get("inactive"))
			json.NewEncoder(w).Encode([]Property{})
		})
		_, err := client.GetProperties(context.Background(), false)
		require.NoError(t, err)
	})

	t.Run("including inactive", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "true", r.URL.Query().Get("inactive"))
			json.NewEncoder(w).Encode([]Property{})
		})
		_, err := client.GetProperties(context.Background(), true)
		require.NoError(t, err)
	})
}

func TestCreateProperty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/Olog/properties/Shift", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// A nil attribute list must be sent as an empty array, not null.
		assert.Contains(t, string(body), `"attributes":[]`)

		var property Property
		require.NoError(t, json.Unmarshal(body, &property))
		json.NewEncoder(w).Encode(property)
	})

	created, err := client.CreateProperty(context.Background(), Property{Name: "Shift"})
	require.NoError(t, err)
	assert.Equal(t, "Shift", created.Name)
	assert.Equal(t, "Active", created.State)
}

func TestLevels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/Olog/levels/Urgent":
			var level Level
			require.NoError(t, json.NewDecoder(r.Body).Decode(&level))
			assert.True(t, level.DefaultLevel)
			json.NewEncoder(w).Encode(level)
		case r.Method == http.MethodPut && r.URL.Path == "/Olog/levels":
			var levels []Level
			require.NoError(t, json.NewDecoder(r.Body).Decode(&levels))
			assert.Len(t, levels, 2)
			json.NewEncoder(w).Encode(levels)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	ctx := context.Background()

	created, err := client.CreateLevel(ctx, Level{Name: "Urgent", DefaultLevel: true})
	require.NoError(t, err)
	assert.Equal(t, "Urgent", created.Name)

	batch, err := client.CreateLevels(ctx, []Level{{Name: "Info"}, {Name: "Problem"}})
	require.NoError(t, err)
	assert.Len(t, batch, 2)
}

func TestCreateTemplate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/Olog/templates", r.URL.Path)

		var template Template
		require.NoError(t, json.NewDecoder(r.Body).Decode(&template))
		assert.Equal(t, "shift-summary", template.Name)
		require.Len(t, template.Logbooks, 1)
		assert.Equal(t, "operations", template.Logbooks[0].Name)
		assert.NotNil(t, template.Tags)

		template.ID = "abc123"
		json.NewEncoder(w).Encode(template)
	})

	created, err := client.CreateTemplate(context.Background(), Template{
		Name:     "shift-summary",
		Title:    "Shift summary",
		Logbooks: []Logbook{{Name: "operations"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", created.ID)
}

func TestCreateTemplateValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	tests := []struct {
		name     string
		template Template
	}{
		{"missing name", Template{Title: "t", Logbooks: []Logbook{{Name: "ops"}}}},
		{"missing title", Template{Name: "n", Logbooks: []Logbook{{Name: "ops"}}}},
		{"no logbooks", Template{Name: "n", Title: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateTemplate(context.Background(), tt.template)
			require.Error(t, err)
		})
	}
}

func TestGetServiceInfo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Olog", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"name": "Olog Service", "version": "5.0.0"})
	})

	info, err := client.GetServiceInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Olog Service", info["name"])
}

func TestGetHelp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Olog/help/SearchHelp", r.URL.Path)
		assert.Equal(t, "de", r.URL.Query().Get("lang"))
		w.Write([]byte("<html>hilfe</html>"))
	})

	text, err := client.GetHelp(context.Background(), "SearchHelp", "de")
	require.NoError(t, err)
	assert.Contains(t, text, "hilfe")
}
