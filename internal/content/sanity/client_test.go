package sanity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientProjects(t *testing.T) {
	var gotQuery, gotSlug string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotSlug = r.URL.Query().Get("$slug")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{"_id": "project-1", "_type": "brandingProject", "title": "Kaizen Dezain"},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	records, err := client.Projects(context.Background(), AllProjectsQuery, map[string]any{"slug": "kaizen-dezain"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Kaizen Dezain", records[0].Title)

	assert.Equal(t, AllProjectsQuery, gotQuery)
	assert.Equal(t, `"kaizen-dezain"`, gotSlug, "params must be JSON-encoded")
}

func TestClientProjectNullResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": null}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	record, err := client.Project(context.Background(), ProjectBySlugQuery, map[string]any{"slug": "missing"})
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.Projects(context.Background(), AllProjectsQuery, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestNewClientBaseURL(t *testing.T) {
	c := NewClient(Options{ProjectID: "abc123", Dataset: "production", APIVersion: "2024-01-01", UseCDN: true})
	assert.Equal(t, "https://abc123.apicdn.sanity.io/v2024-01-01/data/query/production", c.baseURL)

	c = NewClient(Options{ProjectID: "abc123", Dataset: "production", APIVersion: "2024-01-01"})
	assert.Equal(t, "https://abc123.api.sanity.io/v2024-01-01/data/query/production", c.baseURL)
}
