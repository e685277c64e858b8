package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/dispatch/internal/client"
	internalhttp "github.com/fivetwenty-io/dispatch/internal/http"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

func TestProjectsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/projects/", request.URL.Path)
		assert.Equal(t, "q=proj-1", request.URL.RawQuery)
		assert.Equal(t, http.MethodGet, request.Method)

		writeJSON(writer, http.StatusOK, dispatch.Project{ID: "proj-1", Name: "apollo", OwnerID: "user-1"})
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL))

	project, err := projects.Get(context.Background(), "proj-1")
	require.NoError(t, err)
	assert.Equal(t, dispatch.ProjectID("proj-1"), project.ID)
	assert.Equal(t, "apollo", project.Name)
	assert.Equal(t, dispatch.UserID("user-1"), project.OwnerID)
}

func TestProjectsClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/projects", request.URL.Path)
			assert.Equal(t, http.MethodPost, request.Method)

			var req dispatch.ProjectCreateRequest

			err := json.NewDecoder(request.Body).Decode(&req)
			assert.NoError(t, err)
			assert.Equal(t, "apollo", req.Name)
			assert.Equal(t, map[string]string{"team": "core"}, req.Labels)

			writeJSON(writer, http.StatusCreated, dispatch.Project{ID: "proj-1", Name: req.Name, Labels: req.Labels})
		}))
		defer server.Close()

		projects := NewProjectsClient(internalhttp.NewClient(server.URL))

		project, err := projects.Create(context.Background(), &dispatch.ProjectCreateRequest{
			Name:   "apollo",
			Labels: map[string]string{"team": "core"},
		})
		require.NoError(t, err)
		assert.Equal(t, dispatch.ProjectID("proj-1"), project.ID)
	})

	t.Run("invalid request is not sent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			t.Error("request should not reach the server")
		}))
		defer server.Close()

		projects := NewProjectsClient(internalhttp.NewClient(server.URL))

		_, err := projects.Create(context.Background(), &dispatch.ProjectCreateRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, dispatch.ErrInvalidRequest)

		_, err = projects.Create(context.Background(), nil)
		assert.ErrorIs(t, err, dispatch.ErrInvalidRequest)
	})
}

func TestProjectsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/projects/", request.URL.Path)
		assert.Empty(t, request.URL.RawQuery)
		assert.Equal(t, http.MethodPut, request.Method)

		var body map[string]interface{}

		err := json.NewDecoder(request.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"id": "proj-1", "name": "artemis"}, body)

		writeJSON(writer, http.StatusOK, dispatch.Project{ID: "proj-1", Name: "artemis"})
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL))
	name := "artemis"

	project, err := projects.Update(context.Background(), &dispatch.ProjectUpdateRequest{ID: "proj-1", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "artemis", project.Name)

	_, err = projects.Update(context.Background(), &dispatch.ProjectUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, dispatch.ErrInvalidRequest)
}

func TestProjectsClient_ListAndRemove(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodGet:
			assert.Equal(t, "/api/v1/projects", request.URL.Path)
			writeJSON(writer, http.StatusOK, []dispatch.Project{{ID: "proj-1"}, {ID: "proj-2"}})
		case http.MethodDelete:
			assert.Equal(t, "/api/v1/projects/", request.URL.Path)
			assert.Equal(t, "q=proj-2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", request.Method)
		}
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL))

	list, err := projects.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	err = projects.Remove(context.Background(), "proj-2")
	require.NoError(t, err)
}

func TestProjectsClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("filters become query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/projects/search", request.URL.Path)
			assert.Equal(t, "archived=true&limit=10&name=apollo", request.URL.RawQuery)

			writeJSON(writer, http.StatusOK, []dispatch.Project{{ID: "proj-1", Name: "apollo", Archived: true}})
		}))
		defer server.Close()

		projects := NewProjectsClient(internalhttp.NewClient(server.URL))

		found, err := projects.Search(context.Background(), &dispatch.ProjectSearch{Name: "apollo", Archived: true, Limit: 10})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.True(t, found[0].Archived)
	})

	t.Run("nil filter sends no query", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.URL.RawQuery)
			writeJSON(writer, http.StatusOK, []dispatch.Project{})
		}))
		defer server.Close()

		projects := NewProjectsClient(internalhttp.NewClient(server.URL))

		found, err := projects.Search(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestProjectsClient_Archive(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/api/v1/projects/archive", request.URL.Path)
		assert.Equal(t, "q=proj-1", request.URL.RawQuery)
		assert.Zero(t, request.ContentLength)

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL))

	err := projects.Archive(context.Background(), "proj-1")
	require.NoError(t, err)
}

func TestProjectsClient_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusNotFound, map[string]string{"error": "no such project"})
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL))

	_, err := projects.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, dispatch.IsNotFound(err))

	var apiErr *dispatch.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, map[string]interface{}{"error": "no such project"}, apiErr.Body)
}
