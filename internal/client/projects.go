package client

import (
	"context"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/internal/http"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// ProjectsClient implements dispatch.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
	resource   *Resource[dispatch.Project, dispatch.ProjectCreateRequest, dispatch.ProjectUpdateRequest, dispatch.ProjectID]
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
		resource: NewResource[
			dispatch.Project,
			dispatch.ProjectCreateRequest,
			dispatch.ProjectUpdateRequest,
			dispatch.ProjectID,
		](httpClient, constants.PathProjects),
	}
}

// List implements dispatch.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context) ([]dispatch.Project, error) {
	return c.resource.List(ctx)
}

// Get implements dispatch.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id dispatch.ProjectID) (*dispatch.Project, error) {
	return c.resource.Get(ctx, id)
}

// Create implements dispatch.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *dispatch.ProjectCreateRequest) (*dispatch.Project, error) {
	err := validateRequest(request)
	if err != nil {
		return nil, err
	}

	return c.resource.Create(ctx, request)
}

// Update implements dispatch.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, request *dispatch.ProjectUpdateRequest) (*dispatch.Project, error) {
	err := validateRequest(request)
	if err != nil {
		return nil, err
	}

	return c.resource.Update(ctx, request)
}

// Remove implements dispatch.ProjectsClient.Remove.
func (c *ProjectsClient) Remove(ctx context.Context, id dispatch.ProjectID) error {
	return c.resource.Remove(ctx, id)
}

// Search implements dispatch.ProjectsClient.Search. Filters are sent as query
// parameters in key order.
func (c *ProjectsClient) Search(ctx context.Context, filter *dispatch.ProjectSearch) ([]dispatch.Project, error) {
	var query dispatch.Query

	if filter != nil {
		encoded, err := dispatch.QueryFromStruct(filter)
		if err != nil {
			return nil, err
		}

		query = encoded
	}

	var projects []dispatch.Project

	err := c.httpClient.Get(ctx, "/"+constants.PathProjects+"/search", query, &projects)
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// Archive implements dispatch.ProjectsClient.Archive.
func (c *ProjectsClient) Archive(ctx context.Context, id dispatch.ProjectID) error {
	query := dispatch.NewQuery(constants.IDQueryParam, string(id))

	return c.httpClient.PostWithQuery(ctx, "/"+constants.PathProjects+"/archive", query, nil, nil)
}
