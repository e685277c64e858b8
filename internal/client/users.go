package client

import (
	"context"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/internal/http"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// UsersClient implements dispatch.UsersClient. Users are looked up by
// username but removed by ID, so Get is built separately from the rest of
// the operation set.
type UsersClient struct {
	httpClient *http.Client
	resource   *Resource[dispatch.User, dispatch.UserCreateRequest, dispatch.UserUpdateRequest, dispatch.UserID]
	getByName  GetFunc[dispatch.User, dispatch.Username]
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	resource := NewResource[
		dispatch.User,
		dispatch.UserCreateRequest,
		dispatch.UserUpdateRequest,
		dispatch.UserID,
	](httpClient, constants.PathUsers)
	resource.Get = nil

	return &UsersClient{
		httpClient: httpClient,
		resource:   resource,
		getByName:  GetOp[dispatch.User, dispatch.Username](httpClient, constants.PathUsers),
	}
}

// List implements dispatch.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]dispatch.User, error) {
	return c.resource.List(ctx)
}

// Get implements dispatch.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, username dispatch.Username) (*dispatch.User, error) {
	return c.getByName(ctx, username)
}

// Create implements dispatch.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, request *dispatch.UserCreateRequest) (*dispatch.User, error) {
	err := validateRequest(request)
	if err != nil {
		return nil, err
	}

	return c.resource.Create(ctx, request)
}

// Update implements dispatch.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, request *dispatch.UserUpdateRequest) (*dispatch.User, error) {
	err := validateRequest(request)
	if err != nil {
		return nil, err
	}

	return c.resource.Update(ctx, request)
}

// Remove implements dispatch.UsersClient.Remove.
func (c *UsersClient) Remove(ctx context.Context, id dispatch.UserID) error {
	return c.resource.Remove(ctx, id)
}

// Me returns the user the configured credential belongs to.
func (c *UsersClient) Me(ctx context.Context) (*dispatch.User, error) {
	var user dispatch.User

	err := c.httpClient.Get(ctx, "/"+constants.PathUsers+"/me", nil, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
