package client

import (
	"context"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/internal/http"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// APIKeysClient implements dispatch.APIKeysClient.
type APIKeysClient struct {
	resource *Resource[dispatch.APIKey, dispatch.APIKeyCreateRequest, struct{}, dispatch.APIKeyID]
}

// NewAPIKeysClient creates a new API keys client. Keys have no list, get or
// update endpoints and are deleted at /keys/{id}.
func NewAPIKeysClient(httpClient *http.Client) *APIKeysClient {
	resource := NewResource[dispatch.APIKey, dispatch.APIKeyCreateRequest, struct{}, dispatch.APIKeyID](httpClient, constants.PathAPIKeys)
	resource.List = nil
	resource.Get = nil
	resource.Update = nil
	resource.Remove = RemoveByPathOp[dispatch.APIKeyID](httpClient, constants.PathAPIKeys)

	return &APIKeysClient{resource: resource}
}

// Create implements dispatch.APIKeysClient.Create.
func (c *APIKeysClient) Create(ctx context.Context, request *dispatch.APIKeyCreateRequest) (*dispatch.APIKey, error) {
	err := validateRequest(request)
	if err != nil {
		return nil, err
	}

	return c.resource.Create(ctx, request)
}

// Remove implements dispatch.APIKeysClient.Remove.
func (c *APIKeysClient) Remove(ctx context.Context, id dispatch.APIKeyID) error {
	return c.resource.Remove(ctx, id)
}
