package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// Dispatcher is the part of the HTTP client that resource operations use.
type Dispatcher interface {
	Get(ctx context.Context, path string, query dispatch.Query, out interface{}) error
	Post(ctx context.Context, path string, body interface{}, out interface{}) error
	Put(ctx context.Context, path string, body interface{}, out interface{}) error
	Delete(ctx context.Context, path string, query dispatch.Query) error
}

// ListFunc lists every entity of a resource.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// GetFunc fetches one entity by identifier.
type GetFunc[T any, ID ~string] func(ctx context.Context, id ID) (*T, error)

// CreateFunc creates an entity from its create parameters.
type CreateFunc[T, C any] func(ctx context.Context, params *C) (*T, error)

// UpdateFunc updates an entity. The identifier travels inside params.
type UpdateFunc[T, U any] func(ctx context.Context, params *U) (*T, error)

// RemoveFunc deletes an entity by identifier.
type RemoveFunc[ID ~string] func(ctx context.Context, id ID) error

// Resource is the standard operation set of a resource. Each field may be
// replaced or cleared after NewResource so one resource can diverge from the
// convention without giving up the rest of it.
type Resource[T, C, U any, ID ~string] struct {
	List   ListFunc[T]
	Get    GetFunc[T, ID]
	Create CreateFunc[T, C]
	Update UpdateFunc[T, U]
	Remove RemoveFunc[ID]
}

// NewResource derives the five standard operations for path:
//
//	List    GET    /{path}
//	Get     GET    /{path}/?q={id}
//	Create  POST   /{path}
//	Update  PUT    /{path}/
//	Remove  DELETE /{path}/?q={id}
//
// Errors from the dispatcher are returned unchanged.
func NewResource[T, C, U any, ID ~string](dispatcher Dispatcher, path string) *Resource[T, C, U, ID] {
	return &Resource[T, C, U, ID]{
		List:   ListOp[T](dispatcher, path),
		Get:    GetOp[T, ID](dispatcher, path),
		Create: CreateOp[T, C](dispatcher, path),
		Update: UpdateOp[T, U](dispatcher, path),
		Remove: RemoveOp[ID](dispatcher, path),
	}
}

// ListOp builds GET /{path}.
func ListOp[T any](dispatcher Dispatcher, path string) ListFunc[T] {
	return func(ctx context.Context) ([]T, error) {
		var items []T

		err := dispatcher.Get(ctx, collectionPath(path), nil, &items)
		if err != nil {
			return nil, err
		}

		return items, nil
	}
}

// GetOp builds GET /{path}/?q={id}.
func GetOp[T any, ID ~string](dispatcher Dispatcher, path string) GetFunc[T, ID] {
	return func(ctx context.Context, id ID) (*T, error) {
		var item T

		err := dispatcher.Get(ctx, memberPath(path), idQuery(id), &item)
		if err != nil {
			return nil, err
		}

		return &item, nil
	}
}

// CreateOp builds POST /{path} with params as the JSON body.
func CreateOp[T, C any](dispatcher Dispatcher, path string) CreateFunc[T, C] {
	return func(ctx context.Context, params *C) (*T, error) {
		var item T

		err := dispatcher.Post(ctx, collectionPath(path), params, &item)
		if err != nil {
			return nil, err
		}

		return &item, nil
	}
}

// UpdateOp builds PUT /{path}/ with params as the JSON body.
func UpdateOp[T, U any](dispatcher Dispatcher, path string) UpdateFunc[T, U] {
	return func(ctx context.Context, params *U) (*T, error) {
		var item T

		err := dispatcher.Put(ctx, memberPath(path), params, &item)
		if err != nil {
			return nil, err
		}

		return &item, nil
	}
}

// RemoveOp builds DELETE /{path}/?q={id}.
func RemoveOp[ID ~string](dispatcher Dispatcher, path string) RemoveFunc[ID] {
	return func(ctx context.Context, id ID) error {
		return dispatcher.Delete(ctx, memberPath(path), idQuery(id))
	}
}

// RemoveByPathOp builds DELETE /{path}/{id} for resources that address
// deletions by path instead of by query.
func RemoveByPathOp[ID ~string](dispatcher Dispatcher, path string) RemoveFunc[ID] {
	return func(ctx context.Context, id ID) error {
		return dispatcher.Delete(ctx, memberPath(path)+url.PathEscape(string(id)), nil)
	}
}

func collectionPath(path string) string {
	return "/" + path
}

func memberPath(path string) string {
	return "/" + path + "/"
}

func idQuery[ID ~string](id ID) dispatch.Query {
	return dispatch.NewQuery(constants.IDQueryParam, string(id))
}
