package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"

	"github.com/fivetwenty-io/dispatch/internal/cancel"
	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/internal/http"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// FilesClient implements dispatch.FilesClient.
type FilesClient struct {
	httpClient *http.Client
	resource   *Resource[dispatch.File, struct{}, struct{}, dispatch.FileID]
}

// NewFilesClient creates a new files client. Files are created by Upload,
// so the JSON create and update operations are cleared.
func NewFilesClient(httpClient *http.Client) *FilesClient {
	resource := NewResource[dispatch.File, struct{}, struct{}, dispatch.FileID](httpClient, constants.PathFiles)
	resource.Create = nil
	resource.Update = nil

	return &FilesClient{
		httpClient: httpClient,
		resource:   resource,
	}
}

// List implements dispatch.FilesClient.List.
func (c *FilesClient) List(ctx context.Context) ([]dispatch.File, error) {
	return c.resource.List(ctx)
}

// Get implements dispatch.FilesClient.Get.
func (c *FilesClient) Get(ctx context.Context, id dispatch.FileID) (*dispatch.File, error) {
	return c.resource.Get(ctx, id)
}

// Remove implements dispatch.FilesClient.Remove.
func (c *FilesClient) Remove(ctx context.Context, id dispatch.FileID) error {
	return c.resource.Remove(ctx, id)
}

// Upload sends request.Content as a multipart form to POST /files?q={project}.
// It goes through the raw path, so the timeout and headers are applied here.
func (c *FilesClient) Upload(ctx context.Context, request *dispatch.FileUploadRequest) (*dispatch.File, error) {
	err := validateRequest(request)
	if err != nil {
		return nil, err
	}

	body, contentType, err := multipartBody(request.Name, request.Content)
	if err != nil {
		return nil, err
	}

	ctx, cancelUpload := cancel.Compose(ctx, c.httpClient.Timeout())
	defer cancelUpload()

	if cause := cancel.Cause(ctx); cause != nil {
		return nil, &dispatch.CanceledError{Cause: cause}
	}

	header := make(nethttp.Header)
	header.Set(constants.HeaderContentType, contentType)
	header.Set("Accept", constants.ContentTypeJSON)
	header.Set(constants.HeaderUserAgent, c.httpClient.UserAgent())

	if auth := c.httpClient.AuthorizationHeader(); auth != "" {
		header.Set(constants.HeaderAuthorization, auth)
	}

	resp, err := c.httpClient.Raw(ctx, &http.RawRequest{
		Method: nethttp.MethodPost,
		Path:   "/" + constants.PathFiles,
		Query:  dispatch.NewQuery(constants.IDQueryParam, string(request.ProjectID)),
		Header: header,
		Body:   body,
	})
	if err != nil {
		if cause := cancel.Cause(ctx); cause != nil {
			return nil, &dispatch.CanceledError{Cause: cause, Err: err}
		}

		return nil, err
	}

	var file dispatch.File

	err = http.DecodeResponse(resp, &file)
	if err != nil {
		if cause := cancel.Cause(ctx); cause != nil && !dispatch.IsAPIError(err) {
			return nil, &dispatch.CanceledError{Cause: cause, Err: err}
		}

		return nil, err
	}

	return &file, nil
}

func multipartBody(name string, content io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(constants.MultipartFileField, name)
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}

	_, err = io.Copy(part, content)
	if err != nil {
		return nil, "", fmt.Errorf("writing file to form: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
