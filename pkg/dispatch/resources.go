package dispatch

import (
	"context"
	"io"
	"time"
)

// Client is the top-level API client.
type Client interface {
	Projects() ProjectsClient
	Users() UsersClient
	APIKeys() APIKeysClient
	Files() FilesClient
}

// ProjectID identifies a project.
type ProjectID string

// Project is a unit of work owned by a user.
type Project struct {
	ID          ProjectID         `json:"id"                    yaml:"id"`
	Name        string            `json:"name"                  yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	OwnerID     UserID            `json:"owner_id"              yaml:"owner_id"`
	Archived    bool              `json:"archived"              yaml:"archived"`
	Labels      map[string]string `json:"labels,omitempty"      yaml:"labels,omitempty"`
	CreatedAt   time.Time         `json:"created_at"            yaml:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"            yaml:"updated_at"`
}

// ProjectCreateRequest is the body of a project create call.
type ProjectCreateRequest struct {
	Name        string            `json:"name"                  validate:"required,max=255"`
	Description string            `json:"description,omitempty" validate:"max=4096"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ProjectUpdateRequest is the body of a project update call. The identifier
// travels inside the body.
type ProjectUpdateRequest struct {
	ID          ProjectID         `json:"id"                    validate:"required"`
	Name        *string           `json:"name,omitempty"        validate:"omitempty,max=255"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=4096"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ProjectSearch holds the filters for ProjectsClient.Search.
type ProjectSearch struct {
	Name     string `schema:"name,omitempty"`
	OwnerID  string `schema:"owner_id,omitempty"`
	Label    string `schema:"label,omitempty"`
	Archived bool   `schema:"archived,omitempty"`
	Limit    int    `schema:"limit,omitempty"`
}

// ProjectsClient exposes the projects resource.
type ProjectsClient interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id ProjectID) (*Project, error)
	Create(ctx context.Context, request *ProjectCreateRequest) (*Project, error)
	Update(ctx context.Context, request *ProjectUpdateRequest) (*Project, error)
	Remove(ctx context.Context, id ProjectID) error
	Search(ctx context.Context, filter *ProjectSearch) ([]Project, error)
	Archive(ctx context.Context, id ProjectID) error
}

// UserID is the machine identifier of a user.
type UserID string

// Username is the human-readable lookup key of a user.
type Username string

// User is an account.
type User struct {
	ID          UserID    `json:"id"           yaml:"id"`
	Username    Username  `json:"username"     yaml:"username"`
	Email       string    `json:"email"        yaml:"email"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Admin       bool      `json:"admin"        yaml:"admin"`
	CreatedAt   time.Time `json:"created_at"   yaml:"created_at"`
}

// UserCreateRequest is the body of a user create call.
type UserCreateRequest struct {
	Username    Username `json:"username"               validate:"required,max=64"`
	Email       string   `json:"email"                  validate:"required,email"`
	DisplayName string   `json:"display_name,omitempty"`
}

// UserUpdateRequest is the body of a user update call.
type UserUpdateRequest struct {
	ID          UserID  `json:"id"                     validate:"required"`
	Email       *string `json:"email,omitempty"        validate:"omitempty,email"`
	DisplayName *string `json:"display_name,omitempty"`
}

// UsersClient exposes the users resource. Get looks users up by Username while
// Remove addresses them by UserID.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, username Username) (*User, error)
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	Update(ctx context.Context, request *UserUpdateRequest) (*User, error)
	Remove(ctx context.Context, id UserID) error
	Me(ctx context.Context) (*User, error)
}

// APIKeyID identifies an API key.
type APIKeyID string

// APIKey is a long-lived credential. Secret is only returned on creation.
type APIKey struct {
	ID        APIKeyID   `json:"id"                   yaml:"id"`
	Name      string     `json:"name"                 yaml:"name"`
	Prefix    string     `json:"prefix"               yaml:"prefix"`
	Secret    string     `json:"secret,omitempty"     yaml:"secret,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"           yaml:"created_at"`
}

// APIKeyCreateRequest is the body of an API key create call.
type APIKeyCreateRequest struct {
	Name      string     `json:"name"                 validate:"required,max=128"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// APIKeysClient exposes the API keys resource. Keys cannot be listed or
// updated, and are removed by path rather than by query.
type APIKeysClient interface {
	Create(ctx context.Context, request *APIKeyCreateRequest) (*APIKey, error)
	Remove(ctx context.Context, id APIKeyID) error
}

// FileID identifies an uploaded file.
type FileID string

// File is an uploaded blob attached to a project.
type File struct {
	ID          FileID    `json:"id"           yaml:"id"`
	ProjectID   ProjectID `json:"project_id"   yaml:"project_id"`
	Name        string    `json:"name"         yaml:"name"`
	ContentType string    `json:"content_type" yaml:"content_type"`
	Size        int64     `json:"size"         yaml:"size"`
	CreatedAt   time.Time `json:"created_at"   yaml:"created_at"`
}

// FileUploadRequest describes a multipart upload.
type FileUploadRequest struct {
	ProjectID ProjectID `validate:"required"`
	Name      string    `validate:"required"`
	Content   io.Reader `validate:"required"`
}

// FilesClient exposes the files resource. Files are created by Upload rather
// than by a JSON create call.
type FilesClient interface {
	List(ctx context.Context) ([]File, error)
	Get(ctx context.Context, id FileID) (*File, error)
	Remove(ctx context.Context, id FileID) error
	Upload(ctx context.Context, request *FileUploadRequest) (*File, error)
}
