package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Wire contract.
const (
	// APIPrefix is prepended to every request path.
	APIPrefix = "/api/v1"

	// ContentTypeJSON is the media type declared on JSON-bearing requests.
	ContentTypeJSON = "application/json"

	// HeaderContentType is the request/response content kind header.
	HeaderContentType = "Content-Type"

	// HeaderAuthorization carries the bearer credential.
	HeaderAuthorization = "Authorization"

	// HeaderUserAgent identifies the client.
	HeaderUserAgent = "User-Agent"

	// BearerPrefix precedes the credential in the Authorization header.
	BearerPrefix = "Bearer "

	// IDQueryParam is the query key that carries identifiers for get and remove.
	IDQueryParam = "q"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "dispatch-go/1"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-request timeout.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Resource paths, relative to APIPrefix.
const (
	// PathProjects for the projects resource.
	PathProjects = "projects"

	// PathUsers for the users resource.
	PathUsers = "users"

	// PathAPIKeys for the API keys resource.
	PathAPIKeys = "keys"

	// PathFiles for the files resource.
	PathFiles = "files"
)

// Output formats and display.
const (
	// OutputFormatTable renders tables.
	OutputFormatTable = "table"

	// OutputFormatJSON renders JSON.
	OutputFormatJSON = "json"

	// OutputFormatYAML renders YAML.
	OutputFormatYAML = "yaml"

	// JSONIndentSize is the number of spaces for JSON and YAML indentation.
	JSONIndentSize = 2

	// MultipartFileField is the form field carrying uploaded bytes.
	MultipartFileField = "file"
)

// CLI settings.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".dispatch"

	// ConfigFileName is the CLI config file name, without extension.
	ConfigFileName = "config"

	// ConfigFileType is the CLI config file format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment overrides, e.g. DISPATCH_TOKEN.
	EnvPrefix = "DISPATCH"

	// DateTimeFormat is used for timestamps in table output.
	DateTimeFormat = "2006-01-02 15:04:05"

	// MaskedValue replaces secrets in displayed configuration.
	MaskedValue = "***"
)
