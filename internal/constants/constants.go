package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration and cache directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration and cache files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 5

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent reloads.
	DefaultConcurrencyLimit = 3
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first status treated as a failure.
	HTTPStatusMultipleChoices = 300

	// HTTPStatusNotFound represents a missing entity.
	HTTPStatusNotFound = 404
)

// Completion cache settings.
const (
	// DefaultCompletionDir is the cache directory under the user's home.
	DefaultCompletionDir = ".cloudres/completion"

	// DefaultNATSBucket is the JetStream key-value bucket for completion data.
	DefaultNATSBucket = "cloudres_completion"

	// NATSConnectTimeout bounds the initial NATS connection.
	NATSConnectTimeout = 5 * time.Second
)

// Client identification.
const (
	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "cloudres-go/1.0"
)

// Process exit codes.
const (
	// ExitConfigError is returned when an explicit config file cannot be read.
	ExitConfigError = 2
)
