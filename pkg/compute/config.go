package compute

import (
	"time"

	"github.com/fivetwenty-io/cloudres/pkg/completion"
	"github.com/fivetwenty-io/cloudres/pkg/logging"
)

// Config holds configuration for the compute client.
type Config struct {
	// Endpoint is the base URL of the compute API. A missing scheme is taken
	// to be https.
	Endpoint string

	// AccessToken is sent as a bearer token when set.
	AccessToken string

	UserAgent string

	// Retry budget for 429, 5xx and connection errors. Zero values keep the
	// defaults.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug logs every request and response at debug level.
	Debug  bool
	Logger logging.Logger

	// CompletionCache receives the identifiers of every resource built. Nil
	// disables completion caching.
	CompletionCache completion.Cache
}
