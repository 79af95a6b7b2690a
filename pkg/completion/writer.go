package completion

import (
	"context"

	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/fivetwenty-io/cloudres/pkg/logging"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
)

// Writer binds a Cache to one resource collection and satisfies
// resource.Manager's completion contract. Write failures are logged: a
// resource is still usable when its ids could not be cached.
type Writer struct {
	cache        Cache
	resourceName string
	logger       logging.Logger
}

var _ resource.Manager = (*Writer)(nil)

// NewWriter creates a writer. A nil cache disables writes and a nil logger
// discards failures.
func NewWriter(cache Cache, resourceName string, logger logging.Logger) *Writer {
	if cache == nil {
		cache = NewNoOpCache()
	}

	if logger == nil {
		logger = logging.Nop()
	}

	return &Writer{cache: cache, resourceName: resourceName, logger: logger}
}

// WriteToCompletionCache implements resource.Manager.
func (w *Writer) WriteToCompletionCache(kind resource.CompletionKind, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
	defer cancel()

	err := w.cache.Add(ctx, w.resourceName, kind, value)
	if err != nil {
		w.logger.Warn("completion cache write failed", map[string]interface{}{
			"resource": w.resourceName,
			"kind":     string(kind),
			"error":    err.Error(),
		})
	}
}

// Cache returns the underlying cache.
func (w *Writer) Cache() Cache {
	return w.cache
}
