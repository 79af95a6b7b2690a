// Package completion stores the identifiers resources announce while being
// built (UUIDs and human ids) so that shells can tab-complete them.
//
// Values are grouped by resource collection ("servers", "flavors", ...) and
// by resource.CompletionKind. Backends: in-memory, one file per group on
// disk, a NATS JetStream key-value bucket, or nothing at all.
package completion

import (
	"context"
	"errors"

	"github.com/fivetwenty-io/cloudres/pkg/resource"
)

// Static errors for err113 compliance.
var (
	ErrInvalidKind         = errors.New("invalid completion kind")
	ErrEmptyResourceName   = errors.New("resource name is required")
	ErrNATSConfigRequired  = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedType     = errors.New("unsupported completion cache type")
	ErrCacheDirUnavailable = errors.New("completion cache directory unavailable")
)

// Cache is a completion cache backend.
type Cache interface {
	// Add records value for the resource collection. Adding a value twice
	// is not an error.
	Add(ctx context.Context, resourceName string, kind resource.CompletionKind, value string) error

	// List returns the recorded values, sorted.
	List(ctx context.Context, resourceName string, kind resource.CompletionKind) ([]string, error)

	// Clear forgets every value of the resource collection.
	Clear(ctx context.Context, resourceName string) error
}

// Kinds lists the completion kinds in a stable order.
func Kinds() []resource.CompletionKind {
	return []resource.CompletionKind{resource.CompletionUUID, resource.CompletionHumanID}
}

// ParseKind validates a kind given as text.
func ParseKind(text string) (resource.CompletionKind, error) {
	for _, kind := range Kinds() {
		if string(kind) == text {
			return kind, nil
		}
	}

	return "", ErrInvalidKind
}

func validate(resourceName string, kind resource.CompletionKind) error {
	if resourceName == "" {
		return ErrEmptyResourceName
	}

	_, err := ParseKind(string(kind))

	return err
}
