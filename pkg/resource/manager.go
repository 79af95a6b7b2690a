package resource

import "context"

// CompletionKind names a completion cache bucket.
type CompletionKind string

const (
	// CompletionUUID holds 36-character identifiers.
	CompletionUUID CompletionKind = "uuid"

	// CompletionHumanID holds slugs derived from resource names.
	CompletionHumanID CompletionKind = "human_id"
)

// Manager is the collaborator every Resource is built with.
type Manager interface {
	WriteToCompletionCache(kind CompletionKind, value string)
}

// Getter fetches a single entity by id. A nil Resource with a nil error means
// the entity was not found.
type Getter interface {
	Get(ctx context.Context, id interface{}) (*Resource, error)
}

// APIProvider is implemented by managers that expose the service-level API
// used by Reload.
type APIProvider interface {
	API() Getter
}
