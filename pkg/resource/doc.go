// Package resource provides the base representation for entities returned by
// a cloud API (servers, flavors, images, ...).
//
// # Overview
//
// A Resource is a bag of attributes captured from one API response. It keeps
// a reference to the Manager that produced it so that missing attributes can
// be lazy-loaded by re-fetching the entity, and so that identifying values can
// be written to the manager's completion cache for shell tab-completion.
//
//	srv := resource.New(mgr, compute.ServerVariant, map[string]interface{}{
//	  "id":   "3fa85f64-5717-4562-b3fc-2c963f66afa6",
//	  "name": "web-1",
//	}, false)
//
//	status, err := srv.GetAttribute(ctx, "status") // fetches once via mgr.Get
//	if errors.Is(err, resource.ErrMissingAttribute) { /* not on the server either */ }
//
// # Lazy loading
//
// Reading an attribute that is not in the bag triggers at most one fetch per
// resource. The loaded flag is set before the fetch is attempted, so a failed
// or empty fetch is never retried by later reads. Reload always re-fetches
// through the manager's API and is the way to observe server-side changes.
//
// # Reserved names
//
// Names that belong to the resource itself (see ReservedNames) are never
// taken from API data. Keys colliding with them are skipped silently, both at
// construction and when merging fetched data.
//
// # Concurrency
//
// A Resource is not safe for concurrent use. Fetches block until the manager
// returns; cancellation is carried by the context passed to the manager.
package resource
