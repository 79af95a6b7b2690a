package compute

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/cloudres/pkg/completion"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
)

// Manager serves one collection. It is the manager every resource of the
// collection is built with: it lazy-loads through Get, reloads through API
// and records identifiers in the completion cache.
type Manager struct {
	api        *Client
	collection Collection
	writer     *completion.Writer
}

var (
	_ resource.Manager     = (*Manager)(nil)
	_ resource.Getter      = (*Manager)(nil)
	_ resource.APIProvider = (*Manager)(nil)
)

func newManager(api *Client, collection Collection) *Manager {
	return &Manager{
		api:        api,
		collection: collection,
		writer:     completion.NewWriter(api.cache, collection.Plural, api.logger),
	}
}

// Collection returns the collection served.
func (m *Manager) Collection() Collection {
	return m.collection
}

// Get fetches one entity. A 404 yields a nil resource and a nil error.
func (m *Manager) Get(ctx context.Context, id interface{}) (*resource.Resource, error) {
	res, err := m.fetch(ctx, id)
	if IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return res, nil
}

// List returns every entity of the collection. The list view may be a
// summary: reading an attribute it lacks fetches the full entity.
func (m *Manager) List(ctx context.Context) ([]*resource.Resource, error) {
	resp, err := m.api.httpClient.Get(ctx, m.collection.Path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", m.collection.Plural, err)
	}

	var items []map[string]interface{}

	err = decodeEnvelope(resp.Body, m.collection.Plural, &items)
	if err != nil {
		return nil, err
	}

	resources := make([]*resource.Resource, 0, len(items))

	for _, info := range items {
		if len(info) == 0 {
			continue
		}

		resources = append(resources, resource.New(m, m.collection.Variant, info, false))
	}

	return resources, nil
}

// Find resolves ref as an id first, then as a human id or name among the
// listed entities.
func (m *Manager) Find(ctx context.Context, ref string) (*resource.Resource, error) {
	res, err := m.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	if res != nil {
		return res, nil
	}

	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	nameAttr := m.collection.Variant.NameAttr
	if nameAttr == "" {
		nameAttr = resource.DefaultNameAttr
	}

	var matches []*resource.Resource

	for _, candidate := range all {
		name := candidate.Attributes()[nameAttr]
		if candidate.HumanID() == ref || (name != nil && fmt.Sprint(name) == ref) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w %s %q", ErrNotFound, m.collection.Singular, ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w %s %q, use the id", ErrAmbiguous, m.collection.Singular, ref)
	}
}

// WriteToCompletionCache implements resource.Manager.
func (m *Manager) WriteToCompletionCache(kind resource.CompletionKind, value string) {
	m.writer.WriteToCompletionCache(kind, value)
}

// API returns the strict service-level getter used by Reload.
func (m *Manager) API() resource.Getter {
	return &getter{client: m.api, variant: m.collection.Variant}
}

func (m *Manager) fetch(ctx context.Context, id interface{}) (*resource.Resource, error) {
	resp, err := m.api.httpClient.Get(ctx, idPath(m.collection.Path, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %v: %w", m.collection.Singular, id, err)
	}

	var info map[string]interface{}

	err = decodeEnvelope(resp.Body, m.collection.Singular, &info)
	if err != nil {
		return nil, err
	}

	return resource.New(m, m.collection.Variant, info, true), nil
}
