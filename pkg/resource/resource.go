package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// uuidLength is the length of a canonical textual UUID.
const uuidLength = 36

// Resource represents one entity as returned by the API: a bag of attributes
// plus the manager that produced it.
type Resource struct {
	manager    Manager
	variant    Variant
	attributes map[string]interface{}
	loaded     bool
}

// New builds a resource from info. Keys of info that collide with reserved
// names are skipped. Pass loaded=true to disable lazy loading.
func New(manager Manager, variant Variant, info map[string]interface{}, loaded bool) *Resource {
	res := &Resource{
		manager:    manager,
		variant:    variant,
		attributes: make(map[string]interface{}, len(info)),
	}

	res.addDetails(info)
	res.loaded = loaded

	if res.manager == nil {
		return res
	}

	// The id must be read from the bag directly: going through GetAttribute
	// here could fetch, and the fetch builds another Resource.
	if id, ok := res.attributes[AttrID]; ok {
		if text := fmt.Sprint(id); len(text) == uuidLength {
			res.manager.WriteToCompletionCache(CompletionUUID, text)
		}
	}

	if humanID := res.HumanID(); humanID != "" {
		res.manager.WriteToCompletionCache(CompletionHumanID, humanID)
	}

	return res
}

// HumanID returns a slug of the name attribute when the variant enables human
// ids and the attribute is present and non-null, and "" otherwise.
func (r *Resource) HumanID() string {
	if !r.variant.HumanID {
		return ""
	}

	name, ok := r.attributes[r.variant.nameAttr()]
	if !ok || name == nil {
		return ""
	}

	return Slugify(fmt.Sprint(name))
}

// GetAttribute returns the named attribute. An attribute missing from the bag
// triggers one fetch through the manager unless the resource is already
// loaded; if the attribute is still absent a *MissingAttributeError is
// returned. Errors from the manager are returned unchanged.
func (r *Resource) GetAttribute(ctx context.Context, name string) (interface{}, error) {
	switch name {
	case AttrLoaded:
		return r.loaded, nil
	case AttrHumanID:
		return r.HumanID(), nil
	case AttrManager:
		return r.manager, nil
	}

	if r.variant.IsReserved(name) {
		return nil, r.missing(name)
	}

	if value, ok := r.attributes[name]; ok {
		return value, nil
	}

	if r.loaded {
		return nil, r.missing(name)
	}

	err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	if value, ok := r.attributes[name]; ok {
		return value, nil
	}

	return nil, r.missing(name)
}

// Get fetches the entity through the manager and merges the result into the
// bag. The resource is marked loaded before anything else, so a failed fetch
// is not repeated by later attribute reads. Managers without a Get method
// leave the resource unchanged.
func (r *Resource) Get(ctx context.Context) error {
	r.loaded = true

	getter, ok := r.manager.(Getter)
	if !ok {
		return nil
	}

	id, ok := r.attributes[AttrID]
	if !ok {
		return r.missing(AttrID)
	}

	fresh, err := getter.Get(ctx, id)
	if err != nil {
		return err
	}

	if fresh != nil {
		r.addDetails(fresh.attributes)
	}

	return nil
}

// Reload re-fetches the entity through the manager's API and merges the
// result into the bag, whatever the loaded state. Attributes absent from the
// new snapshot are kept.
func (r *Resource) Reload(ctx context.Context) error {
	provider, ok := r.manager.(APIProvider)
	if !ok {
		return ErrNoAPI
	}

	api := provider.API()
	if api == nil {
		return ErrNoAPI
	}

	id, ok := r.attributes[AttrID]
	if !ok {
		return r.missing(AttrID)
	}

	fresh, err := api.Get(ctx, id)
	if err != nil {
		return err
	}

	if fresh != nil {
		r.addDetails(fresh.attributes)
	}

	return nil
}

// Equal reports whether other represents the same entity. Resources of
// different variants are never equal. When both carry an id only the ids are
// compared; otherwise the whole attribute bags are.
func (r *Resource) Equal(other *Resource) bool {
	if r == nil || other == nil {
		return r == other
	}

	if r.variant.Name != other.variant.Name {
		return false
	}

	leftID, leftOK := r.attributes[AttrID]
	rightID, rightOK := other.attributes[AttrID]

	if leftOK && rightOK {
		return cmp.Equal(leftID, rightID, exportAll)
	}

	return cmp.Equal(r.attributes, other.attributes, exportAll)
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// String renders the resource as <Variant key=value, ...> with keys sorted.
// Internal keys and the manager are left out.
func (r *Resource) String() string {
	keys := make([]string, 0, len(r.attributes))

	for key := range r.attributes {
		if strings.HasPrefix(key, InternalPrefix) || key == AttrManager {
			continue
		}

		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, r.attributes[key]))
	}

	return fmt.Sprintf("<%s %s>", r.variant.Name, strings.Join(pairs, ", "))
}

// Loaded reports whether a fetch has been attempted or lazy loading was
// disabled at construction.
func (r *Resource) Loaded() bool {
	return r.loaded
}

// SetLoaded overrides the loaded flag.
func (r *Resource) SetLoaded(loaded bool) {
	r.loaded = loaded
}

// ID returns the id attribute without fetching.
func (r *Resource) ID() (interface{}, bool) {
	id, ok := r.attributes[AttrID]

	return id, ok
}

// Has reports whether name is in the bag, without fetching.
func (r *Resource) Has(name string) bool {
	_, ok := r.attributes[name]

	return ok
}

// Attributes returns a shallow copy of the bag.
func (r *Resource) Attributes() map[string]interface{} {
	out := make(map[string]interface{}, len(r.attributes))
	for key, value := range r.attributes {
		out[key] = value
	}

	return out
}

// Manager returns the manager the resource was built with.
func (r *Resource) Manager() Manager {
	return r.manager
}

// Variant returns the resource's variant.
func (r *Resource) Variant() Variant {
	return r.variant
}

// MarshalJSON encodes the attribute bag.
func (r *Resource) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(r.attributes)
	if err != nil {
		return nil, fmt.Errorf("encoding %s attributes: %w", r.variant.Name, err)
	}

	return data, nil
}

func (r *Resource) addDetails(info map[string]interface{}) {
	for key, value := range info {
		if r.variant.IsReserved(key) {
			continue
		}

		r.attributes[key] = value
	}
}

func (r *Resource) missing(name string) error {
	return &MissingAttributeError{Variant: r.variant.Name, Name: name}
}
