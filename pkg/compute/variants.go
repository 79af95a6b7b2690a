package compute

import "github.com/fivetwenty-io/cloudres/pkg/resource"

// Resource variants served by the API.
var (
	// ServerVariant derives a human id from the server name.
	ServerVariant = resource.Variant{Name: "Server", HumanID: true}

	// FlavorVariant has no human id: flavor names are not unique enough to
	// complete on.
	FlavorVariant = resource.Variant{Name: "Flavor"}
)

// Collection describes where a variant lives in the API and how its payloads
// are enveloped.
type Collection struct {
	Variant  resource.Variant
	Path     string
	Singular string
	Plural   string
}

// Known collections.
var (
	ServersCollection = Collection{
		Variant:  ServerVariant,
		Path:     "/servers",
		Singular: "server",
		Plural:   "servers",
	}

	FlavorsCollection = Collection{
		Variant:  FlavorVariant,
		Path:     "/flavors",
		Singular: "flavor",
		Plural:   "flavors",
	}
)

// Collections returns the known collections.
func Collections() []Collection {
	return []Collection{ServersCollection, FlavorsCollection}
}
