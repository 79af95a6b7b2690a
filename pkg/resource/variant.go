package resource

// DefaultNameAttr is the attribute human ids are derived from.
const DefaultNameAttr = "name"

// Attribute names with a meaning of their own on every Resource.
const (
	AttrID      = "id"
	AttrManager = "manager"
	AttrLoaded  = "loaded"
	AttrHumanID = "human_id"
)

// InternalPrefix marks attributes that are kept in the bag but hidden from
// String.
const InternalPrefix = "_"

// ReservedNames lists the members of every Resource. API data using one of
// these keys is dropped.
var ReservedNames = []string{
	AttrManager,
	AttrLoaded,
	AttrHumanID,
	"get",
	"reload",
	"HUMAN_ID",
	"NAME_ATTR",
}

// Variant describes a concrete kind of resource. Two resources are only
// comparable when their variants share a Name.
type Variant struct {
	// Name is used in String output and for equality.
	Name string

	// HumanID enables slug ids derived from NameAttr.
	HumanID bool

	// NameAttr defaults to DefaultNameAttr when empty.
	NameAttr string

	// Reserved adds variant-specific members to ReservedNames.
	Reserved []string
}

func (v Variant) nameAttr() string {
	if v.NameAttr == "" {
		return DefaultNameAttr
	}

	return v.NameAttr
}

// IsReserved reports whether key is a member of resources of this variant.
func (v Variant) IsReserved(key string) bool {
	for _, name := range ReservedNames {
		if key == name {
			return true
		}
	}

	for _, name := range v.Reserved {
		if key == name {
			return true
		}
	}

	return false
}
