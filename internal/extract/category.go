package extract

import "strings"

// Category identifies the regulated product category of a label. Some
// compliance fields only apply to particular categories: FSSAI licenses are
// a food requirement, BIS certification an electronics one.
type Category string

const (
	CategoryFood        Category = "food"
	CategoryElectronics Category = "electronics"
	CategoryCosmetics   Category = "cosmetics"
	CategoryGeneric     Category = "generic"

	// CategoryUnspecified means no category hint was given. Extraction then
	// attempts every category-gated field.
	CategoryUnspecified Category = "unspecified"
)

// ParseCategory maps a free-form category hint to a Category. Matching is
// case-insensitive and ignores surrounding whitespace; anything
// unrecognized, including the empty string, becomes CategoryUnspecified.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "food":
		return CategoryFood
	case "electronics":
		return CategoryElectronics
	case "cosmetics":
		return CategoryCosmetics
	case "generic":
		return CategoryGeneric
	default:
		return CategoryUnspecified
	}
}

func (c Category) String() string {
	return string(c)
}
