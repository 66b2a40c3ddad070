package enums

import "fmt"

// ItemType describes what kind of catalog entry a cart selection points at.
type ItemType string

const (
	ItemTypeActivity    ItemType = "activity"
	ItemTypeDestination ItemType = "destination"
)

var validItemTypes = []ItemType{
	ItemTypeActivity,
	ItemTypeDestination,
}

// String implements fmt.Stringer.
func (i ItemType) String() string {
	return string(i)
}

// IsValid reports whether the value is a known ItemType.
func (i ItemType) IsValid() bool {
	for _, candidate := range validItemTypes {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseItemType converts the raw string to ItemType.
func ParseItemType(value string) (ItemType, error) {
	for _, candidate := range validItemTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item type %q", value)
}
