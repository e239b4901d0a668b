package assessment

import "fmt"

// Category identifies one of the five test sections.
type Category string

const (
	CategoryMemory    Category = "memory"
	CategoryAttention Category = "attention"
	CategoryReasoning Category = "reasoning"
	CategorySpatial   Category = "spatial"
	CategoryVerbal    Category = "verbal"
)

// FullOrder is the fixed section order for a full assessment run.
var FullOrder = []Category{
	CategoryMemory,
	CategoryAttention,
	CategoryReasoning,
	CategorySpatial,
	CategoryVerbal,
}

// DisplayName returns the human-readable section title.
func (c Category) DisplayName() string {
	switch c {
	case CategoryMemory:
		return "Memory"
	case CategoryAttention:
		return "Attention"
	case CategoryReasoning:
		return "Reasoning"
	case CategorySpatial:
		return "Spatial"
	case CategoryVerbal:
		return "Verbal"
	}
	return string(c)
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMemory, CategoryAttention, CategoryReasoning, CategorySpatial, CategoryVerbal:
		return true
	}
	return false
}

// ParseCategory converts a user-supplied name into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}
