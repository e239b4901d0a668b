package sectiongen

import (
	"context"

	"github.com/arjunv/cognify/internal/assessment"
)

// Loader produces a full section of questions for one category.
type Loader interface {
	// LoadSection returns exactly count questions of the given category,
	// or an error. Partial batches are never returned: a single invalid
	// question fails the whole load.
	LoadSection(ctx context.Context, category assessment.Category, count int) ([]assessment.Question, error)
}
