package sectiongen

import (
	"github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/llm"
)

// sectionSchema builds the JSON schema for a batch response of one
// category. Each category has its own item shape, so the schema is
// assembled per request rather than declared once.
func sectionSchema(category assessment.Category) *llm.Schema {
	return &llm.Schema{
		Name:        "assessment-section",
		Description: "A batch of questions for one assessment category",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":        "array",
					"items":       itemSchema(category),
					"description": "The requested questions, in presentation order",
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
	}
}

func itemSchema(category assessment.Category) map[string]any {
	props := map[string]any{
		"correct_answer": map[string]any{
			"type":        "string",
			"description": "The correct answer as a string. For option questions: the exact text of the correct option.",
		},
	}
	required := []any{"correct_answer"}

	switch category {
	case assessment.CategoryMemory:
		props["symbols"] = map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "A row of single-character symbols containing some identical pairs. The answer is the pair count.",
		}
		required = append(required, "symbols")
	case assessment.CategoryAttention:
		props["sequence"] = map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "A sequence of similar items with exactly one outlier. The answer is the outlier itself.",
		}
		required = append(required, "sequence")
	case assessment.CategoryReasoning:
		props["statement"] = map[string]any{
			"type":        "string",
			"description": "The premise shown first, on its own",
		}
		props["question"] = map[string]any{
			"type":        "string",
			"description": "The question revealed after the statement",
		}
		props["options"] = optionsSchema()
		required = append(required, "statement", "question", "options")
	case assessment.CategorySpatial:
		props["target"] = map[string]any{
			"type":        "string",
			"description": "The ASCII figure or symbol being transformed",
		}
		props["transform"] = map[string]any{
			"type":        "string",
			"enum":        []any{"mirror", "rotation"},
			"description": "Which transformation the learner must identify",
		}
		props["options"] = optionsSchema()
		required = append(required, "target", "transform", "options")
	case assessment.CategoryVerbal:
		props["prompt"] = map[string]any{
			"type":        "string",
			"description": "A word-relation question, e.g. an analogy or odd-one-out",
		}
		props["options"] = optionsSchema()
		required = append(required, "prompt", "options")
	}

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func optionsSchema() map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Exactly 4 options, exactly one of them correct",
	}
}
