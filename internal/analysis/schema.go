package analysis

import "github.com/arjunv/cognify/internal/llm"

// ResultSchema defines the JSON schema for LLM analysis responses.
var ResultSchema = &llm.Schema{
	Name:        "assessment-analysis",
	Description: "Structured analysis of a completed cognitive assessment run",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentences on overall performance, in plain encouraging language",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Categories or patterns the learner did well on",
			},
			"weaknesses": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Categories or patterns that need work",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete practice suggestions",
			},
			"explanations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"context": map[string]any{
							"type":        "string",
							"description": "The question context exactly as given in the input",
						},
						"note": map[string]any{
							"type":        "string",
							"description": "One sentence on what the answer shows",
						},
					},
					"required":             []any{"context", "note"},
					"additionalProperties": false,
				},
				"description": "A note per incorrectly answered question, keyed by its context",
			},
		},
		"required":             []any{"summary", "strengths", "weaknesses", "recommendations", "explanations"},
		"additionalProperties": false,
	},
}
