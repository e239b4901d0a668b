package analysis

import "github.com/arjunv/cognify/internal/assessment"

// Result is the structured outcome of an assessment run.
type Result struct {
	// Summary is a short overall read of the run, suitable for the
	// results header.
	Summary string

	Strengths       []string
	Weaknesses      []string
	Recommendations []string

	// CategoryScores maps each tested category to a rounded percent.
	CategoryScores map[assessment.Category]int

	// Explanations keys a short per-question note by the response
	// context string captured at answer time.
	Explanations map[string]string

	// Fallback is true when the result was computed locally because
	// the LLM analysis failed.
	Fallback bool
}
