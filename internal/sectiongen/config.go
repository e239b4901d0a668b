package sectiongen

// Config controls the behavior of the LLMLoader.
type Config struct {
	// MaxTokens is the token budget for the batch response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults. A section
// batch is larger than a single question, so the budget is generous.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.8,
	}
}
