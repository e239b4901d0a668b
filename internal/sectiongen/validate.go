package sectiongen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arjunv/cognify/internal/assessment"
)

const requiredOptions = 4

// buildQuestion validates one raw item and converts it into a Question.
func buildQuestion(category assessment.Category, item questionItem) (assessment.Question, error) {
	answer := strings.TrimSpace(item.CorrectAnswer)
	if answer == "" {
		return assessment.Question{}, fmt.Errorf("correct_answer is empty")
	}

	payload, err := buildPayload(category, item, answer)
	if err != nil {
		return assessment.Question{}, err
	}

	return assessment.Question{
		ID:            uuid.NewString(),
		Category:      category,
		CorrectAnswer: answer,
		TimeLimit:     assessment.QuestionTimeLimit,
		Payload:       payload,
	}, nil
}

func buildPayload(category assessment.Category, item questionItem, answer string) (assessment.Payload, error) {
	switch category {
	case assessment.CategoryMemory:
		if len(item.Symbols) < 2 {
			return nil, fmt.Errorf("memory question needs at least 2 symbols, got %d", len(item.Symbols))
		}
		return assessment.MemoryPayload{Symbols: item.Symbols}, nil

	case assessment.CategoryAttention:
		if len(item.Sequence) < 3 {
			return nil, fmt.Errorf("attention sequence needs at least 3 items, got %d", len(item.Sequence))
		}
		if !containsFold(item.Sequence, answer) {
			return nil, fmt.Errorf("outlier %q is not in the sequence", answer)
		}
		return assessment.AttentionPayload{Sequence: item.Sequence}, nil

	case assessment.CategoryReasoning:
		if item.Statement == "" {
			return nil, fmt.Errorf("reasoning statement is empty")
		}
		if item.Question == "" {
			return nil, fmt.Errorf("reasoning question is empty")
		}
		if err := checkOptions(item.Options, answer); err != nil {
			return nil, err
		}
		return assessment.ReasoningPayload{
			Statement: item.Statement,
			Question:  item.Question,
			Options:   item.Options,
		}, nil

	case assessment.CategorySpatial:
		if item.Target == "" {
			return nil, fmt.Errorf("spatial target is empty")
		}
		if item.Transform != "mirror" && item.Transform != "rotation" {
			return nil, fmt.Errorf("transform must be \"mirror\" or \"rotation\", got %q", item.Transform)
		}
		if err := checkOptions(item.Options, answer); err != nil {
			return nil, err
		}
		return assessment.SpatialPayload{
			Target:    item.Target,
			Transform: item.Transform,
			Options:   item.Options,
		}, nil

	case assessment.CategoryVerbal:
		if item.Prompt == "" {
			return nil, fmt.Errorf("verbal prompt is empty")
		}
		if err := checkOptions(item.Options, answer); err != nil {
			return nil, err
		}
		return assessment.VerbalPayload{
			Prompt:  item.Prompt,
			Options: item.Options,
		}, nil
	}

	return nil, fmt.Errorf("unknown category %q", category)
}

func checkOptions(options []string, answer string) error {
	if len(options) != requiredOptions {
		return fmt.Errorf("need exactly %d options, got %d", requiredOptions, len(options))
	}
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option is empty")
		}
	}
	if !containsFold(options, answer) {
		return fmt.Errorf("correct answer %q is not among the options", answer)
	}
	return nil
}

func containsFold(items []string, want string) bool {
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item), want) {
			return true
		}
	}
	return false
}
