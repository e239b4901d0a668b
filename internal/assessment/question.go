package assessment

import (
	"fmt"
	"strings"
	"time"
)

// QuestionTimeLimit is the hard per-question limit. Every category
// currently uses the same limit.
const QuestionTimeLimit = 5 * time.Second

// QuestionsPerSection is the batch size requested per category.
const QuestionsPerSection = 5

// Question is a single issued question. Immutable once built: the
// orchestrator only reads it, answer matching is a case-insensitive
// string comparison against CorrectAnswer.
type Question struct {
	// ID is unique per issued question (generation-time UUID).
	ID string

	// Category tags the section this question belongs to.
	Category Category

	// CorrectAnswer is the canonical answer as a string.
	CorrectAnswer string

	// TimeLimit is the countdown armed when the question is shown.
	TimeLimit time.Duration

	// Payload holds the category-specific content consumed by rendering.
	Payload Payload
}

// Payload is the category-specific question content. One concrete shape
// exists per category; code consuming a Payload switches exhaustively.
type Payload interface {
	questionPayload()
}

// MemoryPayload shows a row of symbols; the answer is the number of
// matching pairs, typed as a string.
type MemoryPayload struct {
	Symbols []string
}

// AttentionPayload shows a sequence with one outlier; the answer is the
// outlier value itself.
type AttentionPayload struct {
	Sequence []string
}

// ReasoningPayload has a two-stage reveal: the statement is shown
// untimed, then the question with its options under the countdown.
type ReasoningPayload struct {
	Statement string
	Question  string
	Options   []string
}

// SpatialPayload asks which option is the mirror image or rotation of
// the target symbol.
type SpatialPayload struct {
	Target    string
	Transform string // "mirror" or "rotation"
	Options   []string
}

// VerbalPayload is a word-relation question with four options.
type VerbalPayload struct {
	Prompt  string
	Options []string
}

func (MemoryPayload) questionPayload()    {}
func (AttentionPayload) questionPayload() {}
func (ReasoningPayload) questionPayload() {}
func (SpatialPayload) questionPayload()   {}
func (VerbalPayload) questionPayload()    {}

// CheckAnswer reports whether selected matches the correct answer,
// ignoring case and surrounding whitespace.
func (q *Question) CheckAnswer(selected string) bool {
	return strings.EqualFold(
		strings.TrimSpace(selected),
		strings.TrimSpace(q.CorrectAnswer),
	)
}

// Choices returns the selectable options for the question, or nil when
// the answer is typed (Memory counts).
func (q *Question) Choices() []string {
	switch p := q.Payload.(type) {
	case MemoryPayload:
		return nil
	case AttentionPayload:
		return p.Sequence
	case ReasoningPayload:
		return p.Options
	case SpatialPayload:
		return p.Options
	case VerbalPayload:
		return p.Options
	}
	return nil
}

// ContextString derives the human-readable snapshot of the question
// content. It is captured into the response at answer time and later
// keys the per-question explanations in the analysis result, so it must
// be derivable from the question alone.
func (q *Question) ContextString() string {
	switch p := q.Payload.(type) {
	case MemoryPayload:
		return fmt.Sprintf("Symbols shown: %s", strings.Join(p.Symbols, " "))
	case AttentionPayload:
		return fmt.Sprintf("Find the outlier in: %s", strings.Join(p.Sequence, " "))
	case ReasoningPayload:
		return fmt.Sprintf("%s — %s", p.Statement, p.Question)
	case SpatialPayload:
		return fmt.Sprintf("Which is the %s of %s?", p.Transform, p.Target)
	case VerbalPayload:
		return p.Prompt
	}
	return ""
}
