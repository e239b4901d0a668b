package assessment

import (
	"errors"
	"time"
)

var errEmptySection = errors.New("section loaded with no questions")

// Mode distinguishes full runs from single-category practice.
type Mode string

const (
	ModeFull     Mode = "full"
	ModePractice Mode = "practice"
)

// analysisSummaryLimit caps the excerpt stored in history.
const analysisSummaryLimit = 200

// AssessmentRecord is the persisted summary of one completed run.
// Append-only: the core never mutates or deletes records.
type AssessmentRecord struct {
	ID              string
	Date            time.Time
	Mode            Mode
	Score           int
	TotalQuestions  int
	AnalysisSummary string
}

// NewRecord builds the history record for a completed run. The score is
// the ledger's rounded percentage; the mode is full iff the run covered
// more than one category.
func NewRecord(id string, date time.Time, queue *Queue, ledger *Ledger, summary string) AssessmentRecord {
	mode := ModePractice
	if queue.Len() > 1 {
		mode = ModeFull
	}
	return AssessmentRecord{
		ID:              id,
		Date:            date,
		Mode:            mode,
		Score:           ledger.Score(),
		TotalQuestions:  ledger.Len(),
		AnalysisSummary: truncateSummary(summary),
	}
}

func truncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= analysisSummaryLimit {
		return s
	}
	return string(runes[:analysisSummaryLimit-1]) + "…"
}
