package assessment

import "math"

// Response records one answered question. Created exactly once per
// question that reaches a terminal answer, immutable afterwards.
type Response struct {
	QuestionID    string
	Category      Category
	Selected      string
	CorrectAnswer string
	TimeTakenMs   int
	IsCorrect     bool

	// TimedOut marks that the buzzer fired before this answer landed.
	// The answer still counts normally; the flag is informational.
	TimedOut bool

	// Context is the question snapshot captured at answer time. Keys
	// the per-question explanations in the analysis result.
	Context string
}

// Ledger is the append-only ordered record of responses. Order equals
// presentation order; entries are never reordered or deduplicated.
type Ledger struct {
	responses []Response
}

// Record appends a response.
func (l *Ledger) Record(r Response) {
	l.responses = append(l.responses, r)
}

// All returns the responses in presentation order.
func (l *Ledger) All() []Response {
	out := make([]Response, len(l.responses))
	copy(out, l.responses)
	return out
}

// Len returns the number of recorded responses.
func (l *Ledger) Len() int { return len(l.responses) }

// CorrectCount returns the number of correct responses.
func (l *Ledger) CorrectCount() int {
	n := 0
	for _, r := range l.responses {
		if r.IsCorrect {
			n++
		}
	}
	return n
}

// Accuracy returns the fraction correct. The second result is false
// when the ledger is empty; callers must not use the value then.
func (l *Ledger) Accuracy() (float64, bool) {
	if len(l.responses) == 0 {
		return 0, false
	}
	return float64(l.CorrectCount()) / float64(len(l.responses)), true
}

// Score returns the rounded percentage correct, 0 for an empty ledger.
func (l *Ledger) Score() int {
	acc, ok := l.Accuracy()
	if !ok {
		return 0
	}
	return int(math.Round(acc * 100))
}

// ForCategory returns the responses of one category, preserving order.
func (l *Ledger) ForCategory(c Category) []Response {
	var out []Response
	for _, r := range l.responses {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

// ClearCategory removes the entries of one category. Used by a section
// restart; other categories keep their responses.
func (l *Ledger) ClearCategory(c Category) {
	kept := l.responses[:0]
	for _, r := range l.responses {
		if r.Category != c {
			kept = append(kept, r)
		}
	}
	l.responses = kept
}

// Clear removes every entry. Used on quit.
func (l *Ledger) Clear() {
	l.responses = nil
}
