package assessment

import (
	asmt "github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/analysis"
)

// sectionLoadedMsg delivers a finished section load. Gen ties it to the
// load request it answers; the controller drops stale generations.
type sectionLoadedMsg struct {
	Gen       uint64
	Questions []asmt.Question
	Err       error
}

// timerTickMsg is one countdown second for a specific timer generation.
type timerTickMsg struct {
	Gen uint64
}

// flashDoneMsg expires the timeout alert window.
type flashDoneMsg struct {
	Gen uint64
}

// analysisDoneMsg delivers the end-of-run analysis together with the
// already-persisted history record.
type analysisDoneMsg struct {
	Result  *analysis.Result
	Record  asmt.AssessmentRecord
	SaveErr error
}
