package assessment

// Phase is the top-level mode of the orchestrator.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseInstructions
	PhaseTest
	PhaseAnalysis
	PhaseHistory
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseInstructions:
		return "instructions"
	case PhaseTest:
		return "test"
	case PhaseAnalysis:
		return "analysis"
	case PhaseHistory:
		return "history"
	}
	return "unknown"
}

// ReasoningStep is the sub-state for the Reasoning category's two-stage
// reveal. Irrelevant for every other category.
type ReasoningStep int

const (
	// StepStatement shows the premise, untimed.
	StepStatement ReasoningStep = iota

	// StepQuestion shows the actual question under the countdown.
	StepQuestion
)
