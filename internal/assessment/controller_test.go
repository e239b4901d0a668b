package assessment

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func fixedClock(c *Controller) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
}

func makeQuestions(cat Category, n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:            fmt.Sprintf("%s-%d", cat, i),
			Category:      cat,
			CorrectAnswer: "right",
			TimeLimit:     QuestionTimeLimit,
			Payload:       payloadFor(cat),
		}
	}
	return qs
}

func payloadFor(cat Category) Payload {
	switch cat {
	case CategoryMemory:
		return MemoryPayload{Symbols: []string{"◆", "◆"}}
	case CategoryAttention:
		return AttentionPayload{Sequence: []string{"right", "x", "x"}}
	case CategoryReasoning:
		return ReasoningPayload{Statement: "s", Question: "q", Options: []string{"right", "wrong"}}
	case CategorySpatial:
		return SpatialPayload{Target: "◢", Transform: "mirror", Options: []string{"right", "wrong"}}
	default:
		return VerbalPayload{Prompt: "p", Options: []string{"right", "wrong"}}
	}
}

// startLoaded drives a controller into the test phase with a loaded
// section for the given queue's first category.
func startLoaded(t *testing.T, c *Controller, q *Queue, n int) Effect {
	t.Helper()
	eff := c.Start(q)
	if eff.Kind != EffectLoadSection {
		t.Fatalf("Start effect = %v, want load section", eff.Kind)
	}
	cat, _ := q.Current()
	c.SectionLoaded(eff.LoadGen, makeQuestions(cat, n), nil)
	return c.DismissInstructions()
}

func TestStartEntersInstructionsPending(t *testing.T) {
	c := NewController()
	fixedClock(c)

	eff := c.Start(NewFullQueue())

	if c.Phase() != PhaseInstructions {
		t.Errorf("phase = %s, want instructions", c.Phase())
	}
	if !c.Loading() {
		t.Error("loading must be pending immediately on start")
	}
	if eff.Kind != EffectLoadSection || eff.Category != CategoryMemory || eff.Count != QuestionsPerSection {
		t.Errorf("effect = %+v, want memory load of %d", eff, QuestionsPerSection)
	}
}

func TestStartInvalidOutsideIntro(t *testing.T) {
	c := NewController()
	fixedClock(c)
	c.Start(NewFullQueue())

	if eff := c.Start(NewFullQueue()); eff.Kind != EffectNone {
		t.Error("second Start must be a no-op")
	}
}

func TestDismissBeforeLoadIsIgnored(t *testing.T) {
	c := NewController()
	fixedClock(c)
	c.Start(NewFullQueue())

	if eff := c.DismissInstructions(); eff.TimerArmed {
		t.Error("dismiss while loading must not arm the timer")
	}
	if c.Phase() != PhaseInstructions {
		t.Errorf("phase = %s, want instructions", c.Phase())
	}
}

func TestSectionLoadFailureReturnsToIntro(t *testing.T) {
	c := NewController()
	fixedClock(c)
	eff := c.Start(NewFullQueue())

	loadErr := errors.New("generator unreachable")
	c.SectionLoaded(eff.LoadGen, nil, loadErr)

	if c.Phase() != PhaseIntro {
		t.Errorf("phase = %s, want intro after load failure", c.Phase())
	}
	if !errors.Is(c.LastError(), loadErr) {
		t.Errorf("LastError = %v, want surfaced load error", c.LastError())
	}
}

func TestStaleSectionLoadDropped(t *testing.T) {
	c := NewController()
	fixedClock(c)
	eff := c.Start(NewFullQueue())
	stale := eff.LoadGen

	// Restart supersedes the outstanding load.
	eff2 := c.RestartSection()
	c.SectionLoaded(stale, makeQuestions(CategoryMemory, 5), nil)

	if !c.Loading() {
		t.Error("stale load completion must not satisfy the fresh request")
	}

	c.SectionLoaded(eff2.LoadGen, makeQuestions(CategoryMemory, 5), nil)
	if c.Loading() {
		t.Error("fresh load completion should clear pending state")
	}
}

func TestAnswerRecordsCaseInsensitive(t *testing.T) {
	c := NewController()
	fixedClock(c)
	startLoaded(t, c, NewPracticeQueue(CategoryVerbal), 2)

	c.Answer("RIGHT")

	got := c.Ledger().All()
	if len(got) != 1 {
		t.Fatalf("ledger has %d entries, want 1", len(got))
	}
	if !got[0].IsCorrect {
		t.Error("case-variant answer should score correct")
	}
	if got[0].Context == "" {
		t.Error("response must capture the question context")
	}
}

func TestStaleTickAfterAnswerIsDiscarded(t *testing.T) {
	c := NewController()
	fixedClock(c)
	eff := startLoaded(t, c, NewPracticeQueue(CategoryVerbal), 2)
	oldGen := eff.TimerGen

	c.Answer("right") // advances to question 1, re-arms timer

	before := c.Remaining()
	res := c.Tick(oldGen)
	if res.Applied {
		t.Error("tick for a superseded question instance was applied")
	}
	if c.Remaining() != before {
		t.Errorf("remaining changed from %d to %d on stale tick", before, c.Remaining())
	}
	if c.Ledger().Len() != 1 {
		t.Errorf("ledger has %d entries, want 1 (no duplicates)", c.Ledger().Len())
	}
}

func TestTimeoutFiresOncePerInstance(t *testing.T) {
	c := NewController()
	fixedClock(c)
	eff := startLoaded(t, c, NewPracticeQueue(CategoryVerbal), 1)

	fired := 0
	for i := 0; i < 8; i++ {
		if c.Tick(eff.TimerGen).TimedOut {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("timeout fired %d times, want exactly 1", fired)
	}
	if c.Phase() != PhaseTest {
		t.Errorf("phase = %s, want test (timeout never auto-submits)", c.Phase())
	}
	if c.Ledger().Len() != 0 {
		t.Error("timeout alone must not record a response")
	}
}

func TestReasoningTimeoutThenAnswer(t *testing.T) {
	c := NewController()
	fixedClock(c)
	eff := c.Start(NewPracticeQueue(CategoryReasoning))
	qs := []Question{{
		ID:            "r-0",
		Category:      CategoryReasoning,
		CorrectAnswer: "Tom",
		TimeLimit:     QuestionTimeLimit,
		Payload:       ReasoningPayload{Statement: "Tom is taller than Jim.", Question: "Who is tallest?", Options: []string{"Tom", "Jim"}},
	}}
	c.SectionLoaded(eff.LoadGen, qs, nil)

	eff = c.DismissInstructions()
	if eff.TimerArmed {
		t.Fatal("timer must not run during the reasoning statement step")
	}
	if c.Step() != StepStatement {
		t.Fatal("expected statement sub-step on entry")
	}

	eff = c.RevealQuestion()
	if !eff.TimerArmed {
		t.Fatal("revealing the question must arm the timer")
	}

	for i := 0; i < 5; i++ {
		c.Tick(eff.TimerGen)
	}
	if !c.TimedOut() {
		t.Fatal("expected timeout after 5 ticks")
	}
	c.FlashDone(c.FlashGen())

	eff = c.Answer("Tom")
	if eff.Kind != EffectRunAnalysis {
		t.Errorf("effect = %v, want run analysis", eff.Kind)
	}
	if c.Phase() != PhaseAnalysis {
		t.Errorf("phase = %s, want analysis", c.Phase())
	}

	got := c.Ledger().All()
	if len(got) != 1 || !got[0].IsCorrect || !got[0].TimedOut {
		t.Errorf("response = %+v, want correct answer flagged timed-out", got)
	}
}

func TestAnswerDuringFlashWindowRejected(t *testing.T) {
	c := NewController()
	fixedClock(c)
	eff := startLoaded(t, c, NewPracticeQueue(CategoryVerbal), 1)

	for i := 0; i < 5; i++ {
		c.Tick(eff.TimerGen)
	}
	if !c.FlashActive() {
		t.Fatal("expected open flash window after timeout")
	}

	if e := c.Answer("right"); e.Kind != EffectNone || c.Ledger().Len() != 0 {
		t.Error("answer during the flash window must be dropped")
	}

	c.FlashDone(c.FlashGen())
	if e := c.Answer("right"); e.Kind != EffectRunAnalysis {
		t.Error("answer after the flash window should proceed")
	}
}

func TestTwoCategoryAdvance(t *testing.T) {
	c := NewController()
	fixedClock(c)
	q := &Queue{categories: []Category{CategoryMemory, CategoryAttention}}

	startLoaded(t, c, q, 1)
	eff := c.Answer("right")

	if eff.Kind != EffectLoadSection || eff.Category != CategoryAttention {
		t.Fatalf("effect = %+v, want attention load", eff)
	}
	if c.Phase() != PhaseInstructions {
		t.Errorf("phase = %s, want instructions between sections", c.Phase())
	}
	if q.Index() != 1 {
		t.Errorf("queue index = %d, want 1 (advanced exactly once)", q.Index())
	}

	c.SectionLoaded(eff.LoadGen, makeQuestions(CategoryAttention, 1), nil)
	c.DismissInstructions()
	eff = c.Answer("right")

	if eff.Kind != EffectRunAnalysis || c.Phase() != PhaseAnalysis {
		t.Error("analysis should only follow exhaustion of both sections")
	}
	if c.Ledger().Len() != 2 {
		t.Errorf("ledger has %d entries, want 2", c.Ledger().Len())
	}
}

func TestRestartSectionMidway(t *testing.T) {
	c := NewController()
	fixedClock(c)
	startLoaded(t, c, NewPracticeQueue(CategorySpatial), 5)

	for i := 0; i < 3; i++ {
		c.Answer("right")
	}
	if c.Ledger().Len() != 3 {
		t.Fatalf("ledger has %d entries before restart, want 3", c.Ledger().Len())
	}

	eff := c.RestartSection()

	if c.Phase() != PhaseInstructions {
		t.Errorf("phase = %s, want instructions", c.Phase())
	}
	if !c.Loading() {
		t.Error("loading must be pending before the reload resolves")
	}
	if got := c.Ledger().ForCategory(CategorySpatial); len(got) != 0 {
		t.Errorf("category still has %d responses after restart, want 0", len(got))
	}
	if eff.Kind != EffectLoadSection || eff.Category != CategorySpatial {
		t.Errorf("effect = %+v, want fresh spatial load", eff)
	}
}

func TestRestartKeepsOtherCategories(t *testing.T) {
	c := NewController()
	fixedClock(c)
	q := &Queue{categories: []Category{CategoryMemory, CategoryAttention}}
	startLoaded(t, c, q, 1)

	c.Answer("right") // finishes memory, begins attention load
	eff := c.RestartSection()

	if got := c.Ledger().ForCategory(CategoryMemory); len(got) != 1 {
		t.Errorf("memory responses = %d after attention restart, want 1", len(got))
	}
	if eff.Category != CategoryAttention {
		t.Errorf("restart reloads %s, want attention", eff.Category)
	}
}

func TestQuitClearsEverything(t *testing.T) {
	c := NewController()
	fixedClock(c)
	startLoaded(t, c, NewFullQueue(), 5)
	c.Answer("right")

	c.Quit()

	if c.Phase() != PhaseIntro {
		t.Errorf("phase = %s, want intro", c.Phase())
	}
	if c.Ledger().Len() != 0 {
		t.Error("quit must clear the ledger")
	}
	if c.Queue() != nil {
		t.Error("quit must clear the queue")
	}
	if c.TimerRunning() {
		t.Error("quit must stop the timer")
	}
}

func TestAnswerOutsideTestIgnored(t *testing.T) {
	c := NewController()
	fixedClock(c)

	if eff := c.Answer("x"); eff.Kind != EffectNone {
		t.Error("answer in intro must be a no-op")
	}
	if c.Ledger().Len() != 0 {
		t.Error("no response may be recorded outside the test phase")
	}
}

func TestCompletedRunResponseCount(t *testing.T) {
	c := NewController()
	fixedClock(c)
	q := NewFullQueue()
	eff := c.Start(q)

	for {
		cat, ok := q.Current()
		if !ok {
			break
		}
		c.SectionLoaded(eff.LoadGen, makeQuestions(cat, QuestionsPerSection), nil)
		e := c.DismissInstructions()
		_ = e
		for i := 0; i < QuestionsPerSection; i++ {
			eff = c.Answer("right")
		}
		if eff.Kind != EffectLoadSection {
			break
		}
	}

	want := q.Len() * QuestionsPerSection
	if c.Ledger().Len() != want {
		t.Errorf("completed run recorded %d responses, want %d", c.Ledger().Len(), want)
	}
	if c.Phase() != PhaseAnalysis {
		t.Errorf("phase = %s, want analysis", c.Phase())
	}
}

func TestRecordScoreMatchesLedger(t *testing.T) {
	c := NewController()
	fixedClock(c)
	startLoaded(t, c, NewPracticeQueue(CategoryVerbal), 3)

	c.Answer("right")
	c.Answer("wrong")
	c.Answer("right")

	rec := NewRecord("id-1", c.now(), c.Queue(), c.Ledger(), "summary")

	if rec.Score != c.Ledger().Score() || rec.Score != 67 {
		t.Errorf("record score = %d, ledger score = %d, want 67", rec.Score, c.Ledger().Score())
	}
	if rec.Mode != ModePractice {
		t.Errorf("mode = %s, want practice for singleton queue", rec.Mode)
	}
	if rec.TotalQuestions != 3 {
		t.Errorf("total questions = %d, want 3", rec.TotalQuestions)
	}
}

func TestHistoryOnlyFromIntro(t *testing.T) {
	c := NewController()
	fixedClock(c)

	c.EnterHistory()
	if c.Phase() != PhaseHistory {
		t.Fatalf("phase = %s, want history", c.Phase())
	}
	c.ExitHistory()
	if c.Phase() != PhaseIntro {
		t.Fatalf("phase = %s, want intro", c.Phase())
	}

	c.Start(NewFullQueue())
	c.EnterHistory()
	if c.Phase() == PhaseHistory {
		t.Error("history must not interrupt an in-progress run")
	}
}
