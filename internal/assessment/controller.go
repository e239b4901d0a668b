package assessment

import (
	"time"
)

// EffectKind tells the caller what asynchronous work an operation
// started. The controller itself performs no I/O and spawns no
// goroutines; the UI layer turns effects into commands and feeds the
// results back in, tagged with the generation they were issued under.
type EffectKind int

const (
	EffectNone EffectKind = iota

	// EffectLoadSection requests a batch load for Category/Count. The
	// completion must be delivered via SectionLoaded with LoadGen.
	EffectLoadSection

	// EffectRunAnalysis hands the full ledger to the analysis
	// collaborator. Terminal per run.
	EffectRunAnalysis
)

// Effect describes the follow-up work for one controller operation.
type Effect struct {
	Kind     EffectKind
	LoadGen  uint64
	Category Category
	Count    int

	// TimerArmed is set when the operation armed a fresh countdown;
	// the caller schedules the first tick for TimerGen.
	TimerArmed bool
	TimerGen   uint64
}

// Controller is the assessment orchestrator: it owns the session state
// and coordinates the timer, queue, section loading and ledger in
// response to external events. All methods are synchronous; events that
// arrive out of order or against superseded state (stale ticks, stale
// load completions, answers during the timeout flash) are discarded.
type Controller struct {
	phase Phase
	queue *Queue

	timer  Timer
	ledger Ledger

	questions     []Question
	questionIndex int

	loading bool
	loadGen uint64
	lastErr error

	timedOut    bool
	flashActive bool
	flashGen    uint64

	reasoningStep ReasoningStep
	shownAt       time.Time

	now func() time.Time
}

// NewController returns a controller in the intro phase.
func NewController() *Controller {
	return &Controller{now: time.Now}
}

// Start begins a run with the given category queue. Valid only from
// intro. Loading is asynchronous: the instructions phase is entered
// immediately and renders a pending state until SectionLoaded arrives.
func (c *Controller) Start(q *Queue) Effect {
	if c.phase != PhaseIntro || q == nil || q.Len() == 0 {
		return Effect{}
	}
	c.queue = q
	c.ledger.Clear()
	c.lastErr = nil
	return c.beginSectionLoad()
}

// beginSectionLoad enters instructions with a pending load for the
// queue's current category. loading is set before the caller issues the
// asynchronous request, so the pending UI state is never skipped.
func (c *Controller) beginSectionLoad() Effect {
	cat, ok := c.queue.Current()
	if !ok {
		return Effect{}
	}
	c.questions = nil
	c.questionIndex = 0
	c.loading = true
	c.loadGen++
	c.phase = PhaseInstructions
	return Effect{
		Kind:     EffectLoadSection,
		LoadGen:  c.loadGen,
		Category: cat,
		Count:    QuestionsPerSection,
	}
}

// SectionLoaded commits a load result. Results carrying a stale
// generation are dropped: a restart or quit issued while the request
// was in flight has already superseded it. A failed load returns the
// whole machine to intro with the error surfaced; partial batches never
// reach this point (the loader validates all-or-nothing).
func (c *Controller) SectionLoaded(gen uint64, questions []Question, err error) {
	if gen != c.loadGen || !c.loading {
		return
	}
	c.loading = false
	if err != nil {
		c.failToIntro(err)
		return
	}
	if len(questions) == 0 {
		c.failToIntro(errEmptySection)
		return
	}
	c.questions = questions
}

// DismissInstructions starts the question loop. Valid only from
// instructions once the section has loaded.
func (c *Controller) DismissInstructions() Effect {
	if c.phase != PhaseInstructions || c.loading || len(c.questions) == 0 {
		return Effect{}
	}
	c.phase = PhaseTest
	c.questionIndex = 0
	var eff Effect
	c.presentCurrent(&eff)
	return eff
}

// presentCurrent resets per-question state and arms the timer for the
// question at the cursor. Reasoning questions stay untimed while the
// statement is showing.
func (c *Controller) presentCurrent(eff *Effect) {
	c.timedOut = false
	c.flashActive = false
	c.reasoningStep = StepStatement

	q := c.questions[c.questionIndex]
	if q.Category == CategoryReasoning {
		c.timer.Disarm()
		return
	}
	c.shownAt = c.now()
	gen := c.timer.Arm(int(q.TimeLimit / time.Second))
	eff.TimerArmed = true
	eff.TimerGen = gen
}

// RevealQuestion advances a Reasoning question from its statement to
// the timed question step.
func (c *Controller) RevealQuestion() Effect {
	if c.phase != PhaseTest {
		return Effect{}
	}
	q, ok := c.CurrentQuestion()
	if !ok || q.Category != CategoryReasoning || c.reasoningStep != StepStatement {
		return Effect{}
	}
	c.reasoningStep = StepQuestion
	c.shownAt = c.now()
	gen := c.timer.Arm(int(q.TimeLimit / time.Second))
	return Effect{TimerArmed: true, TimerGen: gen}
}

// Tick applies one countdown second. Ticks outside the test phase or
// carrying a superseded generation do not mutate anything. When the
// countdown crosses zero the timeout fires exactly once: the flash
// window opens and the flash generation advances.
func (c *Controller) Tick(gen uint64) TickResult {
	if c.phase != PhaseTest {
		return TickResult{}
	}
	res := c.timer.Tick(gen)
	if res.TimedOut {
		c.timedOut = true
		c.flashActive = true
		c.flashGen++
	}
	return res
}

// FlashDone closes the timeout alert window. Stale flash generations
// are ignored.
func (c *Controller) FlashDone(gen uint64) {
	if gen == c.flashGen {
		c.flashActive = false
	}
}

// Answer records a response for the current question and advances.
// Valid only from the test phase; calls landing during the timeout
// flash window or on a Reasoning statement step are dropped as benign
// races. A timed-out question still takes a normal answer — the buzzer
// never auto-submits — and the response notes the timeout.
func (c *Controller) Answer(selected string) Effect {
	if c.phase != PhaseTest || c.flashActive {
		return Effect{}
	}
	q, ok := c.CurrentQuestion()
	if !ok {
		return Effect{}
	}
	if q.Category == CategoryReasoning && c.reasoningStep == StepStatement {
		return Effect{}
	}

	c.timer.Disarm()
	c.ledger.Record(Response{
		QuestionID:    q.ID,
		Category:      q.Category,
		Selected:      selected,
		CorrectAnswer: q.CorrectAnswer,
		TimeTakenMs:   int(c.now().Sub(c.shownAt).Milliseconds()),
		IsCorrect:     q.CheckAnswer(selected),
		TimedOut:      c.timedOut,
		Context:       q.ContextString(),
	})

	// Advance within the section.
	if c.questionIndex+1 < len(c.questions) {
		c.questionIndex++
		var eff Effect
		c.presentCurrent(&eff)
		return eff
	}

	// Section exhausted: next category or analysis.
	if c.queue.Advance() {
		return c.beginSectionLoad()
	}
	c.phase = PhaseAnalysis
	return Effect{Kind: EffectRunAnalysis}
}

// RestartSection reloads the current category from scratch. Valid from
// instructions and test; the UI obtains confirmation first. The
// category's ledger entries are removed and any in-flight load or tick
// becomes stale before the fresh load is issued.
func (c *Controller) RestartSection() Effect {
	if c.phase != PhaseInstructions && c.phase != PhaseTest {
		return Effect{}
	}
	cat, ok := c.queue.Current()
	if !ok {
		return Effect{}
	}
	c.timer.Disarm()
	c.flashActive = false
	c.ledger.ClearCategory(cat)
	return c.beginSectionLoad()
}

// Quit abandons the run. Valid from instructions and test; the UI
// obtains confirmation first. Everything is cleared and outstanding
// async work is marked stale.
func (c *Controller) Quit() {
	if c.phase != PhaseInstructions && c.phase != PhaseTest {
		return
	}
	c.timer.Disarm()
	c.loadGen++
	c.loading = false
	c.flashActive = false
	c.questions = nil
	c.queue = nil
	c.ledger.Clear()
	c.phase = PhaseIntro
}

// Retake starts a fresh run over the same categories. Valid only from
// analysis.
func (c *Controller) Retake() Effect {
	if c.phase != PhaseAnalysis || c.queue == nil {
		return Effect{}
	}
	fresh := &Queue{categories: c.queue.Categories()}
	c.queue = fresh
	c.ledger.Clear()
	return c.beginSectionLoad()
}

// ReturnToIntro leaves the analysis phase. Valid only from analysis.
func (c *Controller) ReturnToIntro() {
	if c.phase != PhaseAnalysis {
		return
	}
	c.questions = nil
	c.queue = nil
	c.ledger.Clear()
	c.phase = PhaseIntro
}

// EnterHistory switches to the history view. Only reachable from intro:
// it never interrupts an in-progress run.
func (c *Controller) EnterHistory() {
	if c.phase == PhaseIntro {
		c.phase = PhaseHistory
	}
}

// ExitHistory returns from the history view to intro.
func (c *Controller) ExitHistory() {
	if c.phase == PhaseHistory {
		c.phase = PhaseIntro
	}
}

// failToIntro abandons the run after a load failure. The machine never
// stays in test or instructions with stale or empty questions.
func (c *Controller) failToIntro(err error) {
	c.timer.Disarm()
	c.questions = nil
	c.queue = nil
	c.ledger.Clear()
	c.lastErr = err
	c.phase = PhaseIntro
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Loading reports whether a section load is pending.
func (c *Controller) Loading() bool { return c.loading }

// LastError returns the surfaced error from a failed load, if any.
func (c *Controller) LastError() error { return c.lastErr }

// Queue returns the active category queue (nil outside a run).
func (c *Controller) Queue() *Queue { return c.queue }

// Ledger returns the response ledger.
func (c *Controller) Ledger() *Ledger { return &c.ledger }

// CurrentQuestion returns the question at the cursor.
func (c *Controller) CurrentQuestion() (*Question, bool) {
	if c.questionIndex >= len(c.questions) {
		return nil, false
	}
	return &c.questions[c.questionIndex], true
}

// QuestionIndex returns the cursor within the current section.
func (c *Controller) QuestionIndex() int { return c.questionIndex }

// SectionSize returns the number of questions in the loaded section.
func (c *Controller) SectionSize() int { return len(c.questions) }

// Remaining returns the seconds left on the countdown.
func (c *Controller) Remaining() int { return c.timer.Remaining() }

// TimerRunning reports whether a countdown is live.
func (c *Controller) TimerRunning() bool { return c.timer.Running() }

// TimedOut reports whether the buzzer fired for the current question.
func (c *Controller) TimedOut() bool { return c.timedOut }

// FlashActive reports whether the timeout alert window is open.
func (c *Controller) FlashActive() bool { return c.flashActive }

// FlashGen returns the alert window generation, used to expire it.
func (c *Controller) FlashGen() uint64 { return c.flashGen }

// Step returns the Reasoning sub-state for the current question.
func (c *Controller) Step() ReasoningStep { return c.reasoningStep }
