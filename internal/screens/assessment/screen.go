package assessment

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/arjunv/cognify/internal/analysis"
	asmt "github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/router"
	"github.com/arjunv/cognify/internal/screen"
	"github.com/arjunv/cognify/internal/screens/results"
	"github.com/arjunv/cognify/internal/sectiongen"
	"github.com/arjunv/cognify/internal/store"
	"github.com/arjunv/cognify/internal/ui/components"
	"github.com/arjunv/cognify/internal/ui/layout"
)

// flashWindow is how long the timeout alert stays on screen. Answer
// keys landing inside the window are rejected by the controller.
const flashWindow = 1200 * time.Millisecond

// Screen drives one assessment run. All orchestration decisions live in
// the controller; this screen translates effects into commands and
// async results back into controller calls.
type Screen struct {
	ctrl     *asmt.Controller
	loader   sectiongen.Loader
	analyzer *analysis.Service
	history  store.HistoryRepo

	queue   *asmt.Queue
	pending *asmt.Effect // dispatched on Init instead of Start (retake)

	input  components.TextInput
	choice components.MultiChoice

	confirmQuit    bool
	confirmRestart bool
	errMsg         string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)
var _ screen.EscHandler = (*Screen)(nil)

// New creates a run screen for the given category queue.
func New(loader sectiongen.Loader, analyzer *analysis.Service, history store.HistoryRepo, queue *asmt.Queue) *Screen {
	return &Screen{
		ctrl:     asmt.NewController(),
		loader:   loader,
		analyzer: analyzer,
		history:  history,
		queue:    queue,
	}
}

func (s *Screen) Init() tea.Cmd {
	if s.pending != nil {
		eff := *s.pending
		s.pending = nil
		return s.effectCmd(eff)
	}
	return s.effectCmd(s.ctrl.Start(s.queue))
}

func (s *Screen) Title() string {
	if cat, ok := s.ctrl.Queue().Current(); ok {
		return cat.DisplayName()
	}
	return "Assessment"
}

// Status feeds the header's right segment.
func (s *Screen) Status() string {
	q := s.ctrl.Queue()
	if q == nil || s.ctrl.Phase() != asmt.PhaseTest {
		return ""
	}
	return fmt.Sprintf("Section %d/%d · Question %d/%d",
		q.Index()+1, q.Len(),
		s.ctrl.QuestionIndex()+1, s.ctrl.SectionSize())
}

// HandlesEsc keeps the router from popping this screen mid-run; escape
// opens the quit confirmation instead.
func (s *Screen) HandlesEsc() bool {
	return s.errMsg == "" && s.ctrl.Phase() != asmt.PhaseIntro
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmQuit || s.confirmRestart {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	switch s.ctrl.Phase() {
	case asmt.PhaseInstructions:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Quit"},
		}
	case asmt.PhaseTest:
		hints := []layout.KeyHint{}
		if q, ok := s.ctrl.CurrentQuestion(); ok {
			if q.Category == asmt.CategoryReasoning && s.ctrl.Step() == asmt.StepStatement {
				hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Show question"})
			} else {
				hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Answer"})
			}
		}
		return append(hints,
			layout.KeyHint{Key: "Ctrl+R", Description: "Restart section"},
			layout.KeyHint{Key: "Esc", Description: "Quit"},
		)
	}
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sectionLoadedMsg:
		return s.handleSectionLoaded(msg)

	case timerTickMsg:
		return s.handleTick(msg)

	case flashDoneMsg:
		s.ctrl.FlashDone(msg.Gen)
		return s, nil

	case analysisDoneMsg:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.resultsScreen(msg)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleSectionLoaded(msg sectionLoadedMsg) (screen.Screen, tea.Cmd) {
	s.ctrl.SectionLoaded(msg.Gen, msg.Questions, msg.Err)
	if s.ctrl.Phase() == asmt.PhaseIntro {
		if err := s.ctrl.LastError(); err != nil {
			s.errMsg = err.Error()
		}
	}
	return s, nil
}

func (s *Screen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	res := s.ctrl.Tick(msg.Gen)
	if !res.Applied {
		return s, nil
	}
	if res.TimedOut {
		return s, tea.Batch(
			ringBell(),
			flashCmd(s.ctrl.FlashGen()),
		)
	}
	if res.Remaining > 0 {
		return s, tickCmd(msg.Gen)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			s.ctrl.Quit()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.confirmRestart {
		switch key {
		case "y", "Y":
			s.confirmRestart = false
			return s, s.effectCmd(s.ctrl.RestartSection())
		case "n", "N", "esc":
			s.confirmRestart = false
		}
		return s, nil
	}

	switch s.ctrl.Phase() {
	case asmt.PhaseInstructions:
		switch key {
		case "esc":
			s.confirmQuit = true
		case "enter", " ":
			eff := s.ctrl.DismissInstructions()
			if eff.TimerArmed || s.ctrl.Phase() == asmt.PhaseTest {
				s.setupQuestion()
			}
			return s, s.effectCmd(eff)
		}
		return s, nil

	case asmt.PhaseTest:
		return s.handleTestKey(msg)
	}

	return s, nil
}

func (s *Screen) handleTestKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "ctrl+r":
		s.confirmRestart = true
		return s, nil
	}

	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		return s, nil
	}

	// Reasoning statement step: only reveal is accepted.
	if q.Category == asmt.CategoryReasoning && s.ctrl.Step() == asmt.StepStatement {
		if key == "enter" || key == " " {
			return s, s.effectCmd(s.ctrl.RevealQuestion())
		}
		return s, nil
	}

	// Typed answer (Memory).
	if q.Choices() == nil {
		if key == "enter" {
			if s.input.Value() == "" {
				return s, nil
			}
			return s.answer(s.input.Value())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	// Option answer.
	var selected string
	var submitted bool
	s.choice, selected, submitted = s.choice.Update(msg)
	if submitted {
		return s.answer(selected)
	}
	return s, nil
}

func (s *Screen) answer(selected string) (screen.Screen, tea.Cmd) {
	before := s.ctrl.QuestionIndex()
	eff := s.ctrl.Answer(selected)

	// Rejected (flash window, stale state): keep the current inputs.
	if s.ctrl.Phase() == asmt.PhaseTest && s.ctrl.QuestionIndex() == before && eff.Kind == asmt.EffectNone && !eff.TimerArmed {
		return s, nil
	}

	if s.ctrl.Phase() == asmt.PhaseTest {
		s.setupQuestion()
	}
	return s, s.effectCmd(eff)
}

// setupQuestion rebuilds the input widgets for the question at the
// cursor.
func (s *Screen) setupQuestion() {
	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		return
	}
	if choices := q.Choices(); choices != nil {
		s.choice = components.NewMultiChoice(choices)
	} else {
		s.input = components.NewTextInput("Pair count...", true, 3)
	}
}

// effectCmd turns a controller effect into Bubble Tea commands.
func (s *Screen) effectCmd(eff asmt.Effect) tea.Cmd {
	var cmds []tea.Cmd

	switch eff.Kind {
	case asmt.EffectLoadSection:
		cmds = append(cmds, s.loadSection(eff.LoadGen, eff.Category, eff.Count))
	case asmt.EffectRunAnalysis:
		cmds = append(cmds, s.runAnalysis())
	}

	if eff.TimerArmed {
		cmds = append(cmds, tickCmd(eff.TimerGen))
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (s *Screen) loadSection(gen uint64, category asmt.Category, count int) tea.Cmd {
	return func() tea.Msg {
		questions, err := s.loader.LoadSection(context.Background(), category, count)
		return sectionLoadedMsg{Gen: gen, Questions: questions, Err: err}
	}
}

func (s *Screen) runAnalysis() tea.Cmd {
	queue := s.ctrl.Queue()
	responses := s.ctrl.Ledger().All()
	ledger := s.ctrl.Ledger()
	return func() tea.Msg {
		ctx := context.Background()
		result := s.analyzer.Analyze(ctx, responses)

		record := asmt.NewRecord(uuid.NewString(), time.Now(), queue, ledger, result.Summary)
		saveErr := s.history.Append(ctx, record)

		return analysisDoneMsg{Result: result, Record: record, SaveErr: saveErr}
	}
}

// resultsScreen builds the results screen with retake and return
// callbacks bound to this run's controller.
func (s *Screen) resultsScreen(msg analysisDoneMsg) screen.Screen {
	return results.New(msg.Result, msg.Record, msg.SaveErr,
		func() tea.Cmd {
			eff := s.ctrl.Retake()
			s.pending = &eff
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
		},
		func() tea.Cmd {
			s.ctrl.ReturnToIntro()
			return func() tea.Msg { return router.PopScreenMsg{} }
		},
	)
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Gen: gen}
	})
}

func flashCmd(gen uint64) tea.Cmd {
	return tea.Tick(flashWindow, func(time.Time) tea.Msg {
		return flashDoneMsg{Gen: gen}
	})
}

// ringBell sounds the terminal bell for the timeout buzzer.
func ringBell() tea.Cmd {
	return func() tea.Msg {
		fmt.Fprint(os.Stdout, "\a")
		return nil
	}
}
