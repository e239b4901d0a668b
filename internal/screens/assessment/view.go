package assessment

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	asmt "github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/ui/components"
	"github.com/arjunv/cognify/internal/ui/theme"
)

// sectionInstructions explains each category before its questions.
var sectionInstructions = map[asmt.Category]string{
	asmt.CategoryMemory: "You will see a row of symbols.\n" +
		"Count how many identical pairs it contains and type the number.",
	asmt.CategoryAttention: "You will see a sequence of items.\n" +
		"One of them breaks the pattern. Pick the odd one out.",
	asmt.CategoryReasoning: "You will first see a statement. Read it carefully,\n" +
		"then reveal the question. The timer starts at the question.",
	asmt.CategorySpatial: "You will see a figure and a transformation.\n" +
		"Pick the option that shows its mirror image or rotation.",
	asmt.CategoryVerbal: "You will see a word-relation question.\n" +
		"Pick the option that completes or breaks the relation.",
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirmQuit {
		return renderConfirm(width, "Quit the assessment?", "All answers from this run will be discarded.")
	}
	if s.confirmRestart {
		return renderConfirm(width, "Restart this section?", "Your answers for this section will be cleared.")
	}

	switch s.ctrl.Phase() {
	case asmt.PhaseInstructions:
		return s.renderInstructions(width)
	case asmt.PhaseTest:
		return s.renderQuestion(width)
	case asmt.PhaseAnalysis:
		return centered(width, theme.TextDim, "\n\n\n  Analyzing your results...")
	}
	return ""
}

func (s *Screen) renderInstructions(width int) string {
	cat, ok := s.ctrl.Queue().Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Primary, cat.DisplayName()+" Section"))
	b.WriteString("\n\n")
	b.WriteString(centeredDim(width, sectionInstructions[cat]))
	b.WriteString("\n\n")
	b.WriteString(centeredDim(width, fmt.Sprintf("%d questions · %d seconds each",
		asmt.QuestionsPerSection, int(asmt.QuestionTimeLimit.Seconds()))))
	b.WriteString("\n\n")

	if s.ctrl.Loading() {
		b.WriteString(centeredDim(width, "Preparing questions..."))
	} else {
		b.WriteString(centered(width, theme.Text, "Press Enter to begin"))
	}
	return b.String()
}

func (s *Screen) renderQuestion(width int) string {
	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	// Countdown, or the untimed marker for a Reasoning statement.
	if s.ctrl.TimerRunning() {
		bar := components.NewCountdown(
			s.ctrl.Remaining(),
			int(q.TimeLimit.Seconds()),
			min(width-8, 60),
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	} else {
		b.WriteString(centeredDim(width, "Take your time"))
	}
	b.WriteString("\n")

	if s.ctrl.FlashActive() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Alert.Render(" TIME'S UP! ")))
		b.WriteString("\n")
	} else if s.ctrl.TimedOut() {
		b.WriteString(centered(width, theme.Warning, "Out of time — answer anyway"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch p := q.Payload.(type) {
	case asmt.MemoryPayload:
		b.WriteString(centered(width, theme.Text, strings.Join(p.Symbols, "  ")))
		b.WriteString("\n\n")
		b.WriteString(centeredDim(width, "How many identical pairs?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))

	case asmt.AttentionPayload:
		b.WriteString(centeredDim(width, "Which one breaks the pattern?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	case asmt.ReasoningPayload:
		b.WriteString(centered(width, theme.Text, p.Statement))
		b.WriteString("\n\n")
		if s.ctrl.Step() == asmt.StepStatement {
			b.WriteString(centeredDim(width, "Press Enter when you are ready for the question"))
		} else {
			b.WriteString(centered(width, theme.Text, p.Question))
			b.WriteString("\n\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
		}

	case asmt.SpatialPayload:
		b.WriteString(centered(width, theme.Text,
			fmt.Sprintf("Which is the %s of  %s ?", p.Transform, p.Target)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	case asmt.VerbalPayload:
		b.WriteString(centered(width, theme.Text, p.Prompt))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	}

	return b.String()
}

func renderConfirm(width int, title, detail string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, theme.Text, title))
	b.WriteString("\n")
	b.WriteString(centeredDim(width, detail))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Error, "[Y] Yes"))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Primary, "[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Could not load the section:\n  %s\n\n  Press any key to go back.", errMsg))
}

func centered(width int, c color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(c).
		Bold(true).
		Render(text)
}

func centeredDim(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(text)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
