package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunv/cognify/internal/analysis"
	asmt "github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/screen"
	"github.com/arjunv/cognify/internal/ui/layout"
	"github.com/arjunv/cognify/internal/ui/theme"
)

// Screen shows the end-of-run analysis. Retake and return are callbacks
// bound to the run's controller by the caller.
type Screen struct {
	result  *analysis.Result
	record  asmt.AssessmentRecord
	saveErr error

	onRetake func() tea.Cmd
	onReturn func() tea.Cmd
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscHandler = (*Screen)(nil)

// New creates the results screen.
func New(result *analysis.Result, record asmt.AssessmentRecord, saveErr error, onRetake, onReturn func() tea.Cmd) *Screen {
	return &Screen{
		result:   result,
		record:   record,
		saveErr:  saveErr,
		onRetake: onRetake,
		onReturn: onReturn,
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Results" }

// HandlesEsc routes escape through the return callback so the
// controller leaves the analysis phase cleanly.
func (s *Screen) HandlesEsc() bool { return true }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retake"},
		{Key: "Enter", Description: "Done"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "r", "R":
		return s, s.onRetake()
	case "enter", "esc", "q":
		return s, s.onReturn()
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("Score: %d%%", s.record.Score)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%s run · %d questions", modeLabel(s.record.Mode), s.record.TotalQuestions)))
	b.WriteString("\n\n")

	summary := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.result.Summary)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, summary))
	b.WriteString("\n\n")

	if s.result.Fallback {
		b.WriteString(theme.Subtitle.Width(width).Render("(offline summary — detailed analysis unavailable)"))
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderCategoryScores(width))

	b.WriteString(renderList(width, "Strengths", s.result.Strengths, theme.Success))
	b.WriteString(renderList(width, "Needs work", s.result.Weaknesses, theme.Error))
	b.WriteString(renderList(width, "Suggestions", s.result.Recommendations, theme.Accent))

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render(
			fmt.Sprintf("Could not save to history: %v", s.saveErr)))
	}

	return b.String()
}

func (s *Screen) renderCategoryScores(width int) string {
	if len(s.result.CategoryScores) == 0 {
		return ""
	}

	var lines []string
	for _, cat := range asmt.FullOrder {
		score, ok := s.result.CategoryScores[cat]
		if !ok {
			continue
		}
		bar := strings.Repeat("█", score/10) + strings.Repeat("░", 10-score/10)
		lines = append(lines, fmt.Sprintf("%-10s %s %3d%%", cat.DisplayName(), bar, score))
	}

	block := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block) + "\n\n"
}

func modeLabel(m asmt.Mode) string {
	if m == asmt.ModeFull {
		return "Full"
	}
	return "Practice"
}

func renderList(width int, title string, items []string, c color.Color) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(title))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  • " + item))
		b.WriteString("\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String()) + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
