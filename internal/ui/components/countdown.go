package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arjunv/cognify/internal/ui/theme"
)

// Countdown renders the per-question timer as a draining bar with the
// seconds remaining. The bar turns warning-colored in the last seconds.
type Countdown struct {
	Remaining int // seconds left
	Limit     int // armed limit in seconds
	Width     int
}

// NewCountdown creates a countdown bar.
func NewCountdown(remaining, limit, width int) Countdown {
	return Countdown{Remaining: remaining, Limit: limit, Width: width}
}

// View renders the countdown bar.
func (c Countdown) View() string {
	label := fmt.Sprintf(" %ds ", c.Remaining)
	labelWidth := lipgloss.Width(label)

	barWidth := c.Width - labelWidth
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if c.Limit > 0 {
		frac = float64(c.Remaining) / float64(c.Limit)
	}
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fillColor := theme.Secondary
	if c.Remaining <= 2 {
		fillColor = theme.Warning
	}

	bar := lipgloss.NewStyle().
		Background(fillColor).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", barWidth-filled))

	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label) + bar
}
