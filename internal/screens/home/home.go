package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunv/cognify/internal/analysis"
	asmt "github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/router"
	"github.com/arjunv/cognify/internal/screen"
	assessmentscreen "github.com/arjunv/cognify/internal/screens/assessment"
	"github.com/arjunv/cognify/internal/screens/history"
	"github.com/arjunv/cognify/internal/sectiongen"
	"github.com/arjunv/cognify/internal/store"
	"github.com/arjunv/cognify/internal/ui/components"
	"github.com/arjunv/cognify/internal/ui/theme"
)

// latestLoadedMsg delivers the most recent history record.
type latestLoadedMsg struct {
	Record *asmt.AssessmentRecord
}

// HomeScreen is the entry screen: run menu plus the latest score.
type HomeScreen struct {
	loader      sectiongen.Loader
	analyzer    *analysis.Service
	historyRepo store.HistoryRepo

	menu         components.Menu
	practiceMenu components.Menu
	practicing   bool // category submenu showing

	latest *asmt.AssessmentRecord
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.EscHandler = (*HomeScreen)(nil)
var _ screen.Activator = (*HomeScreen)(nil)

// New creates the home screen with its run menu.
func New(loader sectiongen.Loader, analyzer *analysis.Service, historyRepo store.HistoryRepo) *HomeScreen {
	h := &HomeScreen{
		loader:      loader,
		analyzer:    analyzer,
		historyRepo: historyRepo,
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Full Assessment", Action: func() tea.Cmd {
			return h.startRun(asmt.NewFullQueue())
		}},
		{Label: "Practice a Section", Action: func() tea.Cmd {
			h.practicing = true
			return nil
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(historyRepo)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})

	var practiceItems []components.MenuItem
	for _, cat := range asmt.FullOrder {
		practiceItems = append(practiceItems, components.MenuItem{
			Label: cat.DisplayName(),
			Action: func() tea.Cmd {
				h.practicing = false
				return h.startRun(asmt.NewPracticeQueue(cat))
			},
		})
	}
	practiceItems = append(practiceItems, components.MenuItem{
		Label: "Back",
		Action: func() tea.Cmd {
			h.practicing = false
			return nil
		},
	})
	h.practiceMenu = components.NewMenu(practiceItems)

	return h
}

func (h *HomeScreen) startRun(queue *asmt.Queue) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: assessmentscreen.New(h.loader, h.analyzer, h.historyRepo, queue),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLatest()
}

// loadLatest refreshes the latest-score line. Re-run whenever this
// screen becomes active again after a completed run.
func (h *HomeScreen) loadLatest() tea.Cmd {
	return func() tea.Msg {
		rec, err := h.historyRepo.Latest(context.Background())
		if err != nil {
			return latestLoadedMsg{}
		}
		return latestLoadedMsg{Record: rec}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// OnActivate refreshes the score line when a run above us finishes.
func (h *HomeScreen) OnActivate() tea.Cmd {
	return h.loadLatest()
}

// HandlesEsc closes the practice submenu instead of popping the root.
func (h *HomeScreen) HandlesEsc() bool { return h.practicing }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case latestLoadedMsg:
		h.latest = msg.Record
		return h, nil

	case tea.KeyMsg:
		if h.practicing && msg.String() == "esc" {
			h.practicing = false
			return h, nil
		}
	}

	var cmd tea.Cmd
	if h.practicing {
		h.practiceMenu, cmd = h.practiceMenu.Update(msg)
	} else {
		h.menu, cmd = h.menu.Update(msg)
	}
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("C O G N I F Y"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("A five-minute cognitive check-in"))
	b.WriteString("\n\n")

	if h.latest != nil {
		line := fmt.Sprintf("Last run: %d%% · %s · %s",
			h.latest.Score,
			modeLabel(h.latest.Mode),
			h.latest.Date.Format("Jan 02"))
		b.WriteString(theme.Subtitle.Width(width).Render(line))
		b.WriteString("\n\n")
	} else {
		b.WriteString("\n")
	}

	menu := h.menu
	heading := "What would you like to do?"
	if h.practicing {
		menu = h.practiceMenu
		heading = "Which section?"
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(heading))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu.View()))

	return b.String()
}

func modeLabel(m asmt.Mode) string {
	if m == asmt.ModeFull {
		return "full"
	}
	return "practice"
}
