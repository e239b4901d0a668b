package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/arjunv/cognify/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that put status
// text in the header's right segment (e.g. section progress).
type StatusProvider interface {
	Status() string
}

// EscHandler is an optional interface for screens that intercept the
// escape key instead of being popped (e.g. mid-test confirmation).
type EscHandler interface {
	HandlesEsc() bool
}

// Activator is an optional interface for screens that refresh when they
// become the active screen again after a pop.
type Activator interface {
	OnActivate() tea.Cmd
}
