package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with Studyhall styling, for the loading
// states between screen push and first network response.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a new styled spinner.
func NewSpinner(label string) Spinner {
	m := spinner.New()
	m.Spinner = spinner.Dot
	m.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{
		Model: m,
		Label: label,
	}
}

// Init starts the spinner tick loop.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner with its label.
func (s Spinner) View() string {
	out := s.Model.View()
	if s.Label != "" {
		out += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
	}
	return out
}
