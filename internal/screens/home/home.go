package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/api"
	"github.com/abhisek/studyhall/internal/router"
	"github.com/abhisek/studyhall/internal/screen"
	"github.com/abhisek/studyhall/internal/screens/catalog"
	"github.com/abhisek/studyhall/internal/screens/history"
	"github.com/abhisek/studyhall/internal/store"
	"github.com/abhisek/studyhall/internal/ui/components"
	"github.com/abhisek/studyhall/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	learner string
	totals  store.Totals
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The journal totals shown under the menu
// are loaded once up front; a missing journal just renders as zeros.
func New(client *api.Client, eventRepo store.EventRepo, learner string) *HomeScreen {
	var totals store.Totals
	if eventRepo != nil {
		totals, _ = eventRepo.JournalTotals(context.Background())
	}

	items := []components.MenuItem{
		{Label: "BROWSE COURSES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: catalog.New(client, eventRepo)}
			}
		}},
		{Label: "HISTORY", Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		learner: learner,
		totals:  totals,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("S T U D Y H A L L")

	greeting := "Welcome back"
	if h.learner != "" {
		greeting = "Welcome back, " + h.learner
	}
	sub := theme.Subtitle.Width(width).Render(greeting)

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())

	stats := ""
	if h.totals.Sessions > 0 {
		stats = lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("%d sessions · %d lessons completed",
				h.totals.Sessions, h.totals.Completions)))
	}

	content := "\n\n" + title + "\n" + sub + "\n\n\n" + menu
	if stats != "" {
		content += "\n" + stats
	}
	return content
}
