package catalog

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/api"
	"github.com/abhisek/studyhall/internal/router"
	"github.com/abhisek/studyhall/internal/screen"
	"github.com/abhisek/studyhall/internal/screens/learn"
	"github.com/abhisek/studyhall/internal/store"
	"github.com/abhisek/studyhall/internal/ui/components"
	"github.com/abhisek/studyhall/internal/ui/layout"
	"github.com/abhisek/studyhall/internal/ui/theme"
)

type coursesLoadedMsg struct {
	Courses []api.CourseSummary
	Err     error
}

// CatalogScreen lists the course catalog and launches learning sessions.
type CatalogScreen struct {
	client    *api.Client
	eventRepo store.EventRepo

	menu    components.Menu
	spinner components.Spinner
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)

// New creates a new CatalogScreen.
func New(client *api.Client, eventRepo store.EventRepo) *CatalogScreen {
	return &CatalogScreen{
		client:    client,
		eventRepo: eventRepo,
		spinner:   components.NewSpinner("Loading courses..."),
	}
}

func (s *CatalogScreen) Init() tea.Cmd {
	load := func() tea.Msg {
		courses, err := s.client.ListCourses(context.Background())
		return coursesLoadedMsg{Courses: courses, Err: err}
	}
	return tea.Batch(load, s.spinner.Init())
}

func (s *CatalogScreen) Title() string {
	return "Courses"
}

func (s *CatalogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start learning"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.menu = components.NewMenu(s.menuItems(msg.Courses))
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	if !s.loaded {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *CatalogScreen) menuItems(courses []api.CourseSummary) []components.MenuItem {
	items := make([]components.MenuItem, 0, len(courses))
	for _, c := range courses {
		slug := c.Slug
		meta := fmt.Sprintf("%d lessons", c.LessonCount)
		if c.LessonCount == 1 {
			meta = "1 lesson"
		}
		items = append(items, components.MenuItem{
			Label: c.Title,
			Meta:  meta,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: learn.New(s.client, s.eventRepo, slug),
					}
				}
			},
		})
	}
	return items
}

func (s *CatalogScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nCouldn't load the catalog: %s", s.errMsg))
	case !s.loaded:
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.spinner.View())
	case len(s.menu.Items) == 0:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No courses available yet.")
	}

	header := theme.Title.Width(width).Render("Course Catalog") + "\n\n"
	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())
	return "\n" + header + menu
}
