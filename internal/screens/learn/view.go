package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/studyhall/internal/ui/components"
	"github.com/abhisek/studyhall/internal/ui/theme"
)

const sidebarWidth = 34

// View renders the learn screen: curriculum sidebar on the left, current
// lesson pane on the right.
func (s *LearnScreen) View(width, height int) string {
	switch {
	case !s.loaded:
		return s.renderCentered(width, height, s.spinner.View())
	case s.notEnrolled:
		return s.renderCentered(width, height,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("You're not enrolled in this course")+
				"\n\n"+theme.Hint.Render("Enroll on the website, then come back here."))
	case s.errMsg != "":
		return s.renderCentered(width, height,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Couldn't start the session")+
				"\n\n"+theme.Body.Render(s.errMsg))
	}

	sidebar := s.renderSidebar(height)
	pane := s.renderLessonPane(width-sidebarWidth-2, height)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", pane)
}

func (s *LearnScreen) renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderSidebar draws the curriculum tree with cursor, expansion markers,
// and completion ticks.
func (s *LearnScreen) renderSidebar(height int) string {
	rows := s.visibleRows()
	out := s.st.Outline()

	lessonByID := make(map[string]struct {
		title     string
		completed bool
	}, s.st.TotalLessons())
	sectionTitle := make(map[string]string, len(out.Sections))
	for _, sec := range out.Sections {
		sectionTitle[sec.ID] = sec.Title
		for _, l := range sec.Lessons {
			lessonByID[l.ID] = struct {
				title     string
				completed bool
			}{l.Title, l.Completed}
		}
	}

	var b strings.Builder
	for i, r := range rows {
		selected := i == s.cursor
		var line string

		switch r.kind {
		case rowSection:
			marker := "▸"
			if s.st.IsExpanded(r.sectionID) {
				marker = "▾"
			}
			label := marker + " " + sectionTitle[r.sectionID]
			style := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
			if selected {
				style = style.Foreground(theme.Primary)
				label = "» " + label
			} else {
				label = "  " + label
			}
			line = style.Render(label)

		case rowLesson:
			l := lessonByID[r.lessonID]
			tick := "  "
			if l.completed {
				tick = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
			}
			style := lipgloss.NewStyle().Foreground(theme.Text)
			prefix := "    "
			if r.lessonID == s.st.CurrentLessonID() {
				style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			}
			if selected {
				style = style.Foreground(theme.Primary).Bold(true)
				prefix = "  » "
			}
			line = prefix + tick + style.Render(ansi.Truncate(l.title, sidebarWidth-8, "…"))
		}

		b.WriteString(line + "\n")
	}

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(height).
		Render(b.String())
}

// renderLessonPane draws the current lesson card plus the course-level
// progress bar and completion button.
func (s *LearnScreen) renderLessonPane(width, height int) string {
	if width < 20 {
		width = 20
	}

	lesson, sectionID, ok := s.currentLesson()
	if !ok {
		empty := theme.Hint.Render("This course has no lessons yet.")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(empty)
	}

	var sectionName string
	for _, sec := range s.st.Course().Sections {
		if sec.ID == sectionID {
			sectionName = sec.Title
			break
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(sectionName) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(lesson.Title) + "\n\n")

	if lesson.DurationMin > 0 {
		b.WriteString(theme.Body.Render(fmt.Sprintf("Duration: %d min", lesson.DurationMin)) + "\n")
	}
	if lesson.VideoURL != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(lesson.VideoURL) + "\n")
	}
	b.WriteString("\n")

	mins := s.watchSecs / 60
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Watching for %dm %02ds", mins, s.watchSecs%60)) + "\n\n")

	btn := components.Button{
		Label:  "Mark as complete",
		Active: !s.st.Marking(),
		Done:   s.st.IsCompleted(lesson.ID),
	}
	b.WriteString(btn.View() + "\n")

	if s.statusMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.statusMsg) + "\n")
	}

	card := theme.Card.Width(width - 4).Render(b.String())

	bar := components.NewProgressBar(
		fmt.Sprintf("Progress (%d/%d)", s.st.CompletedCount(), s.st.TotalLessons()),
		float64(s.st.ProgressPercent())/100,
		true,
		width-4,
	).View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(card + "\n\n  " + bar)
}
