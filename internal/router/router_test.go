package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhall/internal/screen"
)

type stubScreen struct {
	name    string
	inited  bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	detail := &stubScreen{name: "detail"}
	r.Update(PushScreenMsg{Screen: detail})

	if r.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", r.Depth())
	}
	if !detail.inited {
		t.Error("pushed screen should be initialized")
	}
	if r.Active() != detail {
		t.Error("Active should be the pushed screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Error("Active after pop should be home")
	}

	// Popping the last screen is a no-op.
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1 after popping last screen", r.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if _, ok := home.lastMsg.(tea.WindowSizeMsg); !ok {
		t.Errorf("lastMsg = %T, want tea.WindowSizeMsg", home.lastMsg)
	}
}
