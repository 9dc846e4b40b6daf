package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wordgrid/pkg/dict"
	"github.com/matzehuels/wordgrid/pkg/grid"
	"github.com/matzehuels/wordgrid/pkg/search"
)

func referenceMatches(t *testing.T) (*grid.Board, []search.Match) {
	t.Helper()
	b := grid.Reference()
	return b, search.TraceAll(b, dict.NewTrie(dict.Common()))
}

func press(m tea.Model, key string) (tea.Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	return m.Update(msg)
}

func TestMatchListNavigation(t *testing.T) {
	b, matches := referenceMatches(t)
	var m tea.Model = NewMatchListModel(b, matches)

	m, _ = press(m, "up")
	if got := m.(MatchListModel).Cursor; got != 0 {
		t.Errorf("cursor after up at top = %d, want 0", got)
	}

	m, _ = press(m, "down")
	m, _ = press(m, "j")
	if got := m.(MatchListModel).Cursor; got != 2 {
		t.Errorf("cursor after two downs = %d, want 2", got)
	}

	m, _ = press(m, "G")
	ml := m.(MatchListModel)
	if ml.Cursor != len(matches)-1 {
		t.Errorf("cursor after G = %d, want %d", ml.Cursor, len(matches)-1)
	}
	if ml.Offset != len(matches)-ml.Height {
		t.Errorf("offset after G = %d, want %d", ml.Offset, len(matches)-ml.Height)
	}

	m, _ = press(m, "down")
	if got := m.(MatchListModel).Cursor; got != len(matches)-1 {
		t.Errorf("cursor moved past the end: %d", got)
	}

	m, _ = press(m, "g")
	ml = m.(MatchListModel)
	if ml.Cursor != 0 || ml.Offset != 0 {
		t.Errorf("after g: cursor %d offset %d, want 0 0", ml.Cursor, ml.Offset)
	}
}

func TestMatchListScrolls(t *testing.T) {
	b, matches := referenceMatches(t)
	var m tea.Model = NewMatchListModel(b, matches)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 11})

	ml := m.(MatchListModel)
	if ml.Height != 5 {
		t.Fatalf("height = %d, want 5", ml.Height)
	}
	for i := 0; i < 7; i++ {
		m, _ = press(m, "down")
	}
	ml = m.(MatchListModel)
	if ml.Cursor != 7 || ml.Offset != 3 {
		t.Errorf("cursor %d offset %d, want 7 3", ml.Cursor, ml.Offset)
	}
}

func TestMatchListQuit(t *testing.T) {
	b, matches := referenceMatches(t)
	for _, key := range []string{"q", "enter"} {
		var m tea.Model = NewMatchListModel(b, matches)
		var cmd tea.Cmd
		if key == "enter" {
			m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		} else {
			m, cmd = press(m, key)
		}
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command does not quit", key)
		}
	}
}

func TestMatchListView(t *testing.T) {
	b, matches := referenceMatches(t)
	m := NewMatchListModel(b, matches)

	view := m.View()
	for _, want := range []string{"Found 22 words", matches[0].Word, "[1/22]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestMatchListViewEmpty(t *testing.T) {
	m := NewMatchListModel(grid.Reference(), nil)
	if !strings.Contains(m.View(), "no words on this board") {
		t.Errorf("empty view:\n%s", m.View())
	}
}
