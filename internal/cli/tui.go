package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wordgrid/pkg/grid"
	"github.com/matzehuels/wordgrid/pkg/search"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// MatchListModel - Interactive result browser
// =============================================================================

// MatchListModel is the bubbletea model for browsing search results. The
// board beside the list highlights the path of the selected word.
type MatchListModel struct {
	Board   *grid.Board
	Matches []search.Match
	Cursor  int
	Height  int
	Offset  int
}

// NewMatchListModel creates a browser over matches found on b.
func NewMatchListModel(b *grid.Board, matches []search.Match) MatchListModel {
	return MatchListModel{
		Board:   b,
		Matches: matches,
		Height:  15,
	}
}

func (m MatchListModel) Init() tea.Cmd {
	return nil
}

func (m MatchListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Matches)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Matches); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m MatchListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Found %d words", len(m.Matches))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Matches) == 0 {
		b.WriteString(listDimStyle.Render("  no words on this board"))
		b.WriteString("\n\n")
		b.WriteString(renderBoard(m.Board, nil))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Matches))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, m.Matches[i].Word, m.Matches[i].Path.String()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	list := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Word", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case m.Offset+row == m.Cursor:
				return listSelectedStyle
			case col == 2:
				return listDimStyle
			}
			return listNormalStyle
		})

	selected := m.Matches[m.Cursor]
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		list.Render(),
		"  ",
		renderBoard(m.Board, selected.Path),
	))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Matches))))

	return b.String()
}

// runBrowser opens the result browser and blocks until the user quits or
// ctx is cancelled.
func runBrowser(ctx context.Context, b *grid.Board, matches []search.Match) error {
	p := tea.NewProgram(NewMatchListModel(b, matches), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("result browser: %w", err)
	}
	return ctx.Err()
}
