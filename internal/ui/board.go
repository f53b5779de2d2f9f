// Package ui renders a rating board as an interactive Bubble Tea program.
// Every accepted key runs the limiter, mutator, counter and classifier for
// the cursor line only; the aggregate footer is recomputed afterwards.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"starline/internal/rating"
)

const labelWidth = 24

type boardModel struct {
	board    *rating.Board
	keys     keyMap
	help     help.Model
	cursor   int
	width    int
	quitting bool
}

// NewBoardModel returns a Bubble Tea model over an initialized board.
func NewBoardModel(b *rating.Board) tea.Model {
	return &boardModel{
		board: b,
		keys:  defaultKeyMap(),
		help:  help.New(),
		width: 80,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.help.Width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.board.Len()-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.AddFull):
		m.board.Apply(m.cursor, rating.DeltaFullUp)
		return m, nil
	case key.Matches(msg, m.keys.RemoveFull):
		m.board.Apply(m.cursor, rating.DeltaFullDown)
		return m, nil
	case key.Matches(msg, m.keys.AddHalf):
		m.board.Apply(m.cursor, rating.DeltaHalfUp)
		return m, nil
	case key.Matches(msg, m.keys.RemoveHalf):
		m.board.Apply(m.cursor, rating.DeltaHalfDown)
		return m, nil
	case key.Matches(msg, m.keys.ToggleBold):
		// Never reached from a delta key; the toggle stays contained
		// to its own binding.
		if l := m.board.Line(m.cursor); l != nil {
			l.ToggleBold()
		}
		return m, nil
	}
	return m, nil
}

func (m *boardModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	b.WriteString(title.Render(m.board.Title()))
	b.WriteString("\n\n")

	if m.board.Len() == 0 {
		// No lines means no count displays and no total region.
		b.WriteString("  no rateable lines\n\n")
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
		return b.String()
	}

	for i, l := range m.board.Lines() {
		b.WriteString(m.viewLine(i, l))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %s STARS", m.board.AggregateStars()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m *boardModel) viewLine(i int, l *rating.Line) string {
	c := l.Count()
	count := styleCategory(rating.Classify(c))
	if l.Bold() {
		count = count.Bold(true)
	}

	prefix := "  "
	if i == m.cursor {
		prefix = "→ "
	}

	width := labelWidth
	if m.width < 60 && m.width > 20 {
		width = m.width / 3
	}
	label := runewidth.FillRight(truncate(l.Label(), width), width)
	glyphs := runewidth.FillRight(glyphs(l.Markers()), rating.MaxHalfUnits/2+1)
	text := fmt.Sprintf("%s STARS", c.Stars())
	return fmt.Sprintf("%s%s %s %s", prefix, label, glyphs, count.Render(text))
}

// styleCategory maps categories onto the display colors: flagged green,
// low red, mid yellow.
func styleCategory(c rating.Category) lipgloss.Style {
	switch c {
	case rating.CategoryFlagged:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case rating.CategoryLow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	}
}

func glyphs(markers []rating.Marker) string {
	var b strings.Builder
	for _, m := range markers {
		if m == rating.MarkerHalf {
			b.WriteString("½")
		} else {
			b.WriteString("★")
		}
	}
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
