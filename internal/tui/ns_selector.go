package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// nsSelector is the namespace picker overlay. Typing narrows the list to
// namespaces containing the query; the match order follows the order the
// cluster returned them in.
type nsSelector struct {
	active   bool
	input    textinput.Model
	filtered []string
	cursor   int
}

func newNsSelector() nsSelector {
	ti := textinput.New()
	ti.Placeholder = "filter namespaces"
	ti.CharLimit = 63
	ti.Width = 40
	return nsSelector{input: ti}
}

func (s *nsSelector) open(namespaces []string) {
	s.active = true
	s.input.SetValue("")
	s.input.Focus()
	s.filtered = namespaces
	s.cursor = 0
}

func (s *nsSelector) close() {
	s.active = false
	s.input.Blur()
	s.filtered = nil
	s.cursor = 0
}

func (s *nsSelector) setFiltered(names []string) {
	s.filtered = names
	if s.cursor >= len(names) {
		s.cursor = 0
	}
}

func (s *nsSelector) moveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

func (s *nsSelector) moveDown() {
	if s.cursor < len(s.filtered)-1 {
		s.cursor++
	}
}

// selected returns the highlighted namespace, or "" when nothing matches.
func (s *nsSelector) selected() string {
	if s.cursor < 0 || s.cursor >= len(s.filtered) {
		return ""
	}
	return s.filtered[s.cursor]
}

func (s *nsSelector) updateInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *nsSelector) render(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select namespace"))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	maxRows := height - 10
	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if s.cursor >= maxRows {
		start = s.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(s.filtered) {
		end = len(s.filtered)
	}
	if len(s.filtered) == 0 {
		b.WriteString(mutedStyle.Render("no namespaces match"))
	}
	for i := start; i < end; i++ {
		line := s.filtered[i]
		if i == s.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d namespace(s) · enter select · esc cancel", len(s.filtered))))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2).
		Render(b.String())
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	}
	return box
}
