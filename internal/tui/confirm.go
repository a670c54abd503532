package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmAction identifies what a confirm dialog will do once accepted.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeletePod
	confirmDeleteNamespace
)

// confirm is a modal dialog. Regular deletes take a y/N answer. Deleting
// a namespace that matches a prod pattern requires typing the namespace
// name back, so a stray keypress cannot take production down.
type confirm struct {
	active    bool
	action    confirmAction
	target    string
	namespace string
	prod      bool
	input     textinput.Model
}

func newConfirm() confirm {
	ti := textinput.New()
	ti.CharLimit = 63
	ti.Width = 40
	return confirm{input: ti}
}

func (c *confirm) open(action confirmAction, target, namespace string, prod bool) {
	c.active = true
	c.action = action
	c.target = target
	c.namespace = namespace
	c.prod = prod
	if prod {
		c.input.SetValue("")
		c.input.Focus()
	}
}

func (c *confirm) close() {
	c.active = false
	c.action = confirmNone
	c.target = ""
	c.namespace = ""
	c.prod = false
	c.input.Blur()
}

// handleKey returns whether the dialog accepted the action, plus any
// command from the embedded text input.
func (c *confirm) handleKey(msg tea.KeyMsg) (accepted bool, cmd tea.Cmd) {
	if c.prod {
		switch msg.Type {
		case tea.KeyEsc:
			c.close()
			return false, nil
		case tea.KeyEnter:
			if c.input.Value() == c.target {
				return true, nil
			}
			return false, nil
		}
		c.input, cmd = c.input.Update(msg)
		return false, cmd
	}
	switch msg.String() {
	case "y", "Y":
		return true, nil
	default:
		c.close()
		return false, nil
	}
}

func (c *confirm) render(width int) string {
	var b strings.Builder
	switch c.action {
	case confirmDeletePod:
		b.WriteString(fmt.Sprintf("Delete pod %s in namespace %s?", c.target, c.namespace))
	case confirmDeleteNamespace:
		b.WriteString(fmt.Sprintf("Delete namespace %s and everything in it?", c.target))
	}
	b.WriteString("\n\n")
	if c.prod {
		b.WriteString(bannerProdStyle.Render("PRODUCTION NAMESPACE"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Type %q to confirm, esc to cancel:\n", c.target))
		b.WriteString(c.input.View())
	} else {
		b.WriteString("y to confirm, any other key to cancel")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorError).
		Padding(1, 2).
		Render(b.String())
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	}
	return box
}
