package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 3 * time.Second

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

type toast struct {
	message string
	kind    toastKind
	visible bool
}

type toastExpiredMsg struct{}

func (t *toast) show(message string, kind toastKind) tea.Cmd {
	t.message = message
	t.kind = kind
	t.visible = true
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

// showSticky displays a toast that stays until explicitly hidden.
func (t *toast) showSticky(message string, kind toastKind) {
	t.message = message
	t.kind = kind
	t.visible = true
}

func (t *toast) hide() {
	t.visible = false
	t.message = ""
}

func (t *toast) render() string {
	if !t.visible {
		return ""
	}
	switch t.kind {
	case toastError:
		return toastErrorStyle.Render("✗ " + t.message)
	default:
		return toastSuccessStyle.Render("✓ " + t.message)
	}
}
