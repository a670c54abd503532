package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/berge472/lazyk8s/internal/domain"
	"github.com/berge472/lazyk8s/internal/state"
)

func renderPodsPanel(session *state.Session, cursor int, focused, loading bool, width, height int) string {
	pods := session.Pods()
	title := fmt.Sprintf("Pods (%d)", len(pods))
	if loading {
		title += " …"
	}

	rows := height - 3
	var b strings.Builder
	if len(pods) == 0 {
		b.WriteString(mutedStyle.Render("no pods"))
	}
	start, end := window(cursor, len(pods), rows)
	nameW := width - 6
	for i := start; i < end; i++ {
		pod := pods[i]
		summary := state.DeriveStatus(pod)
		line := fmt.Sprintf("%s %s %s",
			readinessBullet(summary), truncate(pod.Name, nameW-12), colorizeStatus(summary.Phase))
		if i == cursor && focused {
			line = selectedStyle.Render("> ") + line
		} else if i == cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return framePanel(title, b.String(), focused, width, height)
}

// readinessBullet compresses a status summary into one colored dot:
// green when every container is ready and the pod runs, yellow while
// pending or partially ready, red otherwise.
func readinessBullet(s domain.StatusSummary) string {
	color := colorError
	switch {
	case s.Phase == "Running" && s.Total > 0 && s.Ready == s.Total:
		color = colorSuccess
	case s.Phase == "Succeeded" || s.Phase == "Completed":
		color = colorSuccess
	case s.Phase == "Pending" || s.Ready < s.Total:
		color = colorWarning
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}
