package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/berge472/lazyk8s/internal/state"
)

func renderInfoPanel(session *state.Session, width, height int) string {
	pod, ok := session.SelectedPod()
	if !ok {
		return framePanel("Info", mutedStyle.Render("no pod selected"), false, width, height)
	}

	summary := state.DeriveStatus(pod)

	var b strings.Builder
	fmt.Fprintf(&b, "Name:      %s\n", truncate(pod.Name, width-14))
	fmt.Fprintf(&b, "Namespace: %s\n", pod.Namespace)
	fmt.Fprintf(&b, "Status:    %s (%d/%d) Restarts:%d\n",
		colorizeStatus(summary.Phase), summary.Ready, summary.Total, summary.Restarts)
	fmt.Fprintf(&b, "Node:      %s\n", pod.Node)
	fmt.Fprintf(&b, "IP:        %s\n", pod.IP)
	fmt.Fprintf(&b, "Age:       %s", formatAge(pod.CreatedAt))
	for _, c := range pod.Containers {
		fmt.Fprintf(&b, "\n  %s  %s", c.Name, mutedStyle.Render(truncate(c.Image, width-len(c.Name)-10)))
	}

	return framePanel("Info", b.String(), false, width, height)
}

func formatAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
