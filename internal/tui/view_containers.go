package tui

import (
	"fmt"
	"strings"

	"github.com/berge472/lazyk8s/internal/domain"
	"github.com/berge472/lazyk8s/internal/state"
)

func renderContainersPanel(session *state.Session, cursor int, focused bool, width, height int) string {
	names := session.ContainerNames()
	title := fmt.Sprintf("Containers (%d)", len(names))

	pod, havePod := session.SelectedPod()
	selected := session.SelectedContainer()

	rows := height - 3
	var b strings.Builder
	if !havePod {
		b.WriteString(mutedStyle.Render("no pod selected"))
	} else if len(names) == 0 {
		b.WriteString(mutedStyle.Render("no containers"))
	}
	start, end := window(cursor, len(names), rows)
	for i := start; i < end; i++ {
		name := names[i]
		line := truncate(name, width-10) + containerBadge(pod, name)
		if name == selected {
			line += " *"
		}
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

// containerBadge shows the runtime state of one container when a status
// for it has been reported.
func containerBadge(pod domain.PodRecord, name string) string {
	for _, st := range pod.Statuses {
		if st.Name != name {
			continue
		}
		label := string(st.State)
		if st.Reason != "" {
			label = st.Reason
		}
		return " " + colorizeStatus(label)
	}
	return ""
}
