package tui

import (
	"fmt"
	"strings"

	"github.com/berge472/lazyk8s/internal/state"
)

func renderLogsPanel(lines []state.LogLine, offset int, focused, loading bool, width, height int) string {
	title := fmt.Sprintf("Logs (%d)", len(lines))
	if loading {
		title += " …"
	}

	rows := height - 3
	if rows < 1 {
		rows = 1
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(lines) {
		offset = len(lines)
	}
	end := offset + rows
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := offset; i < end; i++ {
		// Truncate before styling so escape codes stay intact.
		line := state.LogLine{Text: truncate(lines[i].Text, width-4), Severity: lines[i].Severity}
		b.WriteString(styleLogLine(line))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return framePanel(title, b.String(), focused, width, height)
}
