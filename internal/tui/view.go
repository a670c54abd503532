package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View lays out four panels: pods and containers on the left, pod info
// and logs on the right.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.startupErr != nil {
		return m.renderErrorScreen()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.disconnected {
		b.WriteString(bannerWarnStyle.Width(m.width).Render("Connection lost, showing cached data. Press r to reconnect"))
		b.WriteString("\n")
	}

	switch {
	case m.confirm.active:
		b.WriteString(m.confirm.render(m.width))
	case m.nsSel.active:
		b.WriteString(m.nsSel.render(m.width, m.height))
	default:
		b.WriteString(m.renderPanels())
	}
	b.WriteString("\n")

	if m.toast.visible {
		b.WriteString(m.toast.render())
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderPanels() string {
	leftW, rightW := m.columnWidths()
	podsH, ctrH := m.leftHeights()
	infoH, logsH := m.rightHeights()

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderPodsPanel(m.session, m.podCursor, m.focus == focusPods, m.loadingPods, leftW, podsH),
		renderContainersPanel(m.session, m.containerCursor, m.focus == focusContainers, leftW, ctrH),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderInfoPanel(m.session, rightW, infoH),
		renderLogsPanel(m.logLines, m.logOffset, m.focus == focusLogs, m.loadingLogs, rightW, logsH),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// --- Layout arithmetic ---

func (m Model) contentHeight() int {
	// header, footer and the blank line panels sit between
	h := m.height - 3
	if m.disconnected {
		h--
	}
	if m.toast.visible {
		h--
	}
	if h < 8 {
		h = 8
	}
	return h
}

func (m Model) columnWidths() (left, right int) {
	left = m.width * 4 / 10
	if left < 24 {
		left = 24
	}
	right = m.width - left
	if right < 20 {
		right = 20
	}
	return left, right
}

func (m Model) leftHeights() (pods, containers int) {
	h := m.contentHeight()
	pods = h * 6 / 10
	if pods < 4 {
		pods = 4
	}
	containers = h - pods
	if containers < 4 {
		containers = 4
	}
	return pods, containers
}

func (m Model) rightHeights() (info, logs int) {
	h := m.contentHeight()
	info = h * 35 / 100
	if info < 7 {
		info = 7
	}
	logs = h - info
	if logs < 4 {
		logs = 4
	}
	return info, logs
}

// logHeight is the number of log lines visible inside the logs panel.
func (m Model) logHeight() int {
	_, logs := m.rightHeights()
	// border rows plus the panel title
	h := logs - 3
	if h < 1 {
		h = 1
	}
	return h
}

// --- Chrome ---

func (m Model) renderHeader() string {
	title := titleStyle.Render("lazyk8s")
	host, version := "-", "-"
	if m.client != nil {
		host = m.client.GetHost()
		version = m.client.GetVersion()
	}
	ns := namespaceStyle.Render(m.session.Namespace())
	line := fmt.Sprintf(" %s  %s  %s  ns:%s", title, host, version, ns)
	return statusBarStyle.Width(m.width).Render(line)
}

func (m Model) renderFooter() string {
	help := "j/k move · tab panel · n namespace · l logs · x shell · d delete pod · D delete ns · r refresh · q quit"
	return statusBarStyle.Width(m.width).Render(mutedStyle.Render(help))
}

func (m Model) renderErrorScreen() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(errorScreenStyle.Render("lazyk8s - connection failed"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s\n", m.startupErr.Error()))
	b.WriteString("\n")
	b.WriteString("  [r] Retry  [q] Quit\n")

	lines := strings.Count(b.String(), "\n")
	for i := lines; i < m.height; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

// --- Helpers shared by the panel renderers ---

func framePanel(title, body string, focused bool, width, height int) string {
	style := panelStyle
	if focused {
		style = panelFocusStyle
	}
	inner := panelTitleStyle.Render(title) + "\n" + body
	return style.Width(width - 2).Height(height - 2).Render(inner)
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return string(runes[:1])
	}
	return string(runes[:maxLen-1]) + "…"
}

// window returns the slice bounds keeping cursor visible in a list of
// size n shown through rows lines.
func window(cursor, n, rows int) (start, end int) {
	if rows < 1 {
		rows = 1
	}
	if cursor >= rows {
		start = cursor - rows + 1
	}
	end = start + rows
	if end > n {
		end = n
	}
	return start, end
}
