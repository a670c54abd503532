package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/berge472/lazyk8s/internal/state"
)

var (
	colorPrimary   = lipgloss.Color("#326CE5") // Kubernetes blue
	colorSuccess   = lipgloss.Color("#04B575")
	colorWarning   = lipgloss.Color("#FFBD2E")
	colorError     = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#626262")
	colorHighlight = lipgloss.Color("#7D56F4")
	colorProdBg    = lipgloss.Color("#8B0000")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	namespaceStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF")).
			PaddingLeft(1).
			PaddingRight(1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted)

	panelFocusStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	bannerWarnStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#CC7700")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	bannerProdStyle = lipgloss.NewStyle().
			Background(colorProdBg).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	errorScreenStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true).
				PaddingLeft(2).
				PaddingTop(1)

	logErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	logWarnStyle  = lipgloss.NewStyle().Foreground(colorWarning)
)

func colorizeStatus(status string) string {
	switch status {
	case "Running", "running", "Active", "Succeeded", "Completed":
		return lipgloss.NewStyle().Foreground(colorSuccess).Render(status)
	case "Pending", "ContainerCreating", "Terminating", "waiting", "terminated":
		return lipgloss.NewStyle().Foreground(colorWarning).Render(status)
	case "Failed", "Error", "CrashLoopBackOff", "ImagePullBackOff",
		"ErrImagePull", "OOMKilled", "Evicted":
		return lipgloss.NewStyle().Foreground(colorError).Render(status)
	default:
		return mutedStyle.Render(status)
	}
}

// styleLogLine colors a presented log line by its severity.
func styleLogLine(line state.LogLine) string {
	switch line.Severity {
	case state.SeverityError:
		return logErrorStyle.Render(line.Text)
	case state.SeverityWarning:
		return logWarnStyle.Render(line.Text)
	default:
		return line.Text
	}
}
