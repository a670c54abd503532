package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/berge472/lazyk8s/internal/cache"
	"github.com/berge472/lazyk8s/internal/config"
	"github.com/berge472/lazyk8s/internal/domain"
	"github.com/berge472/lazyk8s/internal/k8s"
	"github.com/berge472/lazyk8s/internal/logging"
	"github.com/berge472/lazyk8s/internal/tui"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("lazyk8s %s\n", version)
		os.Exit(0)
	}

	cfg, _ := config.LoadConfig()
	logger, closeLog := logging.Setup(cfg.DebugLog)
	defer closeLog()

	// The factory wraps the real client in the TTL cache so the TUI keeps
	// rendering cached lists while the cluster is slow or unreachable.
	factory := func() (domain.KubeGateway, error) {
		client, err := k8s.NewClient()
		if err != nil {
			return nil, err
		}
		return cache.NewCachedGateway(client, cfg.Cache), nil
	}

	client, err := factory()
	if err != nil {
		logger.Error("startup failed", "err", err)
		m := tui.NewModelWithError(err, factory)
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("connected", "host", client.GetHost(), "version", client.GetVersion(), "namespace", client.GetNamespace())

	m := tui.NewModel(client, factory, cfg, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
