package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/berge472/lazyk8s/internal/config"
	"github.com/berge472/lazyk8s/internal/domain"
	"github.com/berge472/lazyk8s/internal/state"
)

// ClientFactory creates a new KubeGateway (used for reconnection from the
// startup error screen).
type ClientFactory func() (domain.KubeGateway, error)

// --- Focus ---

type focusArea int

const (
	focusPods focusArea = iota
	focusContainers
	focusLogs
)

// --- Messages ---

type tickMsg time.Time

type namespacesLoadedMsg struct{ items []string }

// podsLoadedMsg carries the namespace the fetch was issued for so a
// response that arrives after the user switched namespaces can be dropped.
type podsLoadedMsg struct {
	namespace string
	items     []domain.PodRecord
}

type logsLoadedMsg struct {
	namespace string
	pod       string
	container string
	lines     []state.LogLine
}

type logsFailedMsg struct {
	namespace string
	pod       string
	err       error
}

type actionDoneMsg struct{ message string }
type apiErrMsg struct{ err error }
type execDoneMsg struct{ err error }

// --- Model ---

type Model struct {
	client        domain.KubeGateway
	clientFactory ClientFactory
	cfg           *config.AppConfig
	logger        *slog.Logger

	session *state.Session

	focus           focusArea
	podCursor       int
	containerCursor int

	logLines  []state.LogLine
	logOffset int
	logFollow bool

	width      int
	height     int
	startupErr error

	loadingNamespaces bool
	loadingPods       bool
	loadingLogs       bool
	disconnected      bool

	// Shell candidates are tried in order until one sticks.
	shellIdx int
	shellPod string
	shellCtr string

	toast   toast
	confirm confirm
	nsSel   nsSelector
}

func NewModel(client domain.KubeGateway, factory ClientFactory, cfg *config.AppConfig, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	session := state.NewSession()
	if ns := client.GetNamespace(); ns != "" {
		session.SetNamespace(ns)
	}

	return Model{
		client:        client,
		clientFactory: factory,
		cfg:           cfg,
		logger:        logger,
		session:       session,
		logFollow:     true,
		logLines:      state.Notice("No pod selected"),
		confirm:       newConfirm(),
		nsSel:         newNsSelector(),
	}
}

func NewModelWithError(err error, factory ClientFactory) Model {
	return Model{
		startupErr:    err,
		clientFactory: factory,
		cfg:           config.DefaultConfig(),
		logger:        slog.New(slog.DiscardHandler),
		session:       state.NewSession(),
		logFollow:     true,
		logLines:      state.Notice("No pod selected"),
		confirm:       newConfirm(),
		nsSel:         newNsSelector(),
	}
}

func (m Model) Init() tea.Cmd {
	if m.startupErr != nil {
		return nil
	}
	return tea.Batch(m.loadNamespaces(), m.loadPods(), m.tick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.startupErr != nil {
			return m, nil
		}
		cmds := []tea.Cmd{m.tick()}
		if !m.loadingNamespaces {
			cmds = append(cmds, m.loadNamespaces())
		}
		if !m.loadingPods {
			cmds = append(cmds, m.loadPods())
		}
		if !m.loadingLogs && m.session.SelectedPodName() != "" {
			cmds = append(cmds, m.reloadLogs())
		}
		return m, tea.Batch(cmds...)

	case namespacesLoadedMsg:
		m.loadingNamespaces = false
		m.disconnected = false
		before := m.session.Namespace()
		panels := m.session.SetNamespaces(msg.items)
		if m.session.Namespace() != before {
			// Current namespace vanished from the cluster.
			m.client.SetNamespace(m.session.Namespace())
			m.logger.Info("namespace fell back", "from", before, "to", m.session.Namespace())
		}
		if m.nsSel.active {
			m.nsSel.setFiltered(m.session.FilterNamespaces(m.nsSel.input.Value()))
		}
		return m, m.applyPanels(panels)

	case podsLoadedMsg:
		if msg.namespace != m.session.Namespace() {
			// Stale response from before a namespace switch.
			return m, nil
		}
		m.loadingPods = false
		m.disconnected = false
		panels := m.session.RefreshPods(msg.items)
		m.syncPodCursor()
		return m, m.applyPanels(panels)

	case logsLoadedMsg:
		if msg.namespace != m.session.Namespace() || msg.pod != m.session.SelectedPodName() {
			return m, nil
		}
		m.loadingLogs = false
		m.logLines = msg.lines
		if m.logFollow {
			m.logOffset = max(len(m.logLines)-m.logHeight(), 0)
		} else {
			m.logOffset = min(m.logOffset, max(len(m.logLines)-1, 0))
		}
		return m, nil

	case logsFailedMsg:
		if msg.namespace != m.session.Namespace() || msg.pod != m.session.SelectedPodName() {
			return m, nil
		}
		m.loadingLogs = false
		m.logLines = state.ErrorNotice(fmt.Sprintf("Failed to fetch logs: %v", msg.err))
		m.logOffset = 0
		return m, nil

	case execDoneMsg:
		return m.handleExecDone(msg.err)

	case actionDoneMsg:
		cmd := m.toast.show(msg.message, toastSuccess)
		return m, tea.Batch(cmd, m.loadNamespaces(), m.loadPods())

	case apiErrMsg:
		return m.handleAPIError(msg.err)

	case toastExpiredMsg:
		m.toast.hide()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Startup error screen: only q/r.
	if m.startupErr != nil {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.clientFactory == nil {
				return m, nil
			}
			client, err := m.clientFactory()
			if err != nil {
				m.startupErr = err
				return m, nil
			}
			m.client = client
			m.startupErr = nil
			if ns := client.GetNamespace(); ns != "" {
				m.session.SetNamespace(ns)
			}
			return m, tea.Batch(m.loadNamespaces(), m.loadPods(), m.tick())
		}
		return m, nil
	}

	// Confirm dialog captures all input.
	if m.confirm.active {
		accepted, cmd := m.confirm.handleKey(msg)
		if !accepted {
			return m, cmd
		}
		return m.runConfirmedAction()
	}

	// Namespace selector captures all input.
	if m.nsSel.active {
		return m.handleNsSelectorKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Escape):
		m.toast.hide()
		return m, nil

	case key.Matches(msg, keys.NextPanel):
		m.focus = (m.focus + 1) % 3
		return m, nil

	case key.Matches(msg, keys.Namespace):
		m.nsSel.open(m.session.Namespaces())
		return m, tea.Batch(textinput.Blink, m.loadNamespaces())

	case key.Matches(msg, keys.Refresh):
		if m.disconnected {
			if err := m.client.Reconnect(); err != nil {
				return m.handleAPIError(err)
			}
			m.disconnected = false
		}
		return m, tea.Batch(m.loadNamespaces(), m.loadPods(), m.reloadLogs())

	case key.Matches(msg, keys.Logs):
		return m, m.reloadLogs()

	case key.Matches(msg, keys.Shell):
		return m.handleShell()

	case key.Matches(msg, keys.Delete):
		return m.handleDeletePod()

	case key.Matches(msg, keys.DeleteNS):
		return m.handleDeleteNamespace()

	case key.Matches(msg, keys.Down):
		return m.moveCursor(1)
	case key.Matches(msg, keys.Up):
		return m.moveCursor(-1)
	case key.Matches(msg, keys.PageDown):
		return m.moveCursor(10)
	case key.Matches(msg, keys.PageUp):
		return m.moveCursor(-10)
	case key.Matches(msg, keys.Top):
		return m.moveTo(0)
	case key.Matches(msg, keys.Bottom):
		return m.moveTo(-1)

	case key.Matches(msg, keys.Enter):
		if m.focus == focusPods && len(m.session.Pods()) > 0 {
			m.focus = focusContainers
		}
		return m, nil
	}

	return m, nil
}

// --- Navigation ---

func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusPods:
		n := len(m.session.Pods())
		if n == 0 {
			return m, nil
		}
		idx := clamp(m.podCursor+delta, 0, n-1)
		return m.selectPodAt(idx)
	case focusContainers:
		names := m.session.ContainerNames()
		if len(names) == 0 {
			return m, nil
		}
		idx := clamp(m.containerCursor+delta, 0, len(names)-1)
		return m.selectContainerAt(idx)
	case focusLogs:
		m.logFollow = false
		maxOff := max(len(m.logLines)-m.logHeight(), 0)
		m.logOffset = clamp(m.logOffset+delta, 0, maxOff)
		if m.logOffset == maxOff {
			m.logFollow = true
		}
		return m, nil
	}
	return m, nil
}

// moveTo jumps to the first entry, or the last when idx is negative.
func (m Model) moveTo(idx int) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusPods:
		n := len(m.session.Pods())
		if n == 0 {
			return m, nil
		}
		if idx < 0 {
			idx = n - 1
		}
		return m.selectPodAt(idx)
	case focusContainers:
		names := m.session.ContainerNames()
		if len(names) == 0 {
			return m, nil
		}
		if idx < 0 {
			idx = len(names) - 1
		}
		return m.selectContainerAt(idx)
	case focusLogs:
		if idx < 0 {
			m.logOffset = max(len(m.logLines)-m.logHeight(), 0)
			m.logFollow = true
		} else {
			m.logOffset = 0
			m.logFollow = false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) selectPodAt(idx int) (tea.Model, tea.Cmd) {
	pods := m.session.Pods()
	if idx < 0 || idx >= len(pods) {
		return m, nil
	}
	m.podCursor = idx
	panels, ok := m.session.SelectPod(pods[idx].Name)
	if !ok {
		return m, nil
	}
	m.containerCursor = 0
	return m, m.applyPanels(panels)
}

func (m Model) selectContainerAt(idx int) (tea.Model, tea.Cmd) {
	names := m.session.ContainerNames()
	if idx < 0 || idx >= len(names) {
		return m, nil
	}
	m.containerCursor = idx
	panels, ok := m.session.SelectContainer(names[idx])
	if !ok {
		return m, nil
	}
	return m, m.applyPanels(panels)
}

// syncPodCursor keeps the cursor on the selected pod after a refresh
// reorders or shrinks the list.
func (m *Model) syncPodCursor() {
	pods := m.session.Pods()
	selected := m.session.SelectedPodName()
	for i, p := range pods {
		if p.Name == selected {
			m.podCursor = i
			return
		}
	}
	m.podCursor = 0
	m.containerCursor = 0
}

// --- Namespace selector ---

// Letters go to the filter input, so only control keys are intercepted.
func (m Model) handleNsSelectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nsSel.close()
		return m, nil
	case "down", "ctrl+n":
		m.nsSel.moveDown()
		return m, nil
	case "up", "ctrl+p":
		m.nsSel.moveUp()
		return m, nil
	case "enter":
		name := m.nsSel.selected()
		m.nsSel.close()
		if name == "" || name == m.session.Namespace() {
			return m, nil
		}
		panels, ok := m.session.SetNamespace(name)
		if !ok {
			return m, m.toast.show(fmt.Sprintf("Invalid namespace %q", name), toastError)
		}
		m.client.SetNamespace(name)
		m.podCursor = 0
		m.containerCursor = 0
		m.focus = focusPods
		m.logger.Info("namespace switched", "namespace", name)
		return m, m.applyPanels(panels)
	}
	cmd := m.nsSel.updateInput(msg)
	m.nsSel.setFiltered(m.session.FilterNamespaces(m.nsSel.input.Value()))
	return m, cmd
}

// --- Shell ---

func (m Model) handleShell() (tea.Model, tea.Cmd) {
	if config.IsReadonlyNamespace(m.session.Namespace(), m.cfg.ReadonlyNamespaces) {
		return m, m.toast.show(fmt.Sprintf("Namespace %s is read-only, shell disabled", m.session.Namespace()), toastError)
	}
	pod, container, reason := m.resolveTarget()
	if reason != "" {
		return m, m.toast.show(reason, toastError)
	}
	m.shellIdx = 0
	m.shellPod = pod
	m.shellCtr = container
	return m.startShell()
}

func (m Model) startShell() (tea.Model, tea.Cmd) {
	shells := m.cfg.Exec.Shells
	if m.shellIdx >= len(shells) {
		return m, m.toast.show(fmt.Sprintf("No usable shell in %s (tried %d)", m.shellPod, len(shells)), toastError)
	}
	shell := shells[m.shellIdx]
	cmd, err := m.client.BuildExecCmd(m.session.Namespace(), m.shellPod, m.shellCtr, shell)
	if err != nil {
		return m, m.toast.show(fmt.Sprintf("Shell: %v", err), toastError)
	}
	m.logger.Debug("exec shell", "pod", m.shellPod, "container", m.shellCtr, "shell", shell)
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return execDoneMsg{err: err}
	})
}

func (m Model) handleExecDone(err error) (tea.Model, tea.Cmd) {
	if err != nil && m.shellIdx+1 < len(m.cfg.Exec.Shells) {
		m.shellIdx++
		return m.startShell()
	}
	var cmd tea.Cmd
	if err != nil {
		cmd = m.toast.show(fmt.Sprintf("No usable shell in %s", m.shellPod), toastError)
	}
	return m, tea.Batch(cmd, m.loadPods(), m.reloadLogs())
}

// --- Deletes ---

func (m Model) handleDeletePod() (tea.Model, tea.Cmd) {
	pod, ok := m.session.SelectedPod()
	if !ok {
		return m, nil
	}
	prod := config.IsProdNamespace(m.session.Namespace(), m.cfg.ProdPatterns)
	m.confirm.open(confirmDeletePod, pod.Name, m.session.Namespace(), prod)
	if prod {
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleDeleteNamespace() (tea.Model, tea.Cmd) {
	ns := m.session.Namespace()
	if ns == "" {
		return m, nil
	}
	prod := config.IsProdNamespace(ns, m.cfg.ProdPatterns)
	m.confirm.open(confirmDeleteNamespace, ns, ns, prod)
	if prod {
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) runConfirmedAction() (tea.Model, tea.Cmd) {
	action := m.confirm.action
	target := m.confirm.target
	m.confirm.close()

	client := m.client
	switch action {
	case confirmDeletePod:
		m.loadingPods = true
		return m, func() tea.Msg {
			if err := client.DeletePod(context.Background(), target); err != nil {
				return apiErrMsg{err}
			}
			return actionDoneMsg{fmt.Sprintf("Pod %s deleted", target)}
		}
	case confirmDeleteNamespace:
		return m, func() tea.Msg {
			if err := client.DeleteNamespace(context.Background(), target); err != nil {
				return apiErrMsg{err}
			}
			return actionDoneMsg{fmt.Sprintf("Namespace %s deleted", target)}
		}
	}
	return m, nil
}

// --- Error handling ---

func (m Model) handleAPIError(err error) (tea.Model, tea.Cmd) {
	m.loadingNamespaces = false
	m.loadingPods = false
	m.loadingLogs = false
	m.logger.Warn("api error", "err", err)

	apiErr, ok := domain.AsAPIError(err)
	if !ok {
		return m, m.toast.show(err.Error(), toastError)
	}

	switch apiErr.Type {
	case domain.ErrTokenExpired, domain.ErrUnreachable, domain.ErrTLS:
		// Keep showing cached data, let the user reconnect with r.
		m.disconnected = true
		m.toast.showSticky(apiErr.Message, toastError)
		return m, nil
	case domain.ErrForbidden:
		return m, m.toast.show(fmt.Sprintf("Access denied in namespace %s", m.session.Namespace()), toastError)
	case domain.ErrNotFound:
		return m, tea.Batch(m.toast.show(apiErr.Message, toastError), m.loadNamespaces(), m.loadPods())
	default:
		return m, m.toast.show(apiErr.Message, toastError)
	}
}

// --- Data loading ---

// applyPanels turns an invalidation set into reload commands. The
// containers and info panels render straight from the session, so only
// pods and logs need fetches.
func (m *Model) applyPanels(panels state.PanelSet) tea.Cmd {
	var cmds []tea.Cmd
	if panels.Has(state.PanelPods) {
		cmds = append(cmds, m.loadPods())
	}
	if panels.Has(state.PanelContainers) {
		m.containerCursor = 0
	}
	if panels.Has(state.PanelLogs) {
		cmds = append(cmds, m.reloadLogs())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadNamespaces() tea.Cmd {
	m.loadingNamespaces = true
	client := m.client
	return func() tea.Msg {
		items, err := client.ListNamespaces(context.Background())
		if err != nil {
			return apiErrMsg{err}
		}
		return namespacesLoadedMsg{items}
	}
}

func (m *Model) loadPods() tea.Cmd {
	m.loadingPods = true
	client := m.client
	ns := m.session.Namespace()
	return func() tea.Msg {
		items, err := client.ListPods(context.Background())
		if err != nil {
			return apiErrMsg{err}
		}
		return podsLoadedMsg{namespace: ns, items: items}
	}
}

// resolveTarget picks the pod and container operations act on: the
// selected container, or the pod's first container when none is selected.
// A non-empty reason means there is nothing to act on.
func (m Model) resolveTarget() (pod, container, reason string) {
	p, ok := m.session.SelectedPod()
	if !ok {
		return "", "", "No pod selected"
	}
	container = m.session.SelectedContainer()
	if container == "" {
		if len(p.Containers) == 0 {
			return "", "", fmt.Sprintf("Pod %s has no containers", p.Name)
		}
		container = p.Containers[0].Name
	}
	return p.Name, container, ""
}

func (m *Model) reloadLogs() tea.Cmd {
	pod, container, reason := m.resolveTarget()
	if reason != "" {
		m.logLines = state.Notice(reason)
		m.logOffset = 0
		m.loadingLogs = false
		return nil
	}
	m.loadingLogs = true
	client := m.client
	ns := m.session.Namespace()
	tail := m.cfg.LogTailLines
	return func() tea.Msg {
		content, err := client.GetPodLogs(context.Background(), pod, container, tail)
		if err != nil {
			return logsFailedMsg{namespace: ns, pod: pod, err: err}
		}
		return logsLoadedMsg{namespace: ns, pod: pod, container: container, lines: state.PresentLogs(content)}
	}
}

// --- Helpers ---

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
