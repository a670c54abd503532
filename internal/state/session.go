package state

import (
	"strings"

	"github.com/berge472/lazyk8s/internal/domain"
)

// DefaultNamespace is the sentinel used before any namespace is chosen and
// whenever the current one disappears from the cluster.
const DefaultNamespace = "default"

// Session owns the hierarchical selection (namespace -> pod -> container)
// and the most recent pod list for the active namespace. It is the single
// source of truth the panels read from; only the transitions below mutate
// it. It never talks to the cluster itself: callers fetch and feed results
// in, and the returned PanelSet tells them what to recompute.
type Session struct {
	namespaces []string
	namespace  string
	pods       []domain.PodRecord

	selectedPod       string
	selectedContainer string
}

func NewSession() *Session {
	return &Session{namespace: DefaultNamespace}
}

func (s *Session) Namespace() string         { return s.namespace }
func (s *Session) Namespaces() []string      { return s.namespaces }
func (s *Session) Pods() []domain.PodRecord  { return s.pods }
func (s *Session) SelectedPodName() string   { return s.selectedPod }
func (s *Session) SelectedContainer() string { return s.selectedContainer }

// SelectedPod returns the cached record for the selected pod.
func (s *Session) SelectedPod() (domain.PodRecord, bool) {
	if s.selectedPod == "" {
		return domain.PodRecord{}, false
	}
	for _, p := range s.pods {
		if p.Name == s.selectedPod {
			return p, true
		}
	}
	return domain.PodRecord{}, false
}

// SetNamespaces replaces the available namespace set wholesale. If the
// current namespace is no longer a member of a non-empty set, the session
// falls back to the default namespace and drops everything scoped under it.
// Callers skip this on fetch failure so a stale set survives an outage.
func (s *Session) SetNamespaces(list []string) PanelSet {
	s.namespaces = list
	if len(list) == 0 || containsString(list, s.namespace) {
		return PanelSet(PanelNamespaces)
	}
	s.namespace = DefaultNamespace
	s.pods = nil
	s.selectedPod = ""
	s.selectedContainer = ""
	return PanelSet(PanelNamespaces | PanelPods).With(PanelContainers).With(PanelInfo).With(PanelLogs)
}

// SetNamespace switches the active namespace. The pod cache and both
// selection levels are cleared immediately, before any fetch happens.
// Returns false for a syntactically invalid name.
func (s *Session) SetNamespace(ns string) (PanelSet, bool) {
	if !IsValidNamespace(ns) {
		return NoPanels, false
	}
	s.namespace = ns
	s.pods = nil
	s.selectedPod = ""
	s.selectedContainer = ""
	return PanelSet(PanelPods) | podDetailPanels, true
}

// RefreshPods replaces the cached pod list with a freshly fetched one and
// cascades the selection: a vanished pod clears pod and container, a
// vanished container (pod still present) clears the container only.
func (s *Session) RefreshPods(list []domain.PodRecord) PanelSet {
	s.pods = list
	set := PanelSet(PanelPods)

	if s.selectedPod == "" {
		return set
	}

	pod, found := s.SelectedPod()
	if !found {
		s.selectedPod = ""
		s.selectedContainer = ""
		return set | podDetailPanels
	}

	if s.selectedContainer != "" && !hasContainer(pod, s.selectedContainer) {
		s.selectedContainer = ""
		return set.With(PanelContainers).With(PanelLogs)
	}
	return set
}

// SelectPod selects a pod from the cached list. Unknown names are a no-op.
// Container selection resets; the caller resolves the first-container
// default when it needs one.
func (s *Session) SelectPod(name string) (PanelSet, bool) {
	found := false
	for _, p := range s.pods {
		if p.Name == name {
			found = true
			break
		}
	}
	if !found {
		return NoPanels, false
	}
	s.selectedPod = name
	s.selectedContainer = ""
	return podDetailPanels, true
}

// SelectContainer selects a container of the selected pod. A missing pod
// selection or unknown container name is a no-op.
func (s *Session) SelectContainer(name string) (PanelSet, bool) {
	pod, ok := s.SelectedPod()
	if !ok || !hasContainer(pod, name) {
		return NoPanels, false
	}
	s.selectedContainer = name
	return PanelSet(PanelLogs), true
}

// ContainerNames returns the selected pod's container names in declared
// order, empty when no pod is selected.
func (s *Session) ContainerNames() []string {
	pod, ok := s.SelectedPod()
	if !ok {
		return nil
	}
	names := make([]string, 0, len(pod.Containers))
	for _, c := range pod.Containers {
		names = append(names, c.Name)
	}
	return names
}

// FilterNamespaces returns namespaces whose name contains the query,
// case-insensitively, preserving fetch order. An empty query returns the
// full set.
func (s *Session) FilterNamespaces(query string) []string {
	if query == "" {
		return s.namespaces
	}
	q := strings.ToLower(query)
	var result []string
	for _, ns := range s.namespaces {
		if strings.Contains(strings.ToLower(ns), q) {
			result = append(result, ns)
		}
	}
	return result
}

// IsValidNamespace reports whether ns is a well-formed RFC 1123 label,
// the rule the API server applies to namespace names.
func IsValidNamespace(ns string) bool {
	if len(ns) == 0 || len(ns) > 63 {
		return false
	}
	for i, r := range ns {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-':
			if i == 0 || i == len(ns)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func hasContainer(pod domain.PodRecord, name string) bool {
	for _, c := range pod.Containers {
		if c.Name == name {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
