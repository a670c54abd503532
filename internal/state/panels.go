package state

import "strings"

// Panel identifies a display surface whose content may need recomputation
// after a state transition.
type Panel uint8

const (
	PanelNamespaces Panel = 1 << iota
	PanelPods
	PanelContainers
	PanelInfo
	PanelLogs
)

// PanelSet is the set of panels a transition invalidated. The caller is
// expected to refetch exactly these; anything less leaves stale display.
type PanelSet uint8

const NoPanels PanelSet = 0

// Union of panels relevant after a pod selection change.
const podDetailPanels = PanelSet(PanelContainers | PanelInfo | PanelLogs)

func (s PanelSet) Has(p Panel) bool {
	return s&PanelSet(p) != 0
}

func (s PanelSet) With(p Panel) PanelSet {
	return s | PanelSet(p)
}

func (s PanelSet) String() string {
	if s == NoPanels {
		return "none"
	}
	names := []struct {
		p Panel
		n string
	}{
		{PanelNamespaces, "namespaces"},
		{PanelPods, "pods"},
		{PanelContainers, "containers"},
		{PanelInfo, "info"},
		{PanelLogs, "logs"},
	}
	var parts []string
	for _, e := range names {
		if s.Has(e.p) {
			parts = append(parts, e.n)
		}
	}
	return strings.Join(parts, "+")
}
