package state

import "testing"

func TestPanelSetOps(t *testing.T) {
	var s PanelSet
	if s.Has(PanelPods) {
		t.Error("empty set reports pods")
	}
	s = s.With(PanelPods).With(PanelLogs)
	if !s.Has(PanelPods) || !s.Has(PanelLogs) {
		t.Error("With did not add panels")
	}
	if s.Has(PanelInfo) {
		t.Error("set reports panel never added")
	}
}

func TestPanelSetString(t *testing.T) {
	tests := []struct {
		set  PanelSet
		want string
	}{
		{NoPanels, "none"},
		{PanelSet(PanelPods), "pods"},
		{PanelSet(PanelPods | PanelLogs), "pods+logs"},
		{PanelSet(PanelNamespaces | PanelContainers | PanelInfo), "namespaces+containers+info"},
	}
	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
