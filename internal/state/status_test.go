package state

import (
	"testing"

	"github.com/berge472/lazyk8s/internal/domain"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name string
		pod  domain.PodRecord
		want domain.StatusSummary
	}{
		{
			"running all ready",
			domain.PodRecord{
				Phase: "Running",
				Statuses: []domain.ContainerStatus{
					{Ready: true, State: domain.StateRunning},
					{Ready: true, State: domain.StateRunning, Restarts: 2},
				},
			},
			domain.StatusSummary{Phase: "Running", Ready: 2, Total: 2, Restarts: 2},
		},
		{
			"waiting reason overrides phase",
			domain.PodRecord{
				Phase: "Running",
				Statuses: []domain.ContainerStatus{
					{State: domain.StateWaiting, Reason: "CrashLoopBackOff", Restarts: 7},
				},
			},
			domain.StatusSummary{Phase: "CrashLoopBackOff", Ready: 0, Total: 1, Restarts: 7},
		},
		{
			"terminated reason overrides phase",
			domain.PodRecord{
				Phase: "Failed",
				Statuses: []domain.ContainerStatus{
					{State: domain.StateTerminated, Reason: "OOMKilled"},
				},
			},
			domain.StatusSummary{Phase: "OOMKilled", Ready: 0, Total: 1},
		},
		{
			"last reason wins in list order",
			domain.PodRecord{
				Phase: "Running",
				Statuses: []domain.ContainerStatus{
					{State: domain.StateWaiting, Reason: "ImagePullBackOff"},
					{Ready: true, State: domain.StateRunning},
					{State: domain.StateTerminated, Reason: "Error"},
				},
			},
			domain.StatusSummary{Phase: "Error", Ready: 1, Total: 3},
		},
		{
			"pod reason beats phase but not container reason",
			domain.PodRecord{
				Phase:  "Failed",
				Reason: "Evicted",
				Statuses: []domain.ContainerStatus{
					{State: domain.StateWaiting, Reason: "ContainerCreating"},
				},
			},
			domain.StatusSummary{Phase: "ContainerCreating", Ready: 0, Total: 1},
		},
		{
			"pod reason alone",
			domain.PodRecord{Phase: "Failed", Reason: "Evicted"},
			domain.StatusSummary{Phase: "Evicted"},
		},
		{
			"no statuses reported yet",
			domain.PodRecord{Phase: "Pending"},
			domain.StatusSummary{Phase: "Pending"},
		},
		{
			"waiting without reason keeps phase",
			domain.PodRecord{
				Phase: "Pending",
				Statuses: []domain.ContainerStatus{
					{State: domain.StateWaiting},
				},
			},
			domain.StatusSummary{Phase: "Pending", Ready: 0, Total: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.pod)
			if got != tt.want {
				t.Errorf("DeriveStatus() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeriveStatusBounds(t *testing.T) {
	pods := []domain.PodRecord{
		{},
		{Phase: "Running", Statuses: []domain.ContainerStatus{{Ready: true}, {}}},
		{Statuses: []domain.ContainerStatus{{Ready: true}, {Ready: true}, {Ready: true}}},
	}
	for _, pod := range pods {
		got := DeriveStatus(pod)
		if got.Ready > got.Total {
			t.Errorf("ready %d exceeds total %d", got.Ready, got.Total)
		}
		if got.Total != len(pod.Statuses) {
			t.Errorf("total %d, want status count %d", got.Total, len(pod.Statuses))
		}
	}
}

func TestStatusSummaryString(t *testing.T) {
	s := domain.StatusSummary{Phase: "Running", Ready: 1, Total: 2, Restarts: 3}
	want := "Running (1/2) Restarts:3"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
