package state

import "github.com/berge472/lazyk8s/internal/domain"

// DeriveStatus condenses a raw pod record into its display summary.
// The coarse phase is overridden by increasingly specific reasons: a
// top-level pod reason first (e.g. Evicted), then any container-level
// waiting or terminated reason, iterating in status order so the last
// reported reason wins. Phase alone hides crash loops and image pulls,
// which is exactly what an operator needs to see.
func DeriveStatus(pod domain.PodRecord) domain.StatusSummary {
	phase := pod.Phase
	if pod.Reason != "" {
		phase = pod.Reason
	}

	summary := domain.StatusSummary{Total: len(pod.Statuses)}
	for _, cs := range pod.Statuses {
		summary.Restarts += cs.Restarts
		if cs.Ready {
			summary.Ready++
		}
		if cs.State == domain.StateWaiting && cs.Reason != "" {
			phase = cs.Reason
		} else if cs.State == domain.StateTerminated && cs.Reason != "" {
			phase = cs.Reason
		}
	}
	summary.Phase = phase
	return summary
}
