package domain

import (
	"fmt"
	"time"
)

// ContainerState is the current runtime state of a container.
type ContainerState string

const (
	StateWaiting    ContainerState = "waiting"
	StateRunning    ContainerState = "running"
	StateTerminated ContainerState = "terminated"
	StateUnknown    ContainerState = "unknown"
)

// ContainerSpec describes a declared container. Declared order is display order.
type ContainerSpec struct {
	Name  string
	Image string
}

// ContainerStatus is the reported runtime status of a container.
type ContainerStatus struct {
	Name     string
	Ready    bool
	Restarts int32
	State    ContainerState
	Reason   string // waiting/terminated reason (CrashLoopBackOff, OOMKilled, ...)
}

// PodRecord is the raw view of a pod as fetched from the cluster.
// Display status is derived from it on demand, never stored.
type PodRecord struct {
	Name       string
	Namespace  string
	Phase      string
	Reason     string // top-level reason (e.g. Evicted), overrides Phase when set
	Node       string
	IP         string
	CreatedAt  time.Time
	Containers []ContainerSpec
	Statuses   []ContainerStatus
}

// StatusSummary is the human-readable condensation of a PodRecord.
type StatusSummary struct {
	Phase    string
	Ready    int
	Total    int
	Restarts int32
}

func (s StatusSummary) String() string {
	return fmt.Sprintf("%s (%d/%d) Restarts:%d", s.Phase, s.Ready, s.Total, s.Restarts)
}
