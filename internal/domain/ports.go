package domain

import (
	"context"
	"os/exec"
)

// ClusterInfo provides metadata about the current cluster connection.
type ClusterInfo interface {
	GetHost() string
	GetVersion() string
	GetNamespace() string
	SetNamespace(ns string)
	Reconnect() error
}

// PodRepository provides access to pod operations in the current namespace.
type PodRepository interface {
	ListPods(ctx context.Context) ([]PodRecord, error)
	GetPodLogs(ctx context.Context, podName, containerName string, tailLines int64) (string, error)
	DeletePod(ctx context.Context, podName string) error
}

// NamespaceRepository provides access to namespace operations.
type NamespaceRepository interface {
	ListNamespaces(ctx context.Context) ([]string, error)
	DeleteNamespace(ctx context.Context, name string) error
}

// ShellExecutor builds the command used to open an interactive shell
// inside a container. The command runs as a foreground process.
type ShellExecutor interface {
	BuildExecCmd(namespace, podName, containerName, shell string) (*exec.Cmd, error)
}

// KubeGateway is the primary port combining all cluster operations.
// The TUI depends on this interface, not on concrete implementations.
type KubeGateway interface {
	ClusterInfo
	PodRepository
	NamespaceRepository
	ShellExecutor
}
