package domain

import (
	"context"
	"os/exec"
)

// MockGateway implements KubeGateway for testing.
type MockGateway struct {
	HostVal      string
	VersionVal   string
	NamespaceVal string

	Pods       []PodRecord
	Namespaces []string
	LogContent string

	// Error injection
	ListPodsErr       error
	ListNamespacesErr error
	GetPodLogsErr     error
	DeletePodErr      error
	DeleteNSErr       error
	BuildExecErr      error
	ReconnectErr      error

	// Call tracking
	DeletedPod       string
	DeletedNamespace string
	ExecShell           string
	ListPodsCalls       int
	ListNamespacesCalls int
	GetLogsCalls        int
	ReconnectCalls      int
}

// Compile-time check.
var _ KubeGateway = (*MockGateway)(nil)

func (m *MockGateway) GetHost() string       { return m.HostVal }
func (m *MockGateway) GetVersion() string    { return m.VersionVal }
func (m *MockGateway) GetNamespace() string  { return m.NamespaceVal }
func (m *MockGateway) SetNamespace(ns string) { m.NamespaceVal = ns }

func (m *MockGateway) Reconnect() error {
	m.ReconnectCalls++
	return m.ReconnectErr
}

func (m *MockGateway) ListPods(_ context.Context) ([]PodRecord, error) {
	m.ListPodsCalls++
	if m.ListPodsErr != nil {
		return nil, m.ListPodsErr
	}
	return m.Pods, nil
}

func (m *MockGateway) GetPodLogs(_ context.Context, _, _ string, _ int64) (string, error) {
	m.GetLogsCalls++
	if m.GetPodLogsErr != nil {
		return "", m.GetPodLogsErr
	}
	return m.LogContent, nil
}

func (m *MockGateway) DeletePod(_ context.Context, podName string) error {
	m.DeletedPod = podName
	return m.DeletePodErr
}

func (m *MockGateway) ListNamespaces(_ context.Context) ([]string, error) {
	m.ListNamespacesCalls++
	if m.ListNamespacesErr != nil {
		return nil, m.ListNamespacesErr
	}
	return m.Namespaces, nil
}

func (m *MockGateway) DeleteNamespace(_ context.Context, name string) error {
	m.DeletedNamespace = name
	return m.DeleteNSErr
}

func (m *MockGateway) BuildExecCmd(_, _, _, shell string) (*exec.Cmd, error) {
	if m.BuildExecErr != nil {
		return nil, m.BuildExecErr
	}
	m.ExecShell = shell
	return exec.Command("true"), nil
}
