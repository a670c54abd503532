package k8s

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/berge472/lazyk8s/internal/domain"
)

// Client wraps the Kubernetes clientset and connection metadata.
// It implements domain.KubeGateway.
type Client struct {
	clientset      kubernetes.Interface
	config         *rest.Config
	kubeconfigPath string
	host           string
	version        string
	namespace      string
}

// Compile-time check that Client implements domain.KubeGateway.
var _ domain.KubeGateway = (*Client)(nil)

// --- ClusterInfo implementation ---

func (c *Client) GetHost() string        { return c.host }
func (c *Client) GetVersion() string     { return c.version }
func (c *Client) GetNamespace() string   { return c.namespace }
func (c *Client) SetNamespace(ns string) { c.namespace = ns }

// NewClient creates a K8s client from kubeconfig.
func NewClient() (*Client, error) {
	kubeconfigPath := os.Getenv("KUBECONFIG")
	if kubeconfigPath == "" {
		home, _ := os.UserHomeDir()
		kubeconfigPath = filepath.Join(home, ".kube", "config")
	}

	if _, err := os.Stat(kubeconfigPath); os.IsNotExist(err) {
		return nil, &domain.APIError{
			Type:    domain.ErrNoKubeconfig,
			Message: fmt.Sprintf("No kubeconfig found.\nConfigure cluster access first.\n\nLooked in: %s", kubeconfigPath),
			Err:     err,
		}
	}

	loadingRules := &clientcmd.ClientConfigLoadingRules{ExplicitPath: kubeconfigPath}
	configOverrides := &clientcmd.ConfigOverrides{}
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, configOverrides)

	rawConfig, err := kubeConfig.RawConfig()
	if err != nil {
		return nil, &domain.APIError{
			Type:    domain.ErrBadKubeconfig,
			Message: fmt.Sprintf("Invalid kubeconfig: %v", err),
			Err:     err,
		}
	}

	if rawConfig.CurrentContext == "" {
		return nil, &domain.APIError{
			Type:    domain.ErrNoContext,
			Message: "No active context in kubeconfig.\nRun: kubectl config use-context <ctx>",
		}
	}

	restConfig, err := kubeConfig.ClientConfig()
	if err != nil {
		return nil, &domain.APIError{
			Type:    domain.ErrBadKubeconfig,
			Message: fmt.Sprintf("Cannot build client config: %v", err),
			Err:     err,
		}
	}

	// Keep the TUI snappy
	restConfig.QPS = 50
	restConfig.Burst = 100
	restConfig.Timeout = 10 * time.Second

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, &domain.APIError{
			Type:    domain.ErrUnknown,
			Message: fmt.Sprintf("Cannot create K8s client: %v", err),
			Err:     err,
		}
	}

	namespace, _, _ := kubeConfig.Namespace()
	if namespace == "" {
		namespace = "default"
	}

	host := rawConfig.Contexts[rawConfig.CurrentContext].Cluster

	c := &Client{
		clientset:      clientset,
		config:         restConfig,
		kubeconfigPath: kubeconfigPath,
		host:           host,
		version:        "unknown",
		namespace:      namespace,
	}
	if info, err := clientset.Discovery().ServerVersion(); err == nil {
		c.version = info.GitVersion
	}
	return c, nil
}

// Reconnect reloads the kubeconfig from disk and recreates the clientset.
func (c *Client) Reconnect() error {
	newClient, err := NewClient()
	if err != nil {
		return err
	}
	c.clientset = newClient.clientset
	c.config = newClient.config
	c.host = newClient.host
	c.version = newClient.version
	return nil
}

// classifyError converts a raw K8s error into a domain.APIError.
func classifyError(err error, host string) error {
	if err == nil {
		return nil
	}

	var statusErr *k8serrors.StatusError
	if errors.As(err, &statusErr) {
		code := statusErr.Status().Code
		switch {
		case code == http.StatusUnauthorized:
			return &domain.APIError{
				Type:    domain.ErrTokenExpired,
				Message: "Session expired. Log in again, then press 'r' to reconnect",
				Err:     err,
			}
		case code == http.StatusForbidden:
			return &domain.APIError{
				Type:    domain.ErrForbidden,
				Message: statusErr.Status().Message,
				Err:     err,
			}
		case code == http.StatusNotFound:
			return &domain.APIError{
				Type:    domain.ErrNotFound,
				Message: statusErr.Status().Message,
				Err:     err,
			}
		case code >= 500:
			return &domain.APIError{
				Type:    domain.ErrRetrieval,
				Message: fmt.Sprintf("Server error (%d). Retry with 'r'.", code),
				Err:     err,
			}
		}
	}

	errStr := err.Error()
	if strings.Contains(errStr, "x509") || strings.Contains(errStr, "certificate") || strings.Contains(errStr, "tls") {
		return &domain.APIError{
			Type:    domain.ErrTLS,
			Message: fmt.Sprintf("Invalid TLS certificate for %s.\nCheck your kubeconfig.", host),
			Err:     err,
		}
	}

	if strings.Contains(errStr, "dial tcp") || strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return &domain.APIError{
			Type:    domain.ErrUnreachable,
			Message: fmt.Sprintf("Cluster unreachable: %s\n%v", host, err),
			Err:     err,
		}
	}

	return &domain.APIError{
		Type:    domain.ErrUnknown,
		Message: err.Error(),
		Err:     err,
	}
}
