package cache

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"github.com/berge472/lazyk8s/internal/config"
	"github.com/berge472/lazyk8s/internal/domain"
)

type cacheEntry[T any] struct {
	data      T
	expiresAt time.Time
}

func (e *cacheEntry[T]) valid() bool {
	return time.Now().Before(e.expiresAt)
}

// CachedGateway decorates a KubeGateway with TTL-based caching for list
// operations, so the periodic refresh tick does not hammer the API server.
type CachedGateway struct {
	delegate domain.KubeGateway
	cfg      config.CacheConfig
	mu       sync.RWMutex

	pods       *cacheEntry[[]domain.PodRecord]
	namespaces *cacheEntry[[]string]
}

var _ domain.KubeGateway = (*CachedGateway)(nil)

func NewCachedGateway(delegate domain.KubeGateway, cfg config.CacheConfig) *CachedGateway {
	return &CachedGateway{
		delegate: delegate,
		cfg:      cfg,
	}
}

func (c *CachedGateway) invalidateAll() {
	c.pods = nil
	c.namespaces = nil
}

// --- ClusterInfo (pass-through) ---

func (c *CachedGateway) GetHost() string      { return c.delegate.GetHost() }
func (c *CachedGateway) GetVersion() string   { return c.delegate.GetVersion() }
func (c *CachedGateway) GetNamespace() string { return c.delegate.GetNamespace() }

func (c *CachedGateway) SetNamespace(ns string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delegate.SetNamespace(ns)
	c.invalidateAll()
}

func (c *CachedGateway) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.delegate.Reconnect()
	c.invalidateAll()
	return err
}

// --- Cached List operations ---

func (c *CachedGateway) ListPods(ctx context.Context) ([]domain.PodRecord, error) {
	c.mu.RLock()
	if c.pods != nil && c.pods.valid() {
		data := c.pods.data
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	result, err := c.delegate.ListPods(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.pods = &cacheEntry[[]domain.PodRecord]{
		data:      result,
		expiresAt: time.Now().Add(c.cfg.PodsTTL),
	}
	c.mu.Unlock()
	return result, nil
}

func (c *CachedGateway) ListNamespaces(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	if c.namespaces != nil && c.namespaces.valid() {
		data := c.namespaces.data
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	result, err := c.delegate.ListNamespaces(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.namespaces = &cacheEntry[[]string]{
		data:      result,
		expiresAt: time.Now().Add(c.cfg.NamespacesTTL),
	}
	c.mu.Unlock()
	return result, nil
}

// --- Mutations (pass-through + invalidate) ---

func (c *CachedGateway) DeletePod(ctx context.Context, podName string) error {
	err := c.delegate.DeletePod(ctx, podName)
	if err == nil {
		c.mu.Lock()
		c.pods = nil
		c.mu.Unlock()
	}
	return err
}

func (c *CachedGateway) DeleteNamespace(ctx context.Context, name string) error {
	err := c.delegate.DeleteNamespace(ctx, name)
	if err == nil {
		c.mu.Lock()
		c.invalidateAll()
		c.mu.Unlock()
	}
	return err
}

// --- Pass-through (no caching) ---

func (c *CachedGateway) GetPodLogs(ctx context.Context, podName, containerName string, tailLines int64) (string, error) {
	return c.delegate.GetPodLogs(ctx, podName, containerName, tailLines)
}

func (c *CachedGateway) BuildExecCmd(namespace, podName, containerName, shell string) (*exec.Cmd, error) {
	return c.delegate.BuildExecCmd(namespace, podName, containerName, shell)
}
