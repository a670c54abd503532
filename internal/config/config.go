package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	DefaultProdPatterns = []string{"prod", "production", "prd", "live"}
	DefaultShells       = []string{"/bin/bash", "/bin/sh", "/bin/ash"}
)

// AppConfig holds all configuration for lazyk8s.
type AppConfig struct {
	ProdPatterns       []string
	ReadonlyNamespaces []string
	LogTailLines       int64
	RefreshInterval    time.Duration
	Cache              CacheConfig
	Exec               ExecConfig
	DebugLog           string
}

// CacheConfig holds TTL settings for cached resources.
type CacheConfig struct {
	PodsTTL       time.Duration
	NamespacesTTL time.Duration
}

// ExecConfig holds interactive shell settings. Shells are tried in order
// until one starts.
type ExecConfig struct {
	Shells []string
}

// rawConfig is the YAML shape; durations arrive as strings ("10s").
type rawConfig struct {
	ProdPatterns       []string `yaml:"prod_patterns"`
	ReadonlyNamespaces []string `yaml:"readonly_namespaces"`
	LogTailLines       int64    `yaml:"log_tail_lines"`
	RefreshInterval    string   `yaml:"refresh_interval"`
	Cache              struct {
		Pods       string `yaml:"pods"`
		Namespaces string `yaml:"namespaces"`
	} `yaml:"cache"`
	Exec struct {
		Shells []string `yaml:"shells"`
	} `yaml:"exec"`
	DebugLog string `yaml:"debug_log"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		ProdPatterns:       DefaultProdPatterns,
		ReadonlyNamespaces: nil,
		LogTailLines:       100,
		RefreshInterval:    5 * time.Second,
		Cache: CacheConfig{
			PodsTTL:       5 * time.Second,
			NamespacesTTL: 30 * time.Second,
		},
		Exec: ExecConfig{
			Shells: DefaultShells,
		},
	}
}

// LoadConfig loads from the default path ~/.config/lazyk8s/config.yaml.
func LoadConfig() (*AppConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(filepath.Join(home, ".config", "lazyk8s", "config.yaml"))
}

// LoadConfigFrom loads config from a specific file path.
// Returns defaults if the file does not exist.
func LoadConfigFrom(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, nil
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if len(raw.ProdPatterns) > 0 {
		cfg.ProdPatterns = raw.ProdPatterns
	}
	cfg.ReadonlyNamespaces = raw.ReadonlyNamespaces
	if raw.LogTailLines > 0 {
		cfg.LogTailLines = raw.LogTailLines
	}
	cfg.DebugLog = raw.DebugLog
	if len(raw.Exec.Shells) > 0 {
		cfg.Exec.Shells = raw.Exec.Shells
	}

	if err := setDuration(&cfg.RefreshInterval, raw.RefreshInterval, "refresh_interval"); err != nil {
		return nil, err
	}
	if err := setDuration(&cfg.Cache.PodsTTL, raw.Cache.Pods, "cache.pods"); err != nil {
		return nil, err
	}
	if err := setDuration(&cfg.Cache.NamespacesTTL, raw.Cache.Namespaces, "cache.namespaces"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDuration(dst *time.Duration, value, field string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("config: invalid %s %q: %w", field, value, err)
	}
	if d > 0 {
		*dst = d
	}
	return nil
}

// IsReadonlyNamespace checks if a namespace matches any readonly pattern.
// Supports glob matching (e.g. "kube-*").
func IsReadonlyNamespace(namespace string, patterns []string) bool {
	if namespace == "" || len(patterns) == 0 {
		return false
	}
	for _, p := range patterns {
		matched, err := filepath.Match(p, namespace)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// IsProdNamespace checks if a namespace name matches production patterns.
// Matching is done by segment (split on -._) to avoid false positives
// like "product-api" matching "prod".
func IsProdNamespace(namespace string, patterns []string) bool {
	if len(patterns) == 0 {
		patterns = DefaultProdPatterns
	}
	ns := strings.ToLower(namespace)
	segments := splitSegments(ns)

	for _, p := range patterns {
		p = strings.ToLower(p)
		for _, seg := range segments {
			if seg == p {
				return true
			}
		}
	}
	return false
}

// splitSegments splits a namespace name on common separators.
func splitSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '.' || r == '_'
	})
}
