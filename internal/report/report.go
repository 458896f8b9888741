// Package report keeps local snapshots of collected system information.
// Snapshots are plain JSON files; nothing is ever sent anywhere.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"winspect/internal/sysinfo"
)

// Store handles snapshot storage.
type Store struct {
	mu      sync.Mutex
	dataDir string
	enabled bool
}

// Config for the report store.
type Config struct {
	Enabled bool
	DataDir string
}

// DefaultConfig returns the default report store configuration.
func DefaultConfig() Config {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return Config{
		Enabled: true,
		DataDir: filepath.Join(base, "winspect", "reports"),
	}
}

var (
	defaultStore *Store
	once         sync.Once
)

// Init initializes the default store. Subsequent calls are no-ops.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		defaultStore, err = NewStore(cfg)
	})
	return err
}

// Default returns the default store, initializing it if necessary.
func Default() *Store {
	if defaultStore == nil {
		Init(DefaultConfig())
	}
	return defaultStore
}

// NewStore creates a snapshot store.
func NewStore(cfg Config) (*Store, error) {
	s := &Store{
		dataDir: cfg.DataDir,
		enabled: cfg.Enabled,
	}
	if cfg.Enabled {
		if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Enabled reports whether the store accepts snapshots.
func (s *Store) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string {
	return s.dataDir
}

// Save writes a snapshot and returns its file path.
func (s *Store) Save(info *sysinfo.SystemInfo) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return "", fmt.Errorf("report: store is disabled")
	}
	if info == nil {
		return "", fmt.Errorf("report: nil snapshot")
	}

	if err := os.MkdirAll(s.dataDir, 0700); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", err
	}

	name := "report-" + info.CollectedAt.Format("20060102-150405") + ".json"
	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}
	return path, nil
}

// Summary describes one stored snapshot.
type Summary struct {
	Name      string
	Path      string
	Collected time.Time
	SizeBytes int64
}

// List returns stored snapshots, newest first.
func (s *Store) List() ([]Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []Summary
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "report-") || !strings.HasSuffix(name, ".json") {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		ts, err := time.Parse("20060102-150405",
			strings.TrimSuffix(strings.TrimPrefix(name, "report-"), ".json"))
		if err != nil {
			ts = fi.ModTime().UTC()
		}
		out = append(out, Summary{
			Name:      name,
			Path:      filepath.Join(s.dataDir, name),
			Collected: ts,
			SizeBytes: fi.Size(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Collected.After(out[j].Collected) })
	return out, nil
}

// Load reads one stored snapshot back.
func (s *Store) Load(name string) (*sysinfo.SystemInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dataDir, filepath.Base(name)))
	if err != nil {
		return nil, err
	}
	var info sysinfo.SystemInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Clear removes all stored snapshots.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.RemoveAll(s.dataDir)
}

// Stats returns summary statistics about the store.
func (s *Store) Stats() map[string]any {
	snapshots, _ := s.List()

	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]any{
		"enabled":  s.enabled,
		"data_dir": s.dataDir,
		"count":    len(snapshots),
	}
}
