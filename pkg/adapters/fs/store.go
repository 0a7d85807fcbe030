// Package fs implements the filesystem-backed bookmark store.
//
// All bookmarks of one project live in a single YAML blob under the
// project's system directory. Every mutation reads the whole blob, changes
// it in memory, and writes the whole blob back atomically; there is no
// partial persistence.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/linemark/pkg/core"
)

const (
	// DefaultSystemDir is the hidden per-project directory holding the blob.
	DefaultSystemDir = ".linemark"

	// blobName is the filename of the persisted bookmark collection.
	blobName = "bookmarks.yaml"
)

// Config holds the configuration for the filesystem store.
type Config struct {
	Path         string // project root
	SystemDir    string // e.g. ".linemark"; DefaultSystemDir when empty
	AutoInit     bool
	MustExist    bool
	Logger       *slog.Logger
	ErrorHandler func(error) // invoked for async watcher errors
}

// Store implements core.Store on top of a single YAML file.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// NewStore creates a new filesystem-backed bookmark store.
func NewStore(config Config) *Store {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize performs the necessary setup for the store (mkdir of the
// project root and system directory).
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("project path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("project path is not a directory: %s", s.Path)
		}
	} else {
		if err := os.MkdirAll(s.Path, 0755); err != nil {
			return fmt.Errorf("failed to create project directory: %w", err)
		}
	}

	if s.config.AutoInit {
		if err := os.MkdirAll(s.systemPath(), 0755); err != nil {
			return fmt.Errorf("failed to create system directory: %w", err)
		}
	}

	return nil
}

func (s *Store) systemPath() string {
	return filepath.Join(s.Path, s.config.SystemDir)
}

func (s *Store) blobPath() string {
	return filepath.Join(s.systemPath(), blobName)
}

// read loads the persisted collection. Callers hold the lock.
func (s *Store) read() ([]core.Bookmark, error) {
	data, err := os.ReadFile(s.blobPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmark blob: %w", err)
	}

	var marks []core.Bookmark
	if err := yaml.Unmarshal(data, &marks); err != nil {
		return nil, fmt.Errorf("failed to parse bookmark blob: %w", err)
	}
	return marks, nil
}

// persist writes the whole collection back atomically. Callers hold the lock.
func (s *Store) persist(marks []core.Bookmark) error {
	if err := os.MkdirAll(s.systemPath(), 0755); err != nil {
		return fmt.Errorf("failed to create system directory: %w", err)
	}

	data, err := yaml.Marshal(marks)
	if err != nil {
		return fmt.Errorf("failed to serialize bookmarks: %w", err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("persisting bookmarks", "count", len(marks), "path", s.blobPath())
	}

	return writeFileAtomic(s.blobPath(), data, 0644)
}

// Load implements core.Store.
func (s *Store) Load(ctx context.Context) ([]core.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// Create implements core.Store. It rejects duplicate mnemonics and leaves
// the collection unchanged in that case.
func (s *Store) Create(ctx context.Context, b core.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	marks, err := s.read()
	if err != nil {
		return err
	}

	for _, m := range marks {
		if m.Mnemonic == b.Mnemonic {
			return fmt.Errorf("%q: %w", b.Mnemonic, core.ErrDuplicateMnemonic)
		}
	}

	return s.persist(append(marks, b))
}

// Find implements core.Store.
func (s *Store) Find(ctx context.Context, mnemonic string) (core.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	marks, err := s.read()
	if err != nil {
		return core.Bookmark{}, err
	}

	for _, m := range marks {
		if m.Mnemonic == mnemonic {
			return m, nil
		}
	}
	return core.Bookmark{}, fmt.Errorf("%q: %w", mnemonic, core.ErrNotFound)
}

// Remove implements core.Store.
func (s *Store) Remove(ctx context.Context, mnemonic string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	marks, err := s.read()
	if err != nil {
		return err
	}

	for i, m := range marks {
		if m.Mnemonic == mnemonic {
			return s.persist(append(marks[:i], marks[i+1:]...))
		}
	}
	return fmt.Errorf("%q: %w", mnemonic, core.ErrNotFound)
}

// RemoveAll implements core.Store.
func (s *Store) RemoveAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist([]core.Bookmark{})
}

// UpdateLine implements core.Store. A missing mnemonic is a no-op.
func (s *Store) UpdateLine(ctx context.Context, mnemonic string, line int, fingerprint string) error {
	return s.UpdateLines(ctx, []core.LineUpdate{{
		Mnemonic:    mnemonic,
		Line:        line,
		Fingerprint: fingerprint,
	}})
}

// UpdateLines implements core.Store. The whole pass persists in one write;
// missing mnemonics are skipped.
func (s *Store) UpdateLines(ctx context.Context, updates []core.LineUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	marks, err := s.read()
	if err != nil {
		return err
	}

	changed := false
	for _, u := range updates {
		for i := range marks {
			if marks[i].Mnemonic == u.Mnemonic {
				marks[i].Line = u.Line
				marks[i].Fingerprint = u.Fingerprint
				changed = true
				break
			}
		}
	}

	if !changed {
		return nil
	}
	return s.persist(marks)
}

// Resource canonicalizes a filesystem path into a project-root-relative,
// slash-separated resource identifier.
func (s *Store) Resource(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(s.Path, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path is outside the project root: %s", path)
	}
	return filepath.ToSlash(rel), nil
}

// ResourcePath returns the absolute filesystem path of a resource.
func (s *Store) ResourcePath(resource string) string {
	return filepath.Join(s.Path, filepath.FromSlash(resource))
}

var _ core.Store = (*Store)(nil)
