package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// ReloadHook is notified after every reload attempt with its outcome.
type ReloadHook func(err error)

// Store serves the current content snapshot. Snapshots are never mutated;
// a reload swaps the pointer.
type Store struct {
	mu      sync.RWMutex
	current *Content

	fs   afero.Fs
	path string

	hookMu sync.Mutex
	hook   ReloadHook

	watchMu       sync.Mutex
	watcher       *fsnotify.Watcher
	watcherActive bool
}

// NewStore returns a store serving c with no backing file.
func NewStore(c *Content) *Store {
	return &Store{current: c}
}

// OpenStore loads path from fs and returns a store that can reload it.
func OpenStore(fs afero.Fs, path string) (*Store, error) {
	c, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	return &Store{current: c, fs: fs, path: path}, nil
}

// Snapshot returns the content currently being served.
func (s *Store) Snapshot() *Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// OnReload registers a hook called after each reload attempt.
func (s *Store) OnReload(hook ReloadHook) {
	s.hookMu.Lock()
	s.hook = hook
	s.hookMu.Unlock()
}

// Reload re-reads the backing file. Content that fails to load or validate is
// discarded and the previous snapshot stays in place.
func (s *Store) Reload() error {
	err := s.reload()

	s.hookMu.Lock()
	hook := s.hook
	s.hookMu.Unlock()
	if hook != nil {
		hook(err)
	}
	return err
}

func (s *Store) reload() error {
	if s.path == "" || s.fs == nil {
		return ErrContentNotConfigured
	}

	c, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = c
	s.mu.Unlock()
	return nil
}

// StartWatcher reloads the backing file whenever it is written or recreated.
// The watcher stops when ctx is cancelled.
func (s *Store) StartWatcher(ctx context.Context, enableHotReload bool) error {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	if !enableHotReload {
		slog.Info("Content hot-reload disabled, skipping file system watcher setup")
		return nil
	}
	if s.path == "" {
		slog.Debug("No content file configured, skipping watcher setup")
		return nil
	}
	if s.watcherActive {
		slog.Debug("Content watcher already active")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	// Watch the directory: editors often replace the file instead of writing it.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch content directory %s: %w", dir, err)
	}

	s.watcher = watcher
	s.watcherActive = true

	go s.watchFiles(ctx, watcher)

	slog.Debug("Started file system watcher for content hot-reloading", "path", s.path)
	return nil
}

func (s *Store) watchFiles(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		s.watchMu.Lock()
		watcher.Close()
		s.watcher = nil
		s.watcherActive = false
		s.watchMu.Unlock()
		slog.Info("Content watcher stopped")
	}()

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := s.Reload(); err != nil {
				slog.Error("Failed to reload content, keeping previous version", "path", s.path, "error", err)
				continue
			}
			slog.Info("Content reloaded", "path", s.path, "event", event.Op.String())

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}
