// Package watcher provides a debounced filesystem watcher for spec files,
// driving re-rendering in watch mode.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/conneroisu/dotspec/internal/logging"
)

// ChangeEvent represents one file change after debouncing.
type ChangeEvent struct {
	Type EventType
	Path string
}

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines whether a changed path is interesting.
type FileFilter func(path string) bool

// ChangeHandler receives each debounced batch of changes.
type ChangeHandler func(events []ChangeEvent) error

// SpecWatcher watches spec paths and delivers debounced change batches to
// its handlers. Rapid bursts of writes collapse into one batch, deduplicated
// by path.
type SpecWatcher struct {
	watcher  *fsnotify.Watcher
	logger   logging.Logger
	debounce time.Duration

	mutex    sync.RWMutex
	filters  []FileFilter
	handlers []ChangeHandler

	pending map[string]ChangeEvent
	timer   *time.Timer
	batches chan []ChangeEvent
}

// New creates a watcher with the given debounce window.
func New(debounce time.Duration, logger logging.Logger) (*SpecWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &SpecWatcher{
		watcher:  fsw,
		logger:   logger.WithComponent("watcher"),
		debounce: debounce,
		pending:  make(map[string]ChangeEvent),
		batches:  make(chan []ChangeEvent, 8),
	}, nil
}

// AddFilter adds a path filter; all filters must accept a path.
func (w *SpecWatcher) AddFilter(filter FileFilter) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.filters = append(w.filters, filter)
}

// AddHandler adds a change handler.
func (w *SpecWatcher) AddHandler(handler ChangeHandler) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.handlers = append(w.handlers, handler)
}

// AddPath watches a file or directory. Directories are watched recursively;
// for a single file its parent directory is watched.
func (w *SpecWatcher) AddPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.watcher.Add(filepath.Dir(path))
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
}

// Start runs the watch loop until the context is canceled.
func (w *SpecWatcher) Start(ctx context.Context) {
	go w.dispatch(ctx)
	go w.watchLoop(ctx)
}

// Stop closes the underlying watcher.
func (w *SpecWatcher) Stop() error {
	w.mutex.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mutex.Unlock()
	return w.watcher.Close()
}

func (w *SpecWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, err, "watch error")
		}
	}
}

func (w *SpecWatcher) handleEvent(event fsnotify.Event) {
	w.mutex.RLock()
	filters := w.filters
	w.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return
		}
	}

	var eventType EventType
	switch {
	case event.Op.Has(fsnotify.Create):
		eventType = EventTypeCreated
	case event.Op.Has(fsnotify.Write):
		eventType = EventTypeModified
	case event.Op.Has(fsnotify.Remove):
		eventType = EventTypeDeleted
	case event.Op.Has(fsnotify.Rename):
		eventType = EventTypeRenamed
	default:
		eventType = EventTypeModified
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.pending[event.Name] = ChangeEvent{Type: eventType, Path: event.Name}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *SpecWatcher) flush() {
	w.mutex.Lock()
	if len(w.pending) == 0 {
		w.mutex.Unlock()
		return
	}
	events := make([]ChangeEvent, 0, len(w.pending))
	for _, event := range w.pending {
		events = append(events, event)
	}
	clear(w.pending)
	w.mutex.Unlock()

	select {
	case w.batches <- events:
	default:
		// Consumer is behind; drop the batch rather than block.
	}
}

func (w *SpecWatcher) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case events := <-w.batches:
			w.mutex.RLock()
			handlers := w.handlers
			w.mutex.RUnlock()

			for _, handler := range handlers {
				if err := handler(events); err != nil {
					w.logger.Warn(ctx, err, "change handler failed")
				}
			}
		}
	}
}

// SpecFileFilter accepts YAML spec files.
func SpecFileFilter(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}

// NoHiddenFilter rejects dotfiles and paths inside hidden directories.
func NoHiddenFilter(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return false
		}
	}
	return true
}
