package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"mortar/internal/building"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a fixture file whenever it changes on disk and applies the
// delta to the model store. A rejected reload (parse or validation failure)
// leaves the model untouched and keeps watching.
type Watcher struct {
	path     string
	store    building.Writer
	current  *Document
	logger   *slog.Logger
	debounce time.Duration
}

// WatcherOption configures optional Watcher behaviour.
type WatcherOption func(*Watcher)

// WithWatcherLogger sets the logger used for reload outcomes.
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithDebounce sets how long the watcher waits after the last write event
// before reloading, coalescing editor save bursts into one reload.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a watcher for path. current is the document already
// applied to the store; the first reload diffs against it.
func NewWatcher(path string, store building.Writer, current *Document, opts ...WatcherOption) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if current == nil {
		current = &Document{}
	}
	w := &Watcher{
		path:     path,
		store:    store,
		current:  current,
		logger:   slog.Default(),
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until the context is canceled. The fixture's directory is
// watched rather than the file itself because editors typically replace the
// file by rename, which would drop a watch registered on the old inode.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching fixture", "path", w.path, "debounce", w.debounce)

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("fixture watch error", "error", err)

		case <-pending:
			timer = nil
			pending = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	doc, err := Load(w.path)
	if err != nil {
		w.logger.Warn("fixture reload rejected", "path", w.path, "error", err)
		return
	}
	if err := Diff(w.current, doc, w.store); err != nil {
		w.logger.Warn("fixture reload failed", "path", w.path, "error", err)
		return
	}
	w.current = doc
	w.logger.Info("fixture reloaded", "path", w.path,
		"perimeters", len(doc.Perimeters), "constraints", len(doc.Constraints))
}
