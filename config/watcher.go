package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for more writes before reloading
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a config file when it changes on disk.
// The parent directory is watched so editors that replace the file by rename are seen
type Watcher struct {
	path     string
	loader   *Loader
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.RWMutex
	current *Config

	updates chan *Config
}

// NewWatcher creates a watcher for path starting from an already loaded config
func NewWatcher(path string, loader *Loader, initial *Config, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		loader:   loader,
		watcher:  fsw,
		logger:   logger,
		debounce: DefaultDebounce,
		current:  initial,
		updates:  make(chan *Config, 1),
	}, nil
}

// SetDebounce changes the reload delay; call before Start
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Current returns the latest valid config
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Updates delivers each successfully reloaded config. Only the newest pending
// update is kept for a slow reader
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Start begins watching. The watch ends when ctx is cancelled or Stop is called
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents(ctx)

	w.logger.Info("Config watcher started", "path", w.path, "debounce", w.debounce)
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Config watcher error", "error", err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

// reload keeps the previous config when the new file is invalid
func (w *Watcher) reload() {
	cfg, err := w.loader.Load(w.path)
	if err != nil {
		w.logger.Warn("Config reload failed, keeping previous", "path", w.path, "error", err)
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()

	// Replace a stale pending update
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg

	w.logger.Info("Config reloaded", "path", w.path)
}
