// Package watch re-runs a handler whenever a file changes.
//
// The file's directory is watched rather than the file itself so editors
// that save by writing a temporary file and renaming it are still seen.
// Bursts of events are coalesced and handler runs are spaced at least
// the configured interval apart.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/textstat/internal/logger"
)

// newFSWatcher creates the underlying watcher. Tests replace it.
var newFSWatcher = fsnotify.NewWatcher

// Handler is called with the watched path after each change.
// Errors are logged and do not stop the watcher.
type Handler func(ctx context.Context, path string) error

// Watcher watches a single file.
type Watcher struct {
	path    string
	limiter *rate.Limiter
	handler Handler
}

// New creates a watcher for path. minInterval <= 0 disables throttling.
func New(path string, minInterval time.Duration, handler Handler) (*Watcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("watch %s: handler is required", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("watch %s: is a directory", path)
	}

	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}

	return &Watcher{
		path:    abs,
		limiter: rate.NewLimiter(limit, 1),
		handler: handler,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls the handler once, then again after every change, until ctx
// is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := newFSWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	logger.Debug("Watching %s", w.path)

	ctx, cancel := context.WithCancel(ctx)

	pending := make(chan struct{}, 1)
	pending <- struct{}{}

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.process(ctx, pending)
	}()
	defer func() {
		cancel()
		<-done
	}()

	return w.loop(ctx, fw, pending)
}

// loop forwards relevant events to pending until ctx is cancelled or the
// watcher's channels close.
func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, pending chan<- struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.isChange(event) {
				continue
			}
			logger.Debug("Change detected: %s %s", event.Op, event.Name)
			select {
			case pending <- struct{}{}:
			default:
				// a run is already queued
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// process runs the handler for each queued change, throttled.
func (w *Watcher) process(ctx context.Context, pending <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-pending:
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
			if err := w.handler(ctx, w.path); err != nil {
				logger.Warn("Handler failed for %s: %v", w.path, err)
			}
		}
	}
}

// isChange reports whether event modified the watched file.
func (w *Watcher) isChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == w.path
}
