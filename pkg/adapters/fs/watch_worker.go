package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/linemark/pkg/core"
)

// Watch implements core.Watchable. It emits one EventChange per modified
// bookmarked document (debounced) until ctx is done, at which point the
// returned channel closes.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	events := make(chan core.Event, 16)
	w := newWatchWorker(s, pattern, events)

	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	store     *Store
	pattern   string
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc

	// resources known to be bookmarked, keyed by resource identifier.
	// Refreshed whenever the blob itself changes.
	resources map[string]bool
}

func newWatchWorker(store *Store, pattern string, events chan core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("bookmark-watcher"),
		store:      store,
		pattern:    pattern,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.watcher = watcher

	if err := w.refreshTargets(ctx); err != nil {
		_ = watcher.Close()
		return err
	}

	// Watch the system dir so bookmark set changes re-resolve the targets.
	_ = watcher.Add(w.store.systemPath())

	w.debouncer = newDebouncer(50 * time.Millisecond)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// refreshTargets reloads the bookmark set and watches the directory of
// every resource matching the pattern. Directories are watched instead of
// files because editors often replace files on save, which breaks per-file
// watches.
func (w *watchWorker) refreshTargets(ctx context.Context) error {
	marks, err := w.store.Load(ctx)
	if err != nil {
		return err
	}

	w.resources = make(map[string]bool, len(marks))
	for _, b := range marks {
		if !w.matchesPattern(b.Resource) {
			continue
		}
		w.resources[b.Resource] = true

		dir := filepath.Dir(w.store.ResourcePath(b.Resource))
		if err := w.watcher.Add(dir); err != nil {
			if w.store.config.Logger != nil {
				w.store.config.Logger.Debug("cannot watch directory", "dir", dir, "error", err)
			}
		}
	}
	return nil
}

func (w *watchWorker) matchesPattern(resource string) bool {
	if w.pattern == "" {
		return true
	}
	ok, err := doublestar.Match(w.pattern, resource)
	if err != nil {
		// Invalid pattern: fail open so a typo does not silence the watcher.
		return true
	}
	return ok
}

// handleSystemEvent processes events under the system directory. A change
// to the blob means the bookmark set itself mutated, so the watch targets
// are re-resolved. The refresh runs on the event loop goroutine; w.resources
// is only ever touched there after Start. Returns true if the event was
// consumed.
func (w *watchWorker) handleSystemEvent(ctx context.Context, event fsnotify.Event) bool {
	if filepath.Dir(event.Name) != w.store.systemPath() {
		return false
	}

	if filepath.Base(event.Name) == blobName && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
		if w.store.config.Logger != nil {
			w.store.config.Logger.Debug("bookmark set changed, refreshing watch targets")
		}
		if err := w.refreshTargets(ctx); err != nil {
			w.handleError(fmt.Errorf("refresh targets: %w", err))
		}
	}
	return true
}

// processFilesystemEvent handles filtering, mapping, and debouncing of
// filesystem events. Returns true if the event was turned into a change
// notification, false if it was ignored.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) (processed bool) {
	if w.store.config.Logger != nil {
		w.store.config.Logger.Debug("event received", "name", event.Name)
	}

	if strings.HasPrefix(filepath.Base(event.Name), TempFilePrefix) {
		return false
	}

	// Only content-bearing events drive reanchoring. A removed or renamed
	// document has no content to search; its bookmarks simply go stale.
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	resource, err := w.store.Resource(event.Name)
	if err != nil {
		return false
	}
	if !w.resources[resource] {
		return false
	}

	w.sendEvent(ctx, core.Event{
		Type:      core.EventChange,
		Resource:  resource,
		Timestamp: time.Now().Unix(),
	})
	return true
}

// sendEvent enqueues an event via the debouncer, protecting against channel
// closure during shutdown.
func (w *watchWorker) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// Recover from panic if channel was closed (worker stopping)
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (w *watchWorker) handleError(err error) {
	if w.store.config.Logger != nil {
		w.store.config.Logger.Error("watcher error", "error", err)
	}
	if w.store.config.ErrorHandler != nil {
		w.store.config.ErrorHandler(err)
	}
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			var stack string
			if w.store.config.Logger != nil && w.store.config.Logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}

			if w.store.config.Logger != nil {
				if stack != "" {
					w.store.config.Logger.Error("watcher panic", "error", panicErr, "stack", stack)
				} else {
					w.store.config.Logger.Error("watcher panic", "error", panicErr)
				}
			}
		}
	}()
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Shutdown: stop accepting new events, wait for in-flight timers, then
	// close the channel consumers range over.
	w.debouncer.stopAndWait(5 * time.Second)
	close(w.events)

	return err
}

// mainEventLoop is the core select loop processing filesystem and watcher
// error events.
func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			if w.handleSystemEvent(ctx, event) {
				continue
			}
			w.processFilesystemEvent(ctx, event)

		case werr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleError(werr)
		}
	}
}

var _ core.Watchable = (*Store)(nil)
