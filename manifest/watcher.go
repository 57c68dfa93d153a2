package manifest

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/swiftpoet/errors"
	"github.com/teranos/swiftpoet/logger"
)

// DefaultDebounce collapses the burst of events editors produce on save.
const DefaultDebounce = 300 * time.Millisecond

// ChangeCallback receives the manifests that changed since the last call,
// sorted. Errors are logged and do not stop the watcher.
type ChangeCallback func(paths []string) error

// Watcher watches manifest files and reports changes after a quiet period.
//
// Parent directories are watched rather than the files, so a manifest that
// an editor replaces by rename is still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	callback ChangeCallback
	debounce time.Duration
	logger   *zap.SugaredLogger

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer
	stopped bool
	// running tracks callbacks in flight; stop waits for them
	running sync.WaitGroup
}

// NewWatcher creates a watcher for paths. Call Run to start delivering changes.
func NewWatcher(paths []string, debounce time.Duration, callback ChangeCallback) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.NewInvalidRequestError("no manifests to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool, len(paths)),
		callback: callback,
		debounce: debounce,
		logger:   logger.ComponentLogger("manifest.watcher"),
		pending:  make(map[string]bool),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// Run delivers changes until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Manifest watcher error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.files[abs] {
		return
	}

	w.logger.Debugw("Manifest changed", logger.FieldManifest, abs, "op", event.Op.String())
	w.schedule(abs)
}

// schedule records path and restarts the debounce timer.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.pending[path] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.running.Add(1)
	defer w.running.Done()

	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)

	if err := w.callback(paths); err != nil {
		w.logger.Errorw("Manifest change handler failed", logger.FieldError, err)
	}
}

// stop cancels pending changes and returns once no callback is running.
func (w *Watcher) stop() {
	w.mu.Lock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.running.Wait()
	w.watcher.Close()
}
