package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before the callback fires.
const DefaultDebounce = 100 * time.Millisecond

// Watcher calls onChange after the watched file is written or recreated.
type Watcher struct {
	// Debounce is the quiet period after the last event before onChange
	// runs. Set it before calling Run.
	Debounce time.Duration

	path     string
	onChange func() error
	fsw      *fsnotify.Watcher

	closeOnce sync.Once
	closeErr  error
}

// New creates a Watcher for path. The file does not have to exist yet, but
// its directory does.
func New(path string, onChange func() error) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange cannot be nil")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		Debounce: DefaultDebounce,
		path:     abs,
		onChange: onChange,
		fsw:      fsw,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run processes file events until ctx is cancelled. Errors returned by
// onChange are logged and do not stop the loop. The watcher is closed when
// Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("file event", "path", ev.Name, "op", ev.Op.String())
			fire = time.After(w.Debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "error", err)

		case <-fire:
			fire = nil
			if err := w.onChange(); err != nil {
				slog.Error("change handler failed", "path", w.path, "error", err)
			}
		}
	}
}

// relevant reports whether ev changed the contents of the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.fsw.Close()
	})
	return w.closeErr
}
