package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/popup-overlay/internal/logging/events"
)

// DefaultDebounce is the quiet period used by the content watcher.
const DefaultDebounce = 150 * time.Millisecond

const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Event reports that the watched file changed, or that watching failed.
type Event struct {
	Path string
	Err  error
}

// Watcher publishes an event whenever a single file changes on disk. The
// parent directory is watched so editors that replace the file are seen.
type Watcher struct {
	path string

	ctx    context.Context
	cancel context.CancelFunc

	fs     *fsnotify.Watcher
	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. Bursts of changes within debounce are
// reported once.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:   abs,
		ctx:    ctx,
		cancel: cancel,
		fs:     fs,
		events: make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.run(newDebounce(debounce))

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the channel of change notifications. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and Events is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run(d *debounce) {
	defer w.wg.Done()
	defer w.fs.Close()
	defer d.stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != w.path || evt.Op&changeOps == 0 {
				continue
			}
			events.Content.Change(w.path, evt.Op.String())
			if d.touch() && !w.emit(Event{Path: w.path}) {
				return
			}
		case <-d.C():
			if d.fired() && !w.emit(Event{Path: w.path}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Content.WatchError(w.path, err)
			if !w.emit(Event{Path: w.path, Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
