package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChangesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "popup.toml")
	if err := os.WriteFile(path, []byte("title = \"a\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("title = \"b\"\n"), 0o644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
	}

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected error event: %v", evt.Err)
		}
		if evt.Path != w.Path() {
			t.Fatalf("expected path %q, got %q", w.Path(), evt.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a change event")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "popup.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path, 0)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected events channel to be closed")
	}
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "popup.toml"), 0); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestDebounceCoalesces(t *testing.T) {
	d := newDebounce(10 * time.Millisecond)
	defer d.stop()
	if d.touch() || d.touch() {
		t.Fatalf("expected debounced touches not to fire immediately")
	}
	select {
	case <-d.C():
	case <-time.After(time.Second):
		t.Fatalf("expected debounce to fire")
	}
	if !d.fired() {
		t.Fatalf("expected pending touch")
	}
	if d.fired() {
		t.Fatalf("expected pending flag cleared")
	}
	if !newDebounce(0).touch() {
		t.Fatalf("expected zero interval to fire immediately")
	}
}
