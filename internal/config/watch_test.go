package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFiresOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navrail.yaml")
	if err := os.WriteFile(path, []byte("screens: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	changed := make(chan struct{}, 1)
	stop, err := Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch error: %v", err)
	}
	defer stop()

	// Give the watcher goroutine a moment to start draining events.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("screens: {}\n# changed\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not observe the rewrite")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navrail.yaml")
	if err := os.WriteFile(path, []byte("screens: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	changed := make(chan struct{}, 1)
	stop, err := Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch error: %v", err)
	}
	defer stop()

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case <-changed:
		t.Fatal("sibling writes should not trigger the callback")
	case <-time.After(300 * time.Millisecond):
	}
}
