package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatcher(t *testing.T, path string, onChange func() error) context.CancelFunc {
	t.Helper()
	w, err := New(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, onChange) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run returned %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("Run did not stop after cancel")
		}
	})
	return cancel
}

func TestWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ClockingsReport.txt")
	if err := os.WriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 10)
	startWatcher(t, path, func() error {
		calls <- struct{}{}
		return nil
	})

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("onChange was not called")
	}
	select {
	case <-calls:
		t.Error("burst of writes should trigger a single call")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ClockingsReport.txt")

	calls := make(chan struct{}, 10)
	startWatcher(t, path, func() error {
		calls <- struct{}{}
		return nil
	})

	if err := os.WriteFile(filepath.Join(dir, "March - 2024.txt"), []byte("report"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-calls:
		t.Error("writes to other files should be ignored")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherContinuesAfterHandlerError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ClockingsReport.txt")

	calls := make(chan struct{}, 10)
	startWatcher(t, path, func() error {
		calls <- struct{}{}
		return errors.New("bad input")
	})

	for i := 0; i < 2; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("onChange call %d missing", i+1)
		}
	}
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "file.txt"), 0); err == nil {
		t.Error("New should fail when the directory does not exist")
	}
}
