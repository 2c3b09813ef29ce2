package level

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsYamlWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	path := filepath.Join(dir, "campaign.yaml")
	if err := os.WriteFile(path, []byte("levels: []"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event for %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for a yaml write")
	}
}

func TestWatcherCloseDrainsCleanly(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}

	// keep events flowing while Close runs so a racing send would surface
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "a.yaml")
		if err := os.WriteFile(name, []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	// the run goroutine closes both channels on its way out
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel never closed after Close")
		}
	}
}
