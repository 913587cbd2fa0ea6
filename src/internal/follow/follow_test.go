package follow

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/maksimkurb/debug-tools/src/internal/debuglog"
)

// syncBuffer is a bytes.Buffer safe for one writer and one reader goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func appendFile(t *testing.T, path, content string) {
	t.Helper()

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestDrain_AppendsAndTruncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	var out bytes.Buffer

	f, err := New(path, &out, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Missing file is fine
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() on a missing file error = %v", err)
	}

	appendFile(t, path, "first\n")
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	appendFile(t, path, "second\n")
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if out.String() != "first\nsecond\n" {
		t.Errorf("output = %q", out.String())
	}
	if f.Offset() != int64(len("first\nsecond\n")) {
		t.Errorf("Offset() = %d", f.Offset())
	}

	out.Reset()
	if err := os.WriteFile(path, []byte("new\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if out.String() != "new\n" {
		t.Errorf("output after truncation = %q, want %q", out.String(), "new\n")
	}
}

func TestDrain_TruncatedThenGrownPastOffset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	var out bytes.Buffer

	f, err := New(path, &out, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	appendFile(t, path, "old-line\n")
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	out.Reset()
	if err := os.Truncate(path, 0); err != nil {
		t.Fatalf("failed to truncate: %v", err)
	}
	appendFile(t, path, "new-first-line\nnew-second\n")
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	if want := "new-first-line\nnew-second\n"; out.String() != want {
		t.Errorf("output after truncation = %q, want %q", out.String(), want)
	}
	if f.Offset() != int64(len("new-first-line\nnew-second\n")) {
		t.Errorf("Offset() = %d", f.Offset())
	}
}

func TestDrain_ClearLogFileThenLongerMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	dbg, err := debuglog.New(debuglog.AllCategories, "clear", path)
	if err != nil {
		t.Fatalf("debuglog.New() error = %v", err)
	}
	defer dbg.Close()

	var out bytes.Buffer
	f, err := New(path, &out, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_ = dbg.Log(1, "short")
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	out.Reset()
	if err := dbg.ClearLogFile(); err != nil {
		t.Fatalf("ClearLogFile() error = %v", err)
	}
	long := strings.Repeat("x", 200)
	_ = dbg.Log(1, "after clear ", long)
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if out.String() != string(content) {
		t.Errorf("output after clear = %q, want the whole file %q", out.String(), string(content))
	}
	if !strings.Contains(out.String(), "after clear "+long) {
		t.Errorf("Expected the new message, got %q", out.String())
	}
}

func TestDrain_SameLengthRewriteDetected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	var out bytes.Buffer

	f, err := New(path, &out, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	appendFile(t, path, "aaaa\n")
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	out.Reset()
	if err := os.WriteFile(path, []byte("bbbb\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if out.String() != "bbbb\n" {
		t.Errorf("output after rewrite = %q, want %q", out.String(), "bbbb\n")
	}
}

func TestNew_FromEndSkipsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	appendFile(t, path, "old\n")

	var out bytes.Buffer
	f, err := New(path, &out, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	appendFile(t, path, "fresh\n")
	if err := f.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if out.String() != "fresh\n" {
		t.Errorf("output = %q, want %q", out.String(), "fresh\n")
	}
}

func TestRun_FollowsDebugLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	dbg, err := debuglog.New(debuglog.AllCategories, "follow", path)
	if err != nil {
		t.Fatalf("debuglog.New() error = %v", err)
	}
	defer dbg.Close()

	out := &syncBuffer{}
	f, err := New(path, out, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()

	waitFor := func(want string) {
		t.Helper()
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if strings.Contains(out.String(), want) {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
		t.Fatalf("timed out waiting for %q, got %q", want, out.String())
	}

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	_ = dbg.Log(1, "hello ", "follower")
	waitFor("hello follower")

	_ = dbg.Log(1, "second message")
	waitFor("second message")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after cancellation")
	}
}
