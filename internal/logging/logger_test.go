package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func reset() {
	mu.Lock()
	cfg = Config{}
	logsDir = ""
	logLevel = LevelInfo
	mu.Unlock()
	CloseAll()
}

func TestDisabledByDefault(t *testing.T) {
	reset()
	if enabled(CategoryAPI) {
		t.Fatal("logging should be off until Initialize enables it")
	}
	// Inert loggers must be safe to use.
	Get(CategoryAPI).Info("goes nowhere")
	APIError("also nowhere: %v", os.ErrNotExist)
}

func TestInitializeCreatesLogFiles(t *testing.T) {
	reset()
	t.Cleanup(reset)

	dir := t.TempDir()
	err := Initialize(dir, Config{DebugMode: true, Level: "debug"})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	Session("hello %s", "world")

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("read logs dir: %v", err)
	}
	var found bool
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_session.log") {
			found = true
			data, _ := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
			if !strings.Contains(string(data), "hello world") {
				t.Errorf("log entry missing: %s", data)
			}
		}
	}
	if !found {
		t.Error("no session log file written")
	}
}

func TestCategoryToggle(t *testing.T) {
	reset()
	t.Cleanup(reset)

	err := Initialize(t.TempDir(), Config{
		DebugMode:  true,
		Level:      "debug",
		Categories: map[string]bool{"api": false},
	})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if enabled(CategoryAPI) {
		t.Error("api category should be off")
	}
	if !enabled(CategoryView) {
		t.Error("unlisted categories default to on")
	}
}

func TestLevelFilter(t *testing.T) {
	reset()
	t.Cleanup(reset)

	dir := t.TempDir()
	if err := Initialize(dir, Config{DebugMode: true, Level: "warn"}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	View("filtered out")
	ViewWarn("kept")
	CloseAll()

	entries, _ := os.ReadDir(filepath.Join(dir, "logs"))
	for _, e := range entries {
		data, _ := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
		if strings.Contains(string(data), "filtered out") {
			t.Error("info entry should not pass a warn filter")
		}
		if strings.HasSuffix(e.Name(), "_view.log") && !strings.Contains(string(data), "kept") {
			t.Error("warn entry missing")
		}
	}
}

func TestTimer(t *testing.T) {
	timer := StartTimer(CategoryView, "op")
	time.Sleep(time.Millisecond)
	if d := timer.Stop(); d <= 0 {
		t.Errorf("timer duration = %v, want > 0", d)
	}
}
