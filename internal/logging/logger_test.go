package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetState() {
	CloseAll()
	cfgMu.Lock()
	cfg = loggingConfig{}
	cfgMu.Unlock()
	logsDir = ""
}

func TestInitializeNoopWithoutDebugMode(t *testing.T) {
	t.Cleanup(resetState)
	ws := t.TempDir()

	if err := Initialize(ws); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ws, ".nowgo", "logs")); !os.IsNotExist(err) {
		t.Error("logs directory created despite debug mode off")
	}

	// Writes must be silent no-ops.
	Get(CategoryWizard).Info("should go nowhere")
}

func TestInitializeWritesLogsInDebugMode(t *testing.T) {
	t.Cleanup(resetState)
	ws := t.TempDir()
	writeConfig(t, ws, `{"logging":{"debug_mode":true}}`)

	if err := Initialize(ws); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	Get(CategoryExport).Info("rendered %d pages", 3)
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(ws, ".nowgo", "logs"))
	if err != nil {
		t.Fatalf("logs dir: %v", err)
	}
	var found bool
	for _, e := range entries {
		if strings.Contains(e.Name(), "export") {
			data, _ := os.ReadFile(filepath.Join(ws, ".nowgo", "logs", e.Name()))
			if strings.Contains(string(data), "rendered 3 pages") {
				found = true
			}
		}
	}
	if !found {
		t.Error("export log entry not written")
	}
}

func TestCategoryFilter(t *testing.T) {
	t.Cleanup(resetState)
	ws := t.TempDir()
	writeConfig(t, ws, `{"logging":{"debug_mode":true,"categories":{"chat":false}}}`)

	if err := Initialize(ws); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if IsCategoryEnabled(CategoryChat) {
		t.Error("disabled category reported enabled")
	}
	if !IsCategoryEnabled(CategoryWizard) {
		t.Error("unlisted category should default to enabled")
	}
}

func TestEnvOverrideEnablesDebug(t *testing.T) {
	t.Cleanup(resetState)
	t.Setenv("NOWGO_DEBUG", "true")
	ws := t.TempDir()

	if err := Initialize(ws); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !IsDebugMode() {
		t.Error("NOWGO_DEBUG=true did not enable debug mode")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("no panic")
	(&Logger{}).Error("no panic either")
}

func writeConfig(t *testing.T, ws, body string) {
	t.Helper()
	dir := filepath.Join(ws, ".nowgo")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}
