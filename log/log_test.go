package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("TARS_LOG_PATH", "/tmp/tars-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/tars-env-log" {
		t.Errorf("got %q, want /tmp/tars-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv("TARS_LOG_PATH", "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("default dir is empty")
	}
	if !strings.Contains(got, "tars") {
		t.Errorf("default dir %q does not mention tars", got)
	}
}

func TestInitCreatesDiagnosticsLog(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	Info("hello from test")
	Notify("build done", "success")
	Close()

	data, err := os.ReadFile(filepath.Join(tmp, "diagnostics_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "hello from test") {
		t.Errorf("diagnostics log missing info line:\n%s", content)
	}
	if !strings.Contains(content, "notify") || !strings.Contains(content, "build done") {
		t.Errorf("diagnostics log missing notify event:\n%s", content)
	}
}

func TestLogBeforeInitIsSilent(t *testing.T) {
	// Must not panic with no file open.
	Close()
	Info("dropped")
	Errorf("dropped %d", 1)
	Played("ping", "afplay")
}
