package player

import (
	"os"
	"runtime"
	"testing"

	"tars/tone"
)

func TestFakeRecordsPlays(t *testing.T) {
	f := NewFake()
	f.Play("ping")
	f.Play("success")

	got := f.Played()
	if len(got) != 2 || got[0] != "ping" || got[1] != "success" {
		t.Errorf("Played() = %v, want [ping success]", got)
	}
	if f.Backend() != "fake" {
		t.Errorf("Backend() = %q", f.Backend())
	}
}

func TestCommandPlayerMissingAssetNoOps(t *testing.T) {
	p := &commandPlayer{
		dir: t.TempDir(),
		bin: "definitely-not-a-player",
		argv: func(path string) []string {
			t.Fatal("argv built for a missing asset")
			return nil
		},
	}
	// Must neither panic nor attempt to exec anything.
	p.Play("nosuch")
}

func TestCommandPlayerFireAndForget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a unix no-op command")
	}
	dir := t.TempDir()
	asset := tone.Render(tone.Spec{Name: "ping", Freq: 1200, Duration: 0.05, Shape: tone.Ping})
	if err := os.WriteFile(tone.Path(dir, "ping"), asset, 0644); err != nil {
		t.Fatal(err)
	}

	p := &commandPlayer{
		dir: dir,
		bin: "true",
		argv: func(path string) []string {
			return []string{"true", path}
		},
	}
	// Returns immediately; the process is reaped in the background.
	p.Play("ping")
}

func TestDetectNeverReturnsNil(t *testing.T) {
	// Regardless of which commands exist on the host, Detect must hand
	// back a usable player.
	p := Detect(t.TempDir())
	if p == nil {
		t.Fatal("Detect returned nil")
	}
	if p.Backend() == "" {
		t.Error("Backend() is empty")
	}
}
