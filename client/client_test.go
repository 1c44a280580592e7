package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/status" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(StatusInfo{
			Status:       "running",
			AudioBackend: "afplay",
			Platform:     "darwin",
			Sounds:       []string{"success", "error", "ping", "complete"},
			Port:         8765,
		})
	}))
	defer ts.Close()

	c := New(ts.URL)
	info, err := c.Status()
	if err != nil {
		t.Fatal(err)
	}
	if info.AudioBackend != "afplay" || info.Port != 8765 || len(info.Sounds) != 4 {
		t.Errorf("Status() = %+v", info)
	}
	if !c.IsRunning() {
		t.Error("IsRunning() = false for a live server")
	}
}

func TestIsRunningDownServer(t *testing.T) {
	c := New("http://127.0.0.1:1") // nothing listens here
	if c.IsRunning() {
		t.Error("IsRunning() = true with no server")
	}
}

func TestNotify(t *testing.T) {
	var gotBody map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notify" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	if err := New(ts.URL).Notify("build finished", "complete"); err != nil {
		t.Fatal(err)
	}
	if gotBody["message"] != "build finished" || gotBody["sound"] != "complete" {
		t.Errorf("payload = %v", gotBody)
	}
}

func TestNotifyNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Invalid JSON"}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	if err := New(ts.URL).Notify("x", "ping"); err == nil {
		t.Error("expected error for 400 response")
	}
}

func TestTestRoute(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"ok":true,"sound":"ping"}`))
	}))
	defer ts.Close()

	if err := New(ts.URL).Test("ping"); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/test/ping" {
		t.Errorf("path = %q, want /test/ping", gotPath)
	}
}

func TestShutdown(t *testing.T) {
	var gotMethod, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"ok":true,"message":"Shutting down..."}`))
	}))
	defer ts.Close()

	if err := New(ts.URL).Shutdown(); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPost || gotPath != "/shutdown" {
		t.Errorf("request = %s %s, want POST /shutdown", gotMethod, gotPath)
	}
}
