package server

import (
	"encoding/json"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"tars/log"
	"tars/tone"
)

type statusResponse struct {
	Status       string   `json:"status"`
	AudioBackend string   `json:"audio_backend"`
	Platform     string   `json:"platform"`
	Sounds       []string `json:"sounds"`
	Port         int      `json:"port"`
	Timestamp    string   `json:"timestamp"`
}

type notifyRequest struct {
	Message string `json:"message"`
	Sound   string `json:"sound"`
}

type notifyResponse struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	Sound     string `json:"sound"`
	Timestamp string `json:"timestamp"`
}

type testResponse struct {
	OK    bool   `json:"ok"`
	Sound string `json:"sound"`
}

type shutdownResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP routes all requests. Every response carries permissive CORS
// headers so browser-based local tooling can call the endpoint.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	switch {
	case r.Method == http.MethodGet && (r.URL.Path == "/" || r.URL.Path == "/status"):
		s.handleStatus(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/notify":
		s.handleNotify(w, r)
	case strings.HasPrefix(r.URL.Path, "/test/"):
		s.handleTest(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/shutdown":
		s.handleShutdown(w, r)
	default:
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:       "running",
		AudioBackend: s.player.Backend(),
		Platform:     runtime.GOOS,
		Sounds:       tone.Names(),
		Port:         s.cfg.Port,
		Timestamp:    time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	// An empty body is unparseable; an explicit {} gets the defaults.
	var req notifyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}
	if req.Message == "" {
		req.Message = "Notification"
	}
	if req.Sound == "" {
		req.Sound = "success"
	}

	log.Notify(req.Message, req.Sound)

	// Fire-and-forget: the response does not wait for audio. Unknown sound
	// names fall through to the player, which no-ops on a missing asset.
	go s.player.Play(req.Sound)
	go desktopNotify("Tars Notify", req.Message)

	writeJSON(w, http.StatusOK, notifyResponse{
		OK:        true,
		Message:   req.Message,
		Sound:     req.Sound,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	sound := strings.TrimPrefix(r.URL.Path, "/test/")
	s.player.Play(sound)
	writeJSON(w, http.StatusOK, testResponse{OK: true, Sound: sound})
}

func (s *Server) handleShutdown(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, shutdownResponse{OK: true, Message: "Shutting down..."})

	// Two-phase shutdown: let the response flush before the listener dies.
	go func() {
		time.Sleep(shutdownGrace)
		s.signalQuit()
	}()
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("write response: %v", err)
	}
}
