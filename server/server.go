// Package server exposes the notification endpoint: a localhost HTTP
// listener that plays a tone per request and supports remote shutdown.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"tars/config"
	"tars/log"
	"tars/player"
	"tars/tone"
)

// shutdownGrace is the pause between answering POST /shutdown and tearing
// the listener down, so the response reaches the caller first.
const shutdownGrace = 200 * time.Millisecond

// desktopNotify raises the visual toast for a notification. Swapped out in
// tests.
var desktopNotify = func(title, message string) {
	_ = beeep.Notify(title, message, "")
}

type Server struct {
	cfg    config.Config
	player player.Player

	quit     chan struct{}
	quitOnce sync.Once
}

func New(cfg config.Config, p player.Player) *Server {
	return &Server{
		cfg:    cfg,
		player: p,
		quit:   make(chan struct{}),
	}
}

// Done is closed once shutdown has been requested, via the HTTP route or a
// process signal.
func (s *Server) Done() <-chan struct{} {
	return s.quit
}

func (s *Server) signalQuit() {
	s.quitOnce.Do(func() { close(s.quit) })
}

// ListenAndServe ensures the tone assets exist, binds the listener, plays
// the readiness ping and serves until shutdown. A failure to bind is fatal
// and returned to the caller.
func (s *Server) ListenAndServe() error {
	if err := tone.EnsureAll(s.cfg.SoundsDir); err != nil {
		return fmt.Errorf("generate sounds: %w", err)
	}

	addr := fmt.Sprintf("127.0.0.1:%d", s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}

	srv := &http.Server{Handler: s}
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	log.ServerStart(s.cfg.Port, s.player.Backend(), s.cfg.SoundsDir)
	s.player.Play("ping") // audible readiness cue

	sig := make(chan os.Signal, 1)
	notifySignals(sig)

	select {
	case <-s.quit:
	case <-sig:
		log.Info("interrupted")
		s.signalQuit()
	case err := <-serveErr:
		return err
	}

	log.ServerStop()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
