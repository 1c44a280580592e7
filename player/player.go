// Package player plays named sound assets through whatever command-line
// audio utility the host OS provides. Playback is fire-and-forget: the
// caller never waits for and never observes the outcome.
package player

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/gen2brain/beeep"

	"tars/log"
	"tars/tone"
)

// playTimeout is the upper bound on an external player process's runtime.
// Past it the process is killed and the error only logged.
const playTimeout = 10 * time.Second

// Player dispatches playback of a named sound. Play never blocks on audio
// and never returns an error; failures are logged and absorbed.
type Player interface {
	Backend() string
	Play(name string)
}

// candidate is one probe entry from the per-OS backend table.
type candidate struct {
	bin  string
	argv func(path string) []string
}

// Detect probes the platform's candidate commands once and returns the
// player for the first one present. With no usable command it returns a
// fallback that degrades to a system beep.
func Detect(dir string) Player {
	for _, c := range candidates() {
		if _, err := exec.LookPath(c.bin); err == nil {
			log.Infof("audio backend: %s", c.bin)
			return &commandPlayer{dir: dir, bin: c.bin, argv: c.argv}
		}
	}
	log.Warn("no audio playback command found, notifications degrade to system beep")
	return &fallbackPlayer{}
}

// commandPlayer shells out to a single resolved playback command.
type commandPlayer struct {
	dir  string
	bin  string
	argv func(path string) []string
}

func (p *commandPlayer) Backend() string { return p.bin }

func (p *commandPlayer) Play(name string) {
	path := tone.Path(p.dir, name)
	if _, err := os.Stat(path); err != nil {
		log.Warnf("sound %q has no asset at %s", name, path)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), playTimeout)
	argv := p.argv(path)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		cancel()
		log.Errorf("start %s: %v", p.bin, err)
		return
	}
	log.Played(name, p.bin)

	// Detached wait: completion is not observed by the caller.
	go func() {
		defer cancel()
		if err := cmd.Wait(); err != nil {
			log.Warnf("%s exited: %v", p.bin, err)
		}
	}()
}

// fallbackPlayer stands in when no playback command exists. It emits the
// simplest audible cue available and otherwise no-ops.
type fallbackPlayer struct{}

func (p *fallbackPlayer) Backend() string { return "none" }

func (p *fallbackPlayer) Play(name string) {
	log.Warnf("would play %q (no audio backend)", name)
	_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration/2)
}
