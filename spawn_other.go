//go:build !windows

package main

import (
	"os/exec"
	"syscall"
)

// spawnDetached launches the serve process in its own session so it keeps
// running after the CLI exits. Output goes to the server's own log file,
// not the terminal.
func spawnDetached(exe string, args ...string) error {
	cmd := exec.Command(exe, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd.Start()
}
