// Command tars runs and controls the local notification service: a tiny
// HTTP endpoint that plays an audible cue so long-running background tasks
// can signal completion without anyone watching a screen.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tars/client"
	"tars/config"
	"tars/log"
	"tars/player"
	"tars/server"
)

var version = "dev"

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const usageText = `tars - desktop notification sounds over HTTP

Usage:
  tars serve             run the notification server in the foreground
  tars start             start the server as a background process
  tars stop              stop the background server
  tars status            show whether the server is running
  tars notify [-m msg] [-s sound]
                         send a notification (sounds: success, error, ping, complete)
  tars test              play every sound with a short gap
  tars version           print the version
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	switch cmd, rest := os.Args[1], os.Args[2:]; cmd {
	case "serve":
		runServe(rest)
	case "start":
		runStart()
	case "stop":
		runStop()
	case "status":
		runStatus()
	case "notify":
		runNotify(rest)
	case "test":
		runTest()
	case "version":
		fmt.Println("tars " + version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usageText)
		os.Exit(2)
	}
}

func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	logPath := fs.String("logpath", "", "log directory (default: OS log location)")
	fs.Parse(args)

	dir, err := log.ResolveDir(*logPath)
	if err == nil {
		log.SetDir(dir)
		if err := log.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
		}
	}
	defer log.Close()

	cfg := loadConfig()
	p := player.Detect(cfg.SoundsDir)

	fmt.Println(dimStyle.Render("tars notify listening on " + cfg.BaseURL()))
	if err := server.New(cfg, p).ListenAndServe(); err != nil {
		log.Errorf("server: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStart() {
	cfg := loadConfig()
	c := client.New(cfg.BaseURL())

	if c.IsRunning() {
		fmt.Println(okStyle.Render("already running") + dimStyle.Render(" "+cfg.BaseURL()))
		return
	}

	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := spawnDetached(exe, "serve"); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting server: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(dimStyle.Render("starting tars notify..."))
	for i := 0; i < 10; i++ {
		time.Sleep(500 * time.Millisecond)
		if c.IsRunning() {
			fmt.Println(okStyle.Render("running") + dimStyle.Render(" "+cfg.BaseURL()))
			_ = c.Notify("Tars Notify is ready!", "ping")
			return
		}
	}
	fmt.Println(warnStyle.Render("server may not have started properly, check the logs"))
}

func runStop() {
	cfg := loadConfig()
	c := client.New(cfg.BaseURL())

	if !c.IsRunning() {
		fmt.Println(dimStyle.Render("not running"))
		return
	}
	if err := c.Shutdown(); err != nil {
		fmt.Println(warnStyle.Render(fmt.Sprintf("error stopping server: %v", err)))
		return
	}
	fmt.Println(okStyle.Render("stopped"))
}

func runStatus() {
	cfg := loadConfig()
	info, err := client.New(cfg.BaseURL()).Status()
	if err != nil {
		fmt.Println(dimStyle.Render("not running"))
		fmt.Println(dimStyle.Render("start with: tars start"))
		return
	}
	fmt.Println(okStyle.Render("running") + dimStyle.Render(" "+cfg.BaseURL()))
	fmt.Printf("  backend:  %s\n", info.AudioBackend)
	fmt.Printf("  platform: %s\n", info.Platform)
	fmt.Printf("  sounds:   %v\n", info.Sounds)
}

func runNotify(args []string) {
	fs := flag.NewFlagSet("notify", flag.ExitOnError)
	message := fs.String("m", "Task complete!", "notification message")
	sound := fs.String("s", "success", "sound to play")
	fs.Parse(args)

	cfg := loadConfig()
	if err := client.New(cfg.BaseURL()).Notify(*message, *sound); err != nil {
		fmt.Println(warnStyle.Render("server not running, start with: tars start"))
		return
	}
	fmt.Println(okStyle.Render("notified") + dimStyle.Render(" "+*message))
}

func runTest() {
	cfg := loadConfig()
	c := client.New(cfg.BaseURL())

	for _, sound := range []string{"ping", "success", "complete", "error"} {
		fmt.Println(dimStyle.Render("testing: " + sound))
		if err := c.Test(sound); err != nil {
			fmt.Println(warnStyle.Render("server not running, start with: tars start"))
			return
		}
		time.Sleep(time.Second)
	}
}
