// Command button-demo shows two clickable terminal buttons sharing one message
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/termbutton/audio"
	"github.com/lixenwraith/termbutton/config"
	"github.com/lixenwraith/termbutton/service"
	"github.com/lixenwraith/termbutton/terminal"
)

// ErrNotTerminal is returned when stdout cannot host the interface
var ErrNotTerminal = errors.New("stdout is not a terminal")

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml, .yml)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to the configured log directory")
	muteFlag   = flag.Bool("mute", false, "Disable click sounds")
	policyFlag = flag.String("policy", "", "Input latch policy: reuse, clear (overrides config)")
	dumpFlag   = flag.String("dump-config", "", "Write the effective config to this path (.toml, .yaml) and exit")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "button-demo: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges file, environment and flags, in increasing precedence
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *policyFlag != "" {
		cfg.Input.Policy = *policyFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *dumpFlag != "" {
		return cfg.Save(*dumpFlag)
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}

	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return err
	}

	hub := service.NewHub()
	if err := hub.Register(terminal.NewService()); err != nil {
		return err
	}
	if err := hub.Register(audio.NewService(), cfg.AudioConfig(), *muteFlag); err != nil {
		return err
	}
	log.Printf("services registered: %v", hub.Names())

	if err := hub.InitAll(); err != nil {
		return err
	}
	// Init already owns the terminal, so a failed start must still restore it
	defer hub.StopAll()
	if err := hub.StartAll(); err != nil {
		return err
	}
	log.Printf("services started: %v", hub.Order())

	termSvc := service.MustGet[*terminal.TerminalService](hub, "terminal")
	audioSvc := service.MustGet[*audio.AudioService](hub, "audio")

	// Restore the terminal before reporting a crash in a command or render
	defer func() {
		if r := recover(); r != nil {
			hub.StopAll()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBUTTON-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	a := newApp(theme, cfg.LatchPolicy(), audioSvc)
	return a.run(termSvc, time.Duration(cfg.Input.PollIntervalMs)*time.Millisecond)
}
