package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pixel/audio"
	"github.com/lixenwraith/vi-pixel/config"
	"github.com/lixenwraith/vi-pixel/editor"
	"github.com/lixenwraith/vi-pixel/engine"
	"github.com/lixenwraith/vi-pixel/export"
	"github.com/lixenwraith/vi-pixel/input"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stdout, config.Usage())
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pixel: %v\n", err)
		return 2
	}

	// Reported before the screen opens so it stays visible
	logger, logFile, err := setupLogging(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pixel: debug logging: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(cfg.LogLevel)
	log := logger.WithField("component", "main")

	keys, err := loadKeys(cfg.KeymapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pixel: %v\n", err)
		return 2
	}

	session, err := engine.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pixel: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer session.Close()

	// Panic recovery: restore the terminal before printing so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			session.Close()
			log.WithField("panic", r).Error("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-PIXEL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	state := editor.NewState()
	state.Color = cfg.StartColor

	opts := []engine.Option{
		engine.WithLogger(logger.WithField("component", "engine")),
	}
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		} else {
			defer sm.Cleanup()
			opts = append(opts, engine.WithCues(sm))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ed := engine.NewEditor(session.Screen, state, input.NewHandler(keys), export.New(), opts...)
	log.WithFields(logrus.Fields{"color": cfg.StartColor.String(), "sound": cfg.Sound}).Info("editor started")

	if err := ed.Run(ctx); err != nil {
		session.Close()
		log.WithError(err).Error("editor stopped")
		fmt.Fprintf(os.Stderr, "vi-pixel: %v\n", err)
		return 1
	}
	log.Info("editor exited")
	return 0
}

// loadKeys merges an optional TOML keymap over the default bindings
func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return input.MergeKeyTable(keys, override), nil
}
