// Package config resolves runtime settings from .env files, the environment and flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pixel/palette"
)

// EnvFiles are loaded in order when present; earlier files win
var EnvFiles = []string{".env.local", ".env"}

// Environment variable names
const (
	EnvDebug    = "PIXEL_DEBUG"
	EnvSound    = "PIXEL_SOUND"
	EnvColor    = "PIXEL_COLOR"
	EnvKeymap   = "PIXEL_KEYMAP"
	EnvLogLevel = "PIXEL_LOG_LEVEL"
)

// Config holds resolved settings
type Config struct {
	Debug      bool
	Sound      bool
	StartColor palette.Color
	KeymapPath string
	LogLevel   logrus.Level
}

// Default returns settings used when nothing is configured
func Default() Config {
	return Config{
		StartColor: palette.White,
		LogLevel:   logrus.InfoLevel,
	}
}

// Load resolves settings: .env files, then process environment, then args.
// args excludes the program name
func Load(args []string) (Config, error) {
	if err := loadEnvFiles(EnvFiles); err != nil {
		return Config{}, err
	}
	return parse(args, os.LookupEnv)
}

// loadEnvFiles loads each existing file without overriding already-set variables
func loadEnvFiles(files []string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func parse(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	debug, err := envBool(lookup, EnvDebug, cfg.Debug)
	if err != nil {
		return Config{}, err
	}
	sound, err := envBool(lookup, EnvSound, cfg.Sound)
	if err != nil {
		return Config{}, err
	}
	colorName := cfg.StartColor.String()
	if v, ok := lookup(EnvColor); ok && v != "" {
		colorName = v
	}
	keymap, _ := lookup(EnvKeymap)
	level := ""
	if v, ok := lookup(EnvLogLevel); ok {
		level = v
	}

	cfg.Debug, cfg.Sound, cfg.KeymapPath = debug, sound, keymap
	fset := newFlagSet(&cfg, &colorName, &level)
	fset.SetOutput(io.Discard)
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("flags: %w", err)
	}

	c, err := palette.Parse(colorName)
	if err != nil {
		return Config{}, fmt.Errorf("start color: %w", err)
	}
	cfg.StartColor = c

	switch {
	case level != "":
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return Config{}, fmt.Errorf("log level: %w", err)
		}
		cfg.LogLevel = lvl
	case cfg.Debug:
		cfg.LogLevel = logrus.DebugLevel
	}

	return cfg, nil
}

func envBool(lookup func(string) (string, bool), key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func newFlagSet(cfg *Config, colorName, level *string) *flag.FlagSet {
	fset := flag.NewFlagSet("vi-pixel", flag.ContinueOnError)
	fset.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write a debug log under logs/")
	fset.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play tones on export")
	fset.StringVar(colorName, "color", *colorName, "starting pen color (name or #rrggbb)")
	fset.StringVar(&cfg.KeymapPath, "keymap", cfg.KeymapPath, "TOML keymap override file")
	fset.StringVar(level, "log-level", *level, "log level (debug, info, warn, error)")
	return fset
}

// Usage returns the flag help text
func Usage() string {
	cfg := Default()
	colorName, level := cfg.StartColor.String(), ""

	var sb strings.Builder
	fset := newFlagSet(&cfg, &colorName, &level)
	fset.SetOutput(&sb)
	fset.PrintDefaults()
	return sb.String()
}
