// SPDX-License-Identifier: EPL-2.0

// Package config loads the parameq command settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrInvalid indicates a settings value out of range.
var ErrInvalid = errors.New("invalid setting")

// Settings are the defaults of the apply command. Flags override them.
type Settings struct {
	Preset      string `yaml:"preset"`
	BlockFrames int    `yaml:"block_frames"`
	BitDepth    int    `yaml:"bit_depth"`
	OutDir      string `yaml:"out_dir"`
	Suffix      string `yaml:"suffix"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		BlockFrames: 1024,
		BitDepth:    16,
		OutDir:      ".",
		Suffix:      ".eq",
		LogLevel:    "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults;
// keys missing from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Save writes s to path as YAML, creating the directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (s Settings) Validate() error {
	if s.BlockFrames < 1 {
		return fmt.Errorf("%w: block_frames %d", ErrInvalid, s.BlockFrames)
	}
	switch s.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit_depth %d", ErrInvalid, s.BitDepth)
	}
	if _, err := s.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (s Settings) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, s.LogLevel)
	}

	return l, nil
}
