// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/parameq/audio"
	"github.com/ik5/parameq/chain"
	"github.com/ik5/parameq/eq"
	"github.com/ik5/parameq/filter"
	"github.com/ik5/parameq/formats/aiff"
	"github.com/ik5/parameq/formats/mp3"
	"github.com/ik5/parameq/formats/vorbis"
	"github.com/ik5/parameq/formats/wav"
	"github.com/ik5/parameq/internal/cli"
	"github.com/ik5/parameq/internal/config"
	"github.com/ik5/parameq/preset"
)

var (
	errNoPreset   = errors.New("no preset given (use --preset or the settings file)")
	errFileExists = errors.New("file already exists (use --force to overwrite)")
)

// ApplyCmd equalizes every input file with one preset.
type ApplyCmd struct {
	Files       []string `arg:"" name:"files" help:"Audio files to process" type:"existingfile"`
	Preset      string   `short:"p" type:"path" help:"Equalizer APO preset file"`
	OutDir      string   `short:"o" name:"out-dir" type:"path" help:"Output directory"`
	Suffix      string   `help:"Suffix added to the output file name"`
	BitDepth    int      `name:"bit-depth" help:"Output bit depth: 16, 24 or 32"`
	BlockFrames int      `name:"block-frames" help:"Frames per processing block"`
}

// Run implements the apply command.
func (a *ApplyCmd) Run(g *Globals) error {
	s, err := a.settings(g)
	if err != nil {
		return err
	}
	if s.Preset == "" {
		return errNoPreset
	}

	level, _ := s.Level()
	logger := newLogger(os.Stderr, level)
	slog.SetDefault(logger)

	// Reject a broken preset up front; the processor alone would pass audio
	// through unchanged.
	specs, err := preset.Parse(s.Preset, preset.WithWarnings(func(w preset.Warning) {
		logger.Warn("preset warning", "preset", s.Preset, "warning", w.String())
	}))
	if err != nil {
		return fmt.Errorf("preset %s: %w", s.Preset, err)
	}
	logger.Debug("preset loaded", "preset", s.Preset, "filters", len(specs))

	rt := filter.NewRuntime(filter.WithLogger(logger))
	p, err := eq.Open(rt, eq.WithLogger(logger), eq.WithConfigPath(s.Preset))
	if err != nil {
		return err
	}
	defer p.Close()

	reg := newRegistry()
	var failed int
	for _, in := range a.Files {
		out := outputPath(in, s.OutDir, s.Suffix)
		frames, clips, err := equalizeFile(reg, p, s, in, out)
		if err != nil {
			failed++
			logger.Error("file failed", "input", in, "error", err)
			cli.PrintError(fmt.Sprintf("%s: %v", in, err))
			continue
		}
		cli.PrintField(os.Stdout, in, fmt.Sprintf("%s (%d frames, %d clipped samples)", out, frames, clips))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(a.Files))
	}

	return nil
}

// settings loads the settings file and applies flag overrides.
func (a *ApplyCmd) settings(g *Globals) (config.Settings, error) {
	s, err := config.Load(g.Config)
	if err != nil {
		return s, err
	}

	if a.Preset != "" {
		s.Preset = a.Preset
	}
	if a.OutDir != "" {
		s.OutDir = a.OutDir
	}
	if a.Suffix != "" {
		s.Suffix = a.Suffix
	}
	if a.BitDepth != 0 {
		s.BitDepth = a.BitDepth
	}
	if a.BlockFrames != 0 {
		s.BlockFrames = a.BlockFrames
	}
	if g.LogLevel != "" {
		s.LogLevel = g.LogLevel
	}

	return s, s.Validate()
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// outputPath names the WAV written for input: the base name plus suffix,
// placed in dir.
func outputPath(input, dir, suffix string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(dir, base+suffix+".wav")
}

// equalizeFile decodes in, runs it through p and writes out. It returns the
// frames written and the samples clipped in this file alone. The processor
// is reset first so no filter state leaks between files.
func equalizeFile(reg *audio.Registry, p *eq.Processor, s config.Settings, in, out string) (int, uint64, error) {
	dec, err := reg.ForPath(in)
	if err != nil {
		return 0, 0, err
	}

	f, err := os.Open(in)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode: %w", err)
	}
	p.Reset()
	before := p.Clips()
	eqs := eq.NewSource(src, p)
	defer eqs.Close()

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return 0, 0, err
	}
	of, err := os.Create(out)
	if err != nil {
		return 0, 0, err
	}
	defer of.Close()

	w, err := wav.NewWriter(of, src.SampleRate(), s.BitDepth, src.Channels())
	if err != nil {
		return 0, 0, err
	}
	frames, err := w.WriteSource(eqs, s.BlockFrames)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	clips := p.Clips() - before
	if err != nil {
		return frames, clips, err
	}

	return frames, clips, of.Close()
}

// InspectCmd prints the filters of a preset. With --rate it also builds the
// chain to check every stage against that sample rate.
type InspectCmd struct {
	Preset   string `arg:"" name:"preset" help:"Equalizer APO preset file" type:"existingfile"`
	Rate     int    `help:"Sample rate to validate the chain against (0 skips)"`
	Channels int    `default:"2" help:"Channel count used with --rate"`
}

// Run implements the inspect command.
func (c *InspectCmd) Run(g *Globals) error {
	var warnings []preset.Warning
	specs, err := preset.Parse(c.Preset, preset.WithWarnings(func(w preset.Warning) {
		warnings = append(warnings, w)
	}))
	if err != nil {
		return err
	}

	cli.RenderFilters(os.Stdout, specs)
	cli.RenderWarnings(os.Stdout, warnings)

	if c.Rate <= 0 {
		return nil
	}

	return c.validate(os.Stdout, specs)
}

func (c *InspectCmd) validate(w io.Writer, specs []preset.FilterSpec) error {
	rt := filter.NewRuntime()
	rt.Acquire()
	defer rt.Release()

	ch, err := chain.Build(rt, specs, c.Channels, float64(c.Rate), 32)
	if err != nil {
		return err
	}
	defer ch.Close()

	cli.PrintField(w, "Engines", ch.Len())
	cli.PrintField(w, "Sample rate", ch.Rate())

	return nil
}

// InitCmd writes the default settings.
type InitCmd struct {
	Path  string `arg:"" name:"path" default:"parameq.yaml" help:"Settings file to write" type:"path"`
	Force bool   `short:"f" help:"Overwrite an existing file"`
}

// Run implements the init command.
func (c *InitCmd) Run(g *Globals) error {
	if _, err := os.Stat(c.Path); err == nil && !c.Force {
		return fmt.Errorf("%s: %w", c.Path, errFileExists)
	}
	if err := config.Save(c.Path, config.Default()); err != nil {
		return err
	}
	cli.PrintField(os.Stdout, "Wrote", c.Path)

	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run implements the version command.
func (VersionCmd) Run(g *Globals) error {
	cli.PrintVersion(os.Stdout, version)
	return nil
}
