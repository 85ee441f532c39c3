// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/ik5/parameq/internal/cli"
)

var (
	version = "0.0.1"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" type:"path" help:"Path to YAML settings file (optional)"`
	LogLevel string `name:"log-level" help:"Log level: debug, info, warn, error (overrides settings)"`
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Apply   ApplyCmd   `cmd:"" help:"Equalize audio files and write the result as WAV"`
	Inspect InspectCmd `cmd:"" help:"Show the filters of a preset"`
	Init    InitCmd    `cmd:"" help:"Write a settings file with the default values"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

func main() {
	var c CLI
	ctx := kong.Parse(&c,
		kong.Name("parameq"),
		kong.Description("Parametric equalizer for Equalizer APO presets"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	if err := ctx.Run(&c.Globals); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
