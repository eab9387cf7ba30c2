// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tonemap applies tone mapping operators to single colors,
// exposure ramps of middle gray, and Radiance HDR images.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/tonemap/base/errors"
	"cogentcore.org/tonemap/colors/tonemap"
	"cogentcore.org/tonemap/logx"
)

// command is one subcommand of the tonemap command.
type command struct {
	name  string
	usage string
	doc   string
	flags func(fs *flag.FlagSet, o *options)
	run   func(o *options, m *tonemap.Mapper, w io.Writer) error
}

var commands = []*command{
	{
		name:  "color",
		usage: "color [flags]",
		doc:   "map one linear sRGB color",
		flags: colorFlags,
		run:   runColor,
	},
	{
		name:  "ramp",
		usage: "ramp [flags]",
		doc:   "map middle gray over a range of exposure stops",
		flags: rampFlags,
		run:   runRamp,
	},
	{
		name:  "image",
		usage: "image -in scene.hdr -out out.png [flags]",
		doc:   "tone map a Radiance HDR image to PNG or TIFF",
		flags: imageFlags,
		run:   runImage,
	},
	{
		name:  "ops",
		usage: "ops",
		doc:   "list the tone mapping operators",
		run:   runOps,
	},
}

// options are the parsed flags of a subcommand.
type options struct {
	Config

	configFile string
	verbose    bool
	quiet      bool

	// color
	rgb string

	// ramp
	from, to, step float64

	// image
	in, out string
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: tonemap <command> [flags]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.doc)
	}
	fmt.Fprintf(w, "\nrun tonemap <command> -h for the flags of a command\n")
}

func main() {
	logx.SetDefaultLogger()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error(err.Error())
		}
		os.Exit(1)
	}
}

// run runs the subcommand named by args[0] with the remaining flags,
// writing its output to w.
func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(os.Stderr)
		return flag.ErrHelp
	}
	var cmd *command
	for _, c := range commands {
		if c.name == args[0] {
			cmd = c
		}
	}
	if cmd == nil {
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
	o, err := parseFlags(cmd, args[1:])
	if err != nil {
		return err
	}
	if o.verbose {
		logx.UserLevel = slog.LevelDebug
	} else if o.quiet {
		logx.UserLevel = slog.LevelError
	}
	m, err := o.Tonemap.Resolve()
	if err != nil {
		return err
	}
	slog.Debug("resolved tone mapping operator", "command", cmd.name, "operator", m.Operator(), "brightnessMatch", m.BrightnessMatch())
	return cmd.run(o, m, w)
}

// parseFlags parses the flags of cmd. The config file, if any, is loaded
// first, and flags given explicitly override its values.
func parseFlags(cmd *command, args []string) (*options, error) {
	o := &options{}
	o.Defaults()

	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: tonemap %s\n", cmd.usage)
		fs.PrintDefaults()
	}
	var tier, op string
	var override, brightness bool
	var exposure float64
	fs.StringVar(&o.configFile, "config", "", "TOML or YAML config file")
	fs.StringVar(&tier, "tier", o.Tonemap.Tier.String(), "device tier, which selects the default operator: Desktop or Mobile")
	fs.StringVar(&op, "op", "", "operator, overriding the tier default (see tonemap ops)")
	fs.BoolVar(&override, "override", false, "use the configured operator instead of the tier default")
	fs.BoolVar(&brightness, "brightness-match", true, "brighten the ACES operator to match ACESSRGB")
	fs.Float64Var(&exposure, "ev", 0, "exposure adjustment in stops")
	fs.BoolVar(&o.verbose, "v", false, "verbose debug logging")
	fs.BoolVar(&o.quiet, "q", false, "only log errors")
	if cmd.flags != nil {
		cmd.flags(fs, o)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if o.configFile != "" {
		if err := OpenConfig(&o.Config, o.configFile); err != nil {
			return nil, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "tier":
			err = o.Tonemap.Tier.SetString(tier)
		case "op":
			err = o.Tonemap.Operator.SetString(op)
			o.Tonemap.Override = true
		case "override":
			o.Tonemap.Override = override
		case "brightness-match":
			o.Tonemap.BrightnessMatch = brightness
		case "ev":
			o.Exposure = float32(exposure)
		}
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}
