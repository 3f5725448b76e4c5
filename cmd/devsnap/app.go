/*
 * app.go, part of devsnap.
 *
 * Copyright 2024 The devsnap Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rmera/devsnap/batch"
	"github.com/rmera/devsnap/config"
	"github.com/urfave/cli/v2"
)

//Version is set via ldflags.
var Version = "dev"

func app(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "devsnap",
		Usage:     "render device snapshot files as images",
		ArgsUsage: "DIR [DIR...]",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"DEVSNAP_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error or off",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "write diagnostics as JSON",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "image format: jpg, png or tif",
			},
			&cli.StringSliceFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "glob pattern for the snapshot files in each directory (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "overwrite",
				Usage: "render snapshots even if their image exists",
			},
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "stop at the first snapshot that can't be processed",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if ec, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(c.App.ErrWriter, "error:", err)
				cli.OsExiter(ec.ExitCode())
			}
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				cli.ShowAppHelp(c)
				return cli.Exit("Missing folder! Give one or more result directories", 1)
			}
			C, err := config.Load(c.String("config"), flagValues(c))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			R := runner(C, c.App.Writer, c.App.ErrWriter)
			st, err := R.Run(c.Args().Slice())
			if err != nil {
				return cli.Exit(fmt.Sprintf("%d snapshot(s) could not be processed: %v", st.Failed, err), 1)
			}
			return nil
		},
	}
}

//flagValues returns the configuration keys set explicitly in the command line.
func flagValues(c *cli.Context) map[string]any {
	m := make(map[string]any)
	if c.IsSet("log-level") {
		m["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-json") {
		m["log.json"] = c.Bool("log-json")
	}
	if c.IsSet("format") {
		m["scan.format"] = c.String("format")
	}
	if c.IsSet("pattern") {
		m["scan.patterns"] = c.StringSlice("pattern")
	}
	if c.IsSet("overwrite") {
		m["scan.overwrite"] = c.Bool("overwrite")
	}
	if c.IsSet("fail-fast") {
		m["scan.fail_fast"] = c.Bool("fail-fast")
	}
	return m
}

func runner(C *config.Config, stdout, stderr io.Writer) *batch.Runner {
	R := batch.New()
	R.Patterns = C.Scan.Patterns
	R.ImageExt = C.ImageExt()
	R.Overwrite = C.Scan.Overwrite
	R.FailFast = C.Scan.FailFast
	R.Options = C.Render.Options()
	R.Logger = newLogger(C.Log, stderr)
	R.Progress = stdout
	if f, ok := stdout.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		green := color.New(color.FgGreen)
		green.EnableColor()
		R.Colorize = func(s string) string { return green.Sprint(s) }
	}
	return R
}
