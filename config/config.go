/*
 * config.go, part of devsnap.
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

//Package config holds the settings of a devsnap run and loads them from a YAML file,
//the environment and command-line flags, in increasing order of priority.
package config

import (
	"fmt"
	"strings"

	"github.com/rmera/devsnap/render"
	"gonum.org/v1/plot/vg"
)

//Config is the complete configuration of a run.
type Config struct {
	Scan   Scan   `koanf:"scan"`
	Render Render `koanf:"render"`
	Log    Log    `koanf:"log"`
}

//Scan controls which snapshot files are processed.
type Scan struct {
	Patterns  []string `koanf:"patterns"`  //glob patterns for the snapshot files, relative to each directory
	Format    string   `koanf:"format"`    //extension of the images, without the dot
	Overwrite bool     `koanf:"overwrite"` //render snapshots even if their image exists
	FailFast  bool     `koanf:"fail_fast"` //abort the run at the first failing file
}

//Render controls the look of the images.
type Render struct {
	WidthIn      float64  `koanf:"width_in"`
	HeightIn     float64  `koanf:"height_in"`
	DPI          int      `koanf:"dpi"`
	MarkerRadius float64  `koanf:"marker_radius_pt"`
	Vacancy      string   `koanf:"vacancy"`
	Ion          string   `koanf:"ion"`
	Marker       string   `koanf:"marker"`
	Lattice      []string `koanf:"lattice"`
}

//Log controls the diagnostics.
type Log struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

//Default returns the configuration used when nothing else is given.
func Default() *Config {
	sp := render.DefaultSpecies()
	return &Config{
		Scan: Scan{
			Patterns: []string{"snapshot_*.xyz"},
			Format:   "jpg",
		},
		Render: Render{
			WidthIn:      5,
			HeightIn:     7,
			DPI:          100,
			MarkerRadius: 0.4,
			Vacancy:      sp.Vacancy,
			Ion:          sp.Ion,
			Marker:       sp.Marker,
			Lattice:      sp.Lattice,
		},
		Log: Log{
			Level: "info",
		},
	}
}

//toMap returns the configuration as a map of dotted keys.
func (C *Config) toMap() map[string]any {
	return map[string]any{
		"scan.patterns":           append([]string(nil), C.Scan.Patterns...),
		"scan.format":             C.Scan.Format,
		"scan.overwrite":          C.Scan.Overwrite,
		"scan.fail_fast":          C.Scan.FailFast,
		"render.width_in":         C.Render.WidthIn,
		"render.height_in":        C.Render.HeightIn,
		"render.dpi":              C.Render.DPI,
		"render.marker_radius_pt": C.Render.MarkerRadius,
		"render.vacancy":          C.Render.Vacancy,
		"render.ion":              C.Render.Ion,
		"render.marker":           C.Render.Marker,
		"render.lattice":          append([]string(nil), C.Render.Lattice...),
		"log.level":               C.Log.Level,
		"log.json":                C.Log.JSON,
	}
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "off"}

//Validate returns an error describing the first invalid setting found, or nil.
func (C *Config) Validate() error {
	if len(C.Scan.Patterns) == 0 {
		return fmt.Errorf("config: scan.patterns can't be empty")
	}
	for _, v := range C.Scan.Patterns {
		if strings.ContainsRune(v, '/') {
			return fmt.Errorf("config: scan pattern %q must not contain a path separator", v)
		}
	}
	if !render.SupportedFormat(C.Scan.Format) {
		return fmt.Errorf("config: unsupported image format %q", C.Scan.Format)
	}
	if C.Render.WidthIn <= 0 || C.Render.HeightIn <= 0 {
		return fmt.Errorf("config: figure size must be positive, got %gx%g inches", C.Render.WidthIn, C.Render.HeightIn)
	}
	if C.Render.DPI <= 0 {
		return fmt.Errorf("config: dpi must be positive, got %d", C.Render.DPI)
	}
	if C.Render.MarkerRadius <= 0 {
		return fmt.Errorf("config: marker radius must be positive, got %g", C.Render.MarkerRadius)
	}
	level := strings.ToLower(C.Log.Level)
	found := false
	for _, v := range logLevels {
		if v == level {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config: unknown log level %q", C.Log.Level)
	}
	return nil
}

//ImageExt returns the image extension, with a leading dot.
func (C *Config) ImageExt() string {
	return "." + strings.TrimPrefix(strings.ToLower(C.Scan.Format), ".")
}

//Options returns the render options described by R.
func (R Render) Options() *render.Options {
	return &render.Options{
		Width:        vg.Length(R.WidthIn) * vg.Inch,
		Height:       vg.Length(R.HeightIn) * vg.Inch,
		DPI:          R.DPI,
		MarkerRadius: vg.Points(R.MarkerRadius),
		Species: render.Species{
			Vacancy: R.Vacancy,
			Ion:     R.Ion,
			Marker:  R.Marker,
			Lattice: append([]string(nil), R.Lattice...),
		},
	}
}
