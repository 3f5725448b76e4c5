/*
 * config_test.go, part of devsnap.
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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestDefault(Te *testing.T) {
	C := Default()
	if err := C.Validate(); err != nil {
		Te.Fatal(err)
	}
	if C.ImageExt() != ".jpg" {
		Te.Errorf("Wrong default extension %s", C.ImageExt())
	}
	o := C.Render.Options()
	if o.Width != 5*vg.Inch || o.Height != 7*vg.Inch || o.DPI != 100 {
		Te.Errorf("Wrong default figure %+v", o)
	}
	if o.Species.Vacancy != "V" || o.Species.Ion != "Od" || o.Species.Marker != "d" || len(o.Species.Lattice) != 4 {
		Te.Errorf("Wrong default species %+v", o.Species)
	}
}

func TestValidate(Te *testing.T) {
	bad := []func(*Config){
		func(C *Config) { C.Scan.Patterns = nil },
		func(C *Config) { C.Scan.Patterns = []string{"sub/snapshot_*.xyz"} },
		func(C *Config) { C.Scan.Format = "bmp" },
		func(C *Config) { C.Render.DPI = 0 },
		func(C *Config) { C.Render.WidthIn = -1 },
		func(C *Config) { C.Render.MarkerRadius = 0 },
		func(C *Config) { C.Log.Level = "loud" },
	}
	for i, f := range bad {
		C := Default()
		f(C)
		if C.Validate() == nil {
			Te.Errorf("Invalid configuration %d accepted", i)
		}
	}
}

func TestLoad(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "devsnap.yaml")
	content := `
scan:
  patterns: ["frame_*.xyz"]
  format: png
render:
  dpi: 150
  lattice: [Si]
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	Te.Setenv("DEVSNAP_RENDER_WIDTH_IN", "8")
	C, err := Load(path, map[string]any{"scan.format": "tif", "scan.fail_fast": true})
	if err != nil {
		Te.Fatal(err)
	}
	if strings.Join(C.Scan.Patterns, ",") != "frame_*.xyz" {
		Te.Errorf("Patterns not read from file: %v", C.Scan.Patterns)
	}
	if C.Scan.Format != "tif" || !C.Scan.FailFast {
		Te.Errorf("Flags don't override the file: %+v", C.Scan)
	}
	if C.Render.DPI != 150 || C.Render.WidthIn != 8 || C.Render.HeightIn != 7 {
		Te.Errorf("Wrong render settings %+v", C.Render)
	}
	if len(C.Render.Lattice) != 1 || C.Render.Lattice[0] != "Si" {
		Te.Errorf("The lattice list must replace the default: %v", C.Render.Lattice)
	}
	if C.Render.Vacancy != "V" {
		Te.Errorf("Defaults lost: %+v", C.Render)
	}
	if C.Log.Level != "debug" {
		Te.Errorf("Wrong log level %s", C.Log.Level)
	}
}

func TestLoadErrors(Te *testing.T) {
	if _, err := Load(filepath.Join(Te.TempDir(), "none.yaml"), nil); err == nil {
		Te.Errorf("Missing file accepted")
	}
	if _, err := Load("", map[string]any{"render.dpi": -3}); err == nil {
		Te.Errorf("Invalid flag value accepted")
	}
	C, err := Load("", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if C.Scan.Patterns[0] != "snapshot_*.xyz" {
		Te.Errorf("Wrong default pattern %v", C.Scan.Patterns)
	}
}
