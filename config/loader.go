/*
 * loader.go, part of devsnap.
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
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//EnvPrefix is the prefix of the environment variables read by Load.
//DEVSNAP_RENDER_DPI sets render.dpi, DEVSNAP_SCAN_FAIL_FAST sets scan.fail_fast.
const EnvPrefix = "DEVSNAP_"

//Load returns the default configuration, overridden first by the YAML file path (if not empty),
//then by the environment, and finally by flags, a map from dotted keys (like "scan.overwrite")
//to values. The result is validated.
func Load(path string, flags map[string]any) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(mapProvider(Default().toMap()), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}
	if len(flags) > 0 {
		if err := k.Load(mapProvider(flags), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}
	C := new(Config)
	if err := k.Unmarshal("", C); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := C.Validate(); err != nil {
		return nil, err
	}
	return C, nil
}

//envKey maps DEVSNAP_SECTION_SOME_KEY to section.some_key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

var errReadBytesNotSupported = errors.New("config: map provider only supports Read")

//mapProvider is a koanf provider for the defaults and the values set from the command line.
//Its keys can be dotted paths.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errReadBytesNotSupported
}

func (m mapProvider) Read() (map[string]any, error) {
	return maps.Unflatten(m, "."), nil
}
