/*
 * logger.go, part of devsnap.
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
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/rmera/devsnap/config"
)

//newLogger returns the logger for a run. Diagnostics go to w, normally stderr, so they
//don't mix with the progress lines.
func newLogger(C config.Log, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "devsnap",
		Level:      hclog.LevelFromString(C.Level),
		Output:     w,
		JSONFormat: C.JSON,
		Color:      hclog.AutoColor,
	})
}
