/*
 * plotutils.go, part of devsnap.
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

package render

import (
	"math"
	"strings"
)

//Some internal convenience functions.

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//panelCount returns the number of stacked panel slots in the figure.
//Only the first one is used for now, the others are reserved for the
//power and temperature fields.
func panelCount(haspower bool) int {
	if haspower {
		return 4
	}
	return 3
}

//alpha converts an opacity between 0 and 1 to a color channel value.
func alpha(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a*255 + 0.5)
}

//Extensions of the raster formats Save can write.
var rasterFormats = []string{".jpg", ".jpeg", ".png", ".tif", ".tiff"}

//SupportedFormat returns true if an image with the given extension
//(with or without the leading dot) can be written.
func SupportedFormat(ext string) bool {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return isInString(rasterFormats, ext)
}

//finite returns true if f is neither NaN nor infinite.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
