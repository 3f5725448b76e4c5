/*
 * line.go, part of devsnap.
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

package devsnap

//LineKind is the classification of one line of a snapshot file.
type LineKind int

const (
	Ignored     LineKind = iota
	LatticeMeta          //Cell: x y z
	DataLine6            //species x y z potential temperature
	DataLine7            //species x y z potential power temperature
)

func (L LineKind) String() string {
	switch L {
	case LatticeMeta:
		return "lattice"
	case DataLine6:
		return "data6"
	case DataLine7:
		return "data7"
	default:
		return "ignored"
	}
}

//CommentMark is the first field of lines that are always ignored.
const CommentMark = "d"

//ClassifyLine decides what a line is from its whitespace-separated fields alone.
//The rules are checked in order, the first one that matches wins.
func ClassifyLine(fields []string) LineKind {
	switch {
	case len(fields) == 1:
		return Ignored //atom count header
	case len(fields) == 0:
		return Ignored
	case fields[0] == CommentMark:
		return Ignored
	case fields[0] == "Cell:" || fields[0] == "cell:":
		return LatticeMeta
	case len(fields) == 6:
		return DataLine6
	case len(fields) == 7:
		return DataLine7
	}
	return Ignored
}
