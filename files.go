/*
 * files.go, part of devsnap.
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

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Compression suffixes recognized by ReadFile.
const (
	ZstdSuffix = ".zst"
	GzipSuffix = ".gz"
)

//ReadFile reads the snapshot file fname. Files ending in .zst or .gz are decompressed
//while reading. The file is always closed before returning. The returned error, if any,
//is an *Error of kind ErrIO or ErrParse.
func ReadFile(fname string) (*Snapshot, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, newIOError(fname, err, "ReadFile")
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(fname, ZstdSuffix):
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, newIOError(fname, err, "ReadFile")
		}
		rc := d.IOReadCloser()
		defer rc.Close()
		r = rc
	case strings.HasSuffix(fname, GzipSuffix):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, newIOError(fname, err, "ReadFile")
		}
		defer gz.Close()
		r = gz
	}
	S, err := Read(r, fname)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return S, nil
}

//Read reads a snapshot from r. name is only used to identify the snapshot
//and in error messages. Any non-numeric value where a number is expected
//aborts the reading.
func Read(r io.Reader, name string) (*Snapshot, error) {
	S := NewSnapshot(name)
	in := bufio.NewReader(r)
	var first LineKind //the kind of the first data line, all others must match it.
	for nline := 1; ; nline++ {
		line, rerr := in.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, newIOError(name, rerr, "Read")
		}
		if line == "" && rerr == io.EOF {
			break
		}
		fields := strings.Fields(line)
		kind := ClassifyLine(fields)
		switch kind {
		case LatticeMeta:
			lat, err := parseLattice(fields, name, nline)
			if err != nil {
				return nil, err
			}
			S.Lattice = lat
		case DataLine6, DataLine7:
			if first == Ignored {
				first = kind
			} else if kind != first {
				return nil, newParseError(name, nline, fmt.Sprintf("%s line in a file whose data lines are %s, power must be given for all atoms or for none", kind, first), nil)
			}
			if err := parseData(S, fields, kind, name, nline); err != nil {
				return nil, err
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	return S, nil
}

//parseLattice returns the numbers after the Cell: mark, at most 3 of them.
//A short cell line gives a short lattice, anything after the third value is ignored.
func parseLattice(fields []string, name string, nline int) ([]float64, error) {
	vals := fields[1:]
	if len(vals) > 3 {
		vals = vals[:3]
	}
	lat := make([]float64, len(vals))
	var err error
	for i, v := range vals {
		lat[i], err = parseNumber(v)
		if err != nil {
			return nil, newParseError(name, nline, "cell vector", err)
		}
	}
	return lat, nil
}

//parseNumber parses a float. Values too large in magnitude are taken as
//the corresponding infinity instead of failing.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

//columns per line kind: x, y, potential, power (-1 if absent), temperature.
//Field 3 (the z coordinate) is never read.
var columns = map[LineKind][5]int{
	DataLine6: {1, 2, 4, -1, 5},
	DataLine7: {1, 2, 4, 5, 6},
}

var columnNames = [5]string{"x", "y", "potential", "power", "temperature"}

func parseData(S *Snapshot, fields []string, kind LineKind, name string, nline int) error {
	cols := columns[kind]
	var vals [5]float64
	var err error
	for i, c := range cols {
		if c < 0 {
			continue
		}
		vals[i], err = parseNumber(fields[c])
		if err != nil {
			return newParseError(name, nline, columnNames[i], err)
		}
	}
	S.add(fields[0], Position{vals[0], vals[1]}, vals[2], vals[3], vals[4], kind == DataLine7)
	return nil
}
