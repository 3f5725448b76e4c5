/*
 * batch.go, part of devsnap.
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

//Package batch renders every snapshot file found in a set of output directories,
//skipping those whose image already exists.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/rmera/devsnap"
	"github.com/rmera/devsnap/render"
)

//Runner processes snapshot directories, one file at a time.
type Runner struct {
	Patterns  []string //glob patterns for snapshot files, relative to each directory
	ImageExt  string   //extension of the images, with the leading dot
	Overwrite bool     //re-render snapshots that already have an image
	FailFast  bool     //stop at the first failing file instead of logging it and going on
	Options   *render.Options
	Logger    hclog.Logger
	Progress  io.Writer //one line per image made is written here, if not nil
	Colorize  func(string) string
}

//Stats counts what happened to the files in a run.
type Stats struct {
	Found   int //snapshot files matching the patterns
	Made    int //images written
	Skipped int //snapshots with an existing image
	Empty   int //snapshots without atoms, which produce no image
	Failed  int
}

func (S Stats) String() string {
	return fmt.Sprintf("%d snapshots found, %d images made, %d skipped, %d empty, %d failed", S.Found, S.Made, S.Skipped, S.Empty, S.Failed)
}

//New returns a Runner with the default patterns, jpg images and
//render options, that logs nowhere and prints progress to stdout.
func New() *Runner {
	return &Runner{
		Patterns: []string{"snapshot_*.xyz"},
		ImageExt: ".jpg",
		Options:  render.DefaultOptions(),
		Logger:   hclog.NewNullLogger(),
		Progress: os.Stdout,
	}
}

//ImageName returns the name of the image for the snapshot file fname: the snapshot's
//base name, with its compression suffix (if any) and extension replaced by ext.
func ImageName(fname, ext string) string {
	base := filepath.Base(fname)
	for _, v := range []string{devsnap.ZstdSuffix, devsnap.GzipSuffix} {
		base = strings.TrimSuffix(base, v)
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

//Snapshots returns the sorted snapshot files in dir matching any of the patterns.
func Snapshots(dir string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var ret []string
	for _, p := range patterns {
		m, err := filepath.Glob(filepath.Join(dir, p))
		if err != nil {
			return nil, fmt.Errorf("batch: pattern %q: %w", p, err)
		}
		for _, v := range m {
			if !seen[v] {
				seen[v] = true
				ret = append(ret, v)
			}
		}
	}
	sort.Strings(ret)
	return ret, nil
}

func exists(fname string) bool {
	_, err := os.Stat(fname)
	return err == nil
}

//Run processes all the snapshots in dirs. Unless FailFast is set, a file that
//can't be read or rendered is logged and skipped. The returned error joins the
//errors of all the failed files, or is the first one if FailFast is set.
func (R *Runner) Run(dirs []string) (Stats, error) {
	var st Stats
	var errs []error
	log := R.logger()
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err == nil && !info.IsDir() {
			err = fmt.Errorf("batch: %s is not a directory", dir)
		}
		if err == nil {
			err = R.runDir(dir, &st, &errs)
		}
		if err != nil {
			if R.FailFast {
				return st, err
			}
			log.Error("can't process directory", "dir", dir, "error", err)
			errs = append(errs, err)
		}
	}
	log.Info("run finished", "found", st.Found, "made", st.Made, "skipped", st.Skipped, "empty", st.Empty, "failed", st.Failed)
	return st, errors.Join(errs...)
}

//runDir processes one directory. It only returns an error if the directory
//can't be listed, or if FailFast is set and a file fails.
func (R *Runner) runDir(dir string, st *Stats, errs *[]error) error {
	log := R.logger().With("dir", dir)
	files, err := Snapshots(dir, R.Patterns)
	if err != nil {
		return err
	}
	log.Debug("snapshots found", "count", len(files))
	st.Found += len(files)
	for _, f := range files {
		out, err := R.File(f)
		switch {
		case err != nil:
			st.Failed++
			if R.FailFast {
				return err
			}
			args := []any{"file", f, "error", err}
			var serr *devsnap.Error
			if errors.As(err, &serr) && serr.Line() > 0 {
				args = append(args, "line", serr.Line())
			}
			log.Error("skipping snapshot", args...)
			*errs = append(*errs, err)
		case out == Skipped:
			st.Skipped++
		case out == Empty:
			st.Empty++
		default:
			st.Made++
		}
	}
	return nil
}

//Outcome is the result of processing one snapshot file.
type Outcome int

const (
	Rendered Outcome = iota
	Skipped          //the image already existed
	Empty            //the snapshot had no atoms
	Failed
)

//File processes a single snapshot file, writing its image next to it.
func (R *Runner) File(fname string) (Outcome, error) {
	log := R.logger().With("file", fname)
	dir := filepath.Dir(fname)
	imname := ImageName(fname, R.ImageExt)
	if !R.Overwrite && exists(filepath.Join(dir, imname)) {
		log.Debug("image exists, skipping", "image", imname)
		return Skipped, nil
	}
	S, err := devsnap.ReadFile(fname)
	if err != nil {
		return Failed, err
	}
	if S.Empty() {
		log.Debug("no atoms in snapshot")
		return Empty, nil
	}
	if S.HasLattice() && !S.FullLattice() {
		log.Warn("incomplete cell line", "values", len(S.Lattice))
	}
	if log.IsDebug() {
		if sum, err := S.Summary(); err == nil {
			args := []any{"atoms", sum.Atoms, "potential", sum.Potential.String(), "temperature", sum.Temperature.String()}
			if sum.Power != nil {
				args = append(args, "power", sum.Power.String())
			}
			if S.HasLattice() {
				args = append(args, "lattice", S.Lattice)
			}
			log.Debug("snapshot read", args...)
		}
	}
	if err := render.Render(S, dir, imname, R.Options); err != nil {
		return Failed, fmt.Errorf("batch: rendering %s: %w", fname, err)
	}
	R.progress(fmt.Sprintf("Made device image for %s", filepath.Join(dir, imname)))
	return Rendered, nil
}

func (R *Runner) progress(line string) {
	if R.Progress == nil {
		return
	}
	if R.Colorize != nil {
		line = R.Colorize(line)
	}
	fmt.Fprintln(R.Progress, line)
}

func (R *Runner) logger() hclog.Logger {
	if R.Logger == nil {
		return hclog.NewNullLogger()
	}
	return R.Logger
}
