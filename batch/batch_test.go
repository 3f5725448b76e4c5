/*
 * batch_test.go, part of devsnap.
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

package batch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/rmera/devsnap"
)

//copyTestdata copies the given files from the repository testdata
//directory to a new temporary directory, which is returned.
func copyTestdata(Te *testing.T, names ...string) string {
	dir := Te.TempDir()
	for _, v := range names {
		b, err := os.ReadFile(filepath.Join("../testdata", v))
		if err != nil {
			Te.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, v), b, 0644); err != nil {
			Te.Fatal(err)
		}
	}
	return dir
}

func testRunner(progress *bytes.Buffer, logs *bytes.Buffer) *Runner {
	R := New()
	R.Progress = progress
	R.Logger = hclog.New(&hclog.LoggerOptions{Output: logs, Level: hclog.Debug})
	R.Options.DPI = 30
	return R
}

func TestImageName(Te *testing.T) {
	cases := map[string]string{
		"snapshot_1.xyz":            "snapshot_1.jpg",
		"/a/b/snapshot_200.xyz":     "snapshot_200.jpg",
		"/a/b/snapshot_3.xyz.zst":   "snapshot_3.jpg",
		"snapshot_4.xyz.gz":         "snapshot_4.jpg",
		"results.v2/snapshot_5.xyz": "snapshot_5.jpg",
	}
	for in, out := range cases {
		if got := ImageName(in, ".jpg"); got != out {
			Te.Errorf("ImageName(%q) = %q, expected %q", in, got, out)
		}
	}
}

func TestRun(Te *testing.T) {
	dir := copyTestdata(Te, "snapshot_3atoms.xyz", "snapshot_power.xyz", "snapshot_cellonly.xyz")
	var progress, logs bytes.Buffer
	R := testRunner(&progress, &logs)
	st, err := R.Run([]string{dir})
	if err != nil {
		Te.Fatal(err)
	}
	if st.Found != 3 || st.Made != 2 || st.Empty != 1 || st.Failed != 0 {
		Te.Errorf("Wrong stats: %s", st)
	}
	for _, v := range []string{"snapshot_3atoms.jpg", "snapshot_power.jpg"} {
		if _, err := os.Stat(filepath.Join(dir, v)); err != nil {
			Te.Errorf("Image not made: %v", err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "snapshot_cellonly.jpg")); err == nil {
		Te.Errorf("Image made for an empty snapshot")
	}
	lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
	if len(lines) != 2 || lines[0] != "Made device image for "+filepath.Join(dir, "snapshot_3atoms.jpg") {
		Te.Errorf("Wrong progress output:\n%s", progress.String())
	}
	//Second run: everything is there already.
	progress.Reset()
	st, err = R.Run([]string{dir})
	if err != nil {
		Te.Fatal(err)
	}
	if st.Skipped != 2 || st.Made != 0 || progress.Len() != 0 {
		Te.Errorf("Existing images not skipped: %s", st)
	}
	R.Overwrite = true
	st, _ = R.Run([]string{dir})
	if st.Made != 2 {
		Te.Errorf("Images not overwritten: %s", st)
	}
}

func TestRunKeepsGoing(Te *testing.T) {
	dir := copyTestdata(Te, "snapshot_3atoms.xyz", "snapshot_badnumber.xyz", "snapshot_mixed.xyz", "snapshot_power.xyz")
	var progress, logs bytes.Buffer
	R := testRunner(&progress, &logs)
	st, err := R.Run([]string{dir, filepath.Join(dir, "nothere")})
	if err == nil {
		Te.Fatal("Failures not reported")
	}
	if !errors.Is(err, devsnap.ErrParse) {
		Te.Errorf("Parse errors lost: %v", err)
	}
	if st.Made != 2 || st.Failed != 2 {
		Te.Errorf("Wrong stats: %s", st)
	}
	if !strings.Contains(logs.String(), "snapshot_badnumber.xyz") || !strings.Contains(logs.String(), "line=4") {
		Te.Errorf("Failing file not logged with its line:\n%s", logs.String())
	}
}

func TestRunFailFast(Te *testing.T) {
	dir := copyTestdata(Te, "snapshot_3atoms.xyz", "snapshot_badnumber.xyz", "snapshot_power.xyz")
	var progress, logs bytes.Buffer
	R := testRunner(&progress, &logs)
	R.FailFast = true
	st, err := R.Run([]string{dir})
	if !errors.Is(err, devsnap.ErrParse) {
		Te.Errorf("Expected the parse error, got %v", err)
	}
	//files are processed in order, so the power snapshot is never reached.
	if st.Made != 1 || st.Failed != 1 {
		Te.Errorf("Wrong stats: %s", st)
	}
	if _, err := os.Stat(filepath.Join(dir, "snapshot_power.jpg")); err == nil {
		Te.Errorf("Run went on after a failure")
	}
}

func TestSnapshotsPatterns(Te *testing.T) {
	dir := copyTestdata(Te, "snapshot_3atoms.xyz", "snapshot_power.xyz")
	if err := os.WriteFile(filepath.Join(dir, "other.xyz"), []byte("1\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	files, err := Snapshots(dir, []string{"snapshot_*.xyz", "snapshot_p*.xyz"})
	if err != nil {
		Te.Fatal(err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "snapshot_3atoms.xyz" {
		Te.Errorf("Wrong snapshot list %v", files)
	}
}
