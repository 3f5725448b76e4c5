/*
 * summary_test.go, part of devsnap.
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
	"math"
	"testing"
)

func TestSummary(Te *testing.T) {
	S, err := ReadFile("testdata/snapshot_power.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	sum, err := S.Summary()
	if err != nil {
		Te.Fatal(err)
	}
	if sum.Atoms != 4 {
		Te.Errorf("Wrong number of atoms %d", sum.Atoms)
	}
	if sum.Potential.Min != 0.5 || sum.Potential.Max != 1.5 || math.Abs(sum.Potential.Mean-0.9375) > 1e-12 {
		Te.Errorf("Wrong potential summary %v", sum.Potential)
	}
	if sum.Power == nil || sum.Power.Max != 1.25 || sum.Power.Min != 0 {
		Te.Errorf("Wrong power summary %v", sum.Power)
	}
	if sum.Temperature.Min != 300 || sum.Temperature.Max != 310 {
		Te.Errorf("Wrong temperature summary %v", sum.Temperature)
	}
	S3, err := ReadFile("testdata/snapshot_3atoms.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	sum3, _ := S3.Summary()
	if sum3.Power != nil {
		Te.Errorf("Summary of a snapshot without power has power: %v", sum3.Power)
	}
	if _, err := NewSnapshot("empty").Summary(); err == nil {
		Te.Errorf("Empty snapshot summarized")
	}
}

func TestSnapshotCoords(Te *testing.T) {
	S := NewSnapshot("coords")
	S.add("Ti", Position{1, 2}, 0, 0, 0, false)
	S.add("O", Position{3, 4}, 0, 0, 0, false)
	if x, y := S.X(), S.Y(); !sameFloats(x, []float64{1, 3}) || !sameFloats(y, []float64{2, 4}) {
		Te.Errorf("Wrong coordinates %v %v", x, y)
	}
	S.Power = []float64{1}
	if S.Corrupted() == nil {
		Te.Errorf("Inconsistent power not detected")
	}
}
