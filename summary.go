/*
 * summary.go, part of devsnap.
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
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//FieldSummary contains the range and mean of a per-atom field.
type FieldSummary struct {
	Min, Max, Mean float64
}

func (F FieldSummary) String() string {
	return fmt.Sprintf("[%g, %g] mean %g", F.Min, F.Max, F.Mean)
}

//Summary contains some descriptors of the fields in a snapshot.
type Summary struct {
	Atoms       int
	Potential   FieldSummary
	Power       *FieldSummary //nil if the snapshot has no power values
	Temperature FieldSummary
}

func summarize(data []float64) FieldSummary {
	return FieldSummary{
		Min:  floats.Min(data),
		Max:  floats.Max(data),
		Mean: stat.Mean(data, nil),
	}
}

//Summary returns the min, max and mean of the fields in the snapshot.
//It returns an error for empty snapshots.
func (S *Snapshot) Summary() (Summary, error) {
	if S.Empty() {
		return Summary{}, fmt.Errorf("devsnap: can't summarize empty snapshot %s", S.Name)
	}
	ret := Summary{
		Atoms:       S.Len(),
		Potential:   summarize(S.Potential),
		Temperature: summarize(S.Temperature),
	}
	if S.HasPower() {
		p := summarize(S.Power)
		ret.Power = &p
	}
	return ret, nil
}
