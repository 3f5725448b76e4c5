/*
 * snapshot.go, part of devsnap.
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

import "fmt"

//Position is a 2D coordinate, in the units of the snapshot file.
type Position struct {
	X, Y float64
}

//AtomRecord is one row of the atom table of a snapshot.
type AtomRecord struct {
	Species     string
	Position    Position
	Potential   float64
	Power       float64 //only meaningful if HasPower is true
	HasPower    bool
	Temperature float64
}

//Snapshot contains the atom table read from one snapshot file. The order of the
//atoms is the order of the file, which matters: the first and last atoms are the electrodes.
//Species, Positions, Potential and Temperature always have the same length. Power is either
//empty or has that same length too.
type Snapshot struct {
	Name        string //the file the snapshot was read from, if any.
	Species     []string
	Positions   []Position
	Potential   []float64
	Power       []float64
	Temperature []float64
	Lattice     []float64 //nil if the file had no Cell: line, at most 3 elements otherwise.
}

//NewSnapshot returns an empty snapshot with the given name.
func NewSnapshot(name string) *Snapshot {
	return &Snapshot{Name: name}
}

//Len returns the number of atoms in the snapshot.
func (S *Snapshot) Len() int {
	return len(S.Species)
}

//Empty returns true if the snapshot has no atoms. Empty snapshots are
//legal, they just don't produce images.
func (S *Snapshot) Empty() bool {
	return S == nil || len(S.Species) == 0
}

//HasPower returns true if every atom in the snapshot carries a power value.
func (S *Snapshot) HasPower() bool {
	return len(S.Power) > 0
}

//HasLattice returns true if the snapshot file had a Cell: line with at least one value.
func (S *Snapshot) HasLattice() bool {
	return len(S.Lattice) > 0
}

//FullLattice returns true if the lattice has its 3 components.
func (S *Snapshot) FullLattice() bool {
	return len(S.Lattice) == 3
}

//Atom returns the record for the i-th atom. It panics if i is out of range.
func (S *Snapshot) Atom(i int) AtomRecord {
	r := AtomRecord{
		Species:     S.Species[i],
		Position:    S.Positions[i],
		Potential:   S.Potential[i],
		Temperature: S.Temperature[i],
	}
	if S.HasPower() {
		r.Power = S.Power[i]
		r.HasPower = true
	}
	return r
}

//X returns a new slice with the x coordinates of all atoms.
func (S *Snapshot) X() []float64 {
	ret := make([]float64, len(S.Positions))
	for i, v := range S.Positions {
		ret[i] = v.X
	}
	return ret
}

//Y returns a new slice with the y coordinates of all atoms.
func (S *Snapshot) Y() []float64 {
	ret := make([]float64, len(S.Positions))
	for i, v := range S.Positions {
		ret[i] = v.Y
	}
	return ret
}

//add appends one data line to the table. A data line without power
//is given with hasPower false, and power is then ignored.
func (S *Snapshot) add(species string, pos Position, potential, power, temperature float64, hasPower bool) {
	S.Species = append(S.Species, species)
	S.Positions = append(S.Positions, pos)
	S.Potential = append(S.Potential, potential)
	S.Temperature = append(S.Temperature, temperature)
	if hasPower {
		S.Power = append(S.Power, power)
	}
}

//Corrupted returns an error if the arrays in the snapshot don't have consistent lengths, nil otherwise.
func (S *Snapshot) Corrupted() error {
	n := len(S.Species)
	if len(S.Positions) != n || len(S.Potential) != n || len(S.Temperature) != n {
		return fmt.Errorf("devsnap: inconsistent snapshot %s: %d species, %d positions, %d potentials, %d temperatures",
			S.Name, n, len(S.Positions), len(S.Potential), len(S.Temperature))
	}
	if len(S.Power) != 0 && len(S.Power) != n {
		return fmt.Errorf("devsnap: inconsistent snapshot %s: %d power values for %d atoms", S.Name, len(S.Power), n)
	}
	if len(S.Lattice) > 3 {
		return fmt.Errorf("devsnap: inconsistent snapshot %s: lattice with %d elements", S.Name, len(S.Lattice))
	}
	return nil
}
