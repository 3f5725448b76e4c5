/*
 * role.go, part of devsnap.
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
	"image/color"

	"github.com/rmera/devsnap"
)

//Role is the part an atom plays in the picture of the device.
type Role int

const (
	ElectrodeLeft  Role = iota //first atom, or a vacancy
	ElectrodeRight             //last atom, or a mobile ion
	Lattice                    //the oxide/nitride framework, drawn faintly
	Marker                     //comment-mark species
	Default                    //anything else, not drawn
)

func (R Role) String() string {
	switch R {
	case ElectrodeLeft:
		return "electrode-left"
	case ElectrodeRight:
		return "electrode-right"
	case Lattice:
		return "lattice"
	case Marker:
		return "marker"
	}
	return "default"
}

//Species holds the species tokens that give an atom a role.
type Species struct {
	Vacancy string   //colored as the left electrode
	Ion     string   //colored as the right electrode
	Marker  string   //drawn very faintly
	Lattice []string //the framework elements
}

//DefaultSpecies returns the tokens used by the device simulations: V for vacancies,
//Od for oxygen ions, d as the marker and Ti, N, Hf and O as the lattice.
func DefaultSpecies() Species {
	return Species{
		Vacancy: "V",
		Ion:     "Od",
		Marker:  devsnap.CommentMark,
		Lattice: []string{"Ti", "N", "Hf", "O"},
	}
}

//Classify returns the role of the atom with the given species, which is
//at position index in a snapshot of total atoms. The position takes priority
//over the species: the first atom is always ElectrodeLeft, even if it is also
//the last one, and the last atom is always ElectrodeRight.
func Classify(species string, index, total int, sp Species) Role {
	switch {
	case index == 0 || species == sp.Vacancy:
		return ElectrodeLeft
	case index == total-1 || species == sp.Ion:
		return ElectrodeRight
	case isInString(sp.Lattice, species):
		return Lattice
	case species == sp.Marker:
		return Marker
	}
	return Default
}

var (
	red  = color.NRGBA{R: 255, A: alpha(0.8)}
	blue = color.NRGBA{B: 255, A: alpha(0.8)}
)

//RoleColor returns the color and opacity used to draw atoms of role R.
func RoleColor(R Role) color.NRGBA {
	gray := color.NRGBA{R: 128, G: 128, B: 128}
	switch R {
	case ElectrodeLeft:
		return red
	case ElectrodeRight:
		return blue
	case Lattice:
		gray.A = alpha(0.1)
	case Marker:
		gray.A = alpha(0.05)
	default:
		gray.A = 0
	}
	return gray
}

//Roles returns the role of each atom in S.
func Roles(S *devsnap.Snapshot, sp Species) []Role {
	n := S.Len()
	ret := make([]Role, n)
	for i, v := range S.Species {
		ret[i] = Classify(v, i, n, sp)
	}
	return ret
}

//Colors returns the color of each atom in S.
func Colors(S *devsnap.Snapshot, sp Species) []color.NRGBA {
	roles := Roles(S, sp)
	ret := make([]color.NRGBA, len(roles))
	for i, v := range roles {
		ret[i] = RoleColor(v)
	}
	return ret
}
