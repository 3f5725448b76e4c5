/*
 * doc.go, part of devsnap.
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

/*
Package devsnap reads the xyz-like snapshot files written by atomistic device simulations
(atom species, positions and per-atom fields such as the electrostatic potential, the dissipated
power and the local temperature) into Snapshot structures.

The rendering of snapshots into raster images lives in the render subpackage, and the batch
processing of whole output directories in the batch subpackage.

**Snapshot file format**

Files are plain text, one record per line. Each line is classified only by the number of
whitespace-separated fields it has and, for a few cases, by its first field:

	1 field                    ignored (atom count header)
	0 fields                   ignored
	d ...                      ignored
	Cell: x y z / cell: x y z  lattice vector
	6 fields                   species x y z potential temperature
	7 fields                   species x y z potential power temperature
	anything else              ignored

The z coordinate is never read. Files ending in .zst or .gz are decompressed on the fly.
*/
package devsnap
