/*
 * doc.go, part of molframe
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package molframe keeps a molecular structure (a "frame") as a set of tables, in the
way LAMMPS data files do: the box, the masses of each atom type, the atoms, the bonds,
angles, dihedrals and impropers, and the number of types of each kind. It provides
the editing operations needed to build simulation systems out of pieces.

molframe capabilities:

  - Shifts IDs and types of any table, so frames can be combined without collisions
    (ShiftAtomIDs, ShiftAtomTypes, ... and the generic ShiftColumns).
  - Merges frames (Merge, MergeAll). The box of the first frame is kept, and
    the type counts are added. Offsets/ApplyOffsets help renumbering before merging.
  - Adds the bonds and angles of TIP3P-like water molecules, given as O-H-H runs
    of atoms (ApplyTIP3P).
  - Checks the consistency of a frame (Corrupted), moves atoms and box,
    and exchanges coordinates with Gonum matrices.

Reading and writing files is done by the subpackages lmp (LAMMPS data files) and
xyz. Frames can be kept in a SQLite database with the sqlstore package.

A Frame is not safe for concurrent use.
*/
package molframe
