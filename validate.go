/*
 * validate.go, part of molframe
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

package molframe

func uniqueIDs[S ~[]E, E any](t Table, s S, id func(*E) int) error {
	seen := make(map[int]int, len(s))
	for i := range s {
		v := id(&s[i])
		if prev, ok := seen[v]; ok {
			return newError(ErrSchema, "Corrupted", "%s: ID %d repeated in rows %d and %d", t, v, prev, i)
		}
		seen[v] = i
	}
	return nil
}

func refsExist(t Table, row, id int, refs []int, atoms map[int]int) error {
	for _, r := range refs {
		if _, ok := atoms[r]; !ok {
			return newError(ErrSchema, "Corrupted", "%s: row %d (ID %d) refers to atom %d, which is not in the Atoms table", t, row, id, r)
		}
	}
	return nil
}

// Corrupted checks whether the frame is consistent: IDs are unique in each table,
// every atom referred to by a bond, angle, dihedral or improper exists,
// and the box limits are not inverted. It returns nil if everything is fine.
// Nothing in the frame enforces this automatically, so it's up to the caller to
// check after shifting or merging.
func (F *Frame) Corrupted() error {
	for i, b := range F.box {
		if b.Hi < b.Lo {
			return newError(ErrSchema, "Corrupted", "box: axis %d has high bound %g below low bound %g", i, b.Hi, b.Lo)
		}
	}
	if err := uniqueIDs(Masses, F.masses, func(m *Mass) int { return m.Type }); err != nil {
		return err
	}
	if err := uniqueIDs(Atoms, F.atoms, func(a *Atom) int { return a.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(Bonds, F.bonds, func(b *Bond) int { return b.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(Angles, F.angles, func(a *Angle) int { return a.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(Dihedrals, F.dihedrals, func(d *Dihedral) int { return d.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(Impropers, F.impropers, func(d *Dihedral) int { return d.ID }); err != nil {
		return err
	}
	atoms := make(map[int]int, len(F.atoms))
	for i, a := range F.atoms {
		atoms[a.ID] = i
	}
	for i, b := range F.bonds {
		if err := refsExist(Bonds, i, b.ID, b.Atoms[:], atoms); err != nil {
			return err
		}
	}
	for i, a := range F.angles {
		if err := refsExist(Angles, i, a.ID, a.Atoms[:], atoms); err != nil {
			return err
		}
	}
	for i, d := range F.dihedrals {
		if err := refsExist(Dihedrals, i, d.ID, d.Atoms[:], atoms); err != nil {
			return err
		}
	}
	for i, d := range F.impropers {
		if err := refsExist(Impropers, i, d.ID, d.Atoms[:], atoms); err != nil {
			return err
		}
	}
	return nil
}
