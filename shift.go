/*
 * shift.go, part of molframe
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

// intFielder is a pointer to a row whose integer columns can be addressed by index.
type intFielder[R any] interface {
	*R
	intField(col int) *int
}

func shiftRows[R any, P intFielder[R]](rows []R, start, end, offset int) {
	for i := range rows {
		p := P(&rows[i])
		for c := start; c < end; c++ {
			*p.intField(c) += offset
		}
	}
}

// ShiftColumns adds offset to the columns start to end-1 of every row in table t.
// The column numbers follow the row layouts given by Columns. It returns an error, and
// changes nothing, if the table is not in the frame, the range is empty or falls
// outside the row, or any column in the range is not an integer.
func (F *Frame) ShiftColumns(t Table, start, end, offset int) error {
	if err := F.mustHave(t, "ShiftColumns"); err != nil {
		return err
	}
	width := len(columns[t])
	if start < 0 || end > width || start >= end {
		return newError(ErrSchema, "ShiftColumns", "invalid column range [%d,%d) for table %s with %d columns", start, end, t, width)
	}
	for c := start; c < end; c++ {
		if !intColumn(t, c) {
			return newError(ErrSchema, "ShiftColumns", "column %d (%s) of table %s is not an integer column", c, columns[t][c], t)
		}
	}
	if offset == 0 {
		return nil
	}
	switch t {
	case Masses:
		shiftRows(F.masses, start, end, offset)
	case Atoms:
		shiftRows(F.atoms, start, end, offset)
	case Bonds:
		shiftRows(F.bonds, start, end, offset)
	case Angles:
		shiftRows(F.angles, start, end, offset)
	case Dihedrals:
		shiftRows(F.dihedrals, start, end, offset)
	case Impropers:
		shiftRows(F.impropers, start, end, offset)
	case Types:
		tc := []TypeCounts{F.types}
		shiftRows(tc, start, end, offset)
		F.types = tc[0]
	}
	return nil
}

// shift is used by the named shifts, which always give valid ranges, and skip
// the tables that are not in the frame.
func (F *Frame) shift(t Table, start, end, offset int) {
	if !F.Has(t) {
		return
	}
	if err := F.ShiftColumns(t, start, end, offset); err != nil {
		panic(err.Error()) //can't happen with the ranges used in this file
	}
}

// ShiftAtomIDs adds offset to the ID of every atom, and to every reference to an atom
// in the Bonds, Angles, Dihedrals and Impropers tables.
func (F *Frame) ShiftAtomIDs(offset int) {
	F.shift(Atoms, 0, 1, offset)
	F.shift(Bonds, 2, 4, offset)
	F.shift(Angles, 2, 5, offset)
	F.shift(Dihedrals, 2, 6, offset)
	F.shift(Impropers, 2, 6, offset)
}

// ShiftBondIDs adds offset to the ID of every bond.
func (F *Frame) ShiftBondIDs(offset int) { F.shift(Bonds, 0, 1, offset) }

// ShiftAngleIDs adds offset to the ID of every angle.
func (F *Frame) ShiftAngleIDs(offset int) { F.shift(Angles, 0, 1, offset) }

// ShiftDihedralIDs adds offset to the ID of every dihedral.
func (F *Frame) ShiftDihedralIDs(offset int) { F.shift(Dihedrals, 0, 1, offset) }

// ShiftImproperIDs adds offset to the ID of every improper.
func (F *Frame) ShiftImproperIDs(offset int) { F.shift(Impropers, 0, 1, offset) }

// ShiftMolIDs adds offset to the molecule ID of every atom.
func (F *Frame) ShiftMolIDs(offset int) { F.shift(Atoms, 1, 2, offset) }

// ShiftAtomTypes adds offset to the type of every atom and to the types in
// the Masses table, so the type-mass mapping is kept.
func (F *Frame) ShiftAtomTypes(offset int) {
	F.shift(Atoms, 2, 3, offset)
	F.shift(Masses, 0, 1, offset)
}

// The type shifts for the bonded terms act only on the type column of their own table.

func (F *Frame) ShiftBondTypes(offset int)     { F.shift(Bonds, 1, 2, offset) }
func (F *Frame) ShiftAngleTypes(offset int)    { F.shift(Angles, 1, 2, offset) }
func (F *Frame) ShiftDihedralTypes(offset int) { F.shift(Dihedrals, 1, 2, offset) }
func (F *Frame) ShiftImproperTypes(offset int) { F.shift(Impropers, 1, 2, offset) }

// MoveAtoms translates every atom by d. If applyToBox is true the box limits
// are moved by the same amount, so the box lengths don't change.
func (F *Frame) MoveAtoms(d [3]float64, applyToBox bool) {
	for i := range F.atoms {
		for j := 0; j < 3; j++ {
			F.atoms[i].Pos[j] += d[j]
		}
	}
	if applyToBox && F.Has(Box) {
		for j := 0; j < 3; j++ {
			F.box[j].Lo += d[j]
			F.box[j].Hi += d[j]
		}
	}
}
