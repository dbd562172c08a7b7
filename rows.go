/*
 * rows.go, part of molframe
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

// Bounds is one row of the box: the low and high limits along an axis.
type Bounds struct {
	Lo float64
	Hi float64
}

// Len returns Hi-Lo
func (B Bounds) Len() float64 { return B.Hi - B.Lo }

// Mass maps an atom type to its mass.
type Mass struct {
	Type  int
	Value float64
}

func (M *Mass) intField(col int) *int {
	if col == 0 {
		return &M.Type
	}
	return nil
}

// Atom is one row of the Atoms table.
type Atom struct {
	ID     int
	MolID  int
	Type   int
	Charge float64
	Pos    [3]float64
	Image  [3]int //periodic image flags
	Label  string //usually the element symbol, may be empty
}

func (A *Atom) intField(col int) *int {
	switch col {
	case 0:
		return &A.ID
	case 1:
		return &A.MolID
	case 2:
		return &A.Type
	case 7, 8, 9:
		return &A.Image[col-7]
	}
	return nil
}

// Bond joins 2 atoms, given by their IDs.
type Bond struct {
	ID    int
	Type  int
	Atoms [2]int
}

func (B *Bond) intField(col int) *int {
	switch {
	case col == 0:
		return &B.ID
	case col == 1:
		return &B.Type
	case col >= 2 && col < 4:
		return &B.Atoms[col-2]
	}
	return nil
}

// Angle is defined by 3 atom IDs, the vertex is the middle one.
type Angle struct {
	ID    int
	Type  int
	Atoms [3]int
}

func (A *Angle) intField(col int) *int {
	switch {
	case col == 0:
		return &A.ID
	case col == 1:
		return &A.Type
	case col >= 2 && col < 5:
		return &A.Atoms[col-2]
	}
	return nil
}

// Dihedral is defined by 4 atom IDs. Impropers use the same row layout.
type Dihedral struct {
	ID    int
	Type  int
	Atoms [4]int
}

func (D *Dihedral) intField(col int) *int {
	switch {
	case col == 0:
		return &D.ID
	case col == 1:
		return &D.Type
	case col >= 2 && col < 6:
		return &D.Atoms[col-2]
	}
	return nil
}

// TypeCounts holds the number of types of each kind in a frame.
type TypeCounts struct {
	Atom     int
	Bond     int
	Angle    int
	Dihedral int
	Improper int
}

func (T *TypeCounts) intField(col int) *int {
	switch col {
	case 0:
		return &T.Atom
	case 1:
		return &T.Bond
	case 2:
		return &T.Angle
	case 3:
		return &T.Dihedral
	case 4:
		return &T.Improper
	}
	return nil
}

// Slots returns the counts as a vector, in the order atom, bond, angle, dihedral, improper.
func (T TypeCounts) Slots() [5]int {
	return [5]int{T.Atom, T.Bond, T.Angle, T.Dihedral, T.Improper}
}

// Add returns the element-wise sum of T and O.
func (T TypeCounts) Add(O TypeCounts) TypeCounts {
	return TypeCounts{
		Atom:     T.Atom + O.Atom,
		Bond:     T.Bond + O.Bond,
		Angle:    T.Angle + O.Angle,
		Dihedral: T.Dihedral + O.Dihedral,
		Improper: T.Improper + O.Improper,
	}
}

// Kind selects one of the type counters.
type Kind int

const (
	AtomType Kind = iota
	BondType
	AngleType
	DihedralType
	ImproperType
)

// Columns returns the names of the fields in a row of table t, in order.
// Returns nil for an unknown table.
func Columns(t Table) []string {
	c := columns[t]
	if c == nil {
		return nil
	}
	r := make([]string, len(c))
	copy(r, c)
	return r
}

var columns = map[Table][]string{
	Box:       {"lo", "hi"},
	Masses:    {"type", "mass"},
	Atoms:     {"id", "mol", "type", "charge", "x", "y", "z", "ix", "iy", "iz", "label"},
	Bonds:     {"id", "type", "atom1", "atom2"},
	Angles:    {"id", "type", "atom1", "atom2", "atom3"},
	Dihedrals: {"id", "type", "atom1", "atom2", "atom3", "atom4"},
	Impropers: {"id", "type", "atom1", "atom2", "atom3", "atom4"},
	Types:     {"atom types", "bond types", "angle types", "dihedral types", "improper types"},
}

// intColumn tells whether column col of table t holds an integer.
func intColumn(t Table, col int) bool {
	switch t {
	case Masses:
		return (&Mass{}).intField(col) != nil
	case Atoms:
		return (&Atom{}).intField(col) != nil
	case Bonds:
		return (&Bond{}).intField(col) != nil
	case Angles:
		return (&Angle{}).intField(col) != nil
	case Dihedrals, Impropers:
		return (&Dihedral{}).intField(col) != nil
	case Types:
		return (&TypeCounts{}).intField(col) != nil
	}
	return false //the box has only floats
}
