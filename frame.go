/*
 * frame.go, part of molframe
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

import (
	"fmt"
	"slices"
	"strings"
)

/**Note: Some accessors here panic instead of returning errors (a wrong axis,
 * an out-of-range row). If that happens, the calling program is wrong and should crash.
 * Anything that depends on the data itself returns an error.**/

// Frame is one complete structure snapshot: the box, the masses, the atoms and
// the bonded terms, plus the number of types of each kind.
// Only the tables given at creation are materialized.
// A Frame is not safe for concurrent use. It should have one owner, or be
// synchronized externally.
type Frame struct {
	attrs     Attributes
	box       [3]Bounds
	masses    []Mass
	atoms     []Atom
	bonds     []Bond
	angles    []Angle
	dihedrals []Dihedral
	impropers []Dihedral
	types     TypeCounts
}

// New returns an empty frame with the tables in attrs. If nothing is given
// all the tables are used.
func New(attrs ...Table) *Frame {
	F := new(Frame)
	if len(attrs) == 0 {
		F.attrs = DefaultAttributes()
	} else {
		F.attrs = slices.Clone(attrs)
	}
	F.Reset()
	return F
}

// FromTables returns a new frame with the given attributes and its own copy of the data in t.
func FromTables(attrs Attributes, t *Tables) (*Frame, error) {
	F := New(attrs...)
	if err := F.Load(t); err != nil {
		return nil, errDecorate(err, "FromTables")
	}
	return F, nil
}

// Reset empties every configured table.
func (F *Frame) Reset() {
	F.box = [3]Bounds{}
	F.masses = []Mass{}
	F.atoms = []Atom{}
	F.bonds = []Bond{}
	F.angles = []Angle{}
	F.dihedrals = []Dihedral{}
	F.impropers = []Dihedral{}
	F.types = TypeCounts{}
}

// Load replaces the contents of the frame with a copy of t, which is usually
// produced by a format reader. It fails, without touching the frame, if t has
// tables the frame doesn't have, or if the loaded data is not consistent.
func (F *Frame) Load(t *Tables) error {
	if t == nil {
		return newError(ErrSchema, "Load", "nil tables given")
	}
	for _, v := range t.Present {
		if !F.Has(v) {
			return newError(ErrConfigMismatch, "Load", "table %s is not in the frame attributes (%s)", v, F.attrs)
		}
	}
	N := New(F.attrs...)
	N.fill(t.Copy())
	if err := N.Corrupted(); err != nil {
		return errDecorate(err, "Load")
	}
	*F = *N
	return nil
}

// fill sets the configured tables from t, without copying.
func (F *Frame) fill(t *Tables) {
	has := func(x Table) bool { return F.Has(x) && (t.Present == nil || t.Present.Has(x)) }
	if has(Box) {
		F.box = t.Box
	}
	if has(Masses) && t.Masses != nil {
		F.masses = t.Masses
	}
	if has(Atoms) && t.Atoms != nil {
		F.atoms = t.Atoms
	}
	if has(Bonds) && t.Bonds != nil {
		F.bonds = t.Bonds
	}
	if has(Angles) && t.Angles != nil {
		F.angles = t.Angles
	}
	if has(Dihedrals) && t.Dihedrals != nil {
		F.dihedrals = t.Dihedrals
	}
	if has(Impropers) && t.Impropers != nil {
		F.impropers = t.Impropers
	}
	if has(Types) {
		F.types = t.Types
	}
}

// Tables returns a copy of the contents of the frame, for writers.
func (F *Frame) Tables() *Tables {
	t := &Tables{
		Present:   slices.Clone(F.attrs),
		Box:       F.box,
		Masses:    F.masses,
		Atoms:     F.atoms,
		Bonds:     F.bonds,
		Angles:    F.angles,
		Dihedrals: F.dihedrals,
		Impropers: F.impropers,
		Types:     F.types,
	}
	return t.Copy()
}

// Copy returns a deep copy of the frame.
func (F *Frame) Copy() *Frame {
	N := New(F.attrs...)
	N.fill(F.Tables())
	return N
}

// Attributes returns the tables configured in the frame.
func (F *Frame) Attributes() Attributes {
	return slices.Clone(F.attrs)
}

// Has returns true if the frame materializes the table t.
func (F *Frame) Has(t Table) bool {
	return F.attrs.Has(t)
}

// Count returns the number of rows in the table t. The box always has 3 rows
// and Types has 5. Tables not in the frame have 0 rows.
func (F *Frame) Count(t Table) int {
	if !F.Has(t) {
		return 0
	}
	switch t {
	case Box:
		return len(F.box)
	case Masses:
		return len(F.masses)
	case Atoms:
		return len(F.atoms)
	case Bonds:
		return len(F.bonds)
	case Angles:
		return len(F.angles)
	case Dihedrals:
		return len(F.dihedrals)
	case Impropers:
		return len(F.impropers)
	case Types:
		return len(F.types.Slots())
	}
	return 0
}

func (F *Frame) NAtoms() int     { return F.Count(Atoms) }
func (F *Frame) NBonds() int     { return F.Count(Bonds) }
func (F *Frame) NAngles() int    { return F.Count(Angles) }
func (F *Frame) NDihedrals() int { return F.Count(Dihedrals) }
func (F *Frame) NImpropers() int { return F.Count(Impropers) }

// BoxLength returns the length of the box along the axis (0, 1 or 2 for x, y, z).
// Panics if the axis is invalid.
func (F *Frame) BoxLength(axis int) float64 {
	if axis < 0 || axis > 2 {
		panic(ErrBadAxis)
	}
	return F.box[axis].Len()
}

// Box returns the lengths of the box along x, y and z.
func (F *Frame) Box() [3]float64 {
	return [3]float64{F.BoxLength(0), F.BoxLength(1), F.BoxLength(2)}
}

// BoxBounds returns the low and high limits of the box on each axis.
func (F *Frame) BoxBounds() [3]Bounds {
	return F.box
}

// SetBox sets the box limits.
func (F *Frame) SetBox(b [3]Bounds) error {
	if !F.Has(Box) {
		return newError(ErrConfigMismatch, "SetBox", "the frame has no Box table")
	}
	F.box = b
	return nil
}

// TypeCount returns the number of types of the given kind.
func (F *Frame) TypeCount(k Kind) int {
	s := F.types.Slots()
	if k < AtomType || int(k) >= len(s) {
		panic(ErrUnknownTypeKey)
	}
	return s[k]
}

// Types returns the type counters.
func (F *Frame) Types() TypeCounts {
	return F.types
}

// SetTypes replaces the type counters.
func (F *Frame) SetTypes(t TypeCounts) error {
	if !F.Has(Types) {
		return newError(ErrConfigMismatch, "SetTypes", "the frame has no Types table")
	}
	F.types = t
	return nil
}

// Atom returns a copy of the i-th (0-based) row of the Atoms table. Panics if out of range.
func (F *Frame) Atom(i int) Atom {
	if i < 0 || i >= len(F.atoms) {
		panic(ErrRowOutOfRange)
	}
	return F.atoms[i]
}

// The following return copies of the tables, in row order.

func (F *Frame) Masses() []Mass        { return slices.Clone(F.masses) }
func (F *Frame) Atoms() []Atom         { return slices.Clone(F.atoms) }
func (F *Frame) Bonds() []Bond         { return slices.Clone(F.bonds) }
func (F *Frame) Angles() []Angle       { return slices.Clone(F.angles) }
func (F *Frame) Dihedrals() []Dihedral { return slices.Clone(F.dihedrals) }
func (F *Frame) Impropers() []Dihedral { return slices.Clone(F.impropers) }

func (F *Frame) mustHave(t Table, caller string) error {
	if !F.Has(t) {
		return newError(ErrConfigMismatch, caller, "the frame has no %s table", t)
	}
	return nil
}

// AddMasses appends rows to the Masses table.
func (F *Frame) AddMasses(m ...Mass) error {
	if err := F.mustHave(Masses, "AddMasses"); err != nil {
		return err
	}
	F.masses = append(F.masses, m...)
	return nil
}

// AddAtoms appends rows to the Atoms table. Uniqueness of the IDs is not checked,
// use Corrupted for that.
func (F *Frame) AddAtoms(a ...Atom) error {
	if err := F.mustHave(Atoms, "AddAtoms"); err != nil {
		return err
	}
	F.atoms = append(F.atoms, a...)
	return nil
}

// AddBonds appends rows to the Bonds table.
func (F *Frame) AddBonds(b ...Bond) error {
	if err := F.mustHave(Bonds, "AddBonds"); err != nil {
		return err
	}
	F.bonds = append(F.bonds, b...)
	return nil
}

// AddAngles appends rows to the Angles table.
func (F *Frame) AddAngles(a ...Angle) error {
	if err := F.mustHave(Angles, "AddAngles"); err != nil {
		return err
	}
	F.angles = append(F.angles, a...)
	return nil
}

// AddDihedrals appends rows to the Dihedrals table.
func (F *Frame) AddDihedrals(d ...Dihedral) error {
	if err := F.mustHave(Dihedrals, "AddDihedrals"); err != nil {
		return err
	}
	F.dihedrals = append(F.dihedrals, d...)
	return nil
}

// AddImpropers appends rows to the Impropers table.
func (F *Frame) AddImpropers(d ...Dihedral) error {
	if err := F.mustHave(Impropers, "AddImpropers"); err != nil {
		return err
	}
	F.impropers = append(F.impropers, d...)
	return nil
}

// String returns a short summary, with the number of rows in each table.
func (F *Frame) String() string {
	var b strings.Builder
	b.WriteString("Molecular Frame\n---------------\n")
	for _, v := range F.attrs {
		fmt.Fprintf(&b, "%d %s\n", F.Count(v), v)
	}
	return b.String()
}
