/*
 * merge.go, part of molframe
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

import "slices"

func concat[S ~[]E, E any](a, b S) S {
	r := make(S, 0, len(a)+len(b))
	r = append(r, a...)
	return append(r, b...)
}

// Merge returns a new frame with the rows of A followed by those of B, in each table.
// The box is taken from A (B's is discarded) and the type counts are added.
// Nothing is renumbered: if the IDs or types of B need to be kept apart from those
// of A, shift B before merging (see Offsets). Neither A nor B are modified.
// The attributes of both frames must be the same, otherwise an error is returned.
func Merge(A, B *Frame) (*Frame, error) {
	if A == nil || B == nil {
		return nil, newError(ErrConfigMismatch, "Merge", "nil frame given")
	}
	if !A.attrs.Equal(B.attrs) {
		return nil, newError(ErrConfigMismatch, "Merge", "attributes differ: %q vs %q", A.attrs, B.attrs)
	}
	t := &Tables{
		Present:   slices.Clone(A.attrs),
		Box:       A.box,
		Masses:    concat(A.masses, B.masses),
		Atoms:     concat(A.atoms, B.atoms),
		Bonds:     concat(A.bonds, B.bonds),
		Angles:    concat(A.angles, B.angles),
		Dihedrals: concat(A.dihedrals, B.dihedrals),
		Impropers: concat(A.impropers, B.impropers),
		Types:     A.types.Add(B.types),
	}
	C := New(A.attrs...)
	C.fill(t)
	return C, nil
}

// Merge returns the merge of the receiver and B. See the function Merge.
func (F *Frame) Merge(B *Frame) (*Frame, error) {
	C, err := Merge(F, B)
	if err != nil {
		return nil, errDecorate(err, "Frame.Merge")
	}
	return C, nil
}

// MergeAll merges the frames from left to right. The box of the result is
// that of the first frame.
func MergeAll(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, newError(ErrConfigMismatch, "MergeAll", "no frames given")
	}
	ret := frames[0].Copy()
	var err error
	for _, v := range frames[1:] {
		ret, err = Merge(ret, v)
		if err != nil {
			return nil, errDecorate(err, "MergeAll")
		}
	}
	return ret, nil
}

// Offsets contains the largest ID in each table of a frame, and its type counts.
// Shifting a second frame by these values before merging keeps all IDs unique
// and the types of both frames apart.
type Offsets struct {
	AtomID     int
	MolID      int
	BondID     int
	AngleID    int
	DihedralID int
	ImproperID int
	Types      TypeCounts
}

func maxID[S ~[]E, E any](s S, id func(*E) int) int {
	m := 0
	for i := range s {
		m = max(m, id(&s[i]))
	}
	return m
}

// Offsets returns the maximum IDs and the type counts of the frame.
func (F *Frame) Offsets() Offsets {
	return Offsets{
		AtomID:     maxID(F.atoms, func(a *Atom) int { return a.ID }),
		MolID:      maxID(F.atoms, func(a *Atom) int { return a.MolID }),
		BondID:     maxID(F.bonds, func(b *Bond) int { return b.ID }),
		AngleID:    maxID(F.angles, func(a *Angle) int { return a.ID }),
		DihedralID: maxID(F.dihedrals, func(d *Dihedral) int { return d.ID }),
		ImproperID: maxID(F.impropers, func(d *Dihedral) int { return d.ID }),
		Types:      F.types,
	}
}

// ApplyOffsets shifts every ID and type of the receiver by the values in o.
func (F *Frame) ApplyOffsets(o Offsets) {
	F.ShiftAtomIDs(o.AtomID)
	F.ShiftMolIDs(o.MolID)
	F.ShiftBondIDs(o.BondID)
	F.ShiftAngleIDs(o.AngleID)
	F.ShiftDihedralIDs(o.DihedralID)
	F.ShiftImproperIDs(o.ImproperID)
	F.ShiftAtomTypes(o.Types.Atom)
	F.ShiftBondTypes(o.Types.Bond)
	F.ShiftAngleTypes(o.Types.Angle)
	F.ShiftDihedralTypes(o.Types.Dihedral)
	F.ShiftImproperTypes(o.Types.Improper)
}
