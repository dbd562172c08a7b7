/*
 * water.go, part of molframe
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

import "strings"

// WaterOptions contains the options for ApplyTIP3P.
type WaterOptions struct {
	startMolID int
	strict     bool
	hType      int
}

// DefaultWaterOptions returns a WaterOptions with the default options:
// molecule IDs start after 0, strict checking on, hydrogen type not checked.
func DefaultWaterOptions() *WaterOptions {
	ret := new(WaterOptions)
	ret.startMolID = 0
	ret.strict = true
	ret.hType = 0
	return ret
}

// StartMolID returns the seed for the molecule ID counter and sets it, if a value is given.
// The first water gets StartMolID+1.
func (W *WaterOptions) StartMolID(id ...int) int {
	ret := W.startMolID
	if len(id) > 0 {
		W.startMolID = id[0]
	}
	return ret
}

// Strict returns whether the two atoms following each oxygen are checked to be
// hydrogens, and sets it, if a value is given.
func (W *WaterOptions) Strict(strict ...bool) bool {
	ret := W.strict
	if len(strict) > 0 {
		W.strict = strict[0]
	}
	return ret
}

// HydrogenType returns the atom type expected for water hydrogens (0 means "don't check")
// and sets it, if a valid value is given.
func (W *WaterOptions) HydrogenType(t ...int) int {
	ret := W.hType
	if len(t) > 0 && t[0] >= 0 {
		W.hType = t[0]
	}
	return ret
}

// checkWaters returns the row indexes of the water oxygens, or an error
// if one of them is not followed by two hydrogens.
func (F *Frame) checkWaters(oxygenType int, o *WaterOptions) ([]int, error) {
	n := len(F.atoms)
	oxygens := make([]int, 0, n/3)
	for i := 0; i < n; i++ {
		if F.atoms[i].Type != oxygenType {
			continue
		}
		if i+2 >= n {
			return nil, newError(ErrStructure, "ApplyTIP3P", "oxygen atom %d (row %d) has no room for two hydrogens after it", F.atoms[i].ID, i)
		}
		if o.Strict() {
			for _, j := range []int{i + 1, i + 2} {
				h := F.atoms[j]
				if h.Type == oxygenType {
					return nil, newError(ErrStructure, "ApplyTIP3P", "atom %d (row %d) should be a hydrogen of the water starting at atom %d, but it has the oxygen type", h.ID, j, F.atoms[i].ID)
				}
				if ht := o.HydrogenType(); ht != 0 && h.Type != ht {
					return nil, newError(ErrStructure, "ApplyTIP3P", "atom %d (row %d) has type %d, expected hydrogen type %d", h.ID, j, h.Type, ht)
				}
				if h.Label != "" && !strings.HasPrefix(strings.ToUpper(h.Label), "H") {
					return nil, newError(ErrStructure, "ApplyTIP3P", "atom %d (row %d) is labeled %q, expected a hydrogen", h.ID, j, h.Label)
				}
			}
		}
		oxygens = append(oxygens, i)
	}
	return oxygens, nil
}

// ApplyTIP3P adds the bonds and angles of the water molecules in the frame, and gives
// each water a new molecule ID. Waters are recognized by the oxygenType atom type,
// and each water oxygen must be immediately followed, in the Atoms table, by its two
// hydrogens. One new bond type and one new angle type are added, and used for all the
// new bonds (O-H) and angles (H-O-H). The new rows get IDs after the largest IDs
// already present.
// The frame is checked before anything is changed, so on error it's left as it was.
// Returns the number of water molecules found.
func (F *Frame) ApplyTIP3P(oxygenType int, options ...*WaterOptions) (int, error) {
	o := DefaultWaterOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	for _, t := range []Table{Atoms, Bonds, Angles, Types} {
		if err := F.mustHave(t, "ApplyTIP3P"); err != nil {
			return 0, err
		}
	}
	oxygens, err := F.checkWaters(oxygenType, o)
	if err != nil {
		return 0, err
	}
	F.types.Bond++
	F.types.Angle++
	btype := F.types.Bond
	antype := F.types.Angle
	off := F.Offsets()
	nextBond := off.BondID + 1
	nextAngle := off.AngleID + 1
	mid := o.StartMolID()
	for _, n := range oxygens {
		mid++
		for i := 0; i < 3; i++ {
			F.atoms[n+i].MolID = mid
		}
		O := F.atoms[n].ID
		H1 := F.atoms[n+1].ID
		H2 := F.atoms[n+2].ID
		F.bonds = append(F.bonds,
			Bond{ID: nextBond, Type: btype, Atoms: [2]int{O, H1}},
			Bond{ID: nextBond + 1, Type: btype, Atoms: [2]int{O, H2}})
		nextBond += 2
		F.angles = append(F.angles, Angle{ID: nextAngle, Type: antype, Atoms: [3]int{H1, O, H2}})
		nextAngle++
	}
	return len(oxygens), nil
}
