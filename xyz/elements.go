/*
 * elements.go, part of molframe
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

package xyz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rmera/molframe"
)

// Standard atomic weights (IUPAC, abridged), for the elements usually found in
// simulation systems.
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.0026,
	"Li": 6.94,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.948,
	"K":  39.098,
	"Ca": 40.078,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Se": 78.971,
	"Br": 79.904,
	"I":  126.90,
}

// Mass returns the atomic weight of the element symbol, and false if the
// element is not known. The symbol is case-insensitive ("CL" is "Cl").
func Mass(symbol string) (float64, bool) {
	m, ok := symbolMass[normalize(symbol)]
	return m, ok
}

// normalize returns the symbol with the first letter in upper case, and the rest in lower case.
func normalize(symbol string) string {
	s := strings.ToLower(strings.TrimSpace(symbol))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TypesFromLabels gives every atom in t an atom type according to its label (element
// symbol, in any letter case): 1 for the first element found, 2 for the next new one, and so on. It sets
// the Masses table and the number of atom types accordingly, and adds both tables
// to t.Present. It fails, without changing t, if a label is not a known element.
func TypesFromLabels(t *molframe.Tables) error {
	types := make(map[string]int)
	var masses []molframe.Mass
	for _, a := range t.Atoms {
		symbol := normalize(a.Label)
		if _, ok := types[symbol]; ok {
			continue
		}
		m, ok := symbolMass[symbol]
		if !ok {
			return fmt.Errorf("xyz: %w: atom %d has label %q, not a known element", molframe.ErrSchema, a.ID, a.Label)
		}
		types[symbol] = len(masses) + 1
		masses = append(masses, molframe.Mass{Type: len(masses) + 1, Value: m})
	}
	for i := range t.Atoms {
		t.Atoms[i].Type = types[normalize(t.Atoms[i].Label)]
	}
	t.Masses = masses
	t.Types.Atom = len(masses)
	for _, v := range []molframe.Table{molframe.Masses, molframe.Types} {
		if !slices.Contains(t.Present, v) {
			t.Present = append(t.Present, v)
		}
	}
	return nil
}
