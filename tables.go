/*
 * tables.go, part of molframe
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
	"slices"
	"strings"
)

// Table is the name of one of the tables in a frame.
type Table string

const (
	Box       Table = "Box"
	Masses    Table = "Masses"
	Atoms     Table = "Atoms"
	Bonds     Table = "Bonds"
	Angles    Table = "Angles"
	Dihedrals Table = "Dihedrals"
	Impropers Table = "Impropers"
	Types     Table = "Types"
)

var allTables = []Table{Box, Masses, Atoms, Bonds, Angles, Dihedrals, Impropers, Types}

// Attributes is the ordered list of tables a frame materializes.
type Attributes []Table

// DefaultAttributes returns every table, in the canonical order.
func DefaultAttributes() Attributes {
	return slices.Clone(allTables)
}

// ParseAttributes reads a whitespace-separated list of table names,
// like "Box Masses Atoms Bonds". An empty string gives the default attributes.
func ParseAttributes(s string) (Attributes, error) {
	f := strings.Fields(s)
	if len(f) == 0 {
		return DefaultAttributes(), nil
	}
	ret := make(Attributes, 0, len(f))
	for _, v := range f {
		t := Table(v)
		if !slices.Contains(allTables, t) {
			return nil, newError(ErrConfigMismatch, "ParseAttributes", "unknown table %q", v)
		}
		if slices.Contains(ret, t) {
			return nil, newError(ErrConfigMismatch, "ParseAttributes", "table %q given twice", v)
		}
		ret = append(ret, t)
	}
	return ret, nil
}

// Has returns true if t is in the list.
func (A Attributes) Has(t Table) bool {
	return slices.Contains(A, t)
}

// Equal returns true if both lists contain the same tables in the same order.
func (A Attributes) Equal(B Attributes) bool {
	return slices.Equal(A, B)
}

func (A Attributes) String() string {
	s := make([]string, len(A))
	for i, v := range A {
		s[i] = string(v)
	}
	return strings.Join(s, " ")
}

// Tables is the table mapping exchanged with format readers and writers.
// Present lists the tables that the producer actually filled. A nil slice
// for a present table just means the table is empty.
type Tables struct {
	Present   Attributes
	Box       [3]Bounds
	Masses    []Mass
	Atoms     []Atom
	Bonds     []Bond
	Angles    []Angle
	Dihedrals []Dihedral
	Impropers []Dihedral
	Types     TypeCounts
}

// Copy returns a deep copy of the mapping.
func (T *Tables) Copy() *Tables {
	r := new(Tables)
	r.Present = slices.Clone(T.Present)
	r.Box = T.Box
	r.Masses = slices.Clone(T.Masses)
	r.Atoms = slices.Clone(T.Atoms)
	r.Bonds = slices.Clone(T.Bonds)
	r.Angles = slices.Clone(T.Angles)
	r.Dihedrals = slices.Clone(T.Dihedrals)
	r.Impropers = slices.Clone(T.Impropers)
	r.Types = T.Types
	return r
}
