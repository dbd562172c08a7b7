/*
 * coords.go, part of molframe
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

import "gonum.org/v1/gonum/mat"

//compatibility with Gonum, so the coordinates can be handed to
//gonum-based geometry code without copying by hand.

// Coords returns a new NAtoms x 3 matrix with the positions of the atoms, in row order.
// Returns nil if there are no atoms.
func (F *Frame) Coords() *mat.Dense {
	n := len(F.atoms)
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, 3*n)
	for _, a := range F.atoms {
		data = append(data, a.Pos[:]...)
	}
	return mat.NewDense(n, 3, data)
}

// SetCoords replaces the positions of the atoms with the rows of c, which must
// be NAtoms x 3. The frame is not changed if the shape doesn't match.
func (F *Frame) SetCoords(c mat.Matrix) error {
	r, col := c.Dims()
	if r != len(F.atoms) || col != 3 {
		return newError(ErrSchema, "SetCoords", "%d x %d coordinates given for %d atoms", r, col, len(F.atoms))
	}
	for i := range F.atoms {
		for j := 0; j < 3; j++ {
			F.atoms[i].Pos[j] = c.At(i, j)
		}
	}
	return nil
}
