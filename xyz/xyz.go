/*
 * xyz.go, part of molframe
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

// Package xyz reads and writes (multi-)XYZ files as molframe tables.
//
// XYZ files carry only element symbols and positions, so the atoms read get
// IDs and molecule IDs 1, 2, 3... in file order, type 0 and charge 0, and the
// symbol as label.
package xyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rmera/molframe"
	"github.com/rmera/molframe/internal/zio"
)

// Comment is written in the second line of every frame.
const Comment = "Generated by molframe"

// ErrNoFrame is returned when the requested frame is not in the file.
var ErrNoFrame = errors.New("xyz: frame not in file")

// readSnap reads one frame from r. It returns io.EOF if there are no frames left.
func readSnap(r *bufio.Reader, nframe int) ([]molframe.Atom, error) {
	var line string
	var err error
	for line == "" {
		line, err = r.ReadString('\n')
		if err == io.EOF && strings.TrimSpace(line) == "" {
			return nil, io.EOF
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("frame %d: %w", nframe, err)
		}
		line = strings.TrimSpace(line)
	}
	natoms, err := strconv.Atoi(line)
	if err != nil || natoms < 0 {
		return nil, fmt.Errorf("frame %d: ill-formatted atom count %q: %w", nframe, line, molframe.ErrSchema)
	}
	if _, err = r.ReadString('\n'); err != nil { //we don't care about the comment
		return nil, fmt.Errorf("frame %d: missing comment line: %w", nframe, molframe.ErrSchema)
	}
	atoms := make([]molframe.Atom, natoms)
	for i := 0; i < natoms; i++ {
		line, err = r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("frame %d, atom %d: %w", nframe, i+1, err)
		}
		if err == io.EOF && line == "" {
			return nil, fmt.Errorf("frame %d: file ends after %d of %d atoms: %w", nframe, i, natoms, molframe.ErrSchema)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("frame %d: line %d of the frame is ill formed: %w", nframe, i+3, molframe.ErrSchema)
		}
		a := &atoms[i]
		a.ID, a.MolID = i+1, i+1
		a.Label = fields[0]
		for j := 0; j < 3; j++ {
			a.Pos[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("frame %d: atom %d: %w (%w)", nframe, i+1, molframe.ErrSchema, err)
			}
		}
	}
	return atoms, nil
}

// ReadFrom reads the given frame (0-based) from r. A negative frame selects the last one.
// The tables returned contain only Atoms.
func ReadFrom(r io.Reader, frame int) (*molframe.Tables, error) {
	br := bufio.NewReader(r)
	var atoms []molframe.Atom
	read := 0
	for ; frame < 0 || read <= frame; read++ {
		a, err := readSnap(br, read)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xyz: %w", err)
		}
		atoms = a
	}
	if read == 0 || (frame >= 0 && read <= frame) {
		return nil, fmt.Errorf("%w: asked for frame %d, %d found", ErrNoFrame, frame, read)
	}
	return &molframe.Tables{Present: molframe.Attributes{molframe.Atoms}, Atoms: atoms}, nil
}

// Read reads the given frame from the XYZ file name. A negative frame selects the last one.
func Read(name string, frame int) (*molframe.Tables, error) {
	f, err := zio.Open(name)
	if err != nil {
		return nil, fmt.Errorf("xyz: can't open %s: %w", name, err)
	}
	defer f.Close()
	t, err := ReadFrom(f, frame)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return t, nil
}

// WriteTo writes the atoms of F to w as one XYZ frame. Atoms without a label
// are written as "X".
func WriteTo(w io.Writer, F *molframe.Frame) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "%d\n%s\n", F.NAtoms(), Comment)
	for _, a := range F.Atoms() {
		s := a.Label
		if s == "" {
			s = "X"
		}
		fmt.Fprintf(b, "%s %f %f %f\n", s, a.Pos[0], a.Pos[1], a.Pos[2])
	}
	return b.Flush()
}

// Write writes the atoms of F to the file name, which is replaced if it exists.
// A name ending in .gz or .zst gives a compressed file.
func Write(name string, F *molframe.Frame) error {
	w, err := zio.Create(name)
	if err != nil {
		return fmt.Errorf("xyz: can't create %s: %w", name, err)
	}
	if err := WriteTo(w, F); err != nil {
		w.Close()
		return fmt.Errorf("xyz: writing %s: %w", name, err)
	}
	return w.Close()
}

// File implements molframe.TableReader and molframe.TableWriter for XYZ files.
// If Typed is true, and Masses and Types are among the attributes requested,
// atoms are given types from their labels (see TypesFromLabels).
type File struct {
	Typed bool
}

// Read reads the first frame given (the last one of the file, if none is given).
// attrs must include Atoms, the only table an XYZ file provides.
func (X File) Read(name string, attrs molframe.Attributes, frame ...int) (*molframe.Tables, error) {
	if len(attrs) == 0 {
		attrs = molframe.DefaultAttributes()
	}
	if !attrs.Has(molframe.Atoms) {
		return nil, fmt.Errorf("xyz: %w: the attributes (%s) don't include Atoms", molframe.ErrConfigMismatch, attrs)
	}
	fr := -1
	if len(frame) > 0 {
		fr = frame[0]
	}
	t, err := Read(name, fr)
	if err != nil {
		return nil, err
	}
	if X.Typed && attrs.Has(molframe.Masses) && attrs.Has(molframe.Types) {
		if err := TypesFromLabels(t); err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}
	return t, nil
}

// Write writes the atoms of F to the file name.
func (X File) Write(name string, F *molframe.Frame) error {
	return Write(name, F)
}
