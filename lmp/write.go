/*
 * write.go, part of molframe
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

package lmp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rmera/molframe"
	"github.com/rmera/molframe/internal/zio"
)

// DefaultTitle is the first line of the files written by this package.
const DefaultTitle = "LAMMPS data file, generated by molframe"

var sf = fmt.Sprintf

// Data implements molframe.TableReader and molframe.TableWriter for LAMMPS
// data files. Title is written as the first line of the file (DefaultTitle
// if empty). After a Read, it contains the title of the file read.
type Data struct {
	Title string
}

// Read reads the file name. LAMMPS data files have only one frame, so frame is ignored.
func (D *Data) Read(name string, attrs molframe.Attributes, frame ...int) (*molframe.Tables, error) {
	f, err := zio.Open(name)
	if err != nil {
		return nil, newError(molframe.ErrSchema, name, "Data.Read", "can't open file: %s", err)
	}
	defer f.Close()
	t, title, err := readFrom(f, attrs)
	if err != nil {
		return nil, errDecorate(err, "Data.Read", name)
	}
	D.Title = title
	return t, nil
}

// Write writes F to the file name.
func (D *Data) Write(name string, F *molframe.Frame) error {
	return write(name, F, D.Title)
}

// Write writes the frame F to the file name, as a LAMMPS data file.
// If the name ends in .gz or .zst, the file is compressed.
func Write(name string, F *molframe.Frame) error {
	return write(name, F, DefaultTitle)
}

func write(name string, F *molframe.Frame, title string) error {
	w, err := zio.Create(name)
	if err != nil {
		return newError(molframe.ErrSchema, name, "Write", "can't create file: %s", err)
	}
	if err = writeTo(w, F, title); err != nil {
		w.Close()
		return errDecorate(err, "Write", name)
	}
	if err = w.Close(); err != nil {
		return newError(molframe.ErrSchema, name, "Write", "can't close file: %s", err)
	}
	return nil
}

// WriteTo writes F to w, as a LAMMPS data file. Only the tables configured in
// F are written, and empty sections are left out.
func WriteTo(w io.Writer, F *molframe.Frame) error {
	return writeTo(w, F, DefaultTitle)
}

func writeTo(w io.Writer, F *molframe.Frame, title string) error {
	if title == "" {
		title = DefaultTitle
	}
	b := bufio.NewWriter(w)
	b.WriteString(title + "\n\n")
	counts := []struct {
		t    molframe.Table
		name string
	}{
		{molframe.Atoms, "atoms"},
		{molframe.Bonds, "bonds"},
		{molframe.Angles, "angles"},
		{molframe.Dihedrals, "dihedrals"},
		{molframe.Impropers, "impropers"},
	}
	for _, c := range counts {
		if F.Has(c.t) {
			b.WriteString(sf("%d %s\n", F.Count(c.t), c.name))
		}
	}
	if F.Has(molframe.Types) {
		t := F.Types()
		b.WriteString(sf("%d atom types\n%d bond types\n%d angle types\n%d dihedral types\n%d improper types\n",
			t.Atom, t.Bond, t.Angle, t.Dihedral, t.Improper))
	}
	if F.Has(molframe.Box) {
		b.WriteString("\n")
		for i, v := range F.BoxBounds() {
			ax := "xyz"[i : i+1]
			b.WriteString(sf("%g %g %slo %shi\n", v.Lo, v.Hi, ax, ax))
		}
	}
	if m := F.Masses(); len(m) > 0 {
		b.WriteString("\nMasses\n\n")
		for _, v := range m {
			b.WriteString(sf("%d %g\n", v.Type, v.Value))
		}
	}
	if a := F.Atoms(); len(a) > 0 {
		b.WriteString("\nAtoms # full\n\n")
		for _, v := range a {
			b.WriteString(sf("%d %d %d %g %g %g %g %d %d %d", v.ID, v.MolID, v.Type, v.Charge,
				v.Pos[0], v.Pos[1], v.Pos[2], v.Image[0], v.Image[1], v.Image[2]))
			if v.Label != "" {
				b.WriteString(" # " + v.Label)
			}
			b.WriteString("\n")
		}
	}
	if bo := F.Bonds(); len(bo) > 0 {
		b.WriteString("\nBonds\n\n")
		for _, v := range bo {
			b.WriteString(sf("%d %d %d %d\n", v.ID, v.Type, v.Atoms[0], v.Atoms[1]))
		}
	}
	if an := F.Angles(); len(an) > 0 {
		b.WriteString("\nAngles\n\n")
		for _, v := range an {
			b.WriteString(sf("%d %d %d %d %d\n", v.ID, v.Type, v.Atoms[0], v.Atoms[1], v.Atoms[2]))
		}
	}
	writeDihedrals(b, "Dihedrals", F.Dihedrals())
	writeDihedrals(b, "Impropers", F.Impropers())
	if err := b.Flush(); err != nil {
		return newError(molframe.ErrSchema, "", "WriteTo", "%s", err)
	}
	return nil
}

func writeDihedrals(b *bufio.Writer, section string, d []molframe.Dihedral) {
	if len(d) == 0 {
		return
	}
	b.WriteString("\n" + section + "\n\n")
	for _, v := range d {
		b.WriteString(sf("%d %d %d %d %d %d\n", v.ID, v.Type, v.Atoms[0], v.Atoms[1], v.Atoms[2], v.Atoms[3]))
	}
}
