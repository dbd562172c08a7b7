/*
 * read.go, part of molframe
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

// Package lmp reads and writes LAMMPS data files with atom style "full",
// the layout molframe frames are modeled on.
//
// Only orthogonal boxes are supported. The coefficient sections (Pair Coeffs, Bond Coeffs
// and the like) and Velocities are skipped when reading, and not written. A comment after
// an atom line ("1 1 2 0.41 0.0 0.0 0.0 # H") is read as the label of that atom.
// Files ending in .gz or .zst are decompressed/compressed on the fly.
package lmp

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/rmera/molframe"
	"github.com/rmera/molframe/internal/zio"
)

var fi = strings.Fields

// qerr panics with err, if not nil. The panic is recovered, and turned into an
// error, by the parser.
func qerr(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func atoi(s string) int {
	i, err := strconv.Atoi(s)
	qerr(err)
	return i
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	qerr(err)
	return f
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// the sections that map to a table
var sectionTables = map[string]molframe.Table{
	"Masses":    molframe.Masses,
	"Atoms":     molframe.Atoms,
	"Bonds":     molframe.Bonds,
	"Angles":    molframe.Angles,
	"Dihedrals": molframe.Dihedrals,
	"Impropers": molframe.Impropers,
}

// the header keywords for the number of rows in each table, and of each type.
var countKeys = map[string]molframe.Table{
	"atoms":     molframe.Atoms,
	"bonds":     molframe.Bonds,
	"angles":    molframe.Angles,
	"dihedrals": molframe.Dihedrals,
	"impropers": molframe.Impropers,
}

var typeKeys = map[string]molframe.Kind{
	"atom":     molframe.AtomType,
	"bond":     molframe.BondType,
	"angle":    molframe.AngleType,
	"dihedral": molframe.DihedralType,
	"improper": molframe.ImproperType,
}

type parser struct {
	attrs   molframe.Attributes
	t       *molframe.Tables
	title   string
	counts  map[molframe.Table]int
	section string
	reading bool //whether the rows of the current section are kept
	line    int
}

func newParser(attrs molframe.Attributes) *parser {
	if len(attrs) == 0 {
		attrs = molframe.DefaultAttributes()
	}
	p := new(parser)
	p.attrs = slices.Clone(attrs)
	p.t = &molframe.Tables{Present: slices.Clone(attrs)}
	p.counts = make(map[molframe.Table]int)
	return p
}

// parse processes one line of the file, after the title.
func (p *parser) parse(s string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(molframe.ErrSchema, "", "parse", "line %d: %s", p.line, r)
		}
	}()
	data, comment, _ := strings.Cut(s, "#")
	f := fi(data)
	if len(f) == 0 {
		return nil
	}
	if !isNumber(f[0]) {
		return p.startSection(strings.Join(f, " "), strings.TrimSpace(comment))
	}
	if p.section == "" {
		return p.header(f)
	}
	if !p.reading {
		return nil
	}
	switch p.section {
	case "Masses":
		if len(f) < 2 {
			return newError(molframe.ErrSchema, "", "parse", "line %d: a mass needs 2 fields, got %d", p.line, len(f))
		}
		p.t.Masses = append(p.t.Masses, molframe.Mass{Type: atoi(f[0]), Value: atof(f[1])})
	case "Atoms":
		a, err := atomFromFields(f, comment)
		if err != nil {
			return newError(molframe.ErrSchema, "", "parse", "line %d: %s", p.line, err)
		}
		p.t.Atoms = append(p.t.Atoms, a)
	case "Bonds":
		var b molframe.Bond
		b.ID, b.Type = term(f, b.Atoms[:], p.line)
		p.t.Bonds = append(p.t.Bonds, b)
	case "Angles":
		var a molframe.Angle
		a.ID, a.Type = term(f, a.Atoms[:], p.line)
		p.t.Angles = append(p.t.Angles, a)
	case "Dihedrals":
		var d molframe.Dihedral
		d.ID, d.Type = term(f, d.Atoms[:], p.line)
		p.t.Dihedrals = append(p.t.Dihedrals, d)
	case "Impropers":
		var d molframe.Dihedral
		d.ID, d.Type = term(f, d.Atoms[:], p.line)
		p.t.Impropers = append(p.t.Impropers, d)
	}
	return nil
}

// term reads the id, the type and the atoms of a bonded term, putting the atoms in ats.
func term(f []string, ats []int, line int) (id, typ int) {
	if len(f) != len(ats)+2 {
		panic(fmt.Sprintf("expected %d fields, got %d", len(ats)+2, len(f)))
	}
	id = atoi(f[0])
	typ = atoi(f[1])
	for i := range ats {
		ats[i] = atoi(f[i+2])
	}
	return id, typ
}

// atomFromFields reads a line of the Atoms section in the "full" style:
// atom-ID molecule-ID atom-type q x y z, optionally followed by the 3 image flags.
func atomFromFields(f []string, comment string) (a molframe.Atom, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s", r)
		}
	}()
	if len(f) != 7 && len(f) != 10 {
		return a, fmt.Errorf("an atom needs 7 or 10 fields, got %d", len(f))
	}
	a.ID = atoi(f[0])
	a.MolID = atoi(f[1])
	a.Type = atoi(f[2])
	a.Charge = atof(f[3])
	for i := 0; i < 3; i++ {
		a.Pos[i] = atof(f[4+i])
	}
	if len(f) == 10 {
		for i := 0; i < 3; i++ {
			a.Image[i] = atoi(f[7+i])
		}
	}
	a.Label = strings.TrimSpace(comment)
	return a, nil
}

func (p *parser) startSection(name, comment string) error {
	p.section = name
	t, ok := sectionTables[name]
	if !ok {
		log.Printf("lmp: skipping section %q (line %d)", name, p.line)
		p.reading = false
		return nil
	}
	if name == "Atoms" && comment != "" && fi(comment)[0] != "full" {
		return newError(molframe.ErrSchema, "", "startSection", "line %d: atom style %q is not supported, only full", p.line, fi(comment)[0])
	}
	p.reading = p.attrs.Has(t)
	return nil
}

func (p *parser) header(f []string) error {
	last := f[len(f)-1]
	switch {
	case len(f) == 2 && countKeys[last] != "":
		p.counts[countKeys[last]] = atoi(f[0])
	case len(f) == 3 && last == "types":
		k, ok := typeKeys[f[1]]
		if !ok {
			log.Printf("lmp: ignoring header line %d: %s", p.line, strings.Join(f, " "))
			return nil
		}
		n := atoi(f[0])
		switch k {
		case molframe.AtomType:
			p.t.Types.Atom = n
		case molframe.BondType:
			p.t.Types.Bond = n
		case molframe.AngleType:
			p.t.Types.Angle = n
		case molframe.DihedralType:
			p.t.Types.Dihedral = n
		case molframe.ImproperType:
			p.t.Types.Improper = n
		}
	case len(f) == 4 && strings.HasSuffix(f[2], "lo") && strings.HasSuffix(f[3], "hi"):
		axis := strings.Index("xyz", f[2][:1])
		if axis < 0 || len(f[2]) != 3 {
			return newError(molframe.ErrSchema, "", "header", "line %d: unknown box axis %q", p.line, f[2])
		}
		p.t.Box[axis] = molframe.Bounds{Lo: atof(f[0]), Hi: atof(f[1])}
	case len(f) == 6 && f[3] == "xy":
		return newError(molframe.ErrSchema, "", "header", "line %d: triclinic boxes are not supported", p.line)
	default:
		log.Printf("lmp: ignoring header line %d: %s", p.line, strings.Join(f, " "))
	}
	return nil
}

// check compares the number of rows read with the counts given in the header.
func (p *parser) check() error {
	rows := map[molframe.Table]int{
		molframe.Atoms:     len(p.t.Atoms),
		molframe.Bonds:     len(p.t.Bonds),
		molframe.Angles:    len(p.t.Angles),
		molframe.Dihedrals: len(p.t.Dihedrals),
		molframe.Impropers: len(p.t.Impropers),
	}
	for _, t := range p.attrs {
		n, ok := p.counts[t]
		if !ok {
			continue
		}
		if rows[t] != n {
			return newError(molframe.ErrSchema, "", "check", "the header declares %d %s but %d were read", n, strings.ToLower(string(t)), rows[t])
		}
	}
	return nil
}

// ReadFrom reads a LAMMPS data file from r, and returns the tables in it that are
// also in attrs. If attrs is empty, every table is read.
func ReadFrom(r io.Reader, attrs molframe.Attributes) (*molframe.Tables, error) {
	t, _, err := readFrom(r, attrs)
	return t, err
}

func readFrom(r io.Reader, attrs molframe.Attributes) (*molframe.Tables, string, error) {
	p := newParser(attrs)
	br := bufio.NewReader(r)
	for {
		s, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, "", newError(molframe.ErrSchema, "", "ReadFrom", "line %d: %s", p.line+1, err)
		}
		p.line++
		if p.line == 1 {
			p.title = strings.TrimSpace(s)
		} else if perr := p.parse(s); perr != nil {
			return nil, "", errDecorate(perr, "ReadFrom", "")
		}
		if err == io.EOF {
			break
		}
	}
	if err := p.check(); err != nil {
		return nil, "", errDecorate(err, "ReadFrom", "")
	}
	return p.t, p.title, nil
}

// Read reads the LAMMPS data file name and returns the tables in it that are also in attrs.
func Read(name string, attrs molframe.Attributes) (*molframe.Tables, error) {
	f, err := zio.Open(name)
	if err != nil {
		return nil, newError(molframe.ErrSchema, name, "Read", "can't open file: %s", err)
	}
	defer f.Close()
	t, err := ReadFrom(f, attrs)
	if err != nil {
		return nil, errDecorate(err, "Read", name)
	}
	return t, nil
}

// Load replaces the contents of F with those of the LAMMPS data file name.
// Only the tables configured in F are read.
func Load(F *molframe.Frame, name string) error {
	t, err := Read(name, F.Attributes())
	if err != nil {
		return errDecorate(err, "Load", name)
	}
	if err := F.Load(t); err != nil {
		return fmt.Errorf("lmp: loading %s: %w", name, err)
	}
	return nil
}
