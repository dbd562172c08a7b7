/*
 * xyz_test.go, part of molframe
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
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/rmera/molframe"
)

const twoFrames = `3
water, first frame
O 0.0 0.0 0.0
H 0.9572 0.0 0.0
H -0.24 0.927 0.0
3
water, second frame
O 1.0 1.0 1.0
H 1.9572 1.0 1.0
H 0.76 1.927 1.0
`

func TestReadFrames(Te *testing.T) {
	last, err := ReadFrom(strings.NewReader(twoFrames), -1)
	if err != nil {
		Te.Fatal(err)
	}
	want := []molframe.Atom{
		{ID: 1, MolID: 1, Pos: [3]float64{1, 1, 1}, Label: "O"},
		{ID: 2, MolID: 2, Pos: [3]float64{1.9572, 1, 1}, Label: "H"},
		{ID: 3, MolID: 3, Pos: [3]float64{0.76, 1.927, 1}, Label: "H"},
	}
	if diff := cmp.Diff(want, last.Atoms); diff != "" {
		Te.Errorf("last frame (-want +got):\n%s", diff)
	}
	first, err := ReadFrom(strings.NewReader(twoFrames), 0)
	if err != nil {
		Te.Fatal(err)
	}
	if first.Atoms[1].Pos[0] != 0.9572 {
		Te.Errorf("frame 0 not read: %v", first.Atoms[1])
	}
	if _, err := ReadFrom(strings.NewReader(twoFrames), 2); !errors.Is(err, ErrNoFrame) {
		Te.Errorf("frame 2 doesn't exist, got %v", err)
	}
	if _, err := ReadFrom(strings.NewReader(""), -1); !errors.Is(err, ErrNoFrame) {
		Te.Errorf("empty file: %v", err)
	}
	bad := strings.Replace(twoFrames, "H 1.9572 1.0 1.0", "H 1.9572 1.0", 1)
	if _, err := ReadFrom(strings.NewReader(bad), -1); !errors.Is(err, molframe.ErrSchema) {
		Te.Errorf("short atom line: %v", err)
	}
	truncated := strings.Replace(twoFrames, "3\nwater, second", "4\nwater, second", 1)
	if _, err := ReadFrom(strings.NewReader(truncated), -1); !errors.Is(err, molframe.ErrSchema) {
		Te.Errorf("truncated frame: %v", err)
	}
}

func TestReadError(Te *testing.T) {
	failing := errors.New("device gone")
	r := io.MultiReader(strings.NewReader(twoFrames), iotest.ErrReader(failing))
	if _, err := ReadFrom(r, -1); !errors.Is(err, failing) {
		Te.Errorf("a read error after the second frame must be reported, got %v", err)
	}
	r = io.MultiReader(strings.NewReader(twoFrames), iotest.ErrReader(failing))
	if _, err := ReadFrom(r, 1); err != nil {
		Te.Errorf("frame 1 is complete before the error: %v", err)
	}
	r = io.MultiReader(strings.NewReader(twoFrames[:40]), iotest.ErrReader(failing))
	if _, err := ReadFrom(r, 0); !errors.Is(err, failing) {
		Te.Errorf("a read error inside a frame must be reported, got %v", err)
	}
}

func TestWriteRead(Te *testing.T) {
	F := molframe.New(molframe.Atoms)
	F.AddAtoms(
		molframe.Atom{ID: 1, MolID: 1, Pos: [3]float64{0.5, -1.25, 3}, Label: "C"},
		molframe.Atom{ID: 2, MolID: 2, Pos: [3]float64{1.5, 0, 0}})
	path := filepath.Join(Te.TempDir(), "out.xyz.gz")
	if err := (File{}).Write(path, F); err != nil {
		Te.Fatal(err)
	}
	G, err := molframe.ReadFrame(File{}, path, molframe.Attributes{molframe.Atoms})
	if err != nil {
		Te.Fatal(err)
	}
	if G.NAtoms() != 2 || G.Atom(0).Pos != F.Atom(0).Pos || G.Atom(1).Label != "X" {
		Te.Errorf("read back %v", G.Atoms())
	}
	if _, err := (File{}).Read(path, molframe.Attributes{molframe.Bonds}); !errors.Is(err, molframe.ErrConfigMismatch) {
		Te.Errorf("attributes without Atoms: %v", err)
	}
}

func TestTypesFromLabels(Te *testing.T) {
	t, err := ReadFrom(strings.NewReader(twoFrames), 0)
	if err != nil {
		Te.Fatal(err)
	}
	if err := TypesFromLabels(t); err != nil {
		Te.Fatal(err)
	}
	types := []int{t.Atoms[0].Type, t.Atoms[1].Type, t.Atoms[2].Type}
	if diff := cmp.Diff([]int{1, 2, 2}, types); diff != "" {
		Te.Errorf("types (-want +got):\n%s", diff)
	}
	wantM := []molframe.Mass{{Type: 1, Value: 15.999}, {Type: 2, Value: 1.008}}
	if diff := cmp.Diff(wantM, t.Masses); diff != "" {
		Te.Errorf("masses (-want +got):\n%s", diff)
	}
	if t.Types.Atom != 2 || !t.Present.Has(molframe.Masses) || !t.Present.Has(molframe.Types) {
		Te.Errorf("types %+v, present %s", t.Types, t.Present)
	}
	F, err := molframe.FromTables(nil, t)
	if err != nil {
		Te.Fatal(err)
	}
	if F.TypeCount(molframe.AtomType) != 2 {
		Te.Errorf("frame has %d atom types", F.TypeCount(molframe.AtomType))
	}
	if m, ok := Mass("CL"); !ok || m != 35.45 {
		Te.Errorf("Mass(CL) = %g, %v", m, ok)
	}
	mixed, err := ReadFrom(strings.NewReader("3\n\nCl 0 0 0\nCL 1 0 0\ncl 2 0 0\n"), 0)
	if err != nil {
		Te.Fatal(err)
	}
	if err := TypesFromLabels(mixed); err != nil {
		Te.Fatal(err)
	}
	types = []int{mixed.Atoms[0].Type, mixed.Atoms[1].Type, mixed.Atoms[2].Type}
	if diff := cmp.Diff([]int{1, 1, 1}, types); diff != "" || mixed.Types.Atom != 1 || len(mixed.Masses) != 1 {
		Te.Errorf("one element in three letter cases gave types %v, %d masses (-want +got):\n%s", types, len(mixed.Masses), diff)
	}
	bad := &molframe.Tables{Atoms: []molframe.Atom{{ID: 1, Label: "Xx"}}}
	if err := TypesFromLabels(bad); !errors.Is(err, molframe.ErrSchema) || bad.Atoms[0].Type != 0 {
		Te.Errorf("unknown element: %v", err)
	}
}
