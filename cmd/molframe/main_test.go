/*
 * main_test.go, part of molframe
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rmera/molframe"
	"github.com/rmera/molframe/lmp"
)

const waters = `two waters

6 atoms
0 bonds
0 angles
2 atom types
0 bond types
0 angle types

0 10 xlo xhi
0 10 ylo yhi
0 10 zlo zhi

Masses

1 1.008
2 15.9994

Atoms # full

1 0 2 -0.834 0.0 0.0 0.0 # O
2 0 1 0.417 0.9572 0.0 0.0 # H
3 0 1 0.417 -0.24 0.927 0.0 # H
4 0 2 -0.834 3.0 3.0 3.0 # O
5 0 1 0.417 3.9572 3.0 3.0 # H
6 0 1 0.417 2.76 3.927 3.0 # H
`

// setup writes the test frame to a temporary directory, and returns the
// directory and the path to the frame.
func setup(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "waters.data")
	require.NoError(t, os.WriteFile(in, []byte(waters), 0o644))
	return dir, in
}

// molframeRun runs the command with the given arguments and returns its output.
func molframeRun(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, &out, &errOut)
	return out.String(), err
}

func readBack(t *testing.T, name string) *molframe.Frame {
	t.Helper()
	F := molframe.New()
	require.NoError(t, lmp.Load(F, name))
	return F
}

func TestInfo(t *testing.T) {
	_, in := setup(t)
	out, err := molframeRun(t, "info", in, "--oxygen-type", "2")
	require.NoError(t, err)

	var info struct {
		Counts map[string]int `yaml:"counts"`
		Box    struct {
			Lengths []float64 `yaml:"lengths"`
		} `yaml:"box"`
		Center []float64      `yaml:"center"`
		Types  map[string]int `yaml:"types"`
		Waters int            `yaml:"waters"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))
	assert.Equal(t, 6, info.Counts["Atoms"])
	assert.Equal(t, 2, info.Counts["Masses"])
	assert.Equal(t, []float64{10, 10, 10}, info.Box.Lengths)
	require.Len(t, info.Center, 3)
	assert.InDelta(t, (0.9572-0.24+3+3.9572+2.76)/6, info.Center[0], 1e-9)
	assert.InDelta(t, (0.927+3*2+3.927)/6, info.Center[1], 1e-9)
	assert.InDelta(t, 1.5, info.Center[2], 1e-9)
	assert.Equal(t, 2, info.Types["atom"])
	assert.Equal(t, 2, info.Waters)
	assert.NotContains(t, out, "problem")
}

func TestTIP3P(t *testing.T) {
	dir, in := setup(t)
	out := filepath.Join(dir, "out.data.gz")
	stdout, err := molframeRun(t, "tip3p", in, out, "--oxygen-type", "2", "--start-mol-id", "10")
	require.NoError(t, err)
	assert.Equal(t, "2 waters\n", stdout)

	F := readBack(t, out)
	assert.Equal(t, 4, F.NBonds())
	assert.Equal(t, 2, F.NAngles())
	assert.Equal(t, 1, F.TypeCount(molframe.BondType))
	assert.Equal(t, 12, F.Atom(5).MolID)

	_, err = molframeRun(t, "tip3p", in, out)
	assert.Error(t, err, "no oxygen type given")

	_, err = molframeRun(t, "tip3p", in, out, "--oxygen-type", "2", "--hydrogen-type", "3")
	assert.ErrorIs(t, err, molframe.ErrStructure)
}

func TestTIP3PConfig(t *testing.T) {
	dir, in := setup(t)
	cfg := filepath.Join(dir, "molframe.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("water:\n  oxygen_type: 2\n  start_mol_id: 5\n"), 0o644))
	out := filepath.Join(dir, "out.data")
	_, err := molframeRun(t, "--config", cfg, "tip3p", in, out)
	require.NoError(t, err)
	assert.Equal(t, 6, readBack(t, out).Atom(0).MolID)

	t.Setenv("MOLFRAME_WATER_OXYGEN_TYPE", "2")
	_, err = molframeRun(t, "tip3p", in, out)
	require.NoError(t, err)
	assert.Equal(t, 4, readBack(t, out).NBonds())

	_, err = molframeRun(t, "--config", filepath.Join(dir, "missing.yaml"), "info", in)
	assert.Error(t, err, "a config file given explicitly must exist")
}

func TestShift(t *testing.T) {
	dir, in := setup(t)
	out := filepath.Join(dir, "shifted.data")
	_, err := molframeRun(t, "shift", in, out, "--kind", "atom-ids", "--by", "10")
	require.NoError(t, err)
	F := readBack(t, out)
	assert.Equal(t, 11, F.Atom(0).ID)

	_, err = molframeRun(t, "shift", in, out, "--table", "Atoms", "--start", "7", "--end", "10", "--by", "1", "-v")
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 1, 1}, readBack(t, out).Atom(2).Image)

	_, err = molframeRun(t, "shift", in, out, "--table", "Atoms", "--start", "3", "--end", "4", "--by", "1")
	assert.ErrorIs(t, err, molframe.ErrSchema)
	_, err = molframeRun(t, "shift", in, out, "--kind", "charges", "--by", "1")
	assert.Error(t, err)
	_, err = molframeRun(t, "shift", in, out, "--by", "1")
	assert.Error(t, err)
}

func TestMove(t *testing.T) {
	dir, in := setup(t)
	out := filepath.Join(dir, "moved.data")
	_, err := molframeRun(t, "move", in, out, "--by", "1,2,3", "--box")
	require.NoError(t, err)
	F := readBack(t, out)
	assert.Equal(t, [3]float64{4, 5, 6}, F.Atom(3).Pos)
	assert.Equal(t, molframe.Bounds{Lo: 1, Hi: 11}, F.BoxBounds()[0])
	assert.Equal(t, [3]float64{10, 10, 10}, F.Box())

	_, err = molframeRun(t, "move", in, out, "--by", "1,2")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	dir, in := setup(t)
	out := filepath.Join(dir, "merged.data")
	_, err := molframeRun(t, "merge", out, in, in, "--renumber")
	require.NoError(t, err)
	F := readBack(t, out)
	assert.Equal(t, 12, F.NAtoms())
	assert.Equal(t, 4, F.TypeCount(molframe.AtomType))
	assert.Equal(t, 7, F.Atom(6).ID)
	assert.Equal(t, 4, F.Atom(9).Type) //oxygen of the second copy
	assert.NoError(t, F.Corrupted())

	//without renumbering the IDs repeat, and the file can't be read back as a frame
	_, err = molframeRun(t, "merge", out, in, in)
	require.NoError(t, err)
	_, err = lmp.Read(out, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, lmp.Load(molframe.New(), out), molframe.ErrSchema)
}

func TestStore(t *testing.T) {
	dir, in := setup(t)
	db := filepath.Join(dir, "frames.db")
	stdout, err := molframeRun(t, "--store", db, "save", in, "--name", "two waters")
	require.NoError(t, err)
	id := strings.TrimSpace(stdout)
	require.Len(t, id, 36)

	stdout, err = molframeRun(t, "--store", db, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, id)
	assert.Contains(t, stdout, "two waters")

	out := filepath.Join(dir, "loaded.xyz")
	_, err = molframeRun(t, "--store", db, "load", id, out)
	require.NoError(t, err)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "6\n"))

	_, err = molframeRun(t, "--store", db, "delete", id)
	require.NoError(t, err)
	stdout, err = molframeRun(t, "--store", db, "list")
	require.NoError(t, err)
	assert.NotContains(t, stdout, id)

	_, err = molframeRun(t, "--store", db, "load", id, out)
	assert.Error(t, err)
}

func TestXYZInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "w.xyz")
	require.NoError(t, os.WriteFile(in, []byte("3\n\nO 0 0 0\nH 1 0 0\nH 0 1 0\n"), 0o644))
	out := filepath.Join(dir, "w.data")
	_, err := molframeRun(t, "move", in, out, "--by", "1,0,0")
	require.NoError(t, err)
	F := readBack(t, out)
	assert.Equal(t, 3, F.NAtoms())
	assert.Equal(t, "H", F.Atom(2).Label)
	assert.Equal(t, 2, F.Atom(2).Type)
	assert.Equal(t, 2, F.Count(molframe.Masses))
	assert.Equal(t, [3]float64{1, 1, 0}, F.Atom(2).Pos)
}
