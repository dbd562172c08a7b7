/*
 * info.go, part of molframe
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
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/rmera/molframe"
)

type boxInfo struct {
	Lengths [3]float64 `yaml:"lengths,flow"`
	Lo      [3]float64 `yaml:"lo,flow"`
	Hi      [3]float64 `yaml:"hi,flow"`
}

type typesInfo struct {
	Atom     int `yaml:"atom"`
	Bond     int `yaml:"bond"`
	Angle    int `yaml:"angle"`
	Dihedral int `yaml:"dihedral"`
	Improper int `yaml:"improper"`
}

type frameInfo struct {
	File       string         `yaml:"file"`
	Attributes []string       `yaml:"attributes,flow"`
	Counts     map[string]int `yaml:"counts"`
	Box        *boxInfo       `yaml:"box,omitempty"`
	Center     *[3]float64    `yaml:"center,flow,omitempty"`
	Types      *typesInfo     `yaml:"types,omitempty"`
	Waters     int            `yaml:"waters,omitempty"`
	Problem    string         `yaml:"problem,omitempty"`
}

func newFrameInfo(name string, F *molframe.Frame) *frameInfo {
	in := &frameInfo{File: name, Counts: make(map[string]int)}
	for _, t := range F.Attributes() {
		in.Attributes = append(in.Attributes, string(t))
		if t != molframe.Box && t != molframe.Types {
			in.Counts[string(t)] = F.Count(t)
		}
	}
	if F.Has(molframe.Box) {
		b := F.BoxBounds()
		in.Box = &boxInfo{Lengths: F.Box()}
		for i := range b {
			in.Box.Lo[i], in.Box.Hi[i] = b[i].Lo, b[i].Hi
		}
	}
	if C := F.Coords(); C != nil {
		in.Center = center(C)
	}
	if F.Has(molframe.Types) {
		t := F.Types()
		in.Types = &typesInfo{t.Atom, t.Bond, t.Angle, t.Dihedral, t.Improper}
	}
	if err := F.Corrupted(); err != nil {
		in.Problem = err.Error()
	}
	return in
}

// center returns the geometric center of the rows of C.
func center(C *mat.Dense) *[3]float64 {
	n, _ := C.Dims()
	var c [3]float64
	for j := range c {
		c[j] = mat.Sum(C.ColView(j)) / float64(n)
	}
	return &c
}

func (a *app) infoCmd() *cobra.Command {
	var frame int
	var oxygen int
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print a YAML summary of a frame",
		Long: `Print the tables of a frame, the number of rows in each, the box and the
type counts and the geometric center of the atoms, as YAML. Consistency problems (repeated IDs, bonds to missing
atoms) are reported under "problem".

If --oxygen-type is given, the number of waters that tip3p would find is
also reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			F, err := a.readFrame(args[0], frame)
			if err != nil {
				return err
			}
			in := newFrameInfo(args[0], F)
			if oxygen > 0 && F.Has(molframe.Bonds) && F.Has(molframe.Angles) && F.Has(molframe.Types) {
				o := molframe.DefaultWaterOptions()
				o.Strict(false)
				in.Waters, err = F.Copy().ApplyTIP3P(oxygen, o)
				if err != nil {
					in.Problem = err.Error()
				}
			}
			b, err := yaml.Marshal(in)
			if err != nil {
				return fmt.Errorf("marshal info: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().IntVar(&frame, "frame", -1, "frame to read from multi-frame files (default: the last one)")
	cmd.Flags().IntVar(&oxygen, "oxygen-type", 0, "atom type of water oxygens, to count waters")
	return cmd
}
