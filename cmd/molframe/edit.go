/*
 * edit.go, part of molframe
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
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmera/molframe"
)

// the named shifts, by the name used in the --kind flag.
var shifts = map[string]func(*molframe.Frame, int){
	"atom-ids":       (*molframe.Frame).ShiftAtomIDs,
	"mol-ids":        (*molframe.Frame).ShiftMolIDs,
	"bond-ids":       (*molframe.Frame).ShiftBondIDs,
	"angle-ids":      (*molframe.Frame).ShiftAngleIDs,
	"dihedral-ids":   (*molframe.Frame).ShiftDihedralIDs,
	"improper-ids":   (*molframe.Frame).ShiftImproperIDs,
	"atom-types":     (*molframe.Frame).ShiftAtomTypes,
	"bond-types":     (*molframe.Frame).ShiftBondTypes,
	"angle-types":    (*molframe.Frame).ShiftAngleTypes,
	"dihedral-types": (*molframe.Frame).ShiftDihedralTypes,
	"improper-types": (*molframe.Frame).ShiftImproperTypes,
}

func shiftKinds() string {
	k := make([]string, 0, len(shifts))
	for n := range shifts {
		k = append(k, n)
	}
	sort.Strings(k)
	return strings.Join(k, ", ")
}

func (a *app) shiftCmd() *cobra.Command {
	var kind, table string
	var by, start, end int
	cmd := &cobra.Command{
		Use:   "shift <in> <out>",
		Short: "Add an offset to IDs or types",
		Long: `Add an offset to the IDs or types of a frame. With --kind, one of the named
shifts is applied (atom-ids also shifts the atom references in bonds, angles,
dihedrals and impropers, atom-types also shifts the Masses table). With
--table, the offset is added to the columns --start to --end-1 of that table.

Example:
  molframe shift in.data out.data --kind atom-ids --by 100
  molframe shift in.data out.data --table Atoms --start 7 --end 10 --by -1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (kind == "") == (table == "") {
				return fmt.Errorf("give either --kind or --table")
			}
			F, err := a.readFrame(args[0])
			if err != nil {
				return err
			}
			if kind != "" {
				f, ok := shifts[kind]
				if !ok {
					return fmt.Errorf("unknown shift %q (valid: %s)", kind, shiftKinds())
				}
				f(F, by)
				a.logf("shifted %s by %d", kind, by)
			} else {
				if err := F.ShiftColumns(molframe.Table(table), start, end, by); err != nil {
					return err
				}
				a.logf("shifted %s columns %v by %d", table, molframe.Columns(molframe.Table(table))[start:end], by)
			}
			return a.writeFrame(args[1], F)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&kind, "kind", "", "named shift: "+shiftKinds())
	fl.StringVar(&table, "table", "", "table to shift columns of")
	fl.IntVar(&start, "start", 0, "first column to shift, with --table")
	fl.IntVar(&end, "end", 1, "column after the last one to shift, with --table")
	fl.IntVar(&by, "by", 0, "offset to add")
	return cmd
}

func (a *app) moveCmd() *cobra.Command {
	var by []float64
	var box bool
	cmd := &cobra.Command{
		Use:   "move <in> <out>",
		Short: "Translate the atoms, and optionally the box",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(by) != 3 {
				return fmt.Errorf("--by needs 3 values (x,y,z), got %d", len(by))
			}
			F, err := a.readFrame(args[0])
			if err != nil {
				return err
			}
			F.MoveAtoms([3]float64{by[0], by[1], by[2]}, box)
			a.logf("moved %d atoms by %v", F.NAtoms(), by)
			return a.writeFrame(args[1], F)
		},
	}
	cmd.Flags().Float64SliceVar(&by, "by", []float64{0, 0, 0}, "translation vector x,y,z")
	cmd.Flags().BoolVar(&box, "box", false, "move the box limits too")
	return cmd
}

func (a *app) tip3pCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip3p <in> <out>",
		Short: "Add the bonds and angles of TIP3P waters",
		Long: `Add two O-H bonds and one H-O-H angle for each water in the frame, with a new
bond type and a new angle type, and give each water its own molecule ID.
Waters are atoms of the oxygen type immediately followed by their two hydrogens.

The oxygen type can also be set with water.oxygen_type in the config file, or
the MOLFRAME_WATER_OXYGEN_TYPE environment variable.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			otype := a.v.GetInt(cfgKeyOxygenType)
			if otype <= 0 {
				return fmt.Errorf("the oxygen type must be given (--oxygen-type or %s in the config)", cfgKeyOxygenType)
			}
			F, err := a.readFrame(args[0])
			if err != nil {
				return err
			}
			o := molframe.DefaultWaterOptions()
			o.StartMolID(a.v.GetInt(cfgKeyStartMolID))
			o.Strict(a.v.GetBool(cfgKeyStrict))
			o.HydrogenType(a.v.GetInt(cfgKeyHydrogenType))
			n, err := F.ApplyTIP3P(otype, o)
			if err != nil {
				return err
			}
			a.logf("added %d waters: %d bonds and %d angles", n, 2*n, n)
			fmt.Fprintf(cmd.OutOrStdout(), "%d waters\n", n)
			return a.writeFrame(args[1], F)
		},
	}
	fl := cmd.Flags()
	fl.Int("oxygen-type", 0, "atom type of the water oxygens")
	fl.Int("hydrogen-type", 0, "atom type of the water hydrogens, checked if given")
	fl.Int("start-mol-id", 0, "the first water gets this molecule ID + 1")
	fl.Bool("strict", true, "check that each oxygen is followed by two hydrogens")
	a.v.BindPFlag(cfgKeyOxygenType, fl.Lookup("oxygen-type"))
	a.v.BindPFlag(cfgKeyHydrogenType, fl.Lookup("hydrogen-type"))
	a.v.BindPFlag(cfgKeyStartMolID, fl.Lookup("start-mol-id"))
	a.v.BindPFlag(cfgKeyStrict, fl.Lookup("strict"))
	return cmd
}
