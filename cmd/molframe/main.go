/*
 * main.go, part of molframe
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

// Command molframe edits molecular frames stored as LAMMPS data or XYZ files:
// it shifts IDs and types, moves atoms, merges frames, adds TIP3P water
// topology, and keeps snapshots in a SQLite database.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmera/molframe"
)

// app holds what every subcommand needs, set up by the root command.
type app struct {
	configFile string
	v          *viper.Viper
	attrs      molframe.Attributes
	log        *log.Logger
}

// logf logs only if verbose is set.
func (a *app) logf(format string, args ...any) {
	if a.v.GetBool(cfgKeyVerbose) {
		a.log.Printf(format, args...)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: log.New(os.Stderr, "molframe: ", 0)}
	root := &cobra.Command{
		Use:   "molframe",
		Short: "molframe edits molecular frames",
		Long: `molframe reads molecular frames from LAMMPS data files (atom style full)
or XYZ files, and shifts IDs and types, moves atoms, merges frames and
adds the bonds and angles of TIP3P waters.

The format of each file is chosen from its name: .xyz files are XYZ, anything
else is a LAMMPS data file. A .gz or .zst suffix compresses the file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(a.v, a.configFile); err != nil {
				return err
			}
			attrs, err := molframe.ParseAttributes(a.v.GetString(cfgKeyAttributes))
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			a.attrs = attrs
			a.log.SetOutput(cmd.ErrOrStderr())
			if f := a.v.ConfigFileUsed(); f != "" {
				a.logf("using config file %s", f)
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: .molframe.yaml in the current or home directory)")
	pf.String("attributes", defaultAttributes, "tables to read, space separated")
	pf.BoolP("verbose", "v", false, "log what is being done")
	pf.String("store", defaultStorePath, "SQLite database for save, load, list and delete")
	a.v.BindPFlag(cfgKeyAttributes, pf.Lookup("attributes"))
	a.v.BindPFlag(cfgKeyVerbose, pf.Lookup("verbose"))
	a.v.BindPFlag(cfgKeyStorePath, pf.Lookup("store"))

	root.AddCommand(
		a.infoCmd(),
		a.shiftCmd(),
		a.moveCmd(),
		a.mergeCmd(),
		a.tip3pCmd(),
		a.saveCmd(),
		a.loadCmd(),
		a.listCmd(),
		a.deleteCmd(),
	)
	return root
}

func run(args []string, out, errOut io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
