/*
 * merge.go, part of molframe
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

	"github.com/rmera/molframe"
)

func (a *app) mergeCmd() *cobra.Command {
	var renumber bool
	cmd := &cobra.Command{
		Use:   "merge <out> <in1> <in2> [in3...]",
		Short: "Merge frames, in order",
		Long: `Merge the input frames into one, in the order given. The box of the result is the
box of the first input, and the type counts are added.

Without --renumber, IDs and types are kept as they are in the files. With --renumber
each input is shifted past the largest IDs and the types of the ones before it,
so the result has no repeated IDs and the types of each input are kept apart.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames := make([]*molframe.Frame, 0, len(args)-1)
			for _, name := range args[1:] {
				F, err := a.readFrame(name)
				if err != nil {
					return err
				}
				frames = append(frames, F)
			}
			M := frames[0]
			var err error
			for i, F := range frames[1:] {
				if renumber {
					F.ApplyOffsets(M.Offsets())
				}
				if M, err = molframe.Merge(M, F); err != nil {
					return fmt.Errorf("merging %s: %w", args[i+2], err)
				}
			}
			if err := M.Corrupted(); err != nil {
				if renumber {
					return err
				}
				a.log.Printf("warning: the merged frame is not consistent, consider --renumber: %v", err)
			}
			a.logf("merged %d frames: %d atoms", len(frames), M.NAtoms())
			return a.writeFrame(args[0], M)
		},
	}
	cmd.Flags().BoolVar(&renumber, "renumber", false, "shift the IDs and types of each input past those of the previous ones")
	return cmd
}
