/*
 * files.go, part of molframe
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
	"path/filepath"
	"strings"

	"github.com/rmera/molframe"
	"github.com/rmera/molframe/internal/zio"
	"github.com/rmera/molframe/lmp"
	"github.com/rmera/molframe/xyz"
)

type format interface {
	molframe.TableReader
	molframe.TableWriter
}

// formatFor returns the reader/writer for the file name, from its extension.
func formatFor(name string) format {
	switch strings.ToLower(filepath.Ext(zio.Trim(name))) {
	case ".xyz":
		return xyz.File{Typed: true}
	default:
		return &lmp.Data{}
	}
}

func (a *app) readFrame(name string, frame ...int) (*molframe.Frame, error) {
	F, err := molframe.ReadFrame(formatFor(name), name, a.attrs, frame...)
	if err != nil {
		return nil, err
	}
	a.logf("read %s: %d atoms, %d bonds, %d angles", name, F.NAtoms(), F.NBonds(), F.NAngles())
	return F, nil
}

func (a *app) writeFrame(name string, F *molframe.Frame) error {
	if err := formatFor(name).Write(name, F); err != nil {
		return err
	}
	a.logf("wrote %s", name)
	return nil
}
