/*
 * errors.go, part of molframe
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
	"errors"
	"fmt"

	"github.com/rmera/molframe"
)

// Error is the error type for LAMMPS data files. It satisfies molframe.Decorator and
// unwraps to one of the molframe error kinds (molframe.ErrSchema for malformed files).
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	kind     error
}

var _ molframe.Decorator = (*Error)(nil)

func newError(kind error, filename, caller, format string, a ...any) *Error {
	return &Error{message: fmt.Sprintf(format, a...), filename: filename, deco: []string{caller}, kind: kind}
}

func (err *Error) Error() string {
	name := err.filename
	if name == "" {
		name = "(stream)"
	}
	return fmt.Sprintf("lmp file %s error: %s", name, err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file (always "lmp") associated to the error
func (err *Error) Format() string { return "lmp" }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return true }

func (err *Error) Unwrap() error { return err.kind }

// errDecorate adds the caller to err, if it's an *Error, and, if it has no
// file name yet, sets it.
func errDecorate(err error, caller, filename string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		if e.filename == "" {
			e.filename = filename
		}
	}
	return err
}
