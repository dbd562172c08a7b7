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

package molframe

import (
	"errors"
	"fmt"
	"strings"
)

// The kinds of failure a frame operation can report. Use errors.Is to
// tell them apart, an *Error unwraps to its kind.
var (
	//The attribute lists of two frames differ, or a table that is
	//not configured was requested or given.
	ErrConfigMismatch = errors.New("configuration mismatch")
	//A row does not fit its table, or references something that is not there.
	ErrSchema = errors.New("schema violation")
	//The frame doesn't follow an ordering an operation relies on (i.e. O-H-H runs for waters).
	ErrStructure = errors.New("structural assumption violated")
)

// Error is the error type returned by the frame operations. Besides the message, it
// keeps the chain of functions it went through (see Decorate) and the kind of problem.
type Error struct {
	kind    error
	message string
	deco    []string
}

func newError(kind error, caller, format string, a ...any) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, a...), deco: []string{caller}}
}

// Error returns a string with the error message, the kind and the callers.
func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("molframe: %s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("molframe: %s: %s (%s)", err.kind, err.message, strings.Join(err.deco, " <- "))
}

// Decorate adds the deco string to the decoration slice of the error
// and returns the resulting slice. An empty string just returns the current slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the kind of the error, so errors.Is works with the sentinel values.
func (err *Error) Unwrap() error { return err.kind }

// Critical always returns true. No frame error can be ignored.
func (err *Error) Critical() bool { return true }

// errDecorate decorates err with the caller's name, if err implements Decorator.
// Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	var e Decorator
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrBadAxis        = PanicMsg("molframe: box axis must be 0, 1 or 2")
	ErrRowOutOfRange  = PanicMsg("molframe: row index out of range")
	ErrUnknownTypeKey = PanicMsg("molframe: unknown type kind")
)
