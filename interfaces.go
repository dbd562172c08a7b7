/*
 * interfaces.go, part of molframe
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

// TableReader is implemented by the format readers. Read returns the tables in the
// file name, filling only those in attrs. Formats with many frames (time steps)
// take the frame to read from the optional argument.
type TableReader interface {
	Read(name string, attrs Attributes, frame ...int) (*Tables, error)
}

// TableWriter is implemented by the format writers. It writes the tables of F to
// the file name.
type TableWriter interface {
	Write(name string, F *Frame) error
}

// ReadFrame reads a file with r and loads it in a new frame with the given attributes.
func ReadFrame(r TableReader, name string, attrs Attributes, frame ...int) (*Frame, error) {
	if len(attrs) == 0 {
		attrs = DefaultAttributes()
	}
	t, err := r.Read(name, attrs, frame...)
	if err != nil {
		return nil, err
	}
	F, err := FromTables(attrs, t)
	if err != nil {
		return nil, errDecorate(err, "ReadFrame")
	}
	return F, nil
}

// Decorator is the interface for the errors returned by the packages in this module. The Decorate
// method allows to add and retrieve info from the error, without changing it's type or wrapping it
// around something else.
type Decorator interface {
	Error() string
	Decorate(string) []string
}
