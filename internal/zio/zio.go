/*
 * zio.go, part of molframe
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

// Package zio opens and creates files that may be compressed. The compression
// is chosen from the file name: ".gz" is gzip and ".zst" is z-standard. Anything
// else is read and written as plain text.
package zio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies how a file is compressed.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return "plain"
}

// CompressionOf returns the compression that corresponds to the file name.
func CompressionOf(name string) Compression {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".gz"):
		return Gzip
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return Zstd
	}
	return Plain
}

// Trim returns the name without a compression suffix, so
// "water.data.gz" gives "water.data".
func Trim(name string) string {
	n := strings.ToLower(name)
	for _, s := range []string{".gz", ".zstd", ".zst"} {
		if strings.HasSuffix(n, s) {
			return name[:len(name)-len(s)]
		}
	}
	return name
}

// A Reader reads the decompressed contents of a file. It has to be closed.
type Reader struct {
	*bufio.Reader
	f     *os.File
	close func() error
}

// Close closes the decompressor and the file.
func (R *Reader) Close() error {
	var err error
	if R.close != nil {
		err = R.close()
	}
	if err2 := R.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Open opens the file name for reading, decompressing it if needed.
func Open(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	R := &Reader{f: f}
	var r io.Reader
	switch CompressionOf(name) {
	case Gzip:
		g, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zio: can't read gzip header of %s: %w", name, err)
		}
		r, R.close = g, g.Close
	case Zstd:
		z, err := zstd.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zio: can't start zstd decoder for %s: %w", name, err)
		}
		//*zstd.Decoder has a Close with no return value.
		r, R.close = z, func() error { z.Close(); return nil }
	default:
		r = f
	}
	R.Reader = bufio.NewReader(r)
	return R, nil
}

// A Writer compresses, if needed, what is written to it and puts it in a file.
// Close must be called for the data to be complete.
type Writer struct {
	*bufio.Writer
	f     *os.File
	close func() error
}

// Close flushes the buffered data, closes the compressor and then the file.
func (W *Writer) Close() error {
	err := W.Flush()
	if W.close != nil {
		if err2 := W.close(); err == nil {
			err = err2
		}
	}
	if err2 := W.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Create creates (or truncates) the file name, compressing what is written
// according to its suffix.
func Create(name string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	W := &Writer{f: f}
	var w io.Writer
	switch CompressionOf(name) {
	case Gzip:
		g := gzip.NewWriter(f)
		w, W.close = g, g.Close
	case Zstd:
		z, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zio: can't start zstd encoder for %s: %w", name, err)
		}
		w, W.close = z, z.Close
	default:
		w = f
	}
	W.Writer = bufio.NewWriter(w)
	return W, nil
}
