/*
 * zio_test.go, part of molframe
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

package zio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRoundTrip(Te *testing.T) {
	text := strings.Repeat("1 1 1 0.000 1.0 2.0 3.0\n", 200)
	dir := Te.TempDir()
	for _, name := range []string{"plain.data", "gzipped.data.gz", "zstd.data.zst"} {
		path := filepath.Join(dir, name)
		w, err := Create(path)
		if err != nil {
			Te.Fatal(err)
		}
		if _, err := w.WriteString(text); err != nil {
			Te.Fatal(err)
		}
		if err := w.Close(); err != nil {
			Te.Fatal(err)
		}
		r, err := Open(path)
		if err != nil {
			Te.Fatal(err)
		}
		b, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			Te.Fatal(err)
		}
		if string(b) != text {
			Te.Errorf("%s: read %d bytes, wrote %d", name, len(b), len(text))
		}
		st, _ := os.Stat(path)
		if CompressionOf(name) != Plain && st.Size() >= int64(len(text)) {
			Te.Errorf("%s (%s) was not compressed: %d bytes", name, CompressionOf(name), st.Size())
		}
	}
}

func TestNames(Te *testing.T) {
	cases := map[string]Compression{"a.data": Plain, "a.DATA.GZ": Gzip, "b.xyz.zst": Zstd, "c.zstd": Zstd}
	for n, c := range cases {
		if CompressionOf(n) != c {
			Te.Errorf("%s: got %s, want %s", n, CompressionOf(n), c)
		}
	}
	if Trim("water.data.gz") != "water.data" || Trim("water.xyz") != "water.xyz" {
		Te.Errorf("Trim didn't remove the suffix")
	}
}

func TestOpenBadGzip(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "bad.gz")
	os.WriteFile(path, []byte("not gzip at all"), 0o644)
	if _, err := Open(path); err == nil {
		Te.Errorf("a plain file with a .gz name should not open")
	}
}
