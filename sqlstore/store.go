/*
 * store.go, part of molframe
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

// Package sqlstore keeps molframe frames in a SQLite database, one snapshot per
// saved frame. Each table of a frame is stored as rows of a SQL table, so the
// snapshots can also be queried with plain SQL.
//
// The pure-Go modernc.org/sqlite driver is used, so no cgo is needed.
// A Store is safe for concurrent use.
package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rmera/molframe"
)

// timeFormat has a fixed width, so creation times sort as strings.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when a snapshot ID is not in the store.
var ErrNotFound = errors.New("sqlstore: snapshot not found")

// Store is an open snapshot database.
type Store struct {
	db   *sql.DB
	path string
}

// Snapshot describes a saved frame.
type Snapshot struct {
	ID         string
	Name       string
	Attributes molframe.Attributes
	Created    time.Time
	NAtoms     int
}

// Open opens, or creates, the database at path, and creates the schema if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// one connection, so writers don't get SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	for _, ddl := range schema {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the file of the database.
func (s *Store) Path() string { return s.path }

// generateID generates a new UUID v7 for snapshot IDs.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// insertRows runs query once for each of the n rows, with the arguments given by args.
func insertRows(tx *sql.Tx, query string, n int, args func(i int) []any) error {
	if n == 0 {
		return nil
	}
	st, err := tx.Prepare(query)
	if err != nil {
		return err
	}
	defer st.Close()
	for i := 0; i < n; i++ {
		if _, err := st.Exec(args(i)...); err != nil {
			return err
		}
	}
	return nil
}

// Save stores F under a new snapshot, and returns the snapshot ID.
// Only the tables configured in F are stored.
func (s *Store) Save(name string, F *molframe.Frame) (string, error) {
	id := generateID()
	t := F.Tables()
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()
	b := t.Box
	ty := t.Types
	_, err = tx.Exec(`INSERT INTO snapshots (snapshot_id, name, attributes, created_at,
    xlo, xhi, ylo, yhi, zlo, zhi,
    atom_types, bond_types, angle_types, dihedral_types, improper_types)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, t.Present.String(), time.Now().UTC().Format(timeFormat),
		b[0].Lo, b[0].Hi, b[1].Lo, b[1].Hi, b[2].Lo, b[2].Hi,
		ty.Atom, ty.Bond, ty.Angle, ty.Dihedral, ty.Improper)
	if err != nil {
		return "", fmt.Errorf("saving snapshot: %w", err)
	}
	err = insertRows(tx, "INSERT INTO masses (snapshot_id, seq, type, mass) VALUES (?, ?, ?, ?)",
		len(t.Masses), func(i int) []any {
			m := t.Masses[i]
			return []any{id, i, m.Type, m.Value}
		})
	if err != nil {
		return "", fmt.Errorf("saving masses: %w", err)
	}
	err = insertRows(tx, `INSERT INTO atoms (snapshot_id, seq, atom_id, mol_id, type, charge, x, y, z, ix, iy, iz, label)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(t.Atoms), func(i int) []any {
			a := t.Atoms[i]
			return []any{id, i, a.ID, a.MolID, a.Type, a.Charge, a.Pos[0], a.Pos[1], a.Pos[2],
				a.Image[0], a.Image[1], a.Image[2], a.Label}
		})
	if err != nil {
		return "", fmt.Errorf("saving atoms: %w", err)
	}
	err = insertRows(tx, "INSERT INTO bonds (snapshot_id, seq, bond_id, type, atom1, atom2) VALUES (?, ?, ?, ?, ?, ?)",
		len(t.Bonds), func(i int) []any {
			v := t.Bonds[i]
			return []any{id, i, v.ID, v.Type, v.Atoms[0], v.Atoms[1]}
		})
	if err != nil {
		return "", fmt.Errorf("saving bonds: %w", err)
	}
	err = insertRows(tx, "INSERT INTO angles (snapshot_id, seq, angle_id, type, atom1, atom2, atom3) VALUES (?, ?, ?, ?, ?, ?, ?)",
		len(t.Angles), func(i int) []any {
			v := t.Angles[i]
			return []any{id, i, v.ID, v.Type, v.Atoms[0], v.Atoms[1], v.Atoms[2]}
		})
	if err != nil {
		return "", fmt.Errorf("saving angles: %w", err)
	}
	for _, d := range []struct {
		kind string
		rows []molframe.Dihedral
	}{{"dihedral", t.Dihedrals}, {"improper", t.Impropers}} {
		err = insertRows(tx, `INSERT INTO dihedrals (snapshot_id, kind, seq, dihedral_id, type, atom1, atom2, atom3, atom4)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			len(d.rows), func(i int) []any {
				v := d.rows[i]
				return []any{id, d.kind, i, v.ID, v.Type, v.Atoms[0], v.Atoms[1], v.Atoms[2], v.Atoms[3]}
			})
		if err != nil {
			return "", fmt.Errorf("saving %ss: %w", d.kind, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing snapshot: %w", err)
	}
	return id, nil
}

// queryRows runs query with args and calls scan for each row.
func (s *Store) queryRows(query string, scan func(*sql.Rows) error, args ...any) error {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Load returns a new frame with the contents of the snapshot id. It returns
// ErrNotFound if there is no such snapshot.
func (s *Store) Load(id string) (*molframe.Frame, error) {
	t := new(molframe.Tables)
	var attrs string
	b := &t.Box
	ty := &t.Types
	err := s.db.QueryRow(`SELECT attributes, xlo, xhi, ylo, yhi, zlo, zhi,
    atom_types, bond_types, angle_types, dihedral_types, improper_types
    FROM snapshots WHERE snapshot_id = ?`, id).Scan(&attrs,
		&b[0].Lo, &b[0].Hi, &b[1].Lo, &b[1].Hi, &b[2].Lo, &b[2].Hi,
		&ty.Atom, &ty.Bond, &ty.Angle, &ty.Dihedral, &ty.Improper)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", id, err)
	}
	t.Present, err = molframe.ParseAttributes(attrs)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", id, err)
	}
	err = s.queryRows("SELECT type, mass FROM masses WHERE snapshot_id = ? ORDER BY seq", func(r *sql.Rows) error {
		var m molframe.Mass
		if err := r.Scan(&m.Type, &m.Value); err != nil {
			return err
		}
		t.Masses = append(t.Masses, m)
		return nil
	}, id)
	if err != nil {
		return nil, fmt.Errorf("loading masses: %w", err)
	}
	err = s.queryRows(`SELECT atom_id, mol_id, type, charge, x, y, z, ix, iy, iz, label
    FROM atoms WHERE snapshot_id = ? ORDER BY seq`, func(r *sql.Rows) error {
		var a molframe.Atom
		if err := r.Scan(&a.ID, &a.MolID, &a.Type, &a.Charge, &a.Pos[0], &a.Pos[1], &a.Pos[2],
			&a.Image[0], &a.Image[1], &a.Image[2], &a.Label); err != nil {
			return err
		}
		t.Atoms = append(t.Atoms, a)
		return nil
	}, id)
	if err != nil {
		return nil, fmt.Errorf("loading atoms: %w", err)
	}
	err = s.queryRows("SELECT bond_id, type, atom1, atom2 FROM bonds WHERE snapshot_id = ? ORDER BY seq", func(r *sql.Rows) error {
		var v molframe.Bond
		if err := r.Scan(&v.ID, &v.Type, &v.Atoms[0], &v.Atoms[1]); err != nil {
			return err
		}
		t.Bonds = append(t.Bonds, v)
		return nil
	}, id)
	if err != nil {
		return nil, fmt.Errorf("loading bonds: %w", err)
	}
	err = s.queryRows("SELECT angle_id, type, atom1, atom2, atom3 FROM angles WHERE snapshot_id = ? ORDER BY seq", func(r *sql.Rows) error {
		var v molframe.Angle
		if err := r.Scan(&v.ID, &v.Type, &v.Atoms[0], &v.Atoms[1], &v.Atoms[2]); err != nil {
			return err
		}
		t.Angles = append(t.Angles, v)
		return nil
	}, id)
	if err != nil {
		return nil, fmt.Errorf("loading angles: %w", err)
	}
	for _, d := range []struct {
		kind string
		rows *[]molframe.Dihedral
	}{{"dihedral", &t.Dihedrals}, {"improper", &t.Impropers}} {
		err = s.queryRows(`SELECT dihedral_id, type, atom1, atom2, atom3, atom4
    FROM dihedrals WHERE snapshot_id = ? AND kind = ? ORDER BY seq`, func(r *sql.Rows) error {
			var v molframe.Dihedral
			if err := r.Scan(&v.ID, &v.Type, &v.Atoms[0], &v.Atoms[1], &v.Atoms[2], &v.Atoms[3]); err != nil {
				return err
			}
			*d.rows = append(*d.rows, v)
			return nil
		}, id, d.kind)
		if err != nil {
			return nil, fmt.Errorf("loading %ss: %w", d.kind, err)
		}
	}
	F, err := molframe.FromTables(t.Present, t)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", id, err)
	}
	return F, nil
}

// List returns every snapshot in the store, oldest first.
func (s *Store) List() ([]Snapshot, error) {
	var ret []Snapshot
	err := s.queryRows(`SELECT s.snapshot_id, s.name, s.attributes, s.created_at,
    (SELECT COUNT(*) FROM atoms a WHERE a.snapshot_id = s.snapshot_id)
    FROM snapshots s ORDER BY s.created_at, s.snapshot_id`, func(r *sql.Rows) error {
		var sn Snapshot
		var attrs, created string
		if err := r.Scan(&sn.ID, &sn.Name, &attrs, &created, &sn.NAtoms); err != nil {
			return err
		}
		var err error
		if sn.Attributes, err = molframe.ParseAttributes(attrs); err != nil {
			return err
		}
		if sn.Created, err = time.Parse(timeFormat, created); err != nil {
			return err
		}
		ret = append(ret, sn)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	return ret, nil
}

// Delete removes the snapshot id and all its rows. It returns ErrNotFound
// if there is no such snapshot.
func (s *Store) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()
	for _, table := range rowTables {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE snapshot_id = ?", id); err != nil {
			return fmt.Errorf("deleting from %s: %w", table, err)
		}
	}
	res, err := tx.Exec("DELETE FROM snapshots WHERE snapshot_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}
