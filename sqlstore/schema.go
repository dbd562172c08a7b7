/*
 * schema.go, part of molframe
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

package sqlstore

// Schema DDL. Every row table is keyed by the snapshot and the position (seq)
// of the row in its table, so the row order of a frame survives a round trip.
const (
	createSnapshots = `CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    attributes TEXT NOT NULL,
    created_at TEXT NOT NULL,
    xlo REAL NOT NULL, xhi REAL NOT NULL,
    ylo REAL NOT NULL, yhi REAL NOT NULL,
    zlo REAL NOT NULL, zhi REAL NOT NULL,
    atom_types INTEGER NOT NULL,
    bond_types INTEGER NOT NULL,
    angle_types INTEGER NOT NULL,
    dihedral_types INTEGER NOT NULL,
    improper_types INTEGER NOT NULL
);`

	createMasses = `CREATE TABLE IF NOT EXISTS masses (
    snapshot_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    type INTEGER NOT NULL,
    mass REAL NOT NULL,
    PRIMARY KEY (snapshot_id, seq),
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);`

	createAtoms = `CREATE TABLE IF NOT EXISTS atoms (
    snapshot_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    atom_id INTEGER NOT NULL,
    mol_id INTEGER NOT NULL,
    type INTEGER NOT NULL,
    charge REAL NOT NULL,
    x REAL NOT NULL, y REAL NOT NULL, z REAL NOT NULL,
    ix INTEGER NOT NULL, iy INTEGER NOT NULL, iz INTEGER NOT NULL,
    label TEXT NOT NULL,
    PRIMARY KEY (snapshot_id, seq),
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);`

	createBonds = `CREATE TABLE IF NOT EXISTS bonds (
    snapshot_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    bond_id INTEGER NOT NULL,
    type INTEGER NOT NULL,
    atom1 INTEGER NOT NULL, atom2 INTEGER NOT NULL,
    PRIMARY KEY (snapshot_id, seq),
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);`

	createAngles = `CREATE TABLE IF NOT EXISTS angles (
    snapshot_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    angle_id INTEGER NOT NULL,
    type INTEGER NOT NULL,
    atom1 INTEGER NOT NULL, atom2 INTEGER NOT NULL, atom3 INTEGER NOT NULL,
    PRIMARY KEY (snapshot_id, seq),
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);`

	// dihedrals and impropers share a layout, kind tells them apart.
	createDihedrals = `CREATE TABLE IF NOT EXISTS dihedrals (
    snapshot_id TEXT NOT NULL,
    kind TEXT NOT NULL CHECK (kind IN ('dihedral', 'improper')),
    seq INTEGER NOT NULL,
    dihedral_id INTEGER NOT NULL,
    type INTEGER NOT NULL,
    atom1 INTEGER NOT NULL, atom2 INTEGER NOT NULL, atom3 INTEGER NOT NULL, atom4 INTEGER NOT NULL,
    PRIMARY KEY (snapshot_id, kind, seq),
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);`
)

var schema = []string{createSnapshots, createMasses, createAtoms, createBonds, createAngles, createDihedrals}

// the row tables, in the order they are emptied on Delete.
var rowTables = []string{"masses", "atoms", "bonds", "angles", "dihedrals"}
