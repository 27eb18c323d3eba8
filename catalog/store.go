// Copyright 2026 The karaoke-picker Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store keeps songs in an SQLite database.
type Store struct {
	conn *sql.DB
}

// Open opens the database at path, creating it and its schema if
// needed.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1) // one writer
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Put inserts songs, replacing those with the same ID, in one
// transaction.
func (s *Store) Put(songs ...Song) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()
	stmt, err := tx.Prepare(`
		INSERT INTO songs (id, code, title, artist, country)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			code = excluded.code,
			title = excluded.title,
			artist = excluded.artist,
			country = excluded.country,
			updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, song := range songs {
		if song.ID <= 0 {
			return fmt.Errorf("song %q: invalid id %d", song.Title, song.ID)
		}
		if _, err := stmt.Exec(song.ID, song.Code, song.Title,
			song.Artist, song.Country); err != nil {
			return fmt.Errorf("failed to store song %d: %w", song.ID, err)
		}
	}
	return tx.Commit()
}

// Delete removes the songs with the given IDs.
func (s *Store) Delete(ids ...int) error {
	for _, id := range ids {
		if _, err := s.conn.Exec(`DELETE FROM songs WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete song %d: %w", id, err)
		}
	}
	return nil
}

// Songs returns every stored song ordered by ID.
func (s *Store) Songs() ([]Song, error) {
	rows, err := s.conn.Query(`
		SELECT id, code, title, artist, country
		FROM songs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Code, &song.Title,
			&song.Artist, &song.Country); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// Load returns a catalog of every stored song.
func (s *Store) Load() (*Catalog, error) {
	songs, err := s.Songs()
	if err != nil {
		return nil, err
	}
	return New(songs), nil
}
