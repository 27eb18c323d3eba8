// Copyright 2026 The karaoke-picker Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"slices"

	"github.com/Thabuki/karaoke-picker/share"
)

// A Selection is the ordered set of songs picked from a catalog.
// Songs not in the catalog are never selected.
type Selection struct {
	cat *Catalog
	ids []int
	set map[int]bool
}

// NewSelection returns an empty selection from c.
func NewSelection(c *Catalog) *Selection {
	return &Selection{cat: c, set: make(map[int]bool)}
}

// Select adds the song with the given ID.  It reports whether the
// selection changed.
func (s *Selection) Select(id int) bool {
	if s.set[id] {
		return false
	}
	if _, ok := s.cat.Song(id); !ok {
		return false
	}
	s.set[id] = true
	s.ids = append(s.ids, id)
	return true
}

// Deselect removes the song with the given ID.  It reports whether
// the selection changed.
func (s *Selection) Deselect(id int) bool {
	if !s.set[id] {
		return false
	}
	delete(s.set, id)
	s.ids = slices.DeleteFunc(s.ids, func(v int) bool { return v == id })
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
	clear(s.set)
}

// Len returns the number of selected songs.
func (s *Selection) Len() int { return len(s.ids) }

// IDs returns the selected IDs in the order they were selected.
func (s *Selection) IDs() []int { return slices.Clone(s.ids) }

// Songs returns the selected songs in catalog order.
func (s *Selection) Songs() []Song {
	ids := slices.Clone(s.ids)
	slices.SortFunc(ids, s.cat.less)
	return s.cat.Lookup(ids)
}

// Available returns the songs not selected, in catalog order.
func (s *Selection) Available() []Song {
	r := make([]Song, 0, len(s.cat.songs)-len(s.ids))
	for _, song := range s.cat.songs {
		if !s.set[song.ID] {
			r = append(r, song)
		}
	}
	return r
}

// Load replaces the selection with the songs named by a share link,
// skipping unknown IDs.  The selection is left unchanged on error.
func (s *Selection) Load(link string) error {
	ids, err := share.Decode(link)
	if err != nil {
		return err
	}
	s.Clear()
	for _, id := range ids {
		s.Select(id)
	}
	return nil
}

// Link returns base with the selection's share fragment.
func (s *Selection) Link(base string) string {
	return share.URL(base, s.ids)
}
