// Copyright 2026 The karaoke-picker Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package catalog holds the karaoke song list: ordering, search,
lookup by ID and the working selection that share links carry.

Songs are listed Nacional (Brazilian) first, then Internacional, each
group ordered by artist under Brazilian Portuguese collation.
*/
package catalog // import "github.com/Thabuki/karaoke-picker/catalog"

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Regions.
const (
	Nacional      = "Nacional"
	Internacional = "Internacional"
	All           = "all"
)

var lang = language.BrazilianPortuguese

// A Song is one entry of the karaoke machine's book.
type Song struct {
	ID      int    // positive, unique
	Code    string // machine code, e.g. "05012"
	Title   string
	Artist  string
	Country string // ISO 3166 alpha-3, "BRA" for Brazil
}

// Region returns Nacional for Brazilian songs and Internacional for
// the rest.
func (s Song) Region() string {
	if s.Country == "BRA" {
		return Nacional
	}
	return Internacional
}

// A Catalog is an ordered, immutable song list.
type Catalog struct {
	songs []Song
	index map[int]int // ID to position in songs
}

// New returns a catalog of songs in display order.  Of songs sharing
// an ID the first one is kept.
func New(songs []Song) *Catalog {
	c := &Catalog{
		songs: make([]Song, 0, len(songs)),
		index: make(map[int]int, len(songs)),
	}
	seen := make(map[int]bool, len(songs))
	for _, s := range songs {
		if !seen[s.ID] {
			seen[s.ID] = true
			c.songs = append(c.songs, s)
		}
	}
	coll := collate.New(lang)
	slices.SortStableFunc(c.songs, func(a, b Song) int {
		if ra, rb := a.Region(), b.Region(); ra != rb {
			if ra == Nacional {
				return -1
			}
			return 1
		}
		return coll.CompareString(a.Artist, b.Artist)
	})
	for i, s := range c.songs {
		c.index[s.ID] = i
	}
	return c
}

// Len returns the number of songs.
func (c *Catalog) Len() int { return len(c.songs) }

// Songs returns the songs in display order.
func (c *Catalog) Songs() []Song { return slices.Clone(c.songs) }

// Song returns the song with the given ID.
func (c *Catalog) Song(id int) (Song, bool) {
	i, ok := c.index[id]
	if !ok {
		return Song{}, false
	}
	return c.songs[i], true
}

// Lookup returns the songs with the given IDs in the order of ids,
// skipping unknown IDs.
func (c *Catalog) Lookup(ids []int) []Song {
	var r []Song
	for _, id := range ids {
		if s, ok := c.Song(id); ok {
			r = append(r, s)
		}
	}
	return r
}

// less reports whether the song with ID a is listed before b.
func (c *Catalog) less(a, b int) int {
	return c.index[a] - c.index[b]
}

// Filter returns the songs in region (All or "" for any) whose title,
// artist or code contains query, ignoring case.  An empty query
// matches every song.
func Filter(songs []Song, region, query string) []Song {
	lower := cases.Lower(lang)
	q := lower.String(query)
	var r []Song
	for _, s := range songs {
		if region != "" && region != All && s.Region() != region {
			continue
		}
		if q != "" &&
			!strings.Contains(lower.String(s.Title), q) &&
			!strings.Contains(lower.String(s.Artist), q) &&
			!strings.Contains(lower.String(s.Code), q) {
			continue
		}
		r = append(r, s)
	}
	return r
}

// Letters returns the index letters of the artists of songs in
// alphabet order: "#" for a leading digit, "A" to "Z" otherwise.
// Artists starting with anything else get no letter.
func Letters(songs []Song) []string {
	var have [27]bool
	upper := cases.Upper(lang)
	for _, s := range songs {
		r, _ := utf8.DecodeRuneInString(s.Artist)
		switch c := upper.String(string(r)); {
		case "0" <= c && c <= "9":
			have[0] = true
		case "A" <= c && c <= "Z":
			have[c[0]-'A'+1] = true
		}
	}
	var r []string
	for i, ok := range have {
		if !ok {
			continue
		}
		if i == 0 {
			r = append(r, "#")
		} else {
			r = append(r, string(rune('A'+i-1)))
		}
	}
	return r
}
