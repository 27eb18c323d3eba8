// Copyright 2026 The karaoke-picker Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTSV reads songs from tab separated lines of the form
//
//	id	code	title	artist	country
//
// Empty lines and lines starting with '#' are skipped.
func ReadTSV(r io.Reader) ([]Song, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = 5
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	var songs []Song
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return songs, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("line %d: invalid id %q", line, rec[0])
		}
		songs = append(songs, Song{
			ID:      id,
			Code:    strings.TrimSpace(rec[1]),
			Title:   strings.TrimSpace(rec[2]),
			Artist:  strings.TrimSpace(rec[3]),
			Country: strings.ToUpper(strings.TrimSpace(rec[4])),
		})
	}
}
