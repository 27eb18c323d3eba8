// Copyright 2026 The karaoke-picker Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package share encodes a selection of song IDs in a URL fragment.

The fragment is "#s=" followed by the base64 encoding of the IDs
joined by commas, so that the selection "3,14,15" becomes
"#s=MywxNCwxNQ==".
*/
package share // import "github.com/Thabuki/karaoke-picker/share"

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

// Prefix starts every non-empty fragment.
const Prefix = "#s="

var ErrFragment = errors.New("share: malformed fragment")

// Fragment returns the URL fragment for ids, or "" if ids is empty.
func Fragment(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	return Prefix + base64.StdEncoding.EncodeToString([]byte(join(ids)))
}

func join(ids []int) string {
	b := make([]byte, 0, len(ids)*4)
	for i, id := range ids {
		if i != 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(id), 10)
	}
	return string(b)
}

// URL returns base with its fragment, if any, replaced by the
// fragment for ids.
func URL(base string, ids []int) string {
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	return base + Fragment(ids)
}

// Decode returns the IDs held in s, which is a fragment starting with
// '#' or a URL containing one.  A fragment shorter than 3 bytes holds
// no IDs.  Tokens that do not start with a number, and numbers less
// than 1, are dropped.  Decode returns ErrFragment if the payload is
// not valid base64.
func Decode(s string) ([]int, error) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[i:]
	} else {
		s = ""
	}
	if len(s) < len(Prefix) {
		return nil, nil
	}
	enc := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, s[len(Prefix):])
	if len(enc)&3 == 0 {
		enc = strings.TrimSuffix(strings.TrimSuffix(enc, "="), "=")
	}
	b, err := base64.RawStdEncoding.DecodeString(enc)
	if err != nil {
		return nil, ErrFragment
	}
	var ids []int
	for _, tok := range strings.Split(string(b), ",") {
		if id, ok := leadingInt(tok); ok && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// leadingInt parses the decimal number at the start of s, after
// optional white space and sign.  Trailing garbage is ignored.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	d := n
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}
	if n == d {
		return 0, false
	}
	v, err := strconv.Atoi(s[:n])
	return v, err == nil
}
