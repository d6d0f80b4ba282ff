// Copyright 2022 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package identicon

import (
	"encoding/hex"
	"io"

	"github.com/cockroachdb/errors"

	"gogs.io/identy/internal/cryptoutil"
)

// digestPairs is the number of cell values a digest yields: the
// 64-character folded digest, doubled and interleaved, is 128 hex
// characters, i.e. 64 byte pairs.
const digestPairs = 64

// foldedDigest returns the seed's MD5 hex digest prefixed with its own
// reversal. The fold is frozen; changing it would change every icon
// ever derived from a seed.
func foldedDigest(seed string) string {
	h := cryptoutil.MD5(seed)
	b := []byte(h)
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
	return string(b) + h
}

// interleave rearranges s by stride: first the characters at offsets
// 0, v, 2v, ..., then those from offset 1, and so on through offset
// v-1. The result is a permutation of s. Frozen for the same reason as
// the fold.
func interleave(s string, v int) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < v; i++ {
		for j := i; j < len(s); j += v {
			out = append(out, s[j])
		}
	}
	return string(out)
}

// digestCells derives size*size cell intensities for the seed under the
// given variant. Pair indices wrap around when the quadrant needs more
// than digestPairs values, so derivation succeeds for any quadrant
// size.
func digestCells(seed string, variant, size int) ([]uint8, error) {
	folded := foldedDigest(seed)
	pairs, err := hex.DecodeString(interleave(folded+folded, variant))
	if err != nil {
		return nil, errors.Wrap(err, "decode digest pairs")
	}

	cells := make([]uint8, size*size)
	for i := range cells {
		cells[i] = pairs[i%digestPairs]
	}
	return cells, nil
}

// randomCells reads size*size cell intensities from r.
func randomCells(r io.Reader, size int) ([]uint8, error) {
	cells := make([]uint8, size*size)
	if _, err := io.ReadFull(r, cells); err != nil {
		return nil, errors.Wrap(err, "read entropy")
	}
	return cells, nil
}
