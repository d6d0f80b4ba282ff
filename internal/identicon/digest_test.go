// Copyright 2022 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package identicon

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_foldedDigest(t *testing.T) {
	tests := []struct {
		seed string
		want string
	}{
		{
			seed: "",
			want: "e7248fce8990089e402b00f89dc8d14d" + "d41d8cd98f00b204e9800998ecf8427e",
		}, {
			seed: "abc",
			want: "27f71e822d7f36960bf42dc389051009" + "900150983cd24fb0d6963f7d28e17f72",
		},
	}
	for _, test := range tests {
		t.Run(test.seed, func(t *testing.T) {
			assert.Equal(t, test.want, foldedDigest(test.seed))
		})
	}
}

func Test_interleave(t *testing.T) {
	tests := []struct {
		s    string
		v    int
		want string
	}{
		{s: "abcdef", v: 1, want: "abcdef"},
		{s: "abcdef", v: 2, want: "acebdf"},
		{s: "abcdef", v: 3, want: "adbecf"},
		{s: "abcdefg", v: 3, want: "adgbecf"},
	}
	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, test.want, interleave(test.s, test.v))
		})
	}

	// Cross-check every variant against a single-pass bucket
	// formulation over a doubled digest.
	doubled := foldedDigest("identy")
	doubled += doubled
	for v := 1; v <= MaxVariant; v++ {
		buckets := make([][]byte, v)
		for i := 0; i < len(doubled); i++ {
			buckets[i%v] = append(buckets[i%v], doubled[i])
		}
		want := make([]byte, 0, len(doubled))
		for _, b := range buckets {
			want = append(want, b...)
		}

		assert.Equal(t, string(want), interleave(doubled, v), "variant %d", v)
	}
}

func Test_digestCells(t *testing.T) {
	t.Run("frozen vector", func(t *testing.T) {
		cells, err := digestCells("", 1, 3)
		require.NoError(t, err)
		assert.Equal(t, []uint8{0xe7, 0x24, 0x8f, 0xce, 0x89, 0x90, 0x08, 0x9e, 0x40}, cells)
	})

	t.Run("variants disagree", func(t *testing.T) {
		one, err := digestCells("abc", 1, 3)
		require.NoError(t, err)
		two, err := digestCells("abc", 2, 3)
		require.NoError(t, err)
		assert.NotEqual(t, one, two)
	})

	t.Run("wrap around", func(t *testing.T) {
		cells, err := digestCells("", 1, 9)
		require.NoError(t, err)
		require.Len(t, cells, 81)
		assert.Equal(t, cells[:17], cells[digestPairs:])
		assert.Equal(t, uint8(0xe7), cells[digestPairs])
	})
}

func Test_randomCells(t *testing.T) {
	entropy := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	cells, err := randomCells(bytes.NewReader(entropy), 3)
	require.NoError(t, err)
	assert.Equal(t, entropy, cells)

	_, err = randomCells(bytes.NewReader(entropy[:5]), 3)
	assert.Error(t, err)
}
