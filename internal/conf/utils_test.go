// Copyright 2020 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ensureAbs(t *testing.T) {
	wd := WorkDir()

	tests := []struct {
		path string
		want string
	}{
		{
			path: "data/icons",
			want: filepath.Join(wd, "data", "icons"),
		}, {
			path: wd,
			want: wd,
		},
	}
	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, test.want, ensureAbs(test.path))
		})
	}
}
