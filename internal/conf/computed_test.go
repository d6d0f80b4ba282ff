// Copyright 2020 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"gogs.io/identy/internal/testutil"
)

func TestWorkDirHelper(_ *testing.T) {
	if !testutil.WantHelperProcess() {
		return
	}

	fmt.Fprintln(os.Stdout, WorkDir())
}

func TestWorkDir(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{env: "IDENTY_WORK_DIR=/tmp", want: "/tmp"},
		{env: "", want: WorkDir()},
	}
	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			out, err := testutil.Exec("TestWorkDirHelper", test.env)
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, test.want, out)
		})
	}
}

func TestCustomDirHelper(_ *testing.T) {
	if !testutil.WantHelperProcess() {
		return
	}

	fmt.Fprintln(os.Stdout, CustomDir())
}

func TestCustomDir(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{env: "IDENTY_CUSTOM=/tmp", want: "/tmp"},
		{env: "", want: CustomDir()},
	}
	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			out, err := testutil.Exec("TestCustomDirHelper", test.env)
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, test.want, out)
		})
	}
}
