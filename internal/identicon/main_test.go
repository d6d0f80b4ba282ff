// Copyright 2022 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package identicon

import (
	"flag"
	"fmt"
	"os"
	"testing"

	log "unknwon.dev/clog/v2"

	"gogs.io/identy/internal/testutil"
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Verbose() {
		err := log.NewConsole()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	} else {
		// Register a noop logger to swallow render warnings.
		err := log.New("noop", testutil.InitNoopLogger)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
	os.Exit(m.Run())
}
