// Copyright 2022 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Identy is a deterministic identity icon generator: the same seed always
// renders the same grayscale icon.
package main

import (
	"os"

	"github.com/urfave/cli"
	log "unknwon.dev/clog/v2"

	"gogs.io/identy/internal/cmd"
	"gogs.io/identy/internal/conf"
)

func init() {
	conf.App.Version = Version
}

// Version is the current version of the application.
const Version = "0.3.0+dev"

func main() {
	app := cli.NewApp()
	app.Name = "Identy"
	app.Usage = "A deterministic identity icon generator"
	app.Version = Version
	app.Commands = []cli.Command{
		cmd.Generate,
		cmd.Random,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal("Failed to start application: %v", err)
	}
}
