// Copyright 2022 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	log "unknwon.dev/clog/v2"

	"gogs.io/identy/internal/conf"
	"gogs.io/identy/internal/identicon"
)

var Random = cli.Command{
	Name:  "random",
	Usage: "Generate an icon from random entropy",
	Description: `Random draws cell intensities from the system entropy source instead of
deriving them from a seed. Every invocation produces a different icon.`,
	Action: runRandom,
	Flags: []cli.Flag{
		stringFlag("config, c", "", "Custom configuration file path"),
		intFlag("radius", 0, "Number of cells along each quadrant axis, border included"),
		intFlag("border", 0, "Width of the quiet zone in cells"),
		boolFlag("dark", "Draw light patterns on a dark background"),
		intFlag("scale", 0, "Number of pixels to draw per cell"),
		intFlag("size", 0, "Side length of the output image in pixels, takes precedence over --scale"),
		stringFlag("output, o", "", "Write the PNG image to the given file path"),
		boolFlag("preview", "Print the icon to the terminal using block characters"),
		boolFlag("base64", "Print the PNG image as a Base64 string"),
		boolFlag("json", "Print the icon and its metadata as JSON"),
	},
}

func runRandom(c *cli.Context) error {
	err := conf.Init(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "init configuration")
	}
	conf.InitLogging()

	icon, err := identicon.Random(iconOptions(c))
	if err != nil {
		log.Fatal("Failed to generate icon: %v", err)
	}

	err = emitIcon(c, icon, "")
	if err != nil {
		log.Fatal("Failed to emit icon: %v", err)
	}

	log.Stop()
	return nil
}
