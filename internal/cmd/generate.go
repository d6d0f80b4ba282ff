// Copyright 2022 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	log "unknwon.dev/clog/v2"

	"gogs.io/identy/internal/conf"
	"gogs.io/identy/internal/identicon"
)

var Generate = cli.Command{
	Name:  "generate",
	Usage: "Generate the icon of a seed",
	Description: `Generate derives a deterministic icon from the given seed and renders it
as a grayscale PNG image. The same seed with the same geometry, variant, and
background always produces the exact same icon, which makes the output suitable
as a default avatar for a user name or an email address.`,
	Action: runGenerate,
	Flags: []cli.Flag{
		stringFlag("config, c", "", "Custom configuration file path"),
		stringFlag("seed, s", "", "Seed string to derive the icon from"),
		intFlag("variant", 0, "Digest interleave variant, must be in [1, 63]"),
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

func runGenerate(c *cli.Context) error {
	err := conf.Init(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "init configuration")
	}
	conf.InitLogging()

	seed := c.String("seed")
	if !c.IsSet("seed") {
		if c.NArg() == 0 {
			return errors.New("seed is not specified")
		}
		seed = c.Args().First()
	}

	icon, err := identicon.FromString(seed, iconOptions(c))
	if err != nil {
		log.Fatal("Failed to generate icon: %v", err)
	}

	err = emitIcon(c, icon, seed)
	if err != nil {
		log.Fatal("Failed to emit icon: %v", err)
	}

	log.Stop()
	return nil
}

// iconOptions assembles icon options from the [icon] configuration section
// with explicitly set flags taking precedence.
func iconOptions(c *cli.Context) *identicon.Options {
	opts := &identicon.Options{
		Radius:  conf.Icon.Radius,
		Border:  conf.Icon.Border,
		Variant: conf.Icon.Variant,
		Dark:    conf.Icon.Dark,
	}
	if c.IsSet("radius") {
		opts.Radius = c.Int("radius")
	}
	if c.IsSet("border") {
		opts.Border = c.Int("border")
	}
	if c.IsSet("variant") {
		opts.Variant = c.Int("variant")
	}
	if c.Bool("dark") {
		opts.Dark = true
	}
	return opts
}

// iconInfo is the machine-readable envelope printed by the --json flag.
type iconInfo struct {
	Brand   string `json:"brand"`
	Version string `json:"version"`
	Seed    string `json:"seed"`
	Variant int    `json:"variant"`
	Side    int    `json:"side"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	PNG     string `json:"png"`
}

// emitIcon renders the icon and writes every output the flags ask for. When no
// output flag is given, it prints the terminal preview.
func emitIcon(c *cli.Context, icon *identicon.Icon, seed string) error {
	var raster *identicon.Raster
	var err error
	if c.IsSet("scale") && !c.IsSet("size") {
		raster, err = icon.Render(c.Int("scale"))
	} else {
		size := conf.Icon.Size
		if c.IsSet("size") {
			size = c.Int("size")
		}
		raster, err = icon.RenderSize(size)
	}
	if err != nil {
		return errors.Wrap(err, "render")
	}

	if c.IsSet("output") {
		output := c.String("output")
		if err = raster.WriteFile(output); err != nil {
			return errors.Wrapf(err, "write %q", output)
		}
		log.Info("Icon saved to: %s", output)
	}

	switch {
	case c.Bool("json"):
		bounds := raster.Image().Bounds()
		err = jsoniter.NewEncoder(os.Stdout).Encode(iconInfo{
			Brand:   conf.App.BrandName,
			Version: conf.App.Version,
			Seed:    seed,
			Variant: icon.Variant(),
			Side:    icon.Side(),
			Width:   bounds.Dx(),
			Height:  bounds.Dy(),
			PNG:     raster.Base64(),
		})
		if err != nil {
			return errors.Wrap(err, "encode JSON")
		}

	case c.Bool("base64"):
		fmt.Println(raster.Base64())

	case c.Bool("preview") || !c.IsSet("output"):
		fmt.Println(icon)
	}
	return nil
}
