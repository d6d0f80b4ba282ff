// Copyright 2020 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

// ℹ️ README: This file contains static values that should only be set at initialization time.

// CustomConf returns the absolute path of custom configuration file that is used.
var CustomConf string

var (
	// Application settings
	App struct {
		// ⚠️ WARNING: Should only be set by the main package (i.e. "identy.go").
		Version string `ini:"-"`

		BrandName string
	}

	// Icon settings: [icon]
	Icon IconOpts
)

// IconOpts contains the default geometry and rendering values applied to
// icons when a command does not override them.
type IconOpts struct {
	Radius  int
	Border  int
	Variant int
	Dark    bool
	Size    int
}
