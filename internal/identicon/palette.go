// Copyright 2022 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package identicon

// levelStep is the intensity distance between two adjacent palette
// levels. A cell's shade index is its intensity divided by levelStep.
const levelStep = 0x3f

// palette holds the five canonical grayscale levels and the
// block-character shade each one renders as in text previews.
var palette = []struct {
	level uint8
	shade string
}{
	{0x00, "  "},
	{0x3f, "░░"},
	{0x7e, "▒▒"},
	{0xbd, "▓▓"},
	{0xff, "██"},
}

// shade returns the two-character block representation of a cell
// intensity. Intensities between palette levels quantize downwards.
func shade(v uint8) string {
	return palette[v/levelStep].shade
}

// backgroundLevel returns the border and background intensity: the
// brightest palette level on light icons, the darkest on dark ones.
func backgroundLevel(dark bool) uint8 {
	if dark {
		return palette[0].level
	}
	return palette[len(palette)-1].level
}
