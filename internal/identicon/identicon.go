// Copyright 2022 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package identicon derives deterministic grayscale identity icons from
// seed strings.
//
// An icon starts as a small quadrant of 8-bit cells filled from the MD5
// digest of the seed (or from random entropy), gets a quiet-zone border
// on its top and left, and is mirrored right and down so the result is
// symmetric about both midlines and framed on all four edges. The same
// seed and variant always produce the same icon.
package identicon

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	log "unknwon.dev/clog/v2"
)

// Default icon geometry. The radius counts the border, so the default
// digest quadrant is 3x3 cells.
const (
	DefaultRadius  = 4
	DefaultBorder  = 1
	DefaultVariant = 1

	// MaxVariant is the largest digest interleave stride. Larger
	// strides would leave empty slices in the rearranged digest.
	MaxVariant = 0x3f
)

var (
	// ErrUnsupportedVariant is returned for variants outside [1, MaxVariant].
	ErrUnsupportedVariant = errors.New("unsupported variant")
	// ErrInvalidRadius is returned for non-positive radii.
	ErrInvalidRadius = errors.New("invalid radius")
	// ErrInvalidBorder is returned when the border is negative or not
	// smaller than the radius.
	ErrInvalidBorder = errors.New("invalid border")
	// ErrInvalidScale is returned for non-positive render scales and sizes.
	ErrInvalidScale = errors.New("invalid scale")
)

// Options controls the geometry and coloring of generated icons.
type Options struct {
	// Radius is half the side of the icon in cells, border included.
	Radius int
	// Border is the thickness of the quiet zone in cells. It must be
	// smaller than Radius.
	Border int
	// Variant selects the digest interleave rule, in [1, MaxVariant].
	Variant int
	// Dark renders on a black background instead of a white one.
	Dark bool
	// Rand is the entropy source used by Random. It defaults to
	// crypto/rand.Reader.
	Rand io.Reader
}

// DefaultOptions returns the options used when none are given: radius 4,
// border 1, variant 1, light background.
func DefaultOptions() *Options {
	return &Options{
		Radius:  DefaultRadius,
		Border:  DefaultBorder,
		Variant: DefaultVariant,
	}
}

// validateGeometry rejects impossible radius and border values before
// any derivation work happens.
func validateGeometry(radius, border int) error {
	if radius < 1 {
		return errors.Wrapf(ErrInvalidRadius, "the radius (%d) must be a positive integer", radius)
	}
	if border < 0 {
		return errors.Wrapf(ErrInvalidBorder, "negative border (%d)", border)
	}
	if border >= radius {
		return errors.Wrapf(ErrInvalidBorder, "too much border (%d), max (%d)", border, radius-1)
	}
	return nil
}

func (opts *Options) entropy() io.Reader {
	if opts.Rand != nil {
		return opts.Rand
	}
	return rand.Reader
}

// Icon is an immutable identicon: a cell quadrant plus the border
// width, background level and variant tag it was derived with.
type Icon struct {
	quadrant Grid
	border   int
	level    uint8
	variant  int
}

// FromString derives an icon from the given seed string. Any string is
// a valid seed, including the empty one. A nil opts means
// DefaultOptions.
func FromString(seed string, opts *Options) (*Icon, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := validateGeometry(opts.Radius, opts.Border); err != nil {
		return nil, err
	}
	if opts.Variant < 1 || opts.Variant > MaxVariant {
		return nil, errors.Wrapf(ErrUnsupportedVariant, "variant (%d) is outside [1, %d]", opts.Variant, MaxVariant)
	}

	size := opts.Radius - opts.Border
	cells, err := digestCells(seed, opts.Variant, size)
	if err != nil {
		return nil, err
	}
	return &Icon{
		quadrant: splitRows(cells, size),
		border:   opts.Border,
		level:    backgroundLevel(opts.Dark),
		variant:  opts.Variant,
	}, nil
}

// Random generates an icon from the options' entropy source. The icon
// carries variant tag 0 since no digest rule was involved.
func Random(opts *Options) (*Icon, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := validateGeometry(opts.Radius, opts.Border); err != nil {
		return nil, err
	}

	size := opts.Radius - opts.Border
	cells, err := randomCells(opts.entropy(), size)
	if err != nil {
		return nil, err
	}
	return &Icon{
		quadrant: splitRows(cells, size),
		border:   opts.Border,
		level:    backgroundLevel(opts.Dark),
		variant:  0,
	}, nil
}

// FromArray builds an icon from raw quadrant intensities split into the
// given number of rows. The icon carries variant tag 0. Only the Border
// and Dark options apply; the quadrant size is dictated by the values.
func FromArray(values []uint8, rows int, opts *Options) (*Icon, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if rows < 1 {
		return nil, errors.Newf("rows (%d) must be a positive integer", rows)
	}
	if len(values) == 0 || len(values)%rows != 0 {
		return nil, errors.Newf("%d values don't fit in %d rows", len(values), rows)
	}
	if opts.Border < 0 {
		return nil, errors.Wrapf(ErrInvalidBorder, "negative border (%d)", opts.Border)
	}

	return &Icon{
		quadrant: splitRows(values, len(values)/rows),
		border:   opts.Border,
		level:    backgroundLevel(opts.Dark),
		variant:  0,
	}, nil
}

// Side returns the side length in cells of the full mirrored grid,
// border included.
func (i *Icon) Side() int {
	return 2 * (len(i.quadrant) + i.border)
}

// Variant returns the variant tag the icon was derived with. Icons from
// Random and FromArray carry 0.
func (i *Icon) Variant() int {
	return i.variant
}

// Grid returns a copy of the full mirrored grid at one cell per entry,
// border included.
func (i *Icon) Grid() Grid {
	return i.quadrant.bordered(i.border, i.level).unfolded()
}

// String renders the block-character preview: one line per grid row,
// two characters per cell, quantized to the five palette shades. The
// PNG render keeps raw intensities instead, so the two may differ in
// tone.
func (i *Icon) String() string {
	var sb strings.Builder
	for y, row := range i.Grid() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			sb.WriteString(shade(v))
		}
	}
	return sb.String()
}

// Invert returns a copy of the icon with every intensity flipped, so
// 255 becomes 0 and vice versa. The background level flips with the
// cells.
func (i *Icon) Invert() *Icon {
	q := make(Grid, len(i.quadrant))
	for y, row := range i.quadrant {
		q[y] = make([]uint8, len(row))
		for x, v := range row {
			q[y][x] = 0xff - v
		}
	}
	return &Icon{
		quadrant: q,
		border:   i.border,
		level:    0xff - i.level,
		variant:  i.variant,
	}
}

// Render rasterizes the icon at scale pixels per cell.
func (i *Icon) Render(scale int) (*Raster, error) {
	if scale < 1 {
		return nil, errors.Wrapf(ErrInvalidScale, "the factor (%d) must be a positive integer", scale)
	}
	return i.raster(scale)
}

// RenderSize rasterizes the icon to approximately size pixels across.
// Sizes below the icon side clamp to the minimum, and sizes that are
// not an exact multiple of the side floor the per-cell scale; both
// log a warning instead of failing.
func (i *Icon) RenderSize(size int) (*Raster, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidScale, "the size (%d) must be a positive integer", size)
	}

	side := i.Side()
	if size < side {
		log.Warn("The requested size is too small (%d). Using minimum (%d).", size, side)
		size = side
	}
	scale := size / side
	if size%side != 0 {
		log.Warn("Loose scale (1:%.1f), fixed to 1:%d. Output size %d*%d px.",
			float64(size)/float64(side), scale, side*scale, side*scale)
	}
	return i.raster(scale)
}

func (i *Icon) raster(scale int) (*Raster, error) {
	grid := i.quadrant.bordered(i.border, i.level).scaled(scale).unfolded()

	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y, row := range grid {
		copy(img.Pix[y*img.Stride:], row)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encode PNG")
	}
	return &Raster{img: img, png: buf.Bytes()}, nil
}

// Raster is a rendered icon: the grayscale pixel buffer plus its
// PNG-encoded form.
type Raster struct {
	img *image.Gray
	png []byte
}

// Image returns the grayscale pixel buffer.
func (r *Raster) Image() *image.Gray {
	return r.img
}

// PNG returns the PNG-encoded bytes.
func (r *Raster) PNG() []byte {
	return r.png
}

// Base64 returns the PNG bytes in standard base64 encoding.
func (r *Raster) Base64() string {
	return base64.StdEncoding.EncodeToString(r.png)
}

// WriteFile saves the PNG to path, creating parent directories as
// needed.
func (r *Raster) WriteFile(path string) error {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return errors.Wrap(err, "create output directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer func() { _ = f.Close() }()

	_, err = f.Write(r.png)
	if err != nil {
		return errors.Wrap(err, "write output file")
	}
	return nil
}
