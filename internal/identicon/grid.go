// Copyright 2022 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package identicon

// Grid is a rectangle of 8-bit grayscale cells, one slice per row.
type Grid [][]uint8

// clone returns a deep copy of g.
func (g Grid) clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = append([]uint8(nil), row...)
	}
	return c
}

// bordered returns a copy of g with size rows of level on top and size
// columns of level on the left. The mirror step later turns this into a
// frame around all four sides.
func (g Grid) bordered(size int, level uint8) Grid {
	if size == 0 {
		return g.clone()
	}

	width := size
	if len(g) > 0 {
		width += len(g[0])
	}

	b := make(Grid, 0, len(g)+size)
	for y := 0; y < size; y++ {
		row := make([]uint8, width)
		for x := range row {
			row[x] = level
		}
		b = append(b, row)
	}
	for _, row := range g {
		r := make([]uint8, 0, width)
		for x := 0; x < size; x++ {
			r = append(r, level)
		}
		b = append(b, append(r, row...))
	}
	return b
}

// scaled returns a copy of g with every cell repeated factor times in
// both directions.
func (g Grid) scaled(factor int) Grid {
	if factor == 1 {
		return g.clone()
	}

	s := make(Grid, 0, len(g)*factor)
	for _, row := range g {
		wide := make([]uint8, 0, len(row)*factor)
		for _, v := range row {
			for i := 0; i < factor; i++ {
				wide = append(wide, v)
			}
		}
		s = append(s, wide)
		for i := 1; i < factor; i++ {
			s = append(s, append([]uint8(nil), wide...))
		}
	}
	return s
}

// unfolded mirrors every row to the right, then the row list downwards,
// producing symmetry about both midlines.
func (g Grid) unfolded() Grid {
	u := make(Grid, 0, 2*len(g))
	for _, row := range g {
		m := make([]uint8, 0, 2*len(row))
		m = append(m, row...)
		for x := len(row) - 1; x >= 0; x-- {
			m = append(m, row[x])
		}
		u = append(u, m)
	}
	for y := len(g) - 1; y >= 0; y-- {
		u = append(u, append([]uint8(nil), u[y]...))
	}
	return u
}

// splitRows cuts a flat cell slice into rows of width wide. The length
// of cells must be a multiple of wide.
func splitRows(cells []uint8, wide int) Grid {
	g := make(Grid, 0, len(cells)/wide)
	for i := 0; i < len(cells); i += wide {
		g = append(g, append([]uint8(nil), cells[i:i+wide]...))
	}
	return g
}
