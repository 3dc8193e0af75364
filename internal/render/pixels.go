package render

import (
	"image/color"

	"ising/internal/core"
	"ising/pkg/ising"
)

// fillSpinRGBA converts packed spins into RGBA pixels in buf, one pixel per
// site in row-major order.
func fillSpinRGBA(buf []byte, v ising.View, up, down color.Color) {
	rUp, gUp, bUp, aUp := up.RGBA()
	rDown, gDown, bDown, aDown := down.RGBA()
	n := v.Len()
	for i := 0; i < n; i++ {
		base := i * 4
		if v.Bit(i) {
			buf[base+0] = uint8(rUp >> 8)
			buf[base+1] = uint8(gUp >> 8)
			buf[base+2] = uint8(bUp >> 8)
			buf[base+3] = uint8(aUp >> 8)
			continue
		}
		buf[base+0] = uint8(rDown >> 8)
		buf[base+1] = uint8(gDown >> 8)
		buf[base+2] = uint8(bDown >> 8)
		buf[base+3] = uint8(aDown >> 8)
	}
}

// Downsample maps the lattice onto g, marking each cell 1 when at least half
// of the sites in its block are Up. Grids larger than the lattice repeat
// sites rather than leaving cells empty.
func Downsample(v ising.View, g *core.ByteGrid) {
	d := v.Dimensions()
	lw, lh := int(d.Width), int(d.Height)
	cells := g.Cells()
	for gy := 0; gy < g.H; gy++ {
		y0 := gy * lh / g.H
		y1 := max((gy+1)*lh/g.H, y0+1)
		for gx := 0; gx < g.W; gx++ {
			x0 := gx * lw / g.W
			x1 := max((gx+1)*lw/g.W, x0+1)
			up, total := 0, 0
			for y := y0; y < y1; y++ {
				row := y * lw
				for x := x0; x < x1; x++ {
					if v.Bit(row + x) {
						up++
					}
					total++
				}
			}
			var c uint8
			if 2*up >= total {
				c = 1
			}
			cells[g.Index(gx, gy)] = c
		}
	}
}
