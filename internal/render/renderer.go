//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"ising/pkg/ising"
)

// SpinPainter uploads a packed spin view into one image, one pixel per site.
type SpinPainter struct {
	up, down color.Color
	dims     ising.Dimensions
	img      *ebiten.Image
	buf      []byte
}

// NewSpinPainter returns a painter drawing Up sites in up and Down in down.
func NewSpinPainter(up, down color.Color) *SpinPainter {
	return &SpinPainter{up: up, down: down}
}

// Blit draws v onto dst scaled by scale, reallocating when the lattice
// dimensions change.
func (p *SpinPainter) Blit(dst *ebiten.Image, v ising.View, scale int) {
	d := v.Dimensions()
	if d.Len() == 0 {
		return
	}
	if p.img == nil || d != p.dims {
		p.dims = d
		p.img = ebiten.NewImage(int(d.Width), int(d.Height))
		p.buf = make([]byte, 4*d.Len())
	}
	fillSpinRGBA(p.buf, v, p.up, p.down)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}
