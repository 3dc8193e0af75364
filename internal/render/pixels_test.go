package render

import (
	"image/color"
	"testing"

	"ising/internal/core"
	pcore "ising/pkg/core"
	"ising/pkg/ising"
)

func TestFillSpinRGBA(t *testing.T) {
	lat, err := ising.New(ising.Dimensions{Width: 3, Height: 2}, 1, 0, pcore.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	lat.Fill(ising.Down)
	if err := lat.Set(ising.Position{X: 1, Y: 1}, ising.Up); err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 4*6)
	up := color.RGBA{R: 250, G: 200, B: 10, A: 255}
	fillSpinRGBA(buf, lat.View(), up, color.Black)

	for i := 0; i < 6; i++ {
		px := buf[i*4 : i*4+4]
		want := []byte{0, 0, 0, 255}
		if i == 4 {
			want = []byte{250, 200, 10, 255}
		}
		for c := range want {
			if px[c] != want[c] {
				t.Fatalf("pixel %d = %v, expected %v", i, px, want)
			}
		}
	}
}

func TestDownsampleMajority(t *testing.T) {
	lat, err := ising.New(ising.Dimensions{Width: 4, Height: 4}, 1, 0, pcore.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	lat.Fill(ising.Down)
	// Top-left 2x2 block fully up, top-right block one of four up.
	for _, p := range []ising.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 3, Y: 0}} {
		if err := lat.Set(p, ising.Up); err != nil {
			t.Fatal(err)
		}
	}

	g := core.NewByteGrid(2, 2)
	Downsample(lat.View(), g)
	want := []uint8{1, 0, 0, 0}
	for i, c := range g.Cells() {
		if c != want[i] {
			t.Fatalf("cell %d = %d, expected %d", i, c, want[i])
		}
	}
}

func TestDownsampleUpscales(t *testing.T) {
	lat, err := ising.New(ising.Dimensions{Width: 2, Height: 1}, 1, 0, pcore.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	lat.Fill(ising.Down)
	if err := lat.Set(ising.Position{X: 1, Y: 0}, ising.Up); err != nil {
		t.Fatal(err)
	}
	g := core.NewByteGrid(4, 2)
	Downsample(lat.View(), g)
	want := []uint8{0, 0, 1, 1, 0, 0, 1, 1}
	for i, c := range g.Cells() {
		if c != want[i] {
			t.Fatalf("cell %d = %d, expected %d", i, c, want[i])
		}
	}
}
