//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"ising/internal/core"
)

// historySize is the number of magnetization samples kept for the plot.
const historySize = 240

// HUD renders observables, tunable controls and a magnetization plot to the
// right of the lattice view.
type HUD struct {
	sim        core.Sim
	width      int
	image      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	history    *core.History

	controls     []hudControlState
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, history: core.NewHistory(historySize)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	return h
}

// Record appends the current magnetization to the plot history.
func (h *HUD) Record() {
	if h == nil {
		return
	}
	h.history.Push(h.sim.Magnetization())
}

// ClearHistory drops the plotted samples, e.g. after a reset.
func (h *HUD) ClearHistory() {
	if h == nil {
		return
	}
	h.history.Clear()
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the lattice view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int, paused bool) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.image == nil || h.lastHeight != height {
		h.image = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.image.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawObservables(paused)
	h.drawControls()
	h.drawPlot(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.image, op)
}

func (h *HUD) drawObservables(paused bool) {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	status := "running"
	if paused {
		status = "paused"
	}
	text.Draw(h.image, fmt.Sprintf("2D Ising (%s)", status), face, panelPadding, y, titleColor)
	for _, key := range []string{"magnetization", "energy", "acceptance"} {
		y += infoSpacing
		p, ok := h.snapshot.Lookup(key)
		value := "--"
		if ok {
			if f, err := strconv.ParseFloat(p.Value, 64); err == nil {
				value = strconv.FormatFloat(f, 'f', 4, 64)
			}
		}
		text.Draw(h.image, p.Label, face, panelPadding, y, labelColor)
		bounds := text.BoundString(face, value)
		text.Draw(h.image, value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
	}
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.current = parsed
		state.value = formatValue(state.control, parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		direction := 0
		switch {
		case pointInRect(px, my, state.minusRect):
			direction = -1
		case pointInRect(px, my, state.plusRect):
			direction = 1
		default:
			continue
		}
		if v, ok := core.ApplyControl(h.sim, state.control, state.current, direction); ok {
			state.current = v
			state.value = formatValue(state.control, v)
		}
		return
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.image, state.control.Label, face, panelPadding, labelY, labelColor)
		vc := valueColor
		if !state.hasValue {
			vc = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.image, state.value, face, valueX, labelY, vc)

		_, minusOK := state.control.Adjust(state.current, -1)
		_, plusOK := state.control.Adjust(state.current, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusOK)
		h.drawButton(state.plusRect, "+", state.hasValue && plusOK)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.image.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.image, label, face, x, y, fg)
}

// drawPlot draws magnetization history in [-1, 1] below the controls.
func (h *HUD) drawPlot(height int) {
	top := controlsTop + len(h.controls)*lineHeight + panelPadding
	bottom := height - panelPadding
	if bottom-top < 20 {
		return
	}
	left := float32(panelPadding)
	right := float32(h.width - panelPadding)
	t, b := float32(top), float32(bottom)
	mid := (t + b) / 2

	vector.StrokeLine(h.image, left, mid, right, mid, 1, dimColor, false)
	vector.StrokeLine(h.image, left, t, left, b, 1, dimColor, false)

	values := h.history.Values()
	if len(values) < 2 {
		return
	}
	span := right - left
	dx := span / float32(h.history.Cap()-1)
	yOf := func(m float64) float32 { return mid - float32(m)*(b-t)/2 }
	for i := 1; i < len(values); i++ {
		x0 := left + float32(i-1)*dx
		x1 := left + float32(i)*dx
		vector.StrokeLine(h.image, x0, yOf(values[i-1]), x1, yOf(values[i]), 1, plotColor, false)
	}
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(value))
	}
	precision := 1
	switch step := ctrl.StepSize(); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor = color.RGBA{R: 240, G: 200, B: 80, A: 255}
	dimColor   = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	plotColor  = color.RGBA{R: 120, G: 200, B: 255, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 4*infoSpacing + 8
)
