// Package tui hosts a simulation in the terminal with bubbletea.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"ising/internal/core"
	"ising/internal/render"
)

const (
	frameRate       = 30
	historyCapacity = 120
	defaultCols     = 80
	defaultRows     = 24
)

type tickMsg time.Time

// Model drives a core.Sim from bubbletea ticks and renders it with
// half-block glyphs, two lattice rows per terminal row.
type Model struct {
	sim      core.Sim
	pacer    *core.FixedStep
	grid     *core.ByteGrid
	history  *core.History
	controls []core.ParameterControl

	running  bool
	selected int
	seed     int64
	steps    int

	cols, rows int
}

// New builds a Model that advances sim tps times per second while running.
func New(sim core.Sim, tps int, seed int64) Model {
	m := Model{
		sim:     sim,
		pacer:   core.NewFixedStep(tps),
		grid:    core.NewByteGrid(1, 1),
		history: core.NewHistory(historyCapacity),
		running: true,
		seed:    seed,
		cols:    defaultCols,
		rows:    defaultRows,
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		m.controls = provider.ParameterControls()
	}
	m.history.Push(sim.Magnetization())
	return m
}

// Run starts an alt-screen program for sim and blocks until the user quits.
func Run(sim core.Sim, tps int, seed int64) error {
	p := tea.NewProgram(New(sim, tps, seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input and advances the simulation on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
	case tickMsg:
		if m.running && m.pacer.ShouldStep() {
			m.advance()
		}
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.advance()
			}
		case "r":
			m.reset(m.seed)
		case "s":
			m.reset(time.Now().UnixNano())
		case "tab":
			if len(m.controls) > 0 {
				m.selected = (m.selected + 1) % len(m.controls)
			}
		case "shift+tab":
			if len(m.controls) > 0 {
				m.selected = (m.selected + len(m.controls) - 1) % len(m.controls)
			}
		case "up", "k", "+", "=":
			m.tune(1)
		case "down", "j", "-":
			m.tune(-1)
		}
	}
	return m, nil
}

func (m *Model) advance() {
	m.sim.Step()
	m.steps++
	m.history.Push(m.sim.Magnetization())
}

func (m *Model) reset(seed int64) {
	m.seed = seed
	m.sim.Reset(seed)
	m.steps = 0
	m.history.Clear()
	m.history.Push(m.sim.Magnetization())
}

func (m *Model) tune(direction int) {
	if len(m.controls) == 0 {
		return
	}
	ctrl := m.controls[m.selected]
	current, ok := m.value(ctrl.Key)
	if !ok {
		return
	}
	core.ApplyControl(m.sim, ctrl, current, direction)
}

func (m Model) value(key string) (float64, bool) {
	provider, ok := m.sim.(core.ParameterProvider)
	if !ok {
		return 0, false
	}
	p, ok := provider.Parameters().Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	return v, err == nil
}

// View renders the lattice next to the observables panel.
func (m Model) View() string {
	canvas := canvasStyle.Render(m.canvas())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, statsStyle.Render(m.stats()))
}

func (m Model) canvas() string {
	size := m.sim.Size()
	cols := max(m.cols-statsWidth-4, 1)
	rows := max(m.rows-1, 1)
	m.grid.Resize(min(cols, size.W), min(2*rows, size.H))
	render.Downsample(m.sim.Frame(), m.grid)

	var b strings.Builder
	for y := 0; y < m.grid.H; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.grid.W; x++ {
			top := m.grid.At(x, y)
			var bottom uint8
			if y+1 < m.grid.H {
				bottom = m.grid.At(x, y+1)
			} else {
				bottom = top
			}
			b.WriteString(glyphs[top<<1|bottom])
		}
	}
	return b.String()
}

func (m Model) stats() string {
	var s strings.Builder
	size := m.sim.Size()
	s.WriteString(headerStyle.Render(fmt.Sprintf("2D ISING %dx%d", size.W, size.H)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")
	s.WriteString(row("Step", strconv.Itoa(m.steps)))
	s.WriteString(row("Magnetization", fmt.Sprintf("%+.4f", m.sim.Magnetization())))
	if obs, ok := m.sim.(core.Observer); ok {
		s.WriteString(row("Energy/site", fmt.Sprintf("%+.4f", obs.Energy())))
		s.WriteString(row("Acceptance", fmt.Sprintf("%.4f", obs.AcceptanceRate())))
	}

	if len(m.controls) > 0 {
		s.WriteString("\nPARAMETERS\n")
		for i, ctrl := range m.controls {
			value := "--"
			if v, ok := m.value(ctrl.Key); ok {
				value = strconv.FormatFloat(v, 'f', -1, 64)
			}
			line := fmt.Sprintf("%-12s %s", ctrl.Label, value)
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + valueStyle.Render(line) + "\n")
			}
		}
	}

	if values := m.history.Values(); len(values) > 1 {
		chart := asciigraph.Plot(values,
			asciigraph.Height(6),
			asciigraph.Width(statsWidth-12),
			asciigraph.LowerBound(-1),
			asciigraph.UpperBound(1),
			asciigraph.Precision(1),
			asciigraph.Caption("Magnetization"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Start/Stop N:Step R:Reset S:Reseed\nTab:Select ↑↓:Tune Q:Quit"))
	return s.String()
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}
