package tui

import "github.com/charmbracelet/lipgloss"

const statsWidth = 40

var (
	canvasStyle      = lipgloss.NewStyle().Padding(0, 1)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(statsWidth)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	upColor   = lipgloss.Color("220")
	downColor = lipgloss.Color("18")
)

// glyphs holds the pre-rendered half-block cell for each (top, bottom) pair,
// indexed by top<<1 | bottom.
var glyphs = [4]string{
	lipgloss.NewStyle().Foreground(downColor).Render("█"),
	lipgloss.NewStyle().Foreground(upColor).Background(downColor).Render("▄"),
	lipgloss.NewStyle().Foreground(upColor).Background(downColor).Render("▀"),
	lipgloss.NewStyle().Foreground(upColor).Render("█"),
}
