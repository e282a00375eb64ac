package display

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("#7D56F4")
	colorText   = lipgloss.Color("#FAFAFA")
	colorGreen  = lipgloss.Color("#96CEB4")
	colorGold   = lipgloss.Color("#FFD700")
	colorMuted  = lipgloss.Color("#626262")
)

type styles struct {
	header  lipgloss.Style
	name    lipgloss.Style
	winner  lipgloss.Style
	set     lipgloss.Style
	current lipgloss.Style
	point   lipgloss.Style
	muted   lipgloss.Style
	board   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Foreground(colorText).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1),
		name: r.NewStyle().
			Foreground(colorText),
		winner: r.NewStyle().
			Foreground(colorGreen).
			Bold(true),
		set: r.NewStyle().
			Foreground(colorText).
			Width(3).
			Align(lipgloss.Right),
		current: r.NewStyle().
			Foreground(colorGold).
			Bold(true).
			Width(3).
			Align(lipgloss.Right),
		point: r.NewStyle().
			Foreground(colorGold).
			Bold(true).
			Width(5).
			Align(lipgloss.Right),
		muted: r.NewStyle().
			Foreground(colorMuted),
		board: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
	}
}
