package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin palettes, Mocha for dark mode and Latte for light mode.
// https://catppuccin.com/palette
type palette struct {
	text    lipgloss.Color
	subtext lipgloss.Color
	accent  lipgloss.Color
	green   lipgloss.Color
	red     lipgloss.Color
	yellow  lipgloss.Color
	surface lipgloss.Color
}

var (
	mocha = palette{
		text:    "#cdd6f4",
		subtext: "#a6adc8",
		accent:  "#cba6f7",
		green:   "#a6e3a1",
		red:     "#f38ba8",
		yellow:  "#f9e2af",
		surface: "#45475a",
	}
	latte = palette{
		text:    "#4c4f69",
		subtext: "#6c6f85",
		accent:  "#8839ef",
		green:   "#40a02b",
		red:     "#d20f39",
		yellow:  "#df8e1d",
		surface: "#bcc0cc",
	}
)

type theme struct {
	title    lipgloss.Style
	section  lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	income   lipgloss.Style
	expense  lipgloss.Style
	warn     lipgloss.Style
	selected lipgloss.Style
	barFull  lipgloss.Style
	barEmpty lipgloss.Style
}

func newTheme(dark bool) theme {
	p := latte
	if dark {
		p = mocha
	}
	return theme{
		title:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.accent),
		section:  lipgloss.NewStyle().Bold(true).Foreground(p.text),
		text:     lipgloss.NewStyle().Foreground(p.text),
		muted:    lipgloss.NewStyle().Foreground(p.subtext),
		income:   lipgloss.NewStyle().Foreground(p.green),
		expense:  lipgloss.NewStyle().Foreground(p.red),
		warn:     lipgloss.NewStyle().Foreground(p.yellow),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		barFull:  lipgloss.NewStyle().Foreground(p.green),
		barEmpty: lipgloss.NewStyle().Foreground(p.surface),
	}
}
