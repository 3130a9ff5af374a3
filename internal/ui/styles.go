package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan: headings
	colorAccent      = lipgloss.Color("#FFD700") // Gold: angles and key values
	colorSuccess     = lipgloss.Color("#00E676") // Green: harmonious aspects
	colorDanger      = lipgloss.Color("#FF5252") // Red: retrograde, tense aspects
	colorMuted       = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray: labels
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorBlue        = lipgloss.Color("#5B8DEF") // Blue: major stars
)

// styles holds every style bound to one renderer, so colors follow the
// capabilities of the Printer's writer rather than of stdout.
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
	danger  lipgloss.Style
	success lipgloss.Style
	major   lipgloss.Style
	box     lipgloss.Style
	cell    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(colorBrightWhite).
			Background(lipgloss.Color("#1E1E2E")).
			Bold(true).
			Padding(0, 1),
		section: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginTop(1),
		label:   r.NewStyle().Foreground(colorMutedLight),
		value:   r.NewStyle().Foreground(colorBrightWhite),
		accent:  r.NewStyle().Foreground(colorAccent).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		danger:  r.NewStyle().Foreground(colorDanger),
		success: r.NewStyle().Foreground(colorSuccess),
		major:   r.NewStyle().Foreground(colorBlue).Bold(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		cell: r.NewStyle().Width(18),
	}
}

// Status icons.
const (
	iconRetrograde = "℞"
	iconMing       = "命"
	iconShen       = "身"
)
