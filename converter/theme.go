package converter

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
const (
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorMauve    lipgloss.Color = "#cba6f7"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorLavender
	colorMuted   = colorSubtext0
	colorSuccess = colorGreen
)

// Styles groups every style the view renders with.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	Header         lipgloss.Style
	Action         lipgloss.Style
	ActionDisabled lipgloss.Style
	ActionDone     lipgloss.Style

	InputBox  lipgloss.Style
	OutputBox lipgloss.Style
	Caption   lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
	Bullet    lipgloss.Style
	HelpText  lipgloss.Style

	Status     lipgloss.Style
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style
}

func DefaultStyles() Styles {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(colorText).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(colorMuted),

		Header:         lipgloss.NewStyle().Foreground(colorText).Bold(true),
		Action:         lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		ActionDisabled: lipgloss.NewStyle().Foreground(colorOverlay0),
		ActionDone:     lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),

		InputBox:  box.BorderForeground(colorSurface2),
		OutputBox: box.BorderForeground(colorMauve),
		Caption:   lipgloss.NewStyle().Foreground(colorOverlay1),

		Text:        lipgloss.NewStyle().Foreground(colorText),
		Placeholder: lipgloss.NewStyle().Foreground(colorOverlay0).Italic(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),

		HelpBox:   box.BorderForeground(colorSurface2),
		HelpTitle: lipgloss.NewStyle().Foreground(colorText).Bold(true),
		Bullet:    lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
		HelpText:  lipgloss.NewStyle().Foreground(colorMuted),

		Status:     lipgloss.NewStyle().Foreground(colorMuted).Background(colorSurface0),
		Footer:     lipgloss.NewStyle().Background(colorMantle),
		FooterKey:  lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle),
		FooterDesc: lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle),
	}
}
