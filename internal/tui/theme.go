package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	statusStyle  = lipgloss.NewStyle().Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	subtleStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)
	gridStyle    = lipgloss.NewStyle().Foreground(colorSurface1)
	boardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	modalStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorRed).Padding(0, 1)
	markXStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	markOStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	lastMoveMark = lipgloss.NewStyle().Underline(true)
	choiceStyle  = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()).BorderForeground(colorSurface1)
	chosenStyle  = choiceStyle.BorderForeground(colorLavender).Bold(true)
)
