package tui

import "github.com/charmbracelet/lipgloss"

var (
	// ID List
	ListTitleStyle      = lipgloss.NewStyle().Bold(true).MarginBottom(1).MarginLeft(1).Foreground(lipgloss.Color("63"))
	NormalItemStyle     = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"})
	SelectedItemStyle   = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("231")).Bold(true)
	SelectedMarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	SecondaryTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "244"})

	// Status Bar
	StatusBarNormalStyle = lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("250")).Padding(0, 1)
	StatusBarErrorStyle  = lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")).Padding(0, 1)
)

const selectedMarker = "▶"
