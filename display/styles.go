package display

import "github.com/charmbracelet/lipgloss"

var (
	RuleStyle        = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "238"}) // Dim gray
	HeaderKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	HeaderValStyle   = lipgloss.NewStyle()
	SectionStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "244"})
	BulletStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
)

// Rule characters and width for the record block.
const (
	HeavyRule = "="
	LightRule = "-"
	RuleWidth = 80
)
