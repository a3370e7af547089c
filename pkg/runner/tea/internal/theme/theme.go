package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title    lipgloss.Style
	Counts   lipgloss.Style
	Header   lipgloss.Style
	Item     lipgloss.Style
	Done     lipgloss.Style
	Note     lipgloss.Style
	Selected lipgloss.Style
	Input    lipgloss.Style
	Help     lipgloss.Style
}

// ForMode returns the palette for the persisted presentation flag.
func ForMode(dark bool) Theme {
	if dark {
		return Theme{
			Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Counts:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
			Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
			Note:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
			Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		}
	}
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("53")).Bold(true),
		Counts:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Strikethrough(true),
		Note:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("53")).Bold(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
