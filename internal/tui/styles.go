package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kshetty/huntboard/pkg/domain"
)

var (
	// Base palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a5fa"))

	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a5fa")).
			Bold(true)

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Toast severities
	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ade80"))

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a5fa"))

	// Metrics strip
	metricValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e4e4ec")).
				Bold(true)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#505868"))

	// Selected row background
	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))

	remoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22d3ee"))

	redFlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	skillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	// Pipeline status colors
	statusColors = map[string]lipgloss.Color{
		"Lead":      lipgloss.Color("#8890a0"),
		"Applied":   lipgloss.Color("#60a5fa"),
		"Screening": lipgloss.Color("#22d3ee"),
		"Technical": lipgloss.Color("#c084e0"),
		"Manager":   lipgloss.Color("#f0944a"),
		"Offer":     lipgloss.Color("#4ade80"),
		"Rejected":  lipgloss.Color("#f87171"),
		"Declined":  lipgloss.Color("#b45555"),
		"Ghosted":   lipgloss.Color("#606878"),
		"Accepted":  lipgloss.Color("#43e88c"),
	}

	priorityColors = map[string]lipgloss.Color{
		"High":   lipgloss.Color("#f87171"),
		"Medium": lipgloss.Color("#f0c94a"),
		"Low":    lipgloss.Color("#8890a0"),
	}

	tierColors = map[domain.MatchTier]lipgloss.Color{
		domain.TierExcellent: lipgloss.Color("#43e88c"),
		domain.TierHighFit:   lipgloss.Color("#4ade80"),
		domain.TierMedium:    lipgloss.Color("#f0c94a"),
		domain.TierLowFit:    lipgloss.Color("#f0944a"),
		domain.TierNoFit:     lipgloss.Color("#606878"),
	}
)

// StatusStyle returns a bold style colored for the given pipeline status.
func StatusStyle(status string) lipgloss.Style {
	if c, ok := statusColors[status]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// PriorityStyle returns a style colored for the given priority.
func PriorityStyle(priority string) lipgloss.Style {
	if c, ok := priorityColors[priority]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return dimStyle
}

// TierStyle returns a bold style colored for the given match tier.
func TierStyle(tier domain.MatchTier) lipgloss.Style {
	if c, ok := tierColors[tier]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return dimStyle
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
