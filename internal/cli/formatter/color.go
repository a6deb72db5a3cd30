package formatter

import (
	"strings"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskIndicator returns a colored risk marker such as "● HIGH".
func RiskIndicator(level domain.RiskLevel) string {
	switch level {
	case domain.RiskHigh:
		return StyleRed.Render("● HIGH")
	case domain.RiskMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.RiskLow:
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// ForecastBadge returns a colored schedule indicator for a project forecast.
func ForecastBadge(status domain.ForecastStatus) string {
	switch status {
	case domain.ForecastOnTrack:
		return StyleGreen.Render("● ON TRACK")
	case domain.ForecastAtRisk:
		return StyleYellow.Render("● AT RISK")
	case domain.ForecastBehind:
		return StyleRed.Render("● BEHIND")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// HealthBadge returns a colored marker for the composite team health status.
func HealthBadge(status domain.HealthStatus) string {
	switch status {
	case domain.HealthHealthy:
		return StyleGreen.Render("● HEALTHY")
	case domain.HealthAttention:
		return StyleYellow.Render("● NEEDS ATTENTION")
	case domain.HealthAtRisk:
		return StyleRed.Render("● AT RISK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// LoadBadge returns a colored marker for an employee's load label.
func LoadBadge(label domain.LoadLabel) string {
	switch label {
	case domain.LoadHeavy:
		return StyleRed.Render("HEAVY")
	case domain.LoadModerate:
		return StyleYellow.Render("MODERATE")
	default:
		return StyleGreen.Render("AVAILABLE")
	}
}

// SeverityBadge returns a colored marker for an anomaly severity.
func SeverityBadge(s domain.Severity) string {
	switch s {
	case domain.SeverityHigh:
		return StyleRed.Render("HIGH")
	case domain.SeverityMedium:
		return StyleYellow.Render("MEDIUM")
	default:
		return StyleDim.Render("LOW")
	}
}

// Header renders a section header in the header style, uppercased.
func Header(text string) string {
	return StyleHeader.Render(strings.ToUpper(text))
}

// Dim renders dimmed text.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders bold foreground text.
func Bold(text string) string {
	return StyleBold.Render(text)
}
