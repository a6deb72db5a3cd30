package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(Header(title) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string measured
// from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	default:
		return t.Format("2006-01-02")
	}
}

// HumanDate formats a date for display.
func HumanDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// TruncID shortens a UUID for table display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatHours renders a fractional hour count like "12.5h" or "3h".
func FormatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0fh", h)
	}
	return fmt.Sprintf("%.1fh", h)
}

// ScoreBar renders a 0-100 score as a filled bar, colored by how close the
// score sits to the hot end.
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 10
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := int(math.Round(score / 100 * float64(width)))

	style := StyleGreen
	switch {
	case score > 70:
		style = StyleRed
	case score > 30:
		style = StyleYellow
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3.0f", bar, score)
}
