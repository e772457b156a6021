package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/ui/theme"
)

// Countdown displays a shrinking time bar with seconds remaining.
type Countdown struct {
	Remaining int
	Total     int
	Width     int
}

// NewCountdown creates a countdown bar.
func NewCountdown(remaining, total, width int) Countdown {
	return Countdown{Remaining: remaining, Total: total, Width: width}
}

// View renders the countdown. The bar turns red in the final seconds.
func (c Countdown) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("⏱ %2ds ", c.Remaining))

	barWidth := c.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if c.Total > 0 {
		frac = float64(c.Remaining) / float64(c.Total)
	}
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fillColor := theme.Secondary
	if c.Remaining <= 5 {
		fillColor = theme.Error
	}

	filledStr := lipgloss.NewStyle().
		Background(fillColor).
		Render(strings.Repeat(" ", filled))
	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return label + filledStr + emptyStr
}
