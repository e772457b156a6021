package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/ui/theme"
)

// Flashcard renders a two-sided study card. The front shows the word in
// the target language, the back adds the translation and example usage.
type Flashcard struct {
	Word          string
	Pronunciation string
	Translation   string
	Example       string
	ExampleTrans  string
	Revealed      bool
	Width         int
}

// View renders the card face matching the Revealed state.
func (f Flashcard) View() string {
	inner := f.Width - 12
	if inner < 20 {
		inner = 20
	}

	var lines []string

	word := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(f.Word)
	lines = append(lines, word)

	if f.Pronunciation != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("/ "+f.Pronunciation+" /"))
	}

	if f.Revealed {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(f.Translation))
		if f.Example != "" {
			lines = append(lines, "")
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(f.Example))
			if f.ExampleTrans != "" {
				lines = append(lines, lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Render(f.ExampleTrans))
			}
		}
	} else {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("space to flip"))
	}

	content := strings.Join(lines, "\n")

	style := theme.CardFront
	if f.Revealed {
		style = theme.CardBack
	}
	return style.Width(inner).Render(content)
}
