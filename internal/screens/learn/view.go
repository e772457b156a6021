package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/pronounce"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/theme"
)

func (s *LearnScreen) View(width, height int) string {
	if len(s.pool) == 0 {
		msg := theme.Hint.Render("No words available for this language yet.\nImport a word list or switch languages.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	if s.phase == phaseSummary {
		return s.viewSummary(width, height)
	}

	var sections []string

	counter := theme.Hint.Render(
		fmt.Sprintf("Word %d of %d", s.index+1, len(s.pool)))
	sections = append(sections, counter)
	sections = append(sections, "")

	w := s.current()
	card := components.Flashcard{
		Word:          w.Word,
		Pronunciation: w.Pronunciation,
		Translation:   w.Translation,
		Example:       w.Example,
		ExampleTrans:  w.ExampleTranslation,
		Revealed:      s.revealed,
		Width:         width,
	}
	sections = append(sections, card.View())

	switch s.phase {
	case phaseListening:
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render("🎙  Listening... say the word out loud"))
	case phaseFeedback:
		sections = append(sections, "", s.renderScore())
	}

	if s.status != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.status))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LearnScreen) renderScore() string {
	score := s.lastScore

	style := theme.Incorrect
	icon := "✗"
	if score.Passed() {
		style = theme.Correct
		icon = "✓"
	} else if score.Tier == pronounce.TierGoodEffort {
		style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		icon = "~"
	}

	line := fmt.Sprintf("%s %s  (%d%%)", icon, score.Feedback, score.Accuracy)
	if score.Passed() {
		line += fmt.Sprintf("   +%d XP", pronounce.AttemptXP)
	}
	return style.Render(line)
}

func (s *LearnScreen) viewSummary(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!")

	rows := []string{
		fmt.Sprintf("Words studied     %d", s.session.WordsStudied),
		fmt.Sprintf("Attempts          %d", s.session.Attempts),
		fmt.Sprintf("Good attempts     %d", s.session.Correct),
		fmt.Sprintf("Accuracy          %d%%", s.session.Accuracy()),
	}
	stats := theme.Card.Render(strings.Join(rows, "\n"))

	xp := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("⚡ +%d XP this session (+%d finish bonus)", s.xpEarned+completionXP, completionXP))

	hint := theme.Hint.Render("press enter to return home")

	content := strings.Join([]string{title, "", stats, "", xp, "", hint}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
