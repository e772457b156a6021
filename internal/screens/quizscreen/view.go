package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/quiz"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	var content string

	switch s.phase {
	case phasePickType:
		title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Choose your challenge")
		content = strings.Join([]string{title, "", s.typeMenu.View(), s.statusLine()}, "\n")

	case phasePickCategory:
		title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Pick a category")
		content = strings.Join([]string{title, "", s.catMenu.View(), s.statusLine()}, "\n")

	case phaseQuestion, phaseFeedback:
		content = s.viewQuestion(width)

	case phaseComplete:
		content = s.viewComplete()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) statusLine() string {
	if s.status == "" {
		return ""
	}
	return "\n" + theme.Incorrect.Render(s.status)
}

func (s *QuizScreen) viewQuestion(width int) string {
	var sections []string

	counter := theme.Hint.Render(fmt.Sprintf("Question %d of %d   ·   Score %d",
		s.session.Index()+1, len(s.session.Questions), s.session.Score()))
	sections = append(sections, counter)

	barWidth := width / 2
	if barWidth < 30 {
		barWidth = 30
	}
	countdown := components.NewCountdown(s.remaining, int(s.session.Config.PerQuestion.Seconds()), barWidth)
	sections = append(sections, countdown.View())
	sections = append(sections, "")

	sections = append(sections, s.choice.View())

	if s.phase == phaseFeedback {
		sections = append(sections, s.renderFeedback())
	}

	return strings.Join(sections, "\n")
}

func (s *QuizScreen) renderFeedback() string {
	q := s.session.Current()
	switch {
	case s.timedOut:
		return theme.Incorrect.Render(
			fmt.Sprintf("⏱ Time's up! The answer was %q.", q.CorrectAnswer()))
	case s.lastResult.Correct:
		return theme.Correct.Render(
			fmt.Sprintf("✓ Correct!  +%d XP", s.lastResult.XP))
	default:
		return theme.Incorrect.Render(
			fmt.Sprintf("✗ Not quite. The answer was %q.", q.CorrectAnswer()))
	}
}

func (s *QuizScreen) viewComplete() string {
	c := s.completion

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!")

	verdict := "Keep practicing!"
	if c.Accuracy >= quiz.BonusHighAccuracy {
		verdict = "Outstanding!"
	} else if c.Accuracy >= quiz.BonusMidAccuracy {
		verdict = "Nice work!"
	}

	rows := []string{
		fmt.Sprintf("Score        %d / %d", c.Score, c.Total),
		fmt.Sprintf("Accuracy     %d%%", c.Accuracy),
		fmt.Sprintf("XP earned    %d", s.xpEarned),
	}
	if c.BonusXP > 0 {
		rows = append(rows, fmt.Sprintf("Bonus        +%d XP", c.BonusXP))
	}
	stats := theme.Card.Render(strings.Join(rows, "\n"))

	hint := theme.Hint.Render("press enter to return home")

	return strings.Join([]string{
		title, "",
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(verdict),
		"", stats, "", hint,
	}, "\n")
}
