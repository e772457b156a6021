// Package dashboard shows the learner's cumulative progress and quiz
// history.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/learner"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/theme"
	"github.com/abhisek/lingua/internal/words"
)

// historyMsg delivers the async quiz history load.
type historyMsg struct {
	summary store.QuizSummary
	err     error
}

// DashboardScreen renders progress stats and achievements.
type DashboardScreen struct {
	tracker *learner.Tracker
	events  store.EventRepo

	history    store.QuizSummary
	historyErr error
	loaded     bool
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a DashboardScreen.
func New(tracker *learner.Tracker, events store.EventRepo) *DashboardScreen {
	return &DashboardScreen{tracker: tracker, events: events}
}

func (d *DashboardScreen) Init() tea.Cmd {
	events := d.events
	return func() tea.Msg {
		summary, err := events.QuizHistory(context.Background(), time.Time{})
		return historyMsg{summary: summary, err: err}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(historyMsg); ok {
		d.history = m.summary
		d.historyErr = m.err
		d.loaded = true
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	rec := d.tracker.Record()

	var sections []string

	lang := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(words.LanguageName(rec.CurrentLanguage) + " progress")
	sections = append(sections, lang)

	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", rec.Level),
		progress.LevelProgress(rec),
		true,
		52,
	)
	levelDetail := theme.Hint.Render(
		fmt.Sprintf("%d XP total · %d XP to level %d",
			rec.XP, progress.NextLevelXP(rec.Level)-rec.XP, rec.Level+1))
	sections = append(sections, theme.Card.Render(bar.View()+"\n"+levelDetail))

	stats := []string{
		fmt.Sprintf("🔥 Streak                 %d days", rec.Streak),
		fmt.Sprintf("📚 Words learned          %d", rec.Stats.WordsLearned),
		fmt.Sprintf("❓ Quizzes completed      %d", rec.Stats.QuizzesCompleted),
		fmt.Sprintf("🎙 Pronunciation accuracy %d%%", rec.Stats.PronunciationAccuracy),
		fmt.Sprintf("⏱  Study time             %s", studyTime(rec.Stats.TotalStudyTime)),
	}
	sections = append(sections, theme.Card.Render(strings.Join(stats, "\n")))

	sections = append(sections, d.renderHistory())
	sections = append(sections, d.renderAchievements(rec))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// studyTime formats cumulative study seconds for display.
func studyTime(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	if secs < 3600 {
		return fmt.Sprintf("%dm", secs/60)
	}
	return fmt.Sprintf("%dh %dm", secs/3600, secs%3600/60)
}

func (d *DashboardScreen) renderHistory() string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Quiz history")

	var body string
	switch {
	case !d.loaded:
		body = theme.Hint.Render("loading...")
	case d.historyErr != nil:
		body = theme.Hint.Render("history unavailable")
	case d.history.Quizzes == 0:
		body = theme.Hint.Render("no quizzes yet — take one!")
	default:
		body = fmt.Sprintf("%d quizzes · avg %d%% · best %d%%",
			d.history.Quizzes, d.history.AverageAccuracy, d.history.BestAccuracy)
	}
	return theme.Card.Render(title + "\n" + body)
}

func (d *DashboardScreen) renderAchievements(rec progress.Record) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Achievements")

	if len(rec.Achievements) == 0 {
		return theme.Card.Render(title + "\n" + theme.Hint.Render("none yet — keep studying!"))
	}

	var lines []string
	for _, id := range rec.Achievements {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Primary).
			Render("🏆 "+progress.AchievementName(id)))
	}
	return theme.Card.Render(title + "\n" + strings.Join(lines, "\n"))
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}
