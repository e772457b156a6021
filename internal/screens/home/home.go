package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/auth"
	"github.com/abhisek/lingua/internal/learner"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/screens/dashboard"
	"github.com/abhisek/lingua/internal/screens/learn"
	"github.com/abhisek/lingua/internal/screens/library"
	"github.com/abhisek/lingua/internal/screens/profile"
	"github.com/abhisek/lingua/internal/screens/quizscreen"
	"github.com/abhisek/lingua/internal/speech"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/theme"
	"github.com/abhisek/lingua/internal/words"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	tracker    *learner.Tracker
	events     store.EventRepo
	synth      speech.Synthesizer
	recog      speech.Recognizer
	authClient auth.Client

	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tracker *learner.Tracker, events store.EventRepo, synth speech.Synthesizer, recog speech.Recognizer, authClient auth.Client) *HomeScreen {
	h := &HomeScreen{
		tracker:    tracker,
		events:     events,
		synth:      synth,
		recog:      recog,
		authClient: authClient,
	}

	items := []components.MenuItem{
		{Label: "LEARN WORDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: learn.New(h.tracker, h.events, h.synth, h.recog),
				}
			}
		}},
		{Label: "WORD LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: library.New(h.tracker, h.synth),
				}
			}
		}},
		{Label: "TAKE QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(h.tracker, h.events, h.synth),
				}
			}
		}},
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: dashboard.New(h.tracker, h.events),
				}
			}
		}},
		{Label: "SWITCH LANGUAGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newLanguagePicker(h.tracker)}
			}
		}},
		{Label: "PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: profile.New(h.tracker, h.authClient),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	rec := h.tracker.Record()

	var sections []string

	lang := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Studying %s", words.LanguageName(rec.CurrentLanguage)))
	sections = append(sections, lang)

	sections = append(sections, renderLevelCard(rec))
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderLevelCard shows the level progress bar and word count.
func renderLevelCard(rec progress.Record) string {
	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", rec.Level),
		progress.LevelProgress(rec),
		false,
		44,
	)

	detail := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d / %d XP   ·   %d words learned",
			rec.XP, progress.NextLevelXP(rec.Level), rec.Stats.WordsLearned))

	return theme.Card.Render(bar.View() + "\n" + detail)
}
