package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/learner"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/theme"
	"github.com/abhisek/lingua/internal/words"
)

// languagePicker lets the learner switch the study language.
type languagePicker struct {
	tracker *learner.Tracker
	menu    components.Menu
}

var _ screen.Screen = (*languagePicker)(nil)

func newLanguagePicker(tracker *learner.Tracker) *languagePicker {
	p := &languagePicker{tracker: tracker}

	current := tracker.Record().CurrentLanguage
	var items []components.MenuItem
	for _, code := range words.Languages() {
		code := code
		label := words.LanguageName(code)
		if code == current {
			label += "  (current)"
		}
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				p.tracker.SetLanguage(context.Background(), code)
				return func() tea.Msg { return router.PopScreenMsg{} }
			},
		})
	}

	p.menu = components.NewMenu(items)
	return p
}

func (p *languagePicker) Init() tea.Cmd {
	return nil
}

func (p *languagePicker) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *languagePicker) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Which language do you want to study?")

	content := strings.Join([]string{title, "", p.menu.View()}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *languagePicker) Title() string {
	return "Language"
}
