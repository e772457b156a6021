// Package library shows the full word list for the active language,
// browsable by category.
package library

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/learner"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/speech"
	"github.com/abhisek/lingua/internal/ui/layout"
	"github.com/abhisek/lingua/internal/ui/theme"
	"github.com/abhisek/lingua/internal/words"
)

// audioDoneMsg reports the result of async audio playback.
type audioDoneMsg struct {
	err error
}

// LibraryScreen browses the word list by category.
type LibraryScreen struct {
	tracker *learner.Tracker
	synth   speech.Synthesizer

	categories []words.Category
	catIndex   int // 0 means all categories
	list       []words.Word
	cursor     int
	offset     int
	status     string
}

var _ screen.Screen = (*LibraryScreen)(nil)

// New creates a LibraryScreen for the learner's current language.
func New(tracker *learner.Tracker, synth speech.Synthesizer) *LibraryScreen {
	s := &LibraryScreen{
		tracker:    tracker,
		synth:      synth,
		categories: words.Categories(),
	}
	s.reload()
	return s
}

func (s *LibraryScreen) reload() {
	lang := s.tracker.Record().CurrentLanguage
	if s.catIndex == 0 {
		s.list = words.ForLanguage(lang)
	} else {
		s.list = words.ByCategory(lang, s.categories[s.catIndex-1].ID)
	}
	s.cursor = 0
	s.offset = 0
}

func (s *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case audioDoneMsg:
		if msg.err != nil {
			s.status = "Audio unavailable"
		}
		return s, nil

	case tea.KeyMsg:
		s.status = ""
		switch msg.String() {
		case "left", "h":
			s.catIndex--
			if s.catIndex < 0 {
				s.catIndex = len(s.categories)
			}
			s.reload()
		case "right", "l":
			s.catIndex++
			if s.catIndex > len(s.categories) {
				s.catIndex = 0
			}
			s.reload()
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.list)-1 {
				s.cursor++
			}
		case "a":
			return s, s.playAudio()
		}
	}
	return s, nil
}

func (s *LibraryScreen) playAudio() tea.Cmd {
	if len(s.list) == 0 {
		return nil
	}
	word := s.list[s.cursor]
	lang := s.tracker.Record().CurrentLanguage
	synth := s.synth
	return func() tea.Msg {
		err := synth.Speak(context.Background(), word.Word, lang)
		return audioDoneMsg{err: err}
	}
}

func (s *LibraryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderTabs() + "\n\n")

	if len(s.list) == 0 {
		b.WriteString(theme.Hint.Render("No words in this category yet."))
		return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
	}

	visible := height - 8
	if visible < 3 {
		visible = 3
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+visible {
		s.offset = s.cursor - visible + 1
	}

	learned := s.tracker.Record().CompletedLessons
	end := s.offset + visible
	if end > len(s.list) {
		end = len(s.list)
	}

	for i := s.offset; i < end; i++ {
		b.WriteString(s.renderRow(s.list[i], i == s.cursor, slices.Contains(learned, s.list[i].ID)))
		b.WriteString("\n")
	}

	b.WriteString("\n" + theme.Hint.Render(
		fmt.Sprintf("%d of %d words", s.cursor+1, len(s.list))))
	if s.status != "" {
		b.WriteString("   " + theme.Incorrect.Render(s.status))
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (s *LibraryScreen) renderTabs() string {
	tabs := make([]string, 0, len(s.categories)+1)
	for i := 0; i <= len(s.categories); i++ {
		label := "All"
		if i > 0 {
			c := s.categories[i-1]
			label = c.Icon + " " + c.Name
		}
		if i == s.catIndex {
			tabs = append(tabs, theme.Selected.Render("[ "+label+" ]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render("  "+label+"  "))
		}
	}
	return strings.Join(tabs, " ")
}

func (s *LibraryScreen) renderRow(w words.Word, selected, learned bool) string {
	check := "  "
	if learned {
		check = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
	}

	line := fmt.Sprintf("%s%-14s %-16s %s", check, w.Word, w.Translation,
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(w.Pronunciation))

	if selected {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}

func (s *LibraryScreen) Title() string {
	return "Word Library"
}

// KeyHints customizes the footer.
func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Category"},
		{Key: "↑↓", Description: "Browse"},
		{Key: "a", Description: "Hear it"},
		{Key: "Esc", Description: "Back"},
	}
}
