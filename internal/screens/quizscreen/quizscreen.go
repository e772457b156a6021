// Package quizscreen drives a multiple-choice quiz: type picker, category
// picker, timed questions with feedback, and a completion summary.
package quizscreen

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingua/internal/learner"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/quiz"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/speech"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/layout"
	"github.com/abhisek/lingua/internal/words"
)

// phase tracks the quiz screen's flow.
type phase int

const (
	phasePickType phase = iota
	phasePickCategory
	phaseQuestion
	phaseFeedback
	phaseComplete
)

// QuizScreen runs one quiz from type selection through completion.
type QuizScreen struct {
	tracker *learner.Tracker
	events  store.EventRepo
	synth   speech.Synthesizer

	phase      phase
	language   string
	typeMenu   components.Menu
	catMenu    components.Menu
	quizType   quiz.Type
	categoryID string

	session    *quiz.Session
	choice     components.MultiChoice
	remaining  int
	lastResult quiz.AnswerResult
	timedOut   bool
	xpEarned   int
	completion quiz.Completion
	status     string
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a QuizScreen for the learner's current language.
func New(tracker *learner.Tracker, events store.EventRepo, synth speech.Synthesizer) *QuizScreen {
	s := &QuizScreen{
		tracker:  tracker,
		events:   events,
		synth:    synth,
		language: tracker.Record().CurrentLanguage,
	}

	var typeItems []components.MenuItem
	for _, t := range quiz.AllTypes() {
		t := t
		typeItems = append(typeItems, components.MenuItem{
			Label: t.DisplayName() + "  —  " + t.Description(),
			Action: func() tea.Cmd {
				s.quizType = t
				s.phase = phasePickCategory
				return nil
			},
		})
	}
	s.typeMenu = components.NewMenu(typeItems)

	catItems := []components.MenuItem{
		{Label: "🌐 All categories", Action: func() tea.Cmd {
			return s.startQuiz(words.AllCategories)
		}},
	}
	for _, c := range words.Categories() {
		c := c
		catItems = append(catItems, components.MenuItem{
			Label: c.Icon + " " + c.Name,
			Action: func() tea.Cmd {
				return s.startQuiz(c.ID)
			},
		})
	}
	s.catMenu = components.NewMenu(catItems)

	return s
}

func (s *QuizScreen) startQuiz(categoryID string) tea.Cmd {
	s.categoryID = categoryID
	cfg := quiz.ConfigFor(s.quizType)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pool := words.ForLanguage(s.language)
	questions := quiz.Generate(pool, categoryID, cfg.Questions, rng)

	s.session = quiz.NewSession(s.quizType, questions)
	s.session.Start()
	if s.session.State() != quiz.InProgress {
		s.status = "Not enough words in this category for a quiz."
		return nil
	}
	s.tracker.Reconcile(context.Background(), time.Now())

	s.phase = phaseQuestion
	s.loadQuestion()
	return s.tickTimer()
}

func (s *QuizScreen) loadQuestion() {
	q := s.session.Current()
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
	s.remaining = int(s.session.Config.PerQuestion.Seconds())
	s.timedOut = false
}

func (s *QuizScreen) tickTimer() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.phase != phaseQuestion {
			return s, nil
		}
		s.remaining--
		if s.remaining <= 0 {
			return s, s.answer(quiz.TimeUpIndex)
		}
		return s, s.tickTimer()

	case feedbackDoneMsg:
		return s, s.advance()

	case audioDoneMsg:
		if msg.err != nil {
			s.status = "Audio unavailable"
		}
		return s, nil

	case persistDoneMsg:
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phasePickType:
		var cmd tea.Cmd
		s.typeMenu, cmd = s.typeMenu.Update(msg)
		return s, cmd

	case phasePickCategory:
		var cmd tea.Cmd
		s.catMenu, cmd = s.catMenu.Update(msg)
		return s, cmd

	case phaseQuestion:
		if msg.String() == "a" && s.session.Current().Kind == quiz.KindAudio {
			return s, s.playAudio()
		}
		before := s.choice.Submitted
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if !before && s.choice.Submitted {
			return s, s.answer(s.choice.ChosenIndex)
		}
		return s, cmd

	case phaseComplete:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *QuizScreen) playAudio() tea.Cmd {
	q := s.session.Current()
	synth, lang, text := s.synth, s.language, q.Word.Word
	return func() tea.Msg {
		err := synth.Speak(context.Background(), text, lang)
		return audioDoneMsg{err: err}
	}
}

// answer records the selection and shows feedback for a fixed delay.
func (s *QuizScreen) answer(selected int) tea.Cmd {
	s.lastResult = s.session.Answer(selected)
	s.timedOut = selected == quiz.TimeUpIndex

	// Show the correct option even when the timer expired.
	if s.timedOut {
		s.choice.Submitted = true
		s.choice.ChosenIndex = quiz.TimeUpIndex
	}

	if s.lastResult.XP > 0 {
		s.tracker.AddXP(context.Background(), s.lastResult.XP)
		s.xpEarned += s.lastResult.XP
	}

	s.phase = phaseFeedback
	return tea.Tick(quiz.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

// advance moves to the next question or finishes the quiz.
func (s *QuizScreen) advance() tea.Cmd {
	if s.session.Advance() {
		s.phase = phaseQuestion
		s.loadQuestion()
		return s.tickTimer()
	}
	return s.complete()
}

// complete awards the bonus, folds the result into cumulative stats, and
// logs the quiz event.
func (s *QuizScreen) complete() tea.Cmd {
	s.completion = s.session.Finish()
	s.phase = phaseComplete

	if s.completion.BonusXP > 0 {
		s.tracker.AddXP(context.Background(), s.completion.BonusXP)
		s.xpEarned += s.completion.BonusXP
	}
	stats := s.completion.StatsPatch(s.tracker.Record().Stats)
	s.tracker.Apply(context.Background(), progress.Patch{Stats: &stats})

	events := s.events
	data := store.QuizEventData{
		SessionID:      s.session.ID,
		QuizType:       string(s.quizType),
		Language:       s.language,
		Category:       s.categoryID,
		TotalQuestions: s.completion.Total,
		Score:          s.completion.Score,
		Accuracy:       s.completion.Accuracy,
		BonusXP:        s.completion.BonusXP,
	}
	return func() tea.Msg {
		err := events.AppendQuiz(context.Background(), data)
		return persistDoneMsg{err: err}
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// KeyHints customizes the footer for the active phase.
func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
		if s.session.Current() != nil && s.session.Current().Kind == quiz.KindAudio {
			hints = append(hints, layout.KeyHint{Key: "a", Description: "Play audio"})
		}
		return hints
	case phaseComplete:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
