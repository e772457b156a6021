package welcome

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/auth"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/layout"
	"github.com/abhisek/lingua/internal/ui/theme"
)

// mode tracks which face of the welcome screen is showing.
type mode int

const (
	modeLanding mode = iota
	modeSignIn
	modeSignUp
)

// authResultMsg carries the outcome of an async auth call.
type authResultMsg struct {
	session *auth.Session
	signUp  bool
	err     error
}

// WelcomeScreen greets the learner and handles optional sign-in before
// handing off to the home screen.
type WelcomeScreen struct {
	authClient  auth.Client
	homeFactory func() screen.Screen

	mode     mode
	menu     components.Menu
	username components.TextInput
	email    components.TextInput
	password components.TextInput
	focus    int
	busy     bool
	status   string
	statusOK bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. authClient may be nil when auth is not
// configured; the screen then only offers offline study.
func New(authClient auth.Client, homeFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		authClient:  authClient,
		homeFactory: homeFactory,
	}
	w.menu = components.NewMenu(w.menuItems())
	return w
}

func (w *WelcomeScreen) menuItems() []components.MenuItem {
	if w.authClient == nil {
		return []components.MenuItem{
			{Label: "START LEARNING", Action: w.enterHome},
			{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
		}
	}
	if w.authClient.Session() != nil {
		return []components.MenuItem{
			{Label: "CONTINUE", Action: w.enterHome},
			{Label: "SIGN OUT", Action: w.signOut},
			{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
		}
	}
	return []components.MenuItem{
		{Label: "SIGN IN", Action: w.openForm(modeSignIn)},
		{Label: "CREATE ACCOUNT", Action: w.openForm(modeSignUp)},
		{Label: "CONTINUE OFFLINE", Action: w.enterHome},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}
}

func (w *WelcomeScreen) enterHome() tea.Cmd {
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) signOut() tea.Cmd {
	client := w.authClient
	return func() tea.Msg {
		err := client.SignOut(context.Background())
		return authResultMsg{err: err}
	}
}

func (w *WelcomeScreen) openForm(m mode) func() tea.Cmd {
	return func() tea.Cmd {
		w.mode = m
		w.username = components.NewTextInput("Username", "how you want to appear", 40)
		w.email = components.NewTextInput("Email", "you@example.com", 120)
		w.password = components.NewPasswordInput("Password", 72)
		w.focus = 0
		w.status = ""
		return w.fields()[0].Focus()
	}
}

// fields returns the form inputs in tab order for the active mode.
func (w *WelcomeScreen) fields() []*components.TextInput {
	if w.mode == modeSignUp {
		return []*components.TextInput{&w.username, &w.email, &w.password}
	}
	return []*components.TextInput{&w.email, &w.password}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		w.busy = false
		if msg.err != nil {
			w.statusOK = false
			if errors.Is(msg.err, auth.ErrInvalidCredentials) {
				w.status = "Invalid email or password."
			} else {
				w.status = "Could not reach the server. Try again or continue offline."
			}
			w.menu = components.NewMenu(w.menuItems())
			return w, nil
		}
		if msg.signUp && msg.session == nil {
			w.mode = modeLanding
			w.statusOK = true
			w.status = "Account created! Check your email to confirm, then sign in."
			w.menu = components.NewMenu(w.menuItems())
			return w, nil
		}
		return w, w.enterHome()

	case tea.KeyMsg:
		if w.mode == modeLanding {
			break
		}
		switch msg.String() {
		case "esc":
			w.mode = modeLanding
			w.status = ""
			w.menu = components.NewMenu(w.menuItems())
			return w, nil
		case "tab", "down":
			return w, w.moveFocus(1)
		case "shift+tab", "up":
			return w, w.moveFocus(-1)
		case "enter":
			fields := w.fields()
			if w.focus < len(fields)-1 {
				return w, w.moveFocus(1)
			}
			return w, w.submit()
		}
	}

	var cmd tea.Cmd
	switch w.mode {
	case modeLanding:
		w.menu, cmd = w.menu.Update(msg)
	default:
		f := w.fields()[w.focus]
		*f, cmd = f.Update(msg)
	}
	return w, cmd
}

func (w *WelcomeScreen) moveFocus(dir int) tea.Cmd {
	fields := w.fields()
	fields[w.focus].Blur()
	w.focus = (w.focus + dir + len(fields)) % len(fields)
	return fields[w.focus].Focus()
}

func (w *WelcomeScreen) submit() tea.Cmd {
	email := strings.TrimSpace(w.email.Value())
	password := w.password.Value()
	if email == "" || password == "" {
		w.statusOK = false
		w.status = "Email and password are required."
		return nil
	}
	if w.busy {
		return nil
	}
	w.busy = true
	w.status = ""

	client := w.authClient
	signUp := w.mode == modeSignUp
	username := strings.TrimSpace(w.username.Value())
	return func() tea.Msg {
		var (
			s   *auth.Session
			err error
		)
		if signUp {
			s, err = client.SignUp(context.Background(), email, password, username)
		} else {
			s, err = client.SignIn(context.Background(), email, password)
		}
		return authResultMsg{session: s, signUp: signUp, err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Learn Tamil, Hindi and English, one word at a time")
	sections = append(sections, tagline)
	sections = append(sections, "")

	switch w.mode {
	case modeLanding:
		sections = append(sections, w.menu.View())
	default:
		formTitle := "Sign in"
		if w.mode == modeSignUp {
			formTitle = "Create account"
		}
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(formTitle),
		)
		for _, f := range w.fields() {
			sections = append(sections, "", f.View())
		}
		if w.busy {
			sections = append(sections, "", theme.Hint.Render("talking to the server..."))
		}
	}

	if w.status != "" {
		style := theme.Incorrect
		if w.statusOK {
			style = theme.Correct
		}
		sections = append(sections, "", style.Render(w.status))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints customizes the footer for the active face.
func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.mode == modeLanding {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}
