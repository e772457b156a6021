// Package profile shows the account and offers sign-out and progress reset.
package profile

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/auth"
	"github.com/abhisek/lingua/internal/learner"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/layout"
	"github.com/abhisek/lingua/internal/ui/theme"
)

// signOutDoneMsg reports the async sign-out result.
type signOutDoneMsg struct {
	err error
}

// ProfileScreen shows account info and destructive actions.
type ProfileScreen struct {
	tracker    *learner.Tracker
	authClient auth.Client

	menu           components.Menu
	confirmReset   bool
	status         string
	statusOK bool
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates a ProfileScreen. authClient may be nil in offline mode.
func New(tracker *learner.Tracker, authClient auth.Client) *ProfileScreen {
	p := &ProfileScreen{tracker: tracker, authClient: authClient}

	var items []components.MenuItem
	if authClient != nil && authClient.Session() != nil {
		items = append(items, components.MenuItem{
			Label: "SIGN OUT",
			Action: func() tea.Cmd {
				client := p.authClient
				return func() tea.Msg {
					err := client.SignOut(context.Background())
					return signOutDoneMsg{err: err}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label: "RESET PROGRESS",
			Action: func() tea.Cmd {
				p.confirmReset = true
				return nil
			},
		},
		components.MenuItem{
			Label: "BACK",
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PopScreenMsg{} }
			},
		},
	)

	p.menu = components.NewMenu(items)
	return p
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signOutDoneMsg:
		if msg.err != nil {
			p.status = "Sign-out could not reach the server; signed out locally."
		} else {
			p.status = "Signed out."
		}
		p.statusOK = true
		return p, nil

	case tea.KeyMsg:
		if p.confirmReset {
			switch msg.String() {
			case "y":
				p.confirmReset = false
				p.tracker.Reset(context.Background(), time.Now())
				p.status = "Progress reset. A fresh start!"
				p.statusOK = true
			case "n", "esc":
				p.confirmReset = false
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *ProfileScreen) View(width, height int) string {
	var sections []string

	account := "Studying offline"
	if p.authClient != nil {
		if s := p.authClient.Session(); s != nil {
			account = "Signed in as " + s.DisplayName()
		}
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(account))

	if p.confirmReset {
		warning := theme.Incorrect.Render("Reset ALL progress? This cannot be undone.") +
			"\n\n" + theme.Hint.Render("y to confirm, n to cancel")
		sections = append(sections, theme.Card.Render(warning))
	} else {
		sections = append(sections, p.menu.View())
	}

	if p.status != "" {
		style := theme.Incorrect
		if p.statusOK {
			style = theme.Correct
		}
		sections = append(sections, style.Render(p.status))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

// KeyHints customizes the footer during the reset confirmation.
func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.confirmReset {
		return []layout.KeyHint{
			{Key: "y", Description: "Confirm reset"},
			{Key: "n", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
