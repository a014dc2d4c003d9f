package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/api"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/team"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

// teamItem adapts a team for the list component.
type teamItem struct {
	team *team.Team
}

func (i teamItem) Title() string { return i.team.Name }

func (i teamItem) Description() string {
	desc := fmt.Sprintf("%d members", len(i.team.Roster()))
	if ps := i.team.ProblemStatement; ps != nil && ps.Title != "" {
		desc += " • " + ps.Title
	}
	if i.team.Status != "" {
		desc += " • " + i.team.Status
	}
	return desc
}

func (i teamItem) FilterValue() string { return i.team.Name }

// teamsLoadedMsg carries the roster fetched from the backend.
type teamsLoadedMsg struct {
	teams []*team.Team
}

// teamsLoadFailedMsg carries a roster fetch failure.
type teamsLoadFailedMsg struct {
	err error
}

// TeamsView lists the teams assigned to the judge. Enter opens the
// evaluation form for the highlighted team.
type TeamsView struct {
	client  api.Client
	list    list.Model
	loading bool
	loadErr error
	width   int
	height  int
	theme   *styles.Theme
}

// NewTeamsView creates the teams view. Call Reload to start the initial
// fetch.
func NewTeamsView(client api.Client, theme *styles.Theme) *TeamsView {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Primary).
		BorderLeftForeground(theme.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.Muted).
		BorderLeftForeground(theme.Primary)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Teams"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.Styles.Title = theme.TitleStyle

	return &TeamsView{
		client:  client,
		list:    l,
		loading: true,
		theme:   theme,
	}
}

// Reload fetches the team roster.
func (v *TeamsView) Reload() tea.Cmd {
	v.loading = true
	v.loadErr = nil
	client := v.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.RequestTimeout)
		defer cancel()

		teams, err := client.Teams(ctx)
		if err != nil {
			return teamsLoadFailedMsg{err: err}
		}
		return teamsLoadedMsg{teams: teams}
	}
}

// Filtering reports whether the list's filter input is capturing keys.
func (v *TeamsView) Filtering() bool {
	return v.list.FilterState() == list.Filtering
}

// SetSize sets the view dimensions.
func (v *TeamsView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(width, height)
}

// Update handles messages for the teams view.
func (v *TeamsView) Update(msg tea.Msg) (tea.Cmd, tea.Msg) {
	switch msg := msg.(type) {
	case teamsLoadedMsg:
		v.loading = false
		items := make([]list.Item, 0, len(msg.teams))
		for _, t := range msg.teams {
			items = append(items, teamItem{team: t})
		}
		return v.list.SetItems(items), nil

	case teamsLoadFailedMsg:
		v.loading = false
		v.loadErr = msg.err
		return nil, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if v.list.FilterState() == list.Filtering {
				break
			}
			if item, ok := v.list.SelectedItem().(teamItem); ok {
				return nil, TeamSelectedMsg{Team: item.team}
			}
			return nil, nil
		case "ctrl+r":
			return v.Reload(), nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd, nil
}

// View renders the teams view.
func (v *TeamsView) View() string {
	if v.loading {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
			"Loading teams...")
	}
	if v.loadErr != nil {
		msg := lipgloss.NewStyle().Foreground(v.theme.Danger).
			Render("Failed to load teams: "+v.loadErr.Error()) +
			"\n\n" + lipgloss.NewStyle().Foreground(v.theme.Muted).Render("press ctrl+r to retry")
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, msg)
	}
	return v.list.View()
}
