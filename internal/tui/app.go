package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/api"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/team"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/components"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/views"
)

const appTitle = "Hackathon Judge"

// AppConfig carries the dependencies for the TUI.
type AppConfig struct {
	Client api.Client
	Round  string
	Logger *slog.Logger
}

// App is the root Bubble Tea model. It owns the chrome (header, status bar,
// help overlay) and routes everything else to the active view.
type App struct {
	client api.Client
	round  string
	logger *slog.Logger
	keys   KeyMap
	theme  *styles.Theme

	mode  Mode
	teams *views.TeamsView
	eval  *views.EvaluationView

	header    *components.Header
	statusBar *components.StatusBar
	help      *components.HelpOverlay

	width  int
	height int
	ready  bool
}

// NewApp creates the root model.
func NewApp(cfg AppConfig) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	theme := styles.DefaultTheme()

	header := components.NewHeader(appTitle, theme)
	header.SetContext(cfg.Round)

	help := components.NewHelpOverlay(theme)
	help.AddSection("Global", []components.Binding{
		{Keys: "?", Desc: "toggle help"},
		{Keys: "ctrl+c", Desc: "quit"},
	})
	help.AddSection("Teams", []components.Binding{
		{Keys: "↑/↓", Desc: "move selection"},
		{Keys: "enter", Desc: "evaluate team"},
		{Keys: "/", Desc: "filter teams"},
		{Keys: "ctrl+r", Desc: "reload teams"},
		{Keys: "q", Desc: "quit"},
	})
	help.AddSection("Evaluation", []components.Binding{
		{Keys: "tab/shift+tab", Desc: "next / previous field"},
		{Keys: "↑/↓ or j/k", Desc: "move between criteria"},
		{Keys: "←/→ or h/l", Desc: "adjust rating"},
		{Keys: "ctrl+s", Desc: "submit evaluation"},
		{Keys: "ctrl+d", Desc: "save draft"},
		{Keys: "esc", Desc: "back to team list"},
	})

	return &App{
		client:    cfg.Client,
		round:     cfg.Round,
		logger:    logger,
		keys:      DefaultKeyMap(),
		theme:     theme,
		mode:      ModeTeams,
		teams:     views.NewTeamsView(cfg.Client, theme),
		eval:      views.NewEvaluationView(cfg.Client, cfg.Round, theme),
		header:    header,
		statusBar: components.NewStatusBar(theme),
		help:      help,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.teams.Reload()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if cmd, handled := a.handleGlobalKey(msg); handled {
			return a, cmd
		}

	case views.TeamSelectedMsg:
		return a, a.selectTeam(msg.Team)

	case views.BackToTeamsMsg:
		return a, a.backToTeams()
	}

	return a.routeToView(msg)
}

// selectTeam switches to the evaluation form for the given team.
func (a *App) selectTeam(t *team.Team) tea.Cmd {
	a.logger.Info("team selected", "team_id", t.ID, "team_name", t.Name)
	a.mode = ModeEvaluation
	a.header.SetContext(fmt.Sprintf("%s • %s", t.Name, a.round))
	a.updateHints()
	return a.eval.SetTeam(t)
}

// backToTeams returns to the team list and refreshes it, so a
// just-submitted team shows its new status.
func (a *App) backToTeams() tea.Cmd {
	a.mode = ModeTeams
	a.header.SetContext(a.round)
	a.updateHints()
	return a.teams.Reload()
}

// handleGlobalKey processes bindings that apply regardless of view. It
// reports whether the key was consumed.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, a.keys.Quit) {
		a.logger.Info("quitting", "mode", a.mode.String())
		return tea.Quit, true
	}

	if a.help.IsVisible() {
		a.help.Hide()
		return nil, true
	}

	// While the judge is typing feedback or a filter query, printable
	// keys belong to the text input.
	if a.mode == ModeEvaluation && a.eval.EditingFeedback() {
		return nil, false
	}
	if a.mode == ModeTeams && a.teams.Filtering() {
		return nil, false
	}

	if key.Matches(msg, a.keys.Help) {
		a.help.Toggle()
		return nil, true
	}
	if msg.String() == "q" && a.mode == ModeTeams {
		return tea.Quit, true
	}
	return nil, false
}

// routeToView forwards a message to the active view and applies any
// cross-view message it emits.
func (a *App) routeToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd tea.Cmd
		out tea.Msg
	)
	switch a.mode {
	case ModeTeams:
		cmd, out = a.teams.Update(msg)
	case ModeEvaluation:
		cmd, out = a.eval.Update(msg)
	}

	switch out := out.(type) {
	case views.TeamSelectedMsg:
		return a, tea.Batch(cmd, a.selectTeam(out.Team))

	case views.BackToTeamsMsg:
		return a, tea.Batch(cmd, a.backToTeams())
	}

	a.updateHints()
	return a, cmd
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.header.SetWidth(width)
	a.statusBar.SetWidth(width)
	a.help.SetSize(width, height)

	contentHeight := height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	a.teams.SetSize(width, contentHeight)
	a.eval.SetSize(width, contentHeight)
	a.updateHints()
}

func (a *App) updateHints() {
	switch a.mode {
	case ModeTeams:
		a.statusBar.SetHints("enter evaluate • ctrl+r reload • ? help • q quit")
	case ModeEvaluation:
		if text, kind, ok := a.eval.Status(); ok {
			a.statusBar.SetStatus(text, kind)
		} else {
			a.statusBar.Clear()
		}
		a.statusBar.SetHints("ctrl+s submit • ctrl+d draft • esc back • ? help")
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Starting..."
	}
	if a.help.IsVisible() {
		return a.help.Render()
	}

	var body string
	switch a.mode {
	case ModeTeams:
		body = a.teams.View()
	case ModeEvaluation:
		body = a.eval.View()
	}

	return components.JoinVertical(
		a.header.Render(),
		body,
		a.statusBar.Render(),
	)
}
