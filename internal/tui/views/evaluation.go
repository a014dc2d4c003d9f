package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/api"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/evaluation"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/team"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/components"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

// navigateBackDelay is how long the success alert stays up before the view
// returns to the team list.
const navigateBackDelay = 2 * time.Second

// Async results carry the identity of the team they were fetched for. The
// view drops any result whose team no longer matches, so a quick jump
// between teams can't apply stale data.
type savedEvaluationMsg struct {
	teamID string
	saved  *evaluation.Saved
}

type savedLookupFailedMsg struct {
	teamID string
	err    error
}

type reportLoadedMsg struct {
	teamName string
	report   *api.Report
}

type reportFailedMsg struct {
	teamName string
	err      error
}

type submissionDoneMsg struct {
	teamID  string
	isDraft bool
	result  *evaluation.Result
}

type submissionFailedMsg struct {
	teamID  string
	isDraft bool
	err     error
}

// navigateBackMsg fires after the post-submit delay. The sequence number
// cancels a pending navigation if the judge has since moved to another team.
type navigateBackMsg struct {
	seq int
}

// Number of focusable form fields: the eight sliders plus the feedback box.
var feedbackFocusIndex = len(evaluation.RatingFields)

// EvaluationView is the scoring form for one team: submission details and
// the deck-analysis report on the left, the eight rating sliders and the
// feedback box on the right.
type EvaluationView struct {
	client api.Client
	round  string
	theme  *styles.Theme

	team  *team.Team
	draft *evaluation.Draft

	sliders  []*components.Slider
	feedback textarea.Model
	report   *components.ReportPanel
	details  *viewport.Model
	alert    *components.AlertDialog

	detailsPanel *components.Panel
	formPanel    *components.Panel

	focus      int
	submitting bool
	navSeq     int
	statusText string
	statusKind components.StatusKind

	width  int
	height int
}

// NewEvaluationView creates an evaluation view with no team selected.
func NewEvaluationView(client api.Client, round string, theme *styles.Theme) *EvaluationView {
	sliders := make([]*components.Slider, len(evaluation.RatingFields))
	for i, f := range evaluation.RatingFields {
		sliders[i] = components.NewSlider(f.Label(), theme)
	}
	sliders[0].SetFocused(true)

	ta := textarea.New()
	ta.Placeholder = "Personalized feedback for the team (required)"
	ta.CharLimit = 2000
	ta.SetHeight(5)

	vp := viewport.New(0, 0)

	formPanel := components.NewPanel("Scoring", theme)
	formPanel.SetFocused(true)

	return &EvaluationView{
		client:       client,
		round:        round,
		theme:        theme,
		draft:        evaluation.NewDraft(),
		sliders:      sliders,
		feedback:     ta,
		report:       components.NewReportPanel(theme),
		details:      &vp,
		alert:        components.NewAlertDialog(theme),
		detailsPanel: components.NewPanel("Team & Presentation", theme),
		formPanel:    formPanel,
	}
}

// Team returns the team currently loaded into the form.
func (v *EvaluationView) Team() *team.Team {
	return v.team
}

// Busy reports whether a submit or draft save is in flight.
func (v *EvaluationView) Busy() bool {
	return v.submitting
}

// Status returns the transient outcome banner for the status bar and
// whether one is set.
func (v *EvaluationView) Status() (string, components.StatusKind, bool) {
	return v.statusText, v.statusKind, v.statusText != ""
}

func (v *EvaluationView) setStatus(text string, kind components.StatusKind) {
	v.statusText = text
	v.statusKind = kind
}

func (v *EvaluationView) clearStatus() {
	v.statusText = ""
	v.statusKind = components.StatusInfo
}

// EditingFeedback reports whether the feedback box has focus, in which case
// plain keys belong to the textarea.
func (v *EvaluationView) EditingFeedback() bool {
	return v.focus == feedbackFocusIndex
}

// SetTeam resets the form for a newly selected team and kicks off the
// saved-evaluation lookup and the report fetch.
func (v *EvaluationView) SetTeam(t *team.Team) tea.Cmd {
	v.team = t
	v.draft = evaluation.NewDraft()
	v.submitting = false
	v.clearStatus()
	v.navSeq++
	v.setFocus(0)
	v.feedback.SetValue("")
	v.alert.Hide()
	for _, s := range v.sliders {
		s.SetValue(evaluation.DefaultRating)
	}
	v.details.GotoTop()

	return tea.Batch(
		v.report.Reset(),
		v.loadSavedEvaluation(t.ID),
		v.loadReport(t.Name),
	)
}

func (v *EvaluationView) loadSavedEvaluation(teamID string) tea.Cmd {
	client := v.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.RequestTimeout)
		defer cancel()

		saved, err := client.Evaluation(ctx, teamID)
		if err != nil {
			return savedLookupFailedMsg{teamID: teamID, err: err}
		}
		return savedEvaluationMsg{teamID: teamID, saved: saved}
	}
}

func (v *EvaluationView) loadReport(teamName string) tea.Cmd {
	client := v.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.RequestTimeout)
		defer cancel()

		report, err := client.Report(ctx, teamName)
		if err != nil {
			return reportFailedMsg{teamName: teamName, err: err}
		}
		return reportLoadedMsg{teamName: teamName, report: report}
	}
}

// submit posts the evaluation to either the submit or the draft endpoint.
func (v *EvaluationView) submit(isDraft bool) tea.Cmd {
	client := v.client
	sub := evaluation.NewSubmission(v.team, v.draft, v.round)
	teamID := v.team.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.RequestTimeout)
		defer cancel()

		var (
			result *evaluation.Result
			err    error
		)
		if isDraft {
			result, err = client.SaveDraft(ctx, sub)
		} else {
			result, err = client.Submit(ctx, sub)
		}
		if err != nil {
			return submissionFailedMsg{teamID: teamID, isDraft: isDraft, err: err}
		}
		return submissionDoneMsg{teamID: teamID, isDraft: isDraft, result: result}
	}
}

// SetSize sets the view dimensions.
func (v *EvaluationView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.alert.SetSize(width, height)

	leftWidth := width / 2
	v.detailsPanel.SetSize(leftWidth, height)
	v.report.SetWidth(leftWidth - 6)
	v.details.Width = leftWidth - 4
	v.details.Height = height - 4

	rightWidth := width - leftWidth
	v.formPanel.SetSize(rightWidth, height)
	for _, s := range v.sliders {
		s.SetWidth(rightWidth - 6)
	}
	v.feedback.SetWidth(rightWidth - 8)
}

func (v *EvaluationView) setFocus(focus int) {
	v.focus = focus
	for i, s := range v.sliders {
		s.SetFocused(i == focus)
	}
	if focus == feedbackFocusIndex {
		v.feedback.Focus()
	} else {
		v.feedback.Blur()
	}
}

// Update handles messages for the evaluation view.
func (v *EvaluationView) Update(msg tea.Msg) (tea.Cmd, tea.Msg) {
	switch msg := msg.(type) {
	case savedEvaluationMsg:
		if v.team == nil || msg.teamID != v.team.ID {
			return nil, nil
		}
		v.draft.ApplySaved(msg.saved)
		for i, f := range evaluation.RatingFields {
			v.sliders[i].SetValue(v.draft.Rating(f))
		}
		v.feedback.SetValue(v.draft.PersonalizedFeedback)
		return nil, nil

	case savedLookupFailedMsg:
		// A lookup miss is the common case; the form keeps its defaults.
		return nil, nil

	case reportLoadedMsg:
		if v.team == nil || msg.teamName != v.team.Name {
			return nil, nil
		}
		v.report.SetReport(msg.report)
		return nil, nil

	case reportFailedMsg:
		if v.team == nil || msg.teamName != v.team.Name {
			return nil, nil
		}
		v.report.SetError(components.ReportNotFoundMessage)
		return nil, nil

	case submissionDoneMsg:
		if v.team == nil || msg.teamID != v.team.ID {
			return nil, nil
		}
		v.submitting = false
		title, status := "Evaluation Submitted", "Evaluation submitted"
		if msg.isDraft {
			title, status = "Draft Saved", "Draft saved"
		}
		v.alert.Show(title, resultMessage(msg.result), false)
		v.setStatus(status, components.StatusOK)
		seq := v.navSeq
		return tea.Tick(navigateBackDelay, func(time.Time) tea.Msg {
			return navigateBackMsg{seq: seq}
		}), nil

	case submissionFailedMsg:
		if v.team == nil || msg.teamID != v.team.ID {
			return nil, nil
		}
		v.submitting = false
		title := "Submission Failed"
		if msg.isDraft {
			title = "Draft Save Failed"
		}
		v.alert.Show(title, msg.err.Error(), true)
		v.setStatus(title, components.StatusFailed)
		return nil, nil

	case navigateBackMsg:
		if msg.seq != v.navSeq {
			return nil, nil
		}
		v.navSeq++
		v.alert.Hide()
		v.clearStatus()
		return nil, BackToTeamsMsg{}

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v.report.Update(msg), nil
}

func (v *EvaluationView) handleKey(msg tea.KeyMsg) (tea.Cmd, tea.Msg) {
	if v.alert.IsVisible() {
		v.alert.HandleKey(msg)
		return nil, nil
	}
	if v.team == nil {
		if msg.String() == "esc" {
			return nil, BackToTeamsMsg{}
		}
		return nil, nil
	}

	switch msg.String() {
	case "tab":
		v.setFocus((v.focus + 1) % (feedbackFocusIndex + 1))
		return nil, nil
	case "shift+tab":
		v.setFocus((v.focus + feedbackFocusIndex) % (feedbackFocusIndex + 1))
		return nil, nil
	case "ctrl+s":
		return v.startSubmission(false)
	case "ctrl+d":
		return v.startSubmission(true)
	case "esc":
		if v.EditingFeedback() {
			v.setFocus(0)
			return nil, nil
		}
		return nil, BackToTeamsMsg{}
	}

	if v.EditingFeedback() {
		var cmd tea.Cmd
		v.feedback, cmd = v.feedback.Update(msg)
		v.draft.PersonalizedFeedback = v.feedback.Value()
		return cmd, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.focus > 0 {
			v.setFocus(v.focus - 1)
		}
	case "down", "j":
		if v.focus < feedbackFocusIndex {
			v.setFocus(v.focus + 1)
		}
	case "left", "h":
		v.adjustRating(-1)
	case "right", "l":
		v.adjustRating(+1)
	case "pgup":
		v.details.LineUp(3)
	case "pgdown":
		v.details.LineDown(3)
	}
	return nil, nil
}

// startSubmission validates the draft and, if it passes, fires the post.
// Validation failures block with an alert and never reach the network. A
// second request can't start while one is in flight.
func (v *EvaluationView) startSubmission(isDraft bool) (tea.Cmd, tea.Msg) {
	if v.submitting {
		return nil, nil
	}
	if err := v.draft.Validate(); err != nil {
		v.alert.Show("Validation Error", err.Error(), true)
		return nil, nil
	}
	v.submitting = true
	if isDraft {
		v.setStatus("Saving draft...", components.StatusWorking)
	} else {
		v.setStatus("Submitting evaluation...", components.StatusWorking)
	}
	return v.submit(isDraft), nil
}

func (v *EvaluationView) adjustRating(delta int) {
	if v.focus >= feedbackFocusIndex {
		return
	}
	slider := v.sliders[v.focus]
	if delta > 0 {
		slider.Increment()
	} else {
		slider.Decrement()
	}
	v.draft.SetRating(evaluation.RatingFields[v.focus], slider.Value())
}

// resultMessage formats the backend's scoring summary for the success alert.
func resultMessage(result *evaluation.Result) string {
	if result == nil {
		return "Saved."
	}
	return fmt.Sprintf("Total score: %g\nAverage score: %g",
		result.TotalScore, result.AverageScore)
}

// View renders the evaluation view.
func (v *EvaluationView) View() string {
	if v.alert.IsVisible() {
		return v.alert.Render()
	}
	if v.team == nil {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
			"No team selected. Press esc to go back.")
	}

	v.details.SetContent(v.renderDetails())
	v.detailsPanel.SetContent(v.details.View())
	v.formPanel.SetContent(v.renderForm())

	return lipgloss.JoinHorizontal(lipgloss.Top,
		v.detailsPanel.Render(),
		v.formPanel.Render(),
	)
}

// renderDetails renders the team metadata and the report panel.
func (v *EvaluationView) renderDetails() string {
	mutedStyle := lipgloss.NewStyle().Foreground(v.theme.Muted)
	var b strings.Builder

	b.WriteString(v.theme.TitleStyle.Render(v.team.Name) + "\n")
	if ps := v.team.ProblemStatement; ps != nil {
		if ps.Title != "" {
			b.WriteString(ps.Title + "\n")
		}
		if ps.Category != "" {
			b.WriteString(mutedStyle.Render("Category: "+ps.Category) + "\n")
		}
	}
	if v.team.Status != "" {
		b.WriteString(mutedStyle.Render("Status: "+v.team.Status) + "\n")
	}
	if v.team.SubmittedAt != nil {
		b.WriteString(mutedStyle.Render(
			"Submitted: "+v.team.SubmittedAt.Format("Jan 2 15:04")) + "\n")
	}

	if roster := v.team.Roster(); len(roster) > 0 {
		b.WriteString("\n" + v.theme.TitleStyle.Render("Members") + "\n")
		for _, m := range roster {
			line := "  " + m.Name
			if m.Role != "" {
				line += mutedStyle.Render(" (" + m.Role + ")")
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + v.theme.TitleStyle.Render("Presentation Analysis") + "\n")
	b.WriteString(v.report.Render() + "\n")

	return b.String()
}

// renderForm renders the sliders and the feedback box; the surrounding
// panel supplies the title and border.
func (v *EvaluationView) renderForm() string {
	var b strings.Builder
	for _, s := range v.sliders {
		b.WriteString(s.Render() + "\n")
	}

	feedbackTitle := "Personalized Feedback"
	if v.EditingFeedback() {
		feedbackTitle = "> " + feedbackTitle
	}
	b.WriteString("\n" + v.theme.TitleStyle.Render(feedbackTitle) + "\n")
	b.WriteString(v.feedback.View() + "\n")

	hint := "ctrl+s submit • ctrl+d save draft • esc back"
	if v.submitting {
		hint = v.theme.StatusBusy.Render(v.statusText)
	}
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(v.theme.Muted).Render(hint))

	return b.String()
}
