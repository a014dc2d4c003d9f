package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/api"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/evaluation"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui/styles"
)

// ReportState is the lifecycle of the report panel. The panel is always in
// exactly one state.
type ReportState int

const (
	ReportLoading ReportState = iota
	ReportReady
	ReportFailed
)

// ReportNotFoundMessage is shown when no deck analysis exists for a team.
const ReportNotFoundMessage = "No PPT report found for this team."

// ReportPanel renders the automated slide-deck analysis for the selected
// team: summary, per-category scores, reviewer-style feedback lists.
type ReportPanel struct {
	state   ReportState
	report  *api.Report
	errText string
	spinner spinner.Model
	width   int
	theme   *styles.Theme
}

// NewReportPanel creates a report panel in the loading state.
func NewReportPanel(theme *styles.Theme) *ReportPanel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &ReportPanel{
		state:   ReportLoading,
		spinner: sp,
		theme:   theme,
	}
}

// State returns the current panel state.
func (r *ReportPanel) State() ReportState {
	return r.state
}

// Reset puts the panel back into the loading state and returns the
// spinner tick command.
func (r *ReportPanel) Reset() tea.Cmd {
	r.state = ReportLoading
	r.report = nil
	r.errText = ""
	return r.spinner.Tick
}

// SetReport transitions to the ready state with the loaded report.
func (r *ReportPanel) SetReport(report *api.Report) {
	r.state = ReportReady
	r.report = report
}

// SetError transitions to the failed state with the message to display.
func (r *ReportPanel) SetError(message string) {
	r.state = ReportFailed
	r.errText = message
}

// Report returns the loaded report, or nil outside the ready state.
func (r *ReportPanel) Report() *api.Report {
	if r.state != ReportReady {
		return nil
	}
	return r.report
}

// SetWidth sets the render width.
func (r *ReportPanel) SetWidth(width int) {
	r.width = width
}

// Update advances the spinner while loading.
func (r *ReportPanel) Update(msg tea.Msg) tea.Cmd {
	if r.state != ReportLoading {
		return nil
	}
	var cmd tea.Cmd
	r.spinner, cmd = r.spinner.Update(msg)
	return cmd
}

// Render renders the panel body for the current state.
func (r *ReportPanel) Render() string {
	switch r.state {
	case ReportLoading:
		return r.spinner.View() + " Analyzing presentation..."
	case ReportFailed:
		return lipgloss.NewStyle().Foreground(r.theme.Muted).Render(r.errText)
	}
	return r.renderReport()
}

func (r *ReportPanel) renderReport() string {
	var b strings.Builder
	mutedStyle := lipgloss.NewStyle().Foreground(r.theme.Muted)

	if total, ok := r.report.TotalWeighted(); ok {
		band := evaluation.PercentScale.Classify(total)
		b.WriteString(fmt.Sprintf("Overall: %s\n",
			r.theme.BandStyle(band).Render(fmt.Sprintf("%.1f / 100", total))))
	}
	if r.report.WorkflowOverall != "" {
		b.WriteString(mutedStyle.Render("Verdict: "+r.report.WorkflowOverall) + "\n")
	}
	if r.report.Summary != "" {
		b.WriteString("\n" + wrap(r.report.Summary, r.contentWidth()) + "\n")
	}

	if cats := r.report.CategoryScores(); len(cats) > 0 {
		b.WriteString("\n" + r.theme.TitleStyle.Render("Category Scores") + "\n")
		for _, c := range cats {
			band := evaluation.PercentScale.Classify(c.Value)
			b.WriteString(fmt.Sprintf("  %-28s %s\n",
				titleCase(c.Name),
				r.theme.BandStyle(band).Render(fmt.Sprintf("%5.1f", c.Value))))
		}
	}

	r.renderFeedback(&b, "Strengths", r.report.FeedbackPositive)
	r.renderFeedback(&b, "Weaknesses", r.report.FeedbackCriticism)
	r.renderFeedback(&b, "Technical Notes", r.report.FeedbackTechnical)
	r.renderFeedback(&b, "Suggestions", r.report.FeedbackSuggestions)

	return strings.TrimRight(b.String(), "\n")
}

func (r *ReportPanel) renderFeedback(b *strings.Builder, title, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.WriteString("\n" + r.theme.TitleStyle.Render(title) + "\n")
	b.WriteString(wrap(text, r.contentWidth()) + "\n")
}

func (r *ReportPanel) contentWidth() int {
	if r.width <= 4 {
		return 76
	}
	return r.width - 4
}

// titleCase turns a snake_case category key into a display label.
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// wrap breaks text at word boundaries to fit the given width. Wrapped
// lines continue flush left.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
