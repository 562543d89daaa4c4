package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/toba/ghtask/internal/github"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#6B7280") // Gray
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorDanger    = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#9CA3AF") // Light gray
)

// Text styles
var (
	Bold    = lipgloss.NewStyle().Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)
	Primary = lipgloss.NewStyle().Foreground(ColorPrimary)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Danger  = lipgloss.NewStyle().Foreground(ColorDanger)
)

// ID style - distinctive for issue numbers
var ID = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true)

// Title style
var Title = lipgloss.NewStyle().Bold(true)

// Header style for section headers
var Header = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true).
	MarginBottom(1)

// State badge styles
var (
	StateOpen = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fff")).
			Background(ColorSuccess).
			Padding(0, 1).
			Bold(true)

	StateClosed = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fff")).
			Background(ColorSecondary).
			Padding(0, 1)
)

// LabelBadge is the style for label badges - black text on gray background.
var LabelBadge = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#000")).
	Background(ColorMuted).
	Padding(0, 1)

// RenderState returns a styled badge for an issue state.
func RenderState(state string) string {
	switch state {
	case github.StateOpen:
		return StateOpen.Render(state)
	case github.StateClosed:
		return StateClosed.Render(state)
	default:
		return Muted.Render(state)
	}
}

// StateIcon returns a Unicode icon for the given state.
func StateIcon(state string) string {
	switch state {
	case github.StateOpen:
		return Success.Render("○")
	case github.StateClosed:
		return Muted.Render("✔")
	default:
		return Muted.Render("?")
	}
}

// RenderLabels renders labels as badges separated by spaces.
func RenderLabels(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	rendered := make([]string, len(labels))
	for i, l := range labels {
		rendered[i] = LabelBadge.Render(l)
	}
	return strings.Join(rendered, " ")
}

// Truncate shortens s to width runes, ending with "..." when cut.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// ColWidthID is the width of the issue number column.
const ColWidthID = 6

// RenderIssueRow renders one issue as a list row. maxTitleWidth of 0 means
// no truncation.
func RenderIssueRow(issue *github.Issue, maxTitleWidth int) string {
	id := ID.Render(fmt.Sprintf("#%-*s", ColWidthID-1, issue.Number))
	title := Truncate(issue.Title, maxTitleWidth)

	var b strings.Builder
	b.WriteString(id)
	b.WriteString(" ")
	b.WriteString(StateIcon(issue.State))
	b.WriteString(" ")
	b.WriteString(title)
	if issue.Votes > 0 {
		b.WriteString(Muted.Render(fmt.Sprintf(" ▲%d", issue.Votes)))
	}
	if labels := RenderLabels(issue.Labels); labels != "" {
		b.WriteString(" ")
		b.WriteString(labels)
	}
	return b.String()
}
