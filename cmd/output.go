package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/toba/ghtask/internal/github"
	"github.com/toba/ghtask/internal/output"
	"github.com/toba/ghtask/internal/ui"
)

// cmdError returns an appropriate error for JSON or text mode.
func cmdError(jsonMode bool, code, format string, args ...any) error {
	if jsonMode {
		return output.Error(code, fmt.Sprintf(format, args...))
	}
	return fmt.Errorf(format, args...)
}

// termWidth returns the width of stdout, or 80 when it is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// printIssueList writes one row per issue, titles cut to fit the terminal.
func printIssueList(w io.Writer, issues []github.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("No issues found"))
		return
	}
	maxTitle := max(termWidth()-ui.ColWidthID-4, 20)
	for i := range issues {
		fmt.Fprintln(w, ui.RenderIssueRow(&issues[i], maxTitle))
	}
}

// printStyledIssue writes a header box followed by the markdown body.
func printStyledIssue(w io.Writer, issue *github.Issue, comments []github.Comment) {
	var header strings.Builder
	header.WriteString(ui.ID.Render("#" + string(issue.Number)))
	header.WriteString(" ")
	header.WriteString(ui.RenderState(issue.State))
	if labels := ui.RenderLabels(issue.Labels); labels != "" {
		header.WriteString("  ")
		header.WriteString(labels)
	}
	header.WriteString("\n")
	header.WriteString(ui.Title.Render(issue.Title))
	header.WriteString("\n")
	header.WriteString(ui.Muted.Render(fmt.Sprintf("opened by %s on %s", issue.User, issue.CreatedAt)))
	if issue.Votes > 0 {
		header.WriteString(ui.Muted.Render(fmt.Sprintf(", %d votes", issue.Votes)))
	}
	header.WriteString("\n")
	header.WriteString(ui.Muted.Render(strings.Repeat("─", 50)))

	headerBox := lipgloss.NewStyle().
		MarginBottom(1).
		Render(header.String())
	fmt.Fprintln(w, headerBox)

	printMarkdown(w, issue.Body)

	for _, c := range comments {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.Header.Render(fmt.Sprintf("%s commented on %s", c.User, c.CreatedAt)))
		printMarkdown(w, c.Body)
	}
}

func printMarkdown(w io.Writer, body string) {
	if body == "" {
		return
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprintln(w, body)
		return
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		fmt.Fprintln(w, body)
		return
	}
	fmt.Fprint(w, rendered)
}
