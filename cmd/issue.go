package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/toba/ghtask/internal/draft"
	"github.com/toba/ghtask/internal/github"
	"github.com/toba/ghtask/internal/output"
	"github.com/toba/ghtask/internal/ui"
)

var (
	listState = stateValue(github.StateOpen)
	listLabel string
	listSort  orderValue

	showComments bool
	showCopyURL  bool
	showRaw      bool

	createTitle  string
	createBody   string
	createFile   string
	createLabels string

	editTitle string
	editBody  string
)

var issueCmd = &cobra.Command{
	Use:     "issue",
	Aliases: []string{"issues"},
	Short:   "Manage issues",
}

var issueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issues in a state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var issues []github.Issue
		if listState == github.StateAll {
			issues, err = c.Issues().RetrieveAll(ctx)
		} else {
			issues, err = c.Issues().List(ctx, string(listState))
		}
		if err != nil {
			return fail(err)
		}
		issues = github.FilterLabeled(issues, labelOrAll(listLabel))
		github.SortIssues(issues, listSort.order, logger)
		return printIssues(cmd, issues)
	},
}

var issueSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search open and closed issues",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		issues, err := c.Issues().Search(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		issues = github.FilterLabeled(issues, labelOrAll(listLabel))
		github.SortIssues(issues, listSort.order, logger)
		return printIssues(cmd, issues)
	},
}

var issueShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		issue, err := c.Issues().Retrieve(ctx, args[0])
		if err != nil {
			return fail(err)
		}

		var comments []github.Comment
		if showComments {
			if comments, err = c.Comments().List(ctx, args[0]); err != nil {
				return fail(err)
			}
		}

		url := github.TaskURL(c.Repository().URL(), string(issue.Number))
		if showCopyURL {
			if err := clipboard.WriteAll(url); err != nil {
				logger.Warn("could not copy issue URL", "error", err)
			}
		}

		if jsonOut {
			return output.JSON(output.Response{Success: true, Issue: issue, Comments: comments, URL: url})
		}
		w := cmd.OutOrStdout()
		if showRaw {
			fmt.Fprintln(w, issue.Body)
			return nil
		}
		printStyledIssue(w, issue, comments)
		return nil
	},
}

var issueCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new issue",
	Long: `Opens a new issue from flags or from a markdown draft with YAML front matter:

  ---
  title: Crash on save
  labels: [bug]
  ---
  Steps to reproduce...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		issue, err := issueFromFlags(cmd)
		if err != nil {
			return cmdError(jsonOut, output.ErrValidation, "%v", err)
		}
		c, err := requireClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		created, err := c.Issues().Create(ctx, issue)
		if err != nil {
			return fail(err)
		}
		if err := addLabels(ctx, c, created, issue.Labels); err != nil {
			return fail(err)
		}
		return reportIssue(cmd, c, created, "Created")
	},
}

var issueEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change an issue's title or body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		titleSet, bodySet := cmd.Flags().Changed("title"), cmd.Flags().Changed("body")
		if !titleSet && !bodySet {
			return cmdError(jsonOut, output.ErrValidation, "nothing to change: pass --title or --body")
		}
		c, err := requireClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		issue, err := c.Issues().Retrieve(ctx, args[0])
		if err != nil {
			return fail(err)
		}
		if titleSet {
			issue.Title = editTitle
		}
		if bodySet {
			issue.Body = editBody
		}
		updated, err := c.Issues().Update(ctx, issue)
		if err != nil {
			return fail(err)
		}
		return reportIssue(cmd, c, updated, "Updated")
	},
}

var issueCloseCmd = &cobra.Command{
	Use:   "close <id>",
	Short: "Close an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(cmd, args[0], (*github.IssueService).Close, "Closed")
	},
}

var issueReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a closed issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(cmd, args[0], (*github.IssueService).Reopen, "Reopened")
	},
}

type transitionFunc func(*github.IssueService, context.Context, *github.Issue) (*github.Issue, error)

func transition(cmd *cobra.Command, id string, fn transitionFunc, verb string) error {
	c, err := requireClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	issue, err := c.Issues().Retrieve(ctx, id)
	if err != nil {
		return fail(err)
	}
	issue, err = fn(c.Issues(), ctx, issue)
	if err != nil {
		return fail(err)
	}
	return reportIssue(cmd, c, issue, verb)
}

// issueFromFlags builds the issue to create. Explicit flags override the
// draft file.
func issueFromFlags(cmd *cobra.Command) (*github.Issue, error) {
	d := &draft.Draft{}
	if createFile != "" {
		var err error
		if d, err = draft.ReadFile(createFile); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("title") {
		d.Title = strings.TrimSpace(createTitle)
	}
	if cmd.Flags().Changed("body") {
		d.Body = createBody
	}
	if cmd.Flags().Changed("label") {
		d.Labels = splitList(createLabels)
	}
	if d.Title == "" {
		return nil, errors.New("a title is required: pass --title or set title in the draft")
	}
	return d.Issue()
}

func addLabels(ctx context.Context, c *github.Client, issue *github.Issue, labels []string) error {
	for _, label := range labels {
		if _, err := c.Labels().AddToIssue(ctx, label, string(issue.Number)); err != nil {
			return fmt.Errorf("labeling issue %s: %w", issue.Number, err)
		}
		if !issue.HasLabel(label) {
			issue.Labels = append(issue.Labels, label)
		}
	}
	return nil
}

func labelOrAll(label string) string {
	if label = strings.TrimSpace(label); label == "" {
		return github.StateAll
	}
	return label
}

func printIssues(cmd *cobra.Command, issues []github.Issue) error {
	if jsonOut {
		return output.JSON(output.Response{Success: true, Issues: issues, Count: len(issues)})
	}
	printIssueList(cmd.OutOrStdout(), issues)
	return nil
}

func reportIssue(cmd *cobra.Command, c *github.Client, issue *github.Issue, verb string) error {
	url := github.TaskURL(c.Repository().URL(), string(issue.Number))
	if jsonOut {
		return output.JSON(output.Response{Success: true, Issue: issue, URL: url, Message: verb})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", verb, ui.ID.Render("#"+string(issue.Number)), ui.Title.Render(issue.Title))
	fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(url))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{issueListCmd, issueSearchCmd} {
		c.Flags().StringVarP(&listLabel, "label", "l", "", "only issues carrying this label (exact match)")
		c.Flags().Var(&listSort, "sort", "sort by id, votes, created, updated or closed")
	}
	issueListCmd.Flags().VarP(&listState, "state", "s", "issue state: open, closed or all")

	issueShowCmd.Flags().BoolVar(&showComments, "comments", false, "include comments")
	issueShowCmd.Flags().BoolVar(&showCopyURL, "copy-url", false, "copy the issue URL to the clipboard")
	issueShowCmd.Flags().BoolVar(&showRaw, "raw", false, "print the body without styling")

	issueCreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "issue title")
	issueCreateCmd.Flags().StringVarP(&createBody, "body", "b", "", "issue body (markdown)")
	issueCreateCmd.Flags().StringVarP(&createFile, "file", "f", "", "markdown draft with front matter (- for stdin)")
	issueCreateCmd.Flags().StringVar(&createLabels, "label", "", "comma-separated labels to add")
	issueCreateCmd.MarkFlagsMutuallyExclusive("body", "file")

	issueEditCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	issueEditCmd.Flags().StringVarP(&editBody, "body", "b", "", "new body")

	issueCmd.AddCommand(issueListCmd, issueSearchCmd, issueShowCmd, issueCreateCmd, issueEditCmd, issueCloseCmd, issueReopenCmd)
	rootCmd.AddCommand(issueCmd)
}
