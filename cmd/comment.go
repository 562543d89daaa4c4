package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toba/ghtask/internal/github"
	"github.com/toba/ghtask/internal/output"
	"github.com/toba/ghtask/internal/ui"
)

var commentCmd = &cobra.Command{
	Use:     "comment",
	Aliases: []string{"comments"},
	Short:   "Read and add issue comments",
}

var commentListCmd = &cobra.Command{
	Use:   "list <issue>",
	Short: "List the comments on an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		comments, err := c.Comments().List(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		if jsonOut {
			return output.JSON(output.Response{Success: true, Comments: comments, Count: len(comments)})
		}
		w := cmd.OutOrStdout()
		if len(comments) == 0 {
			fmt.Fprintln(w, ui.Muted.Render("No comments"))
			return nil
		}
		for i, cm := range comments {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s %s\n", ui.Bold.Render(cm.User), ui.Muted.Render(cm.CreatedAt))
			fmt.Fprintln(w, cm.Body)
		}
		return nil
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <issue> <text>",
	Short: "Comment on an issue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(args[1]) == "" {
			return cmdError(jsonOut, output.ErrValidation, "comment text is empty")
		}
		c, err := requireClient()
		if err != nil {
			return err
		}
		if err := c.Comments().Create(cmd.Context(), args[0], &github.Comment{Body: args[1]}); err != nil {
			return fail(err)
		}
		msg := fmt.Sprintf("Commented on #%s", args[0])
		if jsonOut {
			return output.SuccessMessage(msg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	commentCmd.AddCommand(commentListCmd, commentAddCmd)
	rootCmd.AddCommand(commentCmd)
}
