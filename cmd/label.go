package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toba/ghtask/internal/output"
	"github.com/toba/ghtask/internal/ui"
)

var labelCmd = &cobra.Command{
	Use:     "label",
	Aliases: []string{"labels"},
	Short:   "Manage repository and issue labels",
}

var labelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the repository's labels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		labels, err := c.Labels().List(cmd.Context())
		if err != nil {
			return fail(err)
		}
		if jsonOut {
			return output.JSON(output.Response{Success: true, Labels: labels, Count: len(labels)})
		}
		w := cmd.OutOrStdout()
		if len(labels) == 0 {
			fmt.Fprintln(w, ui.Muted.Render("No labels"))
			return nil
		}
		for _, l := range labels {
			fmt.Fprintln(w, ui.LabelBadge.Render(l))
		}
		return nil
	},
}

var labelCreateCmd = &cobra.Command{
	Use:   "create <label>",
	Short: "Create a repository label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		label, err := c.Labels().Create(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		return labelDone(cmd, fmt.Sprintf("Created label %s", label))
	},
}

var labelDeleteCmd = &cobra.Command{
	Use:   "delete <label>",
	Short: "Delete a repository label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		if err := c.Labels().Delete(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}
		return labelDone(cmd, fmt.Sprintf("Deleted label %s", args[0]))
	},
}

var labelAddCmd = &cobra.Command{
	Use:   "add <label> <issue>",
	Short: "Add a label to an issue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		if _, err := c.Labels().AddToIssue(cmd.Context(), args[0], args[1]); err != nil {
			return fail(err)
		}
		return labelDone(cmd, fmt.Sprintf("Added label %s to #%s", args[0], args[1]))
	},
}

var labelRemoveCmd = &cobra.Command{
	Use:   "remove <label> <issue>",
	Short: "Remove a label from an issue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireClient()
		if err != nil {
			return err
		}
		if err := c.Labels().DeleteFromIssue(cmd.Context(), args[0], args[1]); err != nil {
			return fail(err)
		}
		return labelDone(cmd, fmt.Sprintf("Removed label %s from #%s", args[0], args[1]))
	},
}

func labelDone(cmd *cobra.Command, msg string) error {
	if jsonOut {
		return output.SuccessMessage(msg)
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func init() {
	labelCmd.AddCommand(labelListCmd, labelCreateCmd, labelDeleteCmd, labelAddCmd, labelRemoveCmd)
	rootCmd.AddCommand(labelCmd)
}
