package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toba/ghtask/internal/output"
	"github.com/toba/ghtask/internal/taskdata"
	"github.com/toba/ghtask/internal/ui"
)

var (
	taskQuery       taskdata.Query
	taskShowOptions bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Inspect issues as task attribute data",
}

var taskQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a task query and print partial task snapshots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := requireConnector()
		if err != nil {
			return err
		}
		tasks, err := conn.PerformQuery(cmd.Context(), taskQuery)
		if err != nil {
			return fail(err)
		}
		if jsonOut {
			views := make([]taskView, 0, len(tasks))
			for _, t := range tasks {
				views = append(views, newTaskView(t))
			}
			return output.Raw(views)
		}
		w := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(w, ui.Muted.Render("No tasks found"))
			return nil
		}
		for _, t := range tasks {
			fmt.Fprintf(w, "%s %s %s\n",
				ui.ID.Render(fmt.Sprintf("#%-*s", ui.ColWidthID-1, t.TaskID)),
				ui.StateIcon(t.Value(taskdata.FieldStatus.ID)),
				t.Value(taskdata.FieldTitle.ID))
		}
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the full attribute tree of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := requireConnector()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		data, err := conn.GetTaskData(ctx, args[0])
		if err != nil {
			return fail(err)
		}
		if taskShowOptions {
			if labels := data.Root().Attribute(taskdata.FieldLabels.ID); labels != nil {
				conn.LabelOptions(ctx, labels)
			}
		}
		if jsonOut {
			return output.Raw(newTaskView(data))
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, ui.Header.Render(conn.TaskURL(data.TaskID)))
		for _, a := range data.Root().Attributes() {
			printAttribute(w, a, 0)
		}
		return nil
	},
}

func printAttribute(w io.Writer, a *taskdata.Attribute, depth int) {
	indent := strings.Repeat("  ", depth)
	name := a.Label
	if name == "" {
		name = a.ID
	}
	line := indent + ui.Muted.Render(name) + " " + strings.Join(a.Values(), ", ")
	if a.ReadOnly {
		line += ui.Muted.Render(" (read-only)")
	}
	fmt.Fprintln(w, line)
	if opts := a.Options(); len(opts) > 0 {
		keys := make([]string, len(opts))
		for i, o := range opts {
			keys[i] = o.Key
		}
		fmt.Fprintf(w, "%s  %s %s\n", indent, ui.Muted.Render("options:"), strings.Join(keys, ", "))
	}
	for _, child := range a.Attributes() {
		printAttribute(w, child, depth+1)
	}
}

// taskView is the JSON form of task data.
type taskView struct {
	ConnectorKind string          `json:"connectorKind"`
	RepositoryURL string          `json:"repositoryUrl"`
	TaskID        string          `json:"taskId"`
	Version       string          `json:"version"`
	Partial       bool            `json:"partial"`
	Attributes    []attributeView `json:"attributes"`
}

type attributeView struct {
	ID         string            `json:"id"`
	Type       string            `json:"type,omitempty"`
	Kind       string            `json:"kind,omitempty"`
	Label      string            `json:"label,omitempty"`
	ReadOnly   bool              `json:"readOnly,omitempty"`
	Values     []string          `json:"values"`
	Options    []taskdata.Option `json:"options,omitempty"`
	Attributes []attributeView   `json:"attributes,omitempty"`
}

func newTaskView(t *taskdata.TaskData) taskView {
	return taskView{
		ConnectorKind: t.ConnectorKind,
		RepositoryURL: t.RepositoryURL,
		TaskID:        t.TaskID,
		Version:       t.Version,
		Partial:       t.Partial,
		Attributes:    attributeViews(t.Root().Attributes()),
	}
}

func attributeViews(attrs []*taskdata.Attribute) []attributeView {
	views := make([]attributeView, 0, len(attrs))
	for _, a := range attrs {
		values := a.Values()
		if values == nil {
			values = []string{}
		}
		views = append(views, attributeView{
			ID:         a.ID,
			Type:       a.Type,
			Kind:       a.Kind,
			Label:      a.Label,
			ReadOnly:   a.ReadOnly,
			Values:     values,
			Options:    a.Options(),
			Attributes: attributeViews(a.Attributes()),
		})
	}
	return views
}

func init() {
	taskQueryCmd.Flags().StringVar(&taskQuery.Text, "text", "", "search text (empty lists every issue)")
	taskQueryCmd.Flags().StringVar(&taskQuery.Status, "status", "", "open, closed or all (default all)")
	taskQueryCmd.Flags().StringVar(&taskQuery.Label, "label", "", "label name or all (default all)")

	taskShowCmd.Flags().BoolVar(&taskShowOptions, "label-options", false, "load the repository's labels as options")

	taskCmd.AddCommand(taskQueryCmd, taskShowCmd)
	rootCmd.AddCommand(taskCmd)
}
