package taskdata

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/toba/ghtask/internal/github"
)

// ResponseKind tells whether a post created or updated a task.
type ResponseKind int

const (
	ResponseCreated ResponseKind = iota
	ResponseUpdated
)

func (k ResponseKind) String() string {
	if k == ResponseCreated {
		return "created"
	}
	return "updated"
}

// Response is the result of PostTaskData.
type Response struct {
	Kind   ResponseKind
	TaskID string
}

// Query selects issues. Status is open, closed or all; Label is a label name
// or all. Empty values mean all.
type Query struct {
	Text   string
	Status string
	Label  string
}

// Connector reads and writes task data through a GitHub client.
type Connector struct {
	client *github.Client
	mapper *Mapper
	logger *slog.Logger
}

// NewConnector returns a connector for client's repository.
func NewConnector(client *github.Client, mapper *Mapper, logger *slog.Logger) *Connector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if mapper == nil {
		mapper = NewMapper("", nil, logger)
	}
	return &Connector{client: client, mapper: mapper, logger: logger}
}

// Mapper returns the connector's mapper.
func (c *Connector) Mapper() *Mapper {
	return c.mapper
}

// RepositoryURL returns the URL of the connected repository.
func (c *Connector) RepositoryURL() string {
	return c.client.Repository().URL()
}

// statuses expands a query status into the states to fetch. Blank and all
// mean both states; any other value is sent to the service as given.
func statuses(status string) []string {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, github.StateAll) {
		return []string{github.StateOpen, github.StateClosed}
	}
	return []string{status}
}

// PerformQuery returns a partial snapshot for every issue matching q.
func (c *Connector) PerformQuery(ctx context.Context, q Query) ([]*TaskData, error) {
	label := cmp.Or(strings.TrimSpace(q.Label), github.StateAll)
	var out []*TaskData
	for _, state := range statuses(q.Status) {
		issues, err := c.client.Issues().Filtered(ctx, q.Text, state)
		if err != nil {
			return nil, fmt.Errorf("querying %s issues: %w", state, err)
		}
		for _, issue := range github.FilterLabeled(issues, label) {
			out = append(out, c.mapper.FromIssue(c.RepositoryURL(), &issue, nil, true))
		}
	}
	c.logger.Debug("query complete", "text", q.Text, "status", q.Status, "label", label, "tasks", len(out))
	return out, nil
}

// GetTaskData returns a full snapshot of issue id, comments included.
func (c *Connector) GetTaskData(ctx context.Context, id string) (*TaskData, error) {
	issue, err := c.client.Issues().Retrieve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieving issue %s: %w", id, err)
	}
	comments, err := c.client.Comments().List(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieving comments of issue %s: %w", id, err)
	}
	return c.mapper.FromIssue(c.RepositoryURL(), issue, comments, false), nil
}

// NewTaskData returns an initialized, empty task for this repository.
func (c *Connector) NewTaskData() *TaskData {
	data := New(c.RepositoryURL(), "")
	c.mapper.Initialize(data)
	return data
}

// PostTaskData submits data. New tasks are created; existing tasks are
// updated and then transitioned according to the selected operation. Labels
// present in oldAttributes but no longer set are removed, every current label
// is added, and a non-blank new comment is posted.
func (c *Connector) PostTaskData(ctx context.Context, data *TaskData, oldAttributes []*Attribute) (Response, error) {
	issue := c.mapper.ToIssue(data)
	issues := c.client.Issues()

	resp := Response{Kind: ResponseUpdated}
	if data.IsNew() {
		created, err := issues.Create(ctx, issue)
		if err != nil {
			return Response{}, fmt.Errorf("creating issue: %w", err)
		}
		issue.Number = created.Number
		resp.Kind = ResponseCreated
	} else {
		op, _ := SelectedOperation(data)
		var err error
		switch op {
		case OperationReopen:
			_, err = issues.Reopen(ctx, issue)
		case OperationClose:
			_, err = issues.Close(ctx, issue)
		default:
			_, err = issues.Update(ctx, issue)
		}
		if err != nil {
			return Response{}, fmt.Errorf("updating issue %s: %w", issue.Number, err)
		}
	}
	resp.TaskID = string(issue.Number)

	if err := c.updateLabels(ctx, resp.TaskID, issue.Labels, oldAttributes); err != nil {
		return Response{}, err
	}

	if comment := data.Value(FieldNewComment.ID); strings.TrimSpace(comment) != "" {
		if err := c.client.Comments().Create(ctx, resp.TaskID, &github.Comment{Body: comment}); err != nil {
			return Response{}, fmt.Errorf("adding comment to issue %s: %w", resp.TaskID, err)
		}
	}
	return resp, nil
}

func (c *Connector) updateLabels(ctx context.Context, id string, current []string, oldAttributes []*Attribute) error {
	labels := c.client.Labels()
	for _, label := range oldLabels(oldAttributes) {
		if slices.Contains(current, label) {
			continue
		}
		if err := labels.DeleteFromIssue(ctx, label, id); err != nil {
			return fmt.Errorf("removing label %q from issue %s: %w", label, id, err)
		}
	}
	for _, label := range current {
		if _, err := labels.AddToIssue(ctx, label, id); err != nil {
			return fmt.Errorf("adding label %q to issue %s: %w", label, id, err)
		}
	}
	return nil
}

func oldLabels(attrs []*Attribute) []string {
	for _, a := range attrs {
		if a != nil && a.ID == FieldLabels.ID {
			return labelsOf(a)
		}
	}
	return nil
}

// LabelOptions fills attr with the repository's labels.
func (c *Connector) LabelOptions(ctx context.Context, attr *Attribute) {
	c.mapper.Options(ctx, attr, c.client.Labels())
}

// TaskURL returns the browser URL of task id.
func (c *Connector) TaskURL(id string) string {
	return github.TaskURL(c.RepositoryURL(), id)
}

// RepositoryURLFromTaskURL returns the repository part of taskURL, or "".
func RepositoryURLFromTaskURL(taskURL string) string {
	return github.RepositoryURLFromTaskURL(taskURL)
}

// TaskIDFromTaskURL returns the task id of taskURL, or "".
func TaskIDFromTaskURL(taskURL string) string {
	return github.TaskIDFromTaskURL(taskURL)
}
