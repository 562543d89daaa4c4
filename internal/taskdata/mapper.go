package taskdata

import (
	"cmp"
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/toba/ghtask/internal/github"
)

// DefaultDisplayLayout is the date layout shown to users.
const DefaultDisplayLayout = "Jan 2, 2006 3:04:05 PM"

// LabelSource lists the labels available in a repository.
type LabelSource interface {
	List(ctx context.Context) ([]string, error)
}

// Mapper converts between issues and task data.
type Mapper struct {
	DisplayLayout string
	Location      *time.Location
	logger        *slog.Logger
}

// NewMapper returns a mapper that shows dates with layout in loc. Empty
// values fall back to DefaultDisplayLayout and the local zone.
func NewMapper(layout string, loc *time.Location, logger *slog.Logger) *Mapper {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Mapper{
		DisplayLayout: cmp.Or(layout, DefaultDisplayLayout),
		Location:      loc,
		logger:        logger,
	}
}

// ToDisplayDate converts a wire timestamp to the display layout. Blank and
// unparseable values are returned unchanged.
func (m *Mapper) ToDisplayDate(wire string) string {
	if strings.TrimSpace(wire) == "" {
		return wire
	}
	t, err := github.ParseTime(wire)
	if err != nil {
		m.logger.Debug("keeping unparseable date", "value", wire, "error", err)
		return wire
	}
	return t.In(m.Location).Format(m.DisplayLayout)
}

// ToWireDate converts a display date back to a wire timestamp. Blank and
// unparseable values are returned unchanged.
func (m *Mapper) ToWireDate(display string) string {
	if strings.TrimSpace(display) == "" {
		return display
	}
	t, err := time.ParseInLocation(m.DisplayLayout, display, m.Location)
	if err != nil {
		m.logger.Debug("keeping unparseable date", "value", display, "error", err)
		return display
	}
	return github.FormatTime(t)
}

// FromIssue builds the task data for issue. A partial snapshot omits the
// fields only needed when a task is opened and is flagged Partial.
func (m *Mapper) FromIssue(repositoryURL string, issue *github.Issue, comments []github.Comment, partial bool) *TaskData {
	data := New(repositoryURL, string(issue.Number))

	createOperations(data, issue.State)

	str := func(s string) *string { return &s }
	var closed *string
	if issue.ClosedAt != nil {
		closed = str(m.ToDisplayDate(*issue.ClosedAt))
	}

	FieldKey.create(data, str(string(issue.Number)))
	FieldTitle.create(data, str(issue.Title))
	FieldBody.create(data, str(issue.Body))
	FieldStatus.create(data, str(issue.State))
	FieldCreated.create(data, str(m.ToDisplayDate(issue.CreatedAt)))
	FieldModified.create(data, str(m.ToDisplayDate(issue.UpdatedAt)))
	FieldClosed.create(data, closed)
	FieldLabels.create(data, str(JoinLabels(issue.Labels)))
	FieldVotes.create(data, str(strconv.Itoa(issue.Votes)))
	FieldCommentCount.create(data, str(strconv.Itoa(issue.Comments)))
	FieldReporter.create(data, str(issue.User))

	if !partial {
		FieldReporterGravatar.create(data, str(issue.GravatarID))
		m.addComments(data, comments)
		FieldNewComment.create(data, nil)
	}

	data.Partial = IsPartial(data)
	return data
}

func (m *Mapper) addComments(data *TaskData, comments []github.Comment) {
	for i, c := range comments {
		a := data.Root().CreateAttribute(commentID(i))
		a.Type = TypeComment

		author := a.CreateAttribute(AttrCommentAuthor)
		author.Type = TypePerson
		author.SetValue(c.User)

		date := a.CreateAttribute(AttrCommentDate)
		date.Type = TypeDateTime
		date.SetValue(m.ToDisplayDate(c.CreatedAt))

		text := a.CreateAttribute(AttrCommentText)
		text.Type = TypeLongRichText
		text.SetValue(c.Body)

		number := a.CreateAttribute(AttrCommentNumber)
		number.Type = TypeInteger
		number.SetValue(strconv.Itoa(i))
	}
}

// Comments returns the comment attributes of data in order.
func Comments(data *TaskData) []*Attribute {
	var out []*Attribute
	for _, a := range data.Root().Attributes() {
		if strings.HasPrefix(a.ID, PrefixComment) {
			out = append(out, a)
		}
	}
	return out
}

// ToIssue projects data back onto an issue. The number is taken from the
// task id unless the task is new.
func (m *Mapper) ToIssue(data *TaskData) *github.Issue {
	issue := github.NewIssue()
	if !data.IsNew() {
		issue.Number = github.IssueNumber(data.TaskID)
	}
	issue.Title = data.Value(FieldTitle.ID)
	issue.Body = data.Value(FieldBody.ID)
	issue.State = data.Value(FieldStatus.ID)
	issue.User = data.Value(FieldReporter.ID)
	issue.GravatarID = data.Value(FieldReporterGravatar.ID)
	issue.CreatedAt = m.ToWireDate(data.Value(FieldCreated.ID))
	issue.UpdatedAt = m.ToWireDate(data.Value(FieldModified.ID))
	if closed := data.Value(FieldClosed.ID); closed != "" {
		wire := m.ToWireDate(closed)
		issue.ClosedAt = &wire
	}
	issue.Votes, _ = strconv.Atoi(data.Value(FieldVotes.ID))
	issue.Comments, _ = strconv.Atoi(data.Value(FieldCommentCount.ID))
	issue.Labels = labelsOf(data.Root().Attribute(FieldLabels.ID))
	return issue
}

// labelsOf reads a label attribute whether it holds one comma-joined value
// or one value per label.
func labelsOf(a *Attribute) []string {
	if a == nil {
		return []string{}
	}
	return SplitLabels(strings.Join(a.Values(), ","))
}

// JoinLabels joins labels with commas. A label that itself contains a comma
// does not survive SplitLabels.
func JoinLabels(labels []string) string {
	return strings.Join(labels, ",")
}

// SplitLabels splits a comma-joined label string, trimming space and dropping
// empty entries.
func SplitLabels(s string) []string {
	labels := []string{}
	for part := range strings.SplitSeq(s, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// IsPartial reports whether any field required for a full snapshot is
// missing from data.
func IsPartial(data *TaskData) bool {
	for _, f := range Fields() {
		if f.RequiredForFull && data.Root().Attribute(f.ID) == nil {
			return true
		}
	}
	return false
}

// Initialize prepares an empty task for creation.
func (m *Mapper) Initialize(data *TaskData) {
	data.Version = DataVersion
	for _, f := range Fields() {
		if f.InitTask {
			f.create(data, nil)
		}
	}
	createOperations(data, "")
}

// Options fills the label choices of attr from source. A failure is logged
// and leaves attr without options.
func (m *Mapper) Options(ctx context.Context, attr *Attribute, source LabelSource) {
	if attr.ID != FieldLabels.ID {
		return
	}
	labels, err := source.List(ctx)
	if err != nil {
		m.logger.Error("failed to retrieve labels from server", "error", err)
		return
	}
	attr.ClearOptions()
	for _, label := range labels {
		attr.PutOption(label, label)
	}
}
