package taskdata

import "strconv"

// Common attribute ids shared with the host task framework.
const (
	AttrOperation     = "task.common.operation"
	PrefixOperation   = "task.common.operation-"
	PrefixComment     = "task.common.comment-"
	AttrCommentAuthor = "task.common.comment.author"
	AttrCommentDate   = "task.common.comment.date"
	AttrCommentText   = "task.common.comment.text"
	AttrCommentNumber = "task.common.comment.number"
)

// Field describes one issue attribute.
type Field struct {
	ID       string
	Label    string
	Type     string
	Kind     string
	ReadOnly bool

	// InitTask fields are created on a new, empty task.
	InitTask        bool
	// RequiredForFull fields are absent from partial snapshots.
	RequiredForFull bool
}

var (
	FieldKey = Field{
		ID:       "task.common.key",
		Label:    "Key:",
		Type:     TypeShortText,
		ReadOnly: true,
	}

	FieldTitle = Field{
		ID:       "task.common.summary",
		Label:    "Summary:",
		Type:     TypeShortText,
		InitTask: true,
	}

	FieldBody = Field{
		ID:       "task.common.description",
		Label:    "Description:",
		Type:     TypeLongRichText,
		InitTask: true,
	}

	FieldStatus = Field{
		ID:       "task.common.status",
		Label:    "Status:",
		Type:     TypeShortText,
		Kind:     KindDefault,
		ReadOnly: true,
	}

	FieldCreated = Field{
		ID:       "task.common.date.created",
		Label:    "Created:",
		Type:     TypeDateTime,
		Kind:     KindDefault,
		ReadOnly: true,
	}

	FieldModified = Field{
		ID:       "task.common.date.modified",
		Label:    "Modified:",
		Type:     TypeDateTime,
		Kind:     KindDefault,
		ReadOnly: true,
	}

	FieldClosed = Field{
		ID:       "task.common.date.completed",
		Label:    "Closed:",
		Type:     TypeDateTime,
		Kind:     KindDefault,
		ReadOnly: true,
	}

	FieldLabels = Field{
		ID:       "github.issue.labels",
		Label:    "Labels:",
		Type:     TypeMultiSelect,
		Kind:     KindDefault,
		InitTask: true,
	}

	FieldVotes = Field{
		ID:       "github.issue.votes",
		Label:    "Votes:",
		Type:     TypeInteger,
		Kind:     KindDefault,
		ReadOnly: true,
	}

	FieldCommentCount = Field{
		ID:       "github.issue.comments",
		Label:    "Comments:",
		Type:     TypeInteger,
		ReadOnly: true,
	}

	FieldReporter = Field{
		ID:       "task.common.user.reporter",
		Label:    "Reporter:",
		Type:     TypePerson,
		Kind:     KindPeople,
		ReadOnly: true,
	}

	FieldReporterGravatar = Field{
		ID:              "github.issue.reporter.gravatar",
		Label:           "Gravatar:",
		Type:            TypeShortText,
		ReadOnly:        true,
		RequiredForFull: true,
	}

	FieldNewComment = Field{
		ID:              "task.common.comment.new",
		Label:           "New comment:",
		Type:            TypeLongRichText,
		InitTask:        true,
		RequiredForFull: true,
	}
)

// Fields returns every issue field in display order.
func Fields() []Field {
	return []Field{
		FieldKey,
		FieldTitle,
		FieldBody,
		FieldStatus,
		FieldCreated,
		FieldModified,
		FieldClosed,
		FieldLabels,
		FieldVotes,
		FieldCommentCount,
		FieldReporter,
		FieldReporterGravatar,
		FieldNewComment,
	}
}

// create adds f to data's root with its metadata and, when value is
// non-nil, a single value.
func (f Field) create(data *TaskData, value *string) *Attribute {
	a := data.Root().CreateAttribute(f.ID)
	a.Type = f.Type
	a.Kind = f.Kind
	a.Label = f.Label
	a.ReadOnly = f.ReadOnly
	if value != nil {
		a.AddValue(*value)
	}
	return a
}

func commentID(n int) string {
	return PrefixComment + strconv.Itoa(n)
}
