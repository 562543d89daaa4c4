// Package taskdata projects GitHub issues onto an ordered, generic attribute
// bag and applies edited bags back to the repository.
package taskdata

import "slices"

// ConnectorKind identifies task data produced by this package.
const ConnectorKind = "github"

// DataVersion is stamped on every TaskData.
const DataVersion = "1"

// Attribute types.
const (
	TypeShortText    = "shortText"
	TypeLongRichText = "longRichText"
	TypeDateTime     = "dateTime"
	TypeInteger      = "integer"
	TypePerson       = "person"
	TypeMultiSelect  = "multiSelect"
	TypeComment      = "comment"
	TypeOperation    = "operation"
)

// Attribute kinds. An attribute without a kind is hidden from summaries.
const (
	KindDefault = "task.common.kind.default"
	KindPeople  = "task.common.kind.people"
)

// Option is a selectable key/value pair offered for an attribute.
type Option struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Attribute is a named, typed node in a TaskData tree. Children keep their
// creation order.
type Attribute struct {
	ID       string
	Type     string
	Kind     string
	Label    string
	ReadOnly bool

	values   []string
	options  []Option
	children []*Attribute
}

func newAttribute(id string) *Attribute {
	return &Attribute{ID: id}
}

// Value returns the first value, or "".
func (a *Attribute) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

// Values returns a copy of all values.
func (a *Attribute) Values() []string {
	return slices.Clone(a.values)
}

// SetValue replaces all values with v.
func (a *Attribute) SetValue(v string) {
	a.values = []string{v}
}

// AddValue appends v.
func (a *Attribute) AddValue(v string) {
	a.values = append(a.values, v)
}

// SetValues replaces all values.
func (a *Attribute) SetValues(vs []string) {
	a.values = slices.Clone(vs)
}

// Options returns the options in insertion order.
func (a *Attribute) Options() []Option {
	return slices.Clone(a.options)
}

// PutOption adds an option, replacing the value of an existing key.
func (a *Attribute) PutOption(key, value string) {
	for i := range a.options {
		if a.options[i].Key == key {
			a.options[i].Value = value
			return
		}
	}
	a.options = append(a.options, Option{Key: key, Value: value})
}

// ClearOptions removes all options.
func (a *Attribute) ClearOptions() {
	a.options = nil
}

// Attribute returns the child with id, or nil.
func (a *Attribute) Attribute(id string) *Attribute {
	for _, c := range a.children {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CreateAttribute adds a child with id. An existing child with the same id is
// replaced in place.
func (a *Attribute) CreateAttribute(id string) *Attribute {
	child := newAttribute(id)
	for i, c := range a.children {
		if c.ID == id {
			a.children[i] = child
			return child
		}
	}
	a.children = append(a.children, child)
	return child
}

// Attributes returns the children in creation order.
func (a *Attribute) Attributes() []*Attribute {
	return slices.Clone(a.children)
}

// TaskData is the attribute bag for one task.
type TaskData struct {
	ConnectorKind string
	RepositoryURL string
	TaskID        string
	Version       string
	Partial       bool

	root *Attribute
}

// New returns an empty TaskData. A blank taskID marks a task that has not
// been submitted yet.
func New(repositoryURL, taskID string) *TaskData {
	return &TaskData{
		ConnectorKind: ConnectorKind,
		RepositoryURL: repositoryURL,
		TaskID:        taskID,
		Version:       DataVersion,
		root:          newAttribute("root"),
	}
}

// IsNew reports whether the task has no id yet.
func (d *TaskData) IsNew() bool {
	return d.TaskID == ""
}

// Root returns the root attribute.
func (d *TaskData) Root() *Attribute {
	return d.root
}

// Value returns the value of the root child id, or "" when absent.
func (d *TaskData) Value(id string) string {
	if a := d.root.Attribute(id); a != nil {
		return a.Value()
	}
	return ""
}
