package github

import (
	"encoding/json"
	"errors"
	"time"
)

// TimeLayout is the timestamp format used on the wire
// (e.g. "2010/02/04 21:03:54 -0800").
const TimeLayout = "2006/01/02 15:04:05 -0700"

// ParseTime parses a wire timestamp.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// FormatTime formats t as a wire timestamp.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func decode(op string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &ServiceError{Kind: KindDecode, Op: op, Err: err}
	}
	return nil
}

func unexpected(op, missing string) error {
	return &ServiceError{Kind: KindUnexpectedResponse, Op: op, Err: errors.New("missing " + missing)}
}

func decodeIssues(op string, data []byte) ([]Issue, error) {
	var env issuesEnvelope
	if err := decode(op, data, &env); err != nil {
		return nil, err
	}
	for i := range env.Issues {
		normalizeIssue(&env.Issues[i])
	}
	if env.Issues == nil {
		return []Issue{}, nil
	}
	return env.Issues, nil
}

func decodeIssue(op string, data []byte) (*Issue, error) {
	var env issueEnvelope
	if err := decode(op, data, &env); err != nil {
		return nil, err
	}
	if env.Issue == nil {
		return nil, unexpected(op, "issue")
	}
	normalizeIssue(env.Issue)
	return env.Issue, nil
}

func decodeComments(op string, data []byte) ([]Comment, error) {
	var env commentsEnvelope
	if err := decode(op, data, &env); err != nil {
		return nil, err
	}
	if env.Comments == nil {
		return []Comment{}, nil
	}
	return env.Comments, nil
}

func decodeLabels(op string, data []byte) ([]string, error) {
	var env labelsEnvelope
	if err := decode(op, data, &env); err != nil {
		return nil, err
	}
	if env.Labels == nil {
		return []string{}, nil
	}
	return env.Labels, nil
}

func decodeUser(op string, data []byte) (*User, error) {
	var env userEnvelope
	if err := decode(op, data, &env); err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, unexpected(op, "user")
	}
	return env.User, nil
}

func normalizeIssue(i *Issue) {
	if i.Labels == nil {
		i.Labels = []string{}
	}
}

// issueFields returns the form fields sent when creating or editing an issue.
func issueFields(c Credentials, issue *Issue) Fields {
	return append(c.Fields(),
		Field{Name: "body", Value: issue.Body},
		Field{Name: "title", Value: issue.Title},
	)
}

// commentFields returns the form fields sent when adding a comment.
func commentFields(c Credentials, comment *Comment) Fields {
	return append(c.Fields(), Field{Name: "comment", Value: comment.Body})
}
