// Package github provides a typed client for the GitHub v2 Issues API.
package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// Issue states.
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateAll    = "all"
)

// IssueNumber is the server-assigned issue id. The API sends it as a JSON
// number; it is kept as a string so drafts can leave it empty.
type IssueNumber string

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (n *IssueNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = IssueNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("issue number: %w", err)
	}
	*n = IssueNumber(num.String())
	return nil
}

// MarshalJSON writes canonical decimal ids as JSON numbers and anything else
// as a string, so "007" survives a round trip.
func (n IssueNumber) MarshalJSON() ([]byte, error) {
	if v, err := strconv.ParseInt(string(n), 10, 64); err == nil && strconv.FormatInt(v, 10) == string(n) {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

// Issue represents a GitHub issue.
type Issue struct {
	Number     IssueNumber `json:"number"`
	User       string      `json:"user"`
	Title      string      `json:"title"`
	Body       string      `json:"body"`
	State      string      `json:"state"` // "open" or "closed"
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
	ClosedAt   *string     `json:"closed_at"` // nil while the issue is open
	Comments   int         `json:"comments"`
	Votes      int         `json:"votes"`
	GravatarID string      `json:"gravatar_id,omitempty"`
	Labels     []string    `json:"labels"`
}

// NewIssue returns an empty draft that has not been persisted.
func NewIssue() *Issue {
	return &Issue{Labels: []string{}}
}

// IsNew reports whether the issue has no server-assigned number yet.
func (i *Issue) IsNew() bool {
	return i.Number == ""
}

// HasLabel reports whether the issue carries label (exact, case-sensitive).
func (i *Issue) HasLabel(label string) bool {
	return slices.Contains(i.Labels, label)
}

// Comment represents a comment on an issue. The owning issue is identified
// by the service call that fetched or created it.
type Comment struct {
	ID         IssueNumber `json:"id"`
	User       string      `json:"user"`
	GravatarID string      `json:"gravatar_id"`
	Body       string      `json:"body"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
}

// User represents a GitHub user profile.
type User struct {
	Login      string `json:"login"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Blog       string `json:"blog"`
	Email      string `json:"email"`
	GravatarID string `json:"gravatar_id"`
}

type issuesEnvelope struct {
	Issues []Issue `json:"issues"`
}

type issueEnvelope struct {
	Issue *Issue `json:"issue"`
}

type commentsEnvelope struct {
	Comments []Comment `json:"comments"`
}

type labelsEnvelope struct {
	Labels []string `json:"labels"`
}

type userEnvelope struct {
	User *User `json:"user"`
}
