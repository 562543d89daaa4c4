package github

import (
	"context"
	"fmt"
	"strings"
)

// IssueService wraps the issues/* endpoints.
type IssueService struct {
	client *Client
}

// Create opens a new issue and returns it with its server-assigned number.
//
// API: POST issues/open/:user/:repo (login, token, body, title)
func (s *IssueService) Create(ctx context.Context, issue *Issue) (*Issue, error) {
	const op = "issues/open"
	c := s.client
	body, err := c.exec.post(ctx, op, c.issuesURL([]string{"open"}), issueFields(c.repo.Credentials, issue))
	if err != nil {
		return nil, err
	}
	return decodeIssue(op, body)
}

// Retrieve fetches a single issue by number.
//
// API: POST issues/show/:user/:repo/:number
func (s *IssueService) Retrieve(ctx context.Context, id string) (*Issue, error) {
	const op = "issues/show"
	c := s.client
	body, err := c.exec.post(ctx, op, c.issuesURL([]string{"show"}, id), c.credentials())
	if err != nil {
		return nil, err
	}
	return decodeIssue(op, body)
}

// List fetches all issues in the given state.
//
// API: POST issues/list/:user/:repo/:state
func (s *IssueService) List(ctx context.Context, state string) ([]Issue, error) {
	const op = "issues/list"
	c := s.client
	body, err := c.exec.post(ctx, op, c.issuesURL([]string{"list"}, state), c.credentials())
	if err != nil {
		return nil, err
	}
	return decodeIssues(op, body)
}

// Filtered returns issues in state matching filter. An empty filter lists
// every issue in that state.
//
// API: POST issues/search/:user/:repo/:state/:search_term
func (s *IssueService) Filtered(ctx context.Context, filter, state string) ([]Issue, error) {
	if filter == "" {
		return s.List(ctx, state)
	}
	const op = "issues/search"
	c := s.client
	body, err := c.exec.post(ctx, op, c.issuesURL([]string{"search"}, state, filter), c.credentials())
	if err != nil {
		return nil, err
	}
	return decodeIssues(op, body)
}

// RetrieveAll returns closed issues followed by open issues.
func (s *IssueService) RetrieveAll(ctx context.Context) ([]Issue, error) {
	return s.Search(ctx, "")
}

// Search returns closed then open issues matching filter.
func (s *IssueService) Search(ctx context.Context, filter string) ([]Issue, error) {
	closed, err := s.Filtered(ctx, filter, StateClosed)
	if err != nil {
		return nil, fmt.Errorf("fetching closed issues: %w", err)
	}
	open, err := s.Filtered(ctx, filter, StateOpen)
	if err != nil {
		return nil, fmt.Errorf("fetching open issues: %w", err)
	}
	return append(closed, open...), nil
}

// Update pushes the issue's title and body. State is not changed; use
// Reopen or Close for that.
//
// API: POST issues/edit/:user/:repo/:number (login, token, body, title)
func (s *IssueService) Update(ctx context.Context, issue *Issue) (*Issue, error) {
	const op = "issues/edit"
	if issue.IsNew() {
		return nil, fmt.Errorf("%s: %w", op, ErrNoNumber)
	}
	c := s.client
	body, err := c.exec.post(ctx, op, c.issuesURL([]string{"edit"}, string(issue.Number)), issueFields(c.repo.Credentials, issue))
	if err != nil {
		return nil, err
	}
	return decodeIssue(op, body)
}

// Reopen updates the issue and then reopens it. The two requests are not
// atomic: if the second fails the edit has already been applied.
//
// API: POST issues/reopen/:user/:repo/:number
func (s *IssueService) Reopen(ctx context.Context, issue *Issue) (*Issue, error) {
	return s.transition(ctx, issue, "reopen")
}

// Close updates the issue and then closes it. Same non-atomic sequence as
// Reopen.
//
// API: POST issues/close/:user/:repo/:number
func (s *IssueService) Close(ctx context.Context, issue *Issue) (*Issue, error) {
	return s.transition(ctx, issue, "close")
}

func (s *IssueService) transition(ctx context.Context, issue *Issue, action string) (*Issue, error) {
	if _, err := s.Update(ctx, issue); err != nil {
		return nil, err
	}
	op := "issues/" + action
	c := s.client
	body, err := c.exec.post(ctx, op, c.issuesURL([]string{action}, string(issue.Number)), c.credentials())
	if err != nil {
		c.exec.logger.Warn("issue edited but state transition failed",
			"issue", string(issue.Number), "action", action, "error", err)
		return nil, err
	}
	return decodeIssue(op, body)
}

// FilterLabeled returns the issues carrying label. The filter "all" (any
// case) returns every issue. Label comparison is exact and case-sensitive.
func FilterLabeled(issues []Issue, label string) []Issue {
	if strings.EqualFold(label, StateAll) {
		return issues
	}
	var out []Issue
	for _, issue := range issues {
		if issue.HasLabel(label) {
			out = append(out, issue)
		}
	}
	return out
}
