package github

import "context"

// LabelService wraps the label endpoints. Labels are plain strings scoped to
// the repository.
type LabelService struct {
	client *Client
}

// Create adds label to the repository and returns it.
//
// API: POST issues/label/add/:user/:repo/:label
func (s *LabelService) Create(ctx context.Context, label string) (string, error) {
	if _, err := s.do(ctx, "issues/label/add", "add", label); err != nil {
		return "", err
	}
	return label, nil
}

// AddToIssue attaches label to an issue, creating the label if needed.
//
// API: POST issues/label/add/:user/:repo/:label/:number
func (s *LabelService) AddToIssue(ctx context.Context, label, issueID string) (string, error) {
	if _, err := s.do(ctx, "issues/label/add", "add", label, issueID); err != nil {
		return "", err
	}
	return label, nil
}

// List returns the repository's labels.
//
// API: POST issues/labels/:user/:repo
func (s *LabelService) List(ctx context.Context) ([]string, error) {
	const op = "issues/labels"
	c := s.client
	body, err := c.exec.post(ctx, op, c.issuesURL([]string{"labels"}), c.credentials())
	if err != nil {
		return nil, err
	}
	return decodeLabels(op, body)
}

// Delete removes label from the repository.
//
// API: POST issues/label/remove/:user/:repo/:label
func (s *LabelService) Delete(ctx context.Context, label string) error {
	_, err := s.do(ctx, "issues/label/remove", "remove", label)
	return err
}

// DeleteFromIssue detaches label from an issue.
//
// API: POST issues/label/remove/:user/:repo/:label/:number
func (s *LabelService) DeleteFromIssue(ctx context.Context, label, issueID string) error {
	_, err := s.do(ctx, "issues/label/remove", "remove", label, issueID)
	return err
}

// Search is not offered by the API.
func (s *LabelService) Search(context.Context, string) ([]string, error) {
	return nil, unsupported("labels/search")
}

// Retrieve is not offered by the API; labels have no id.
func (s *LabelService) Retrieve(context.Context, string) (string, error) {
	return "", unsupported("labels/retrieve")
}

// Update is not offered by the API.
func (s *LabelService) Update(context.Context, string) (string, error) {
	return "", unsupported("labels/update")
}

// do posts to issues/label/{action}/:user/:repo/:label[/:number] and
// returns the label list from the response.
func (s *LabelService) do(ctx context.Context, op, action, label string, issueID ...string) ([]string, error) {
	c := s.client
	url := c.issuesURL([]string{"label", action}, append([]string{label}, issueID...)...)
	body, err := c.exec.post(ctx, op, url, c.credentials())
	if err != nil {
		return nil, err
	}
	return decodeLabels(op, body)
}
