package github

import "context"

// CommentService wraps the comment endpoints.
type CommentService struct {
	client *Client
}

// Create adds comment to issue issueID.
//
// API: POST issues/comment/:user/:repo/:number (login, token, comment)
func (s *CommentService) Create(ctx context.Context, issueID string, comment *Comment) error {
	const op = "issues/comment"
	c := s.client
	_, err := c.exec.post(ctx, op, c.issuesURL([]string{"comment"}, issueID), commentFields(c.repo.Credentials, comment))
	return err
}

// List returns the comments of issue issueID in server order. Each call
// fetches from scratch.
//
// API: POST issues/comments/:user/:repo/:number
func (s *CommentService) List(ctx context.Context, issueID string) ([]Comment, error) {
	const op = "issues/comments"
	c := s.client
	body, err := c.exec.post(ctx, op, c.issuesURL([]string{"comments"}, issueID), c.credentials())
	if err != nil {
		return nil, err
	}
	return decodeComments(op, body)
}
