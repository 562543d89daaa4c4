package github

import (
	"context"
	"net/url"
)

// gravatarSize is the avatar edge length in pixels requested from the image host.
const gravatarSize = "20"

// UserService wraps the user endpoints.
type UserService struct {
	client *Client
}

// Retrieve fetches the public profile of username.
//
// API: GET user/show/:username
func (s *UserService) Retrieve(ctx context.Context, username string) (*User, error) {
	const op = "user/show"
	c := s.client
	body, err := c.exec.get(ctx, op, endpoint(c.baseURL, "user", "show", username), nil)
	if err != nil {
		return nil, err
	}
	return decodeUser(op, body)
}

// ValidateCredentials makes an authenticated call and reports whether the
// server accepted the credentials. Only a permission failure yields false;
// any other failure is returned as an error.
//
// API: POST user/emails
func (s *UserService) ValidateCredentials(ctx context.Context) (bool, error) {
	const op = "user/emails"
	c := s.client
	_, err := c.exec.post(ctx, op, endpoint(c.baseURL, "user", "emails"), c.credentials())
	if err != nil {
		if IsPermissionDenied(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RetrieveGravatar downloads the avatar image for gravatarID from the image
// host. The host is unrelated to the API base URL.
func (s *UserService) RetrieveGravatar(ctx context.Context, gravatarID string) ([]byte, error) {
	const op = "gravatar"
	c := s.client
	return c.exec.get(ctx, op, c.gravatarURL+url.PathEscape(gravatarID), url.Values{"s": {gravatarSize}})
}
