package github

import (
	"cmp"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the root of the v2 JSON API.
	DefaultBaseURL = "http://github.com/api/v2/json"
	// DefaultGravatarURL is prefixed to gravatar ids to fetch avatar images.
	DefaultGravatarURL = "http://www.gravatar.com/avatar/"

	defaultTimeout = 30 * time.Second
)

// Client provides access to the GitHub issue, label, comment and user APIs
// for a single repository. A Client holds no state between calls.
type Client struct {
	repo        Repository
	baseURL     string
	gravatarURL string
	exec        *executor
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP transport.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		if hc != nil {
			c.exec.httpClient = hc
		}
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = cmp.Or(u, DefaultBaseURL) }
}

// WithGravatarURL overrides the avatar image host.
func WithGravatarURL(u string) Option {
	return func(c *Client) { c.gravatarURL = cmp.Or(u, DefaultGravatarURL) }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.exec.logger = l
		}
	}
}

// NewClient creates a client for repo.
func NewClient(repo Repository, opts ...Option) *Client {
	c := &Client{
		repo:        repo,
		baseURL:     DefaultBaseURL,
		gravatarURL: DefaultGravatarURL,
		exec: &executor{
			httpClient: &http.Client{Timeout: defaultTimeout},
			logger:     slog.New(slog.DiscardHandler),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Repository returns the repository the client operates on.
func (c *Client) Repository() Repository {
	return c.repo
}

// Issues returns the issue service.
func (c *Client) Issues() *IssueService {
	return &IssueService{client: c}
}

// Labels returns the label service.
func (c *Client) Labels() *LabelService {
	return &LabelService{client: c}
}

// Comments returns the comment service.
func (c *Client) Comments() *CommentService {
	return &CommentService{client: c}
}

// Users returns the user service.
func (c *Client) Users() *UserService {
	return &UserService{client: c}
}

// issuesURL builds {base}/issues/{action}/{owner}/{project}/{rest...}.
func (c *Client) issuesURL(action []string, rest ...string) string {
	segments := make([]string, 0, len(action)+2+len(rest))
	segments = append(segments, "issues")
	segments = append(segments, action...)
	segments = append(segments, c.repo.Owner, c.repo.Project)
	segments = append(segments, rest...)
	return endpoint(c.baseURL, segments...)
}

func (c *Client) credentials() Fields {
	return c.repo.Credentials.Fields()
}
