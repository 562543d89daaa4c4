// Package client is the public Go API for the GitHub v2 Issues service.
//
// Usage:
//
//	c, err := client.New("https://github.com/owner/project", "login", token)
//	if err != nil {
//		return err
//	}
//	issues, err := c.Issues().List(ctx, client.StateOpen)
package client

import (
	"fmt"

	"github.com/toba/ghtask/internal/github"
	"github.com/toba/ghtask/internal/taskdata"
)

type (
	Client          = github.Client
	Option          = github.Option
	HTTPClient      = github.HTTPClient
	Repository      = github.Repository
	Credentials     = github.Credentials
	Issue           = github.Issue
	IssueNumber     = github.IssueNumber
	Comment         = github.Comment
	User            = github.User
	Order           = github.Order
	ServiceError    = github.ServiceError
	ErrorKind       = github.ErrorKind
	PermissionError = github.PermissionDeniedError

	Connector = taskdata.Connector
	TaskData  = taskdata.TaskData
	Attribute = taskdata.Attribute
	Query     = taskdata.Query
)

const (
	StateOpen   = github.StateOpen
	StateClosed = github.StateClosed
	StateAll    = github.StateAll
)

var (
	WithHTTPClient  = github.WithHTTPClient
	WithBaseURL     = github.WithBaseURL
	WithGravatarURL = github.WithGravatarURL
	WithLogger      = github.WithLogger

	IsPermissionDenied = github.IsPermissionDenied
	IsServiceError     = github.IsServiceError
	KindOf             = github.KindOf
	ErrUnsupported     = github.ErrUnsupported
	ErrNoNumber        = github.ErrNoNumber

	SortIssues    = github.SortIssues
	FilterLabeled = github.FilterLabeled
	ParseOrder    = github.ParseOrder
)

// New returns a client for the repository at repoURL. The URL may also be a
// plain owner/project pair.
func New(repoURL, username, token string, opts ...Option) (*Client, error) {
	repo, err := github.ParseRepositoryURL(repoURL)
	if err != nil {
		if repo, err = github.ParseRepo(repoURL); err != nil {
			return nil, fmt.Errorf("invalid repository %q", repoURL)
		}
	}
	repo.Credentials = Credentials{Username: username, Token: token}
	return github.NewClient(repo, opts...), nil
}

// NewConnector returns a task connector over c using the default date
// layout in the local zone.
func NewConnector(c *Client) *Connector {
	return taskdata.NewConnector(c, nil, nil)
}
