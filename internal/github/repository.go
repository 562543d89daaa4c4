package github

import (
	"fmt"
	"regexp"
	"strings"
)

// Host prefixes used when building repository URLs.
const (
	HostWWWGitHubOrg = "http://www.github.org"
	HostGitHubCom    = "http://github.com"
)

var (
	repoURLPattern = regexp.MustCompile(`^https?://(?:www\.)?github\.(?:com|org)/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	taskURLPattern = regexp.MustCompile(`^(https?://.+?)/issues/issue/([^/]+)$`)
)

// Repository identifies the repository a client operates on.
type Repository struct {
	Owner       string
	Project     string
	Credentials Credentials
}

// URL returns the canonical repository URL.
func (r Repository) URL() string {
	return RepositoryURL(r.Owner, r.Project)
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Project
}

// ParseRepositoryURL extracts owner and project from a repository URL such as
// https://github.com/owner/project.
func ParseRepositoryURL(rawURL string) (Repository, error) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return Repository{}, fmt.Errorf("invalid repository URL %q: expected http(s)://[www.]github.com/owner/project", rawURL)
	}
	return Repository{Owner: m[1], Project: m[2]}, nil
}

// ParseRepo splits an "owner/project" string.
func ParseRepo(repo string) (Repository, error) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, fmt.Errorf("invalid repo format %q: expected owner/repo", repo)
	}
	return Repository{Owner: parts[0], Project: parts[1]}, nil
}

// RepositoryURL returns http://github.com/{owner}/{project}.
func RepositoryURL(owner, project string) string {
	return HostGitHubCom + "/" + owner + "/" + project
}

// AlternateRepositoryURL returns http://www.github.org/{owner}/{project}.
func AlternateRepositoryURL(owner, project string) string {
	return HostWWWGitHubOrg + "/" + owner + "/" + project
}

// TaskURL returns the browser URL of an issue.
func TaskURL(repositoryURL, taskID string) string {
	return repositoryURL + "/issues/issue/" + taskID
}

// RepositoryURLFromTaskURL returns the repository part of a task URL, or ""
// when taskURL is not a task URL.
func RepositoryURLFromTaskURL(taskURL string) string {
	if m := taskURLPattern.FindStringSubmatch(taskURL); m != nil {
		return m[1]
	}
	return ""
}

// TaskIDFromTaskURL returns the issue id of a task URL, or "".
func TaskIDFromTaskURL(taskURL string) string {
	if m := taskURLPattern.FindStringSubmatch(taskURL); m != nil {
		return m[2]
	}
	return ""
}
