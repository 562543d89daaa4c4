// Package draft reads issue drafts written as markdown with YAML front matter:
//
//	---
//	title: Crash on save
//	labels: [bug, editor]
//	---
//	Steps to reproduce...
package draft

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/toba/ghtask/internal/github"
)

// Draft is a locally written issue that has not been submitted.
type Draft struct {
	Title  string
	Labels []string
	Body   string
}

type frontMatter struct {
	Title  string   `yaml:"title"`
	Labels []string `yaml:"labels"`
}

// Parse reads a draft from r. Front matter is optional; without it the
// whole input is the body.
func Parse(r io.Reader) (*Draft, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(r, &fm)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}

	labels := make([]string, 0, len(fm.Labels))
	for _, l := range fm.Labels {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}

	return &Draft{
		Title:  strings.TrimSpace(fm.Title),
		Labels: labels,
		// Trim trailing newline (POSIX files end with newline, but it's not part of content)
		Body: strings.TrimSuffix(string(body), "\n"),
	}, nil
}

// ReadFile parses the draft at path. A path of "-" reads stdin.
func ReadFile(path string) (*Draft, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path) //nolint:gosec // user-supplied draft path
	if err != nil {
		return nil, fmt.Errorf("opening draft: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only
	return Parse(f)
}

// Issue returns a new, unsubmitted issue built from the draft.
func (d *Draft) Issue() (*github.Issue, error) {
	if d.Title == "" {
		return nil, errors.New("draft has no title")
	}
	issue := github.NewIssue()
	issue.Title = d.Title
	issue.Body = d.Body
	issue.Labels = append(issue.Labels, d.Labels...)
	return issue, nil
}
