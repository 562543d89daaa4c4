package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_ParsesRepository(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		owner   string
		project string
	}{
		{"https", "https://github.com/octo/tracker", "octo", "tracker"},
		{"http with .git", "http://github.com/octo/tracker.git", "octo", "tracker"},
		{"owner/project", "octo/tracker", "octo", "tracker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.url, "alice", "s3cret")
			if err != nil {
				t.Fatalf("New(%q) error: %v", tt.url, err)
			}
			repo := c.Repository()
			if repo.Owner != tt.owner || repo.Project != tt.project {
				t.Errorf("repository = %s, want %s/%s", repo, tt.owner, tt.project)
			}
			if repo.Credentials.Username != "alice" || repo.Credentials.Token != "s3cret" {
				t.Errorf("credentials not carried: %+v", repo.Credentials)
			}
		})
	}
}

func TestNew_InvalidRepository(t *testing.T) {
	for _, url := range []string{"", "tracker", "/tracker", "octo/"} {
		if _, err := New(url, "", ""); err == nil {
			t.Errorf("New(%q) expected error", url)
		}
	}
}

func TestClient_ListThroughFacade(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/issues/list/octo/tracker/open" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"issues":[{"number":2,"title":"b","votes":1},{"number":1,"title":"a","votes":5}]}`)
	}))
	defer srv.Close()

	c, err := New("octo/tracker", "alice", "t", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}
	issues, err := c.Issues().List(context.Background(), StateOpen)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	order, err := ParseOrder("votes")
	if err != nil {
		t.Fatal(err)
	}
	SortIssues(issues, order, nil)
	if len(issues) != 2 || issues[0].Number != "1" {
		t.Errorf("issues not sorted by votes: %+v", issues)
	}

	_, err = c.Issues().Retrieve(context.Background(), "9")
	if !IsServiceError(err) {
		t.Errorf("expected service error, got %v", err)
	}
}

func TestClient_Errors(t *testing.T) {
	c, err := New("octo/tracker", "", "")
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Labels().Search(context.Background(), "bug")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Search error = %v, want ErrUnsupported", err)
	}
	_, err = c.Issues().Update(context.Background(), &Issue{Title: "draft"})
	if !errors.Is(err, ErrNoNumber) {
		t.Errorf("Update error = %v, want ErrNoNumber", err)
	}
}

func TestNewConnector(t *testing.T) {
	c, err := New("https://github.com/octo/tracker", "", "")
	if err != nil {
		t.Fatal(err)
	}
	conn := NewConnector(c)
	if got := conn.TaskURL("3"); got != "http://github.com/octo/tracker/issues/issue/3" {
		t.Errorf("TaskURL = %q", got)
	}
	data := conn.NewTaskData()
	if !data.IsNew() {
		t.Error("new task data should be new")
	}
}
