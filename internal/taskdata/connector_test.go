package taskdata

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toba/ghtask/internal/github"
)

type fakeAPI struct {
	routes map[string]string
	calls  []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	call := r.URL.Path
	if _, comment, ok := strings.Cut(string(body), "comment="); ok {
		call += "?comment=" + comment
	}
	f.calls = append(f.calls, call)

	for prefix, resp := range f.routes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			_, _ = io.WriteString(w, resp)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func newConnector(t *testing.T, routes map[string]string) (*Connector, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{routes: routes}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	repo := github.Repository{Owner: "octo", Project: "tracker", Credentials: github.Credentials{Username: "alice", Token: "t"}}
	client := github.NewClient(repo, github.WithBaseURL(srv.URL), github.WithHTTPClient(srv.Client()))
	return NewConnector(client, NewMapper(time.DateTime, time.UTC, nil), nil), api
}

func TestPerformQuery(t *testing.T) {
	c, api := newConnector(t, map[string]string{
		"/issues/search/octo/tracker/open": `{"issues":[
			{"number":1,"state":"open","labels":["bug"]},
			{"number":2,"state":"open","labels":["Bug"]}]}`,
		"/issues/search/octo/tracker/closed": `{"issues":[{"number":3,"state":"closed","labels":["bug"]}]}`,
	})

	tasks, err := c.PerformQuery(context.Background(), Query{Text: "crash", Status: "all", Label: "bug"})
	require.NoError(t, err)

	var ids []string
	for _, task := range tasks {
		ids = append(ids, task.TaskID)
		assert.True(t, task.Partial)
	}
	assert.Equal(t, []string{"1", "3"}, ids)
	assert.Equal(t, []string{
		"/issues/search/octo/tracker/open/crash",
		"/issues/search/octo/tracker/closed/crash",
	}, api.calls)
}

func TestPerformQueryDefaults(t *testing.T) {
	c, api := newConnector(t, map[string]string{
		"/issues/list/octo/tracker/closed": `{"issues":[{"number":3,"state":"closed","labels":[]}]}`,
	})

	tasks, err := c.PerformQuery(context.Background(), Query{Status: github.StateClosed})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, []string{"/issues/list/octo/tracker/closed"}, api.calls)
}

func TestPerformQueryStatus(t *testing.T) {
	tests := []struct {
		status string
		calls  []string
	}{
		{status: "", calls: []string{"/issues/list/octo/tracker/open", "/issues/list/octo/tracker/closed"}},
		{status: "ALL", calls: []string{"/issues/list/octo/tracker/open", "/issues/list/octo/tracker/closed"}},
		{status: " open ", calls: []string{"/issues/list/octo/tracker/open"}},
		{status: " pending ", calls: []string{"/issues/list/octo/tracker/pending"}},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			c, api := newConnector(t, map[string]string{
				"/issues/list/octo/tracker/": `{"issues":[]}`,
			})

			tasks, err := c.PerformQuery(context.Background(), Query{Status: tt.status})
			require.NoError(t, err)
			assert.Empty(t, tasks)
			assert.Equal(t, tt.calls, api.calls)
		})
	}
}

func TestPerformQueryFailure(t *testing.T) {
	c, _ := newConnector(t, nil)

	_, err := c.PerformQuery(context.Background(), Query{})
	require.Error(t, err)
	assert.True(t, github.IsServiceError(err))
}

func TestGetTaskData(t *testing.T) {
	c, api := newConnector(t, map[string]string{
		"/issues/show/octo/tracker/7":     `{"issue":{"number":7,"title":"t","state":"open","labels":["bug"]}}`,
		"/issues/comments/octo/tracker/7": `{"comments":[{"id":1,"user":"bob","body":"hi"}]}`,
	})

	data, err := c.GetTaskData(context.Background(), "7")
	require.NoError(t, err)
	assert.False(t, data.Partial)
	assert.Equal(t, "http://github.com/octo/tracker", data.RepositoryURL)
	require.Len(t, Comments(data), 1)
	assert.Equal(t, []string{"/issues/show/octo/tracker/7", "/issues/comments/octo/tracker/7"}, api.calls)
}

func TestGetTaskDataIssueFailure(t *testing.T) {
	c, api := newConnector(t, map[string]string{
		"/issues/comments/octo/tracker/7": `{"comments":[]}`,
	})

	_, err := c.GetTaskData(context.Background(), "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retrieving issue 7")
	assert.Equal(t, []string{"/issues/show/octo/tracker/7"}, api.calls)
}

func TestGetTaskDataCommentsFailure(t *testing.T) {
	c, _ := newConnector(t, map[string]string{
		"/issues/show/octo/tracker/7": `{"issue":{"number":7}}`,
	})

	_, err := c.GetTaskData(context.Background(), "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retrieving comments of issue 7")
}

func TestPostTaskDataCreate(t *testing.T) {
	c, api := newConnector(t, map[string]string{
		"/issues/open/octo/tracker":      `{"issue":{"number":42,"state":"open"}}`,
		"/issues/label/add/octo/tracker": `{"labels":["bug"]}`,
		"/issues/comment/octo/tracker":   `{"comment":{}}`,
	})

	data := c.NewTaskData()
	data.Root().Attribute(FieldTitle.ID).SetValue("Issue Title")
	data.Root().Attribute(FieldLabels.ID).SetValue("bug")
	data.Root().Attribute(FieldNewComment.ID).SetValue("first")

	resp, err := c.PostTaskData(context.Background(), data, nil)
	require.NoError(t, err)
	assert.Equal(t, Response{Kind: ResponseCreated, TaskID: "42"}, resp)
	assert.Equal(t, []string{
		"/issues/open/octo/tracker",
		"/issues/label/add/octo/tracker/bug/42",
		"/issues/comment/octo/tracker/42?comment=first",
	}, api.calls)
}

func TestPostTaskDataOperations(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want []string
	}{
		{
			name: "leave",
			op:   OperationLeave,
			want: []string{"/issues/edit/octo/tracker/5"},
		},
		{
			name: "close",
			op:   OperationClose,
			want: []string{"/issues/edit/octo/tracker/5", "/issues/close/octo/tracker/5"},
		},
		{
			name: "reopen",
			op:   OperationReopen,
			want: []string{"/issues/edit/octo/tracker/5", "/issues/reopen/octo/tracker/5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, api := newConnector(t, map[string]string{"/issues/": `{"issue":{"number":5}}`})
			issue := &github.Issue{Number: "5", Title: "t", State: github.StateOpen, Labels: []string{}}
			data := c.Mapper().FromIssue(c.RepositoryURL(), issue, nil, false)
			SelectOperation(data, tt.op)

			resp, err := c.PostTaskData(context.Background(), data, nil)
			require.NoError(t, err)
			assert.Equal(t, Response{Kind: ResponseUpdated, TaskID: "5"}, resp)
			assert.Equal(t, tt.want, api.calls)
		})
	}
}

func TestPostTaskDataLabelDiff(t *testing.T) {
	c, api := newConnector(t, map[string]string{
		"/issues/edit/":         `{"issue":{"number":5}}`,
		"/issues/label/":        `{"labels":[]}`,
		"/issues/comment/octo/": `{}`,
	})
	issue := &github.Issue{Number: "5", State: github.StateOpen, Labels: []string{"bug", "ui"}}
	data := c.Mapper().FromIssue(c.RepositoryURL(), issue, nil, false)
	old := []*Attribute{data.Root().Attribute(FieldLabels.ID)}

	edited := c.Mapper().FromIssue(c.RepositoryURL(), issue, nil, false)
	edited.Root().Attribute(FieldLabels.ID).SetValue("ui,docs")
	edited.Root().Attribute(FieldNewComment.ID).SetValue("   ")

	_, err := c.PostTaskData(context.Background(), edited, old)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/issues/edit/octo/tracker/5",
		"/issues/label/remove/octo/tracker/bug/5",
		"/issues/label/add/octo/tracker/ui/5",
		"/issues/label/add/octo/tracker/docs/5",
	}, api.calls)
}

func TestPostTaskDataUpdateFailure(t *testing.T) {
	c, api := newConnector(t, nil)
	data := c.Mapper().FromIssue(c.RepositoryURL(), &github.Issue{Number: "5", State: github.StateOpen}, nil, false)
	data.Root().Attribute(FieldNewComment.ID).SetValue("never sent")

	_, err := c.PostTaskData(context.Background(), data, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "updating issue 5")
	assert.Len(t, api.calls, 1)
}

func TestConnectorURLs(t *testing.T) {
	c, _ := newConnector(t, nil)

	url := c.TaskURL("12")
	assert.Equal(t, "http://github.com/octo/tracker/issues/issue/12", url)
	assert.Equal(t, "http://github.com/octo/tracker", RepositoryURLFromTaskURL(url))
	assert.Equal(t, "12", TaskIDFromTaskURL(url))
}
