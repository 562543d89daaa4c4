package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(issues []Issue) []IssueNumber {
	out := make([]IssueNumber, len(issues))
	for i, issue := range issues {
		out[i] = issue.Number
	}
	return out
}

func ptr(s string) *string { return &s }

func TestSortIssues(t *testing.T) {
	issues := func() []Issue {
		return []Issue{
			{Number: "10", Votes: 1, CreatedAt: "2010/02/04 21:03:54 -0800", UpdatedAt: "2010/02/09 10:00:00 -0800"},
			{Number: "2", Votes: 5, CreatedAt: "garbage", UpdatedAt: "2010/02/05 10:00:00 -0800", ClosedAt: ptr("2010/02/06 10:00:00 -0800")},
			{Number: "x", Votes: 0, CreatedAt: "2010/01/01 00:00:00 +0000", UpdatedAt: "", ClosedAt: ptr("2010/02/01 10:00:00 -0800")},
			{Number: "7", Votes: 5, CreatedAt: "2010/02/04 20:03:54 -0900", UpdatedAt: "2010/02/07 10:00:00 -0800"},
		}
	}

	tests := []struct {
		order Order
		want  []IssueNumber
	}{
		{order: OrderByID, want: []IssueNumber{"2", "7", "10", "x"}},
		{order: OrderByVotes, want: []IssueNumber{"2", "7", "10", "x"}},
		// 7 and 10 are the same instant in different zones; stable keeps 10 first.
		{order: OrderByCreated, want: []IssueNumber{"x", "10", "7", "2"}},
		{order: OrderByUpdated, want: []IssueNumber{"2", "7", "10", "x"}},
		{order: OrderByClosed, want: []IssueNumber{"x", "2", "10", "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.order.Label(), func(t *testing.T) {
			got := issues()
			SortIssues(got, tt.order, nil)
			assert.Equal(t, tt.want, numbers(got))
		})
	}
}

func TestOrderCompareUnknown(t *testing.T) {
	a := &Issue{Number: "1", CreatedAt: "2010/02/04 21:03:54 -0800"}
	b := &Issue{Number: "2", CreatedAt: "yesterday"}

	_, ok := OrderByCreated.Compare(a, b)
	assert.False(t, ok)

	c, ok := OrderByID.Compare(a, b)
	require.True(t, ok)
	assert.Negative(t, c)
}

func TestParseOrder(t *testing.T) {
	for i, o := range Orders() {
		assert.Equal(t, i, o.Index())
		got, err := ParseOrder(o.Label())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	got, err := ParseOrder("VOTES")
	require.NoError(t, err)
	assert.Equal(t, OrderByVotes, got)

	_, err = ParseOrder("priority")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Order(99).Label())
}
