package github

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Order is a sort key for issues.
type Order int

const (
	OrderByID Order = iota
	OrderByVotes
	OrderByCreated
	OrderByUpdated
	OrderByClosed
)

var orderLabels = [...]string{
	OrderByID:      "id",
	OrderByVotes:   "votes",
	OrderByCreated: "created",
	OrderByUpdated: "updated",
	OrderByClosed:  "closed",
}

// Orders returns every order in index order.
func Orders() []Order {
	return []Order{OrderByID, OrderByVotes, OrderByCreated, OrderByUpdated, OrderByClosed}
}

// ParseOrder returns the order with the given label (case-insensitive).
func ParseOrder(label string) (Order, error) {
	for _, o := range Orders() {
		if strings.EqualFold(o.Label(), label) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown order %q: expected one of %s", label, strings.Join(OrderLabels(), ", "))
}

// OrderLabels returns the labels of every order.
func OrderLabels() []string {
	labels := make([]string, 0, len(orderLabels))
	for _, o := range Orders() {
		labels = append(labels, o.Label())
	}
	return labels
}

// Index returns the position of o in Orders.
func (o Order) Index() int {
	return int(o)
}

// Label returns the short name of o.
func (o Order) Label() string {
	if o < 0 || int(o) >= len(orderLabels) {
		return "unknown"
	}
	return orderLabels[o]
}

func (o Order) String() string {
	return o.Label()
}

// Compare orders a and b by o. The bool is false when either key cannot be
// parsed, in which case the int is meaningless.
func (o Order) Compare(a, b *Issue) (int, bool) {
	switch o {
	case OrderByID:
		x, errA := strconv.ParseInt(string(a.Number), 10, 64)
		y, errB := strconv.ParseInt(string(b.Number), 10, 64)
		if errA != nil || errB != nil {
			return 0, false
		}
		return cmp.Compare(x, y), true
	case OrderByVotes:
		return cmp.Compare(b.Votes, a.Votes), true
	case OrderByCreated:
		return compareTimes(a.CreatedAt, b.CreatedAt)
	case OrderByUpdated:
		return compareTimes(a.UpdatedAt, b.UpdatedAt)
	case OrderByClosed:
		var x, y string
		if a.ClosedAt != nil {
			x = *a.ClosedAt
		}
		if b.ClosedAt != nil {
			y = *b.ClosedAt
		}
		return compareTimes(x, y)
	}
	return 0, false
}

// sortable reports whether i has a usable key for o.
func (o Order) sortable(i *Issue) bool {
	switch o {
	case OrderByID:
		_, err := strconv.ParseInt(string(i.Number), 10, 64)
		return err == nil
	case OrderByVotes:
		return true
	case OrderByCreated:
		return parses(i.CreatedAt)
	case OrderByUpdated:
		return parses(i.UpdatedAt)
	case OrderByClosed:
		return i.ClosedAt != nil && parses(*i.ClosedAt)
	}
	return false
}

func compareTimes(a, b string) (int, bool) {
	x, errA := ParseTime(a)
	y, errB := ParseTime(b)
	if errA != nil || errB != nil {
		return 0, false
	}
	return x.Compare(y), true
}

func parses(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// SortIssues sorts issues in place by o. Issues whose key cannot be parsed
// are moved after all comparable issues, keeping their relative order.
func SortIssues(issues []Issue, o Order, logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	known := make([]Issue, 0, len(issues))
	var unknown []Issue
	for _, issue := range issues {
		if o.sortable(&issue) {
			known = append(known, issue)
			continue
		}
		logger.Debug("issue has no sortable key", "issue", string(issue.Number), "order", o.Label())
		unknown = append(unknown, issue)
	}
	slices.SortStableFunc(known, func(a, b Issue) int {
		c, _ := o.Compare(&a, &b)
		return c
	})
	copy(issues, known)
	copy(issues[len(known):], unknown)
}
