package cmd

import (
	"fmt"
	"strings"

	"github.com/toba/ghtask/internal/github"
)

// stateValue is a pflag.Value restricted to issue states.
type stateValue string

func (s *stateValue) String() string { return string(*s) }
func (s *stateValue) Type() string   { return "state" }

func (s *stateValue) Set(v string) error {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case github.StateOpen, github.StateClosed, github.StateAll:
		*s = stateValue(v)
		return nil
	}
	return fmt.Errorf("invalid state %q: expected open, closed or all", v)
}

// orderValue is a pflag.Value selecting a sort order by label.
type orderValue struct {
	order github.Order
}

func (o *orderValue) String() string { return o.order.Label() }
func (o *orderValue) Type() string   { return "order" }

func (o *orderValue) Set(v string) error {
	order, err := github.ParseOrder(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	o.order = order
	return nil
}

// splitList splits a comma-separated flag into trimmed, non-empty parts.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
