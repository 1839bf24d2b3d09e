package refs

import (
	"strings"

	"github.com/mrz1836/githooks/internal/constants"
)

// Action is what the hook does with the commit message.
type Action int

const (
	// ActionSkip leaves the commit message untouched and succeeds.
	ActionSkip Action = iota
	// ActionAppend appends one Refs trailer per value.
	ActionAppend
	// ActionFail aborts the commit without touching the message.
	ActionFail
)

// String returns the action name used in log output.
func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionAppend:
		return "append"
	case ActionFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Policy holds the formatting options that influence the decision.
type Policy struct {
	OneLiner        bool
	DefaultRefValue string
	FailIfNoIDs     bool
}

// Decision is the outcome for one hook invocation.
type Decision struct {
	Action Action
	// Rule names the decision table row that matched.
	Rule string
	// Values are the trailer values to append, in order. Empty unless Action is ActionAppend.
	Values []string
}

// rule is one row of the decision table.
type rule struct {
	name  string
	when  func(ids []string, p Policy) bool
	apply func(ids []string, p Policy) Decision
}

// decisionTable is evaluated top to bottom; the first matching row wins.
// The last row always matches.
//
//nolint:gochecknoglobals // Static decision table
var decisionTable = []rule{
	{
		name: "no-ids-fail",
		when: func(ids []string, p Policy) bool { return len(ids) == 0 && p.FailIfNoIDs },
		apply: func([]string, Policy) Decision {
			return Decision{Action: ActionFail}
		},
	},
	{
		name: "no-ids-no-default",
		when: func(ids []string, p Policy) bool { return len(ids) == 0 && p.DefaultRefValue == "" },
		apply: func([]string, Policy) Decision {
			return Decision{Action: ActionSkip}
		},
	},
	{
		name: "no-ids-default",
		when: func(ids []string, _ Policy) bool { return len(ids) == 0 },
		apply: func(_ []string, p Policy) Decision {
			return Decision{Action: ActionAppend, Values: []string{p.DefaultRefValue}}
		},
	},
	{
		name: "one-liner",
		when: func(_ []string, p Policy) bool { return p.OneLiner },
		apply: func(ids []string, _ Policy) Decision {
			return Decision{Action: ActionAppend, Values: []string{strings.Join(prefixed(ids), constants.OneLinerSeparator)}}
		},
	},
	{
		name: "per-id",
		when: func([]string, Policy) bool { return true },
		apply: func(ids []string, _ Policy) Decision {
			return Decision{Action: ActionAppend, Values: prefixed(ids)}
		},
	},
}

// Decide applies the decision table to the candidate IDs.
func Decide(ids []string, p Policy) Decision {
	for _, r := range decisionTable {
		if r.when(ids, p) {
			d := r.apply(ids, p)
			d.Rule = r.name
			return d
		}
	}
	// unreachable: the last row always matches
	return Decision{Action: ActionSkip}
}

// prefixed returns the IDs with the reference prefix prepended.
func prefixed(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = constants.RefPrefix + id
	}
	return out
}
