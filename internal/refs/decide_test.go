package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		ids        []string
		policy     Policy
		wantAction Action
		wantRule   string
		wantValues []string
	}{
		{
			name:       "no ids, fail flag wins over default value",
			ids:        nil,
			policy:     Policy{FailIfNoIDs: true, DefaultRefValue: "#MISSING"},
			wantAction: ActionFail,
			wantRule:   "no-ids-fail",
		},
		{
			name:       "no ids, no default",
			ids:        nil,
			policy:     Policy{OneLiner: true},
			wantAction: ActionSkip,
			wantRule:   "no-ids-no-default",
		},
		{
			name:       "no ids, default used verbatim",
			ids:        []string{},
			policy:     Policy{DefaultRefValue: "#MISSING"},
			wantAction: ActionAppend,
			wantRule:   "no-ids-default",
			wantValues: []string{"#MISSING"},
		},
		{
			name:       "default is not prefixed",
			ids:        nil,
			policy:     Policy{DefaultRefValue: "none", OneLiner: true},
			wantAction: ActionAppend,
			wantRule:   "no-ids-default",
			wantValues: []string{"none"},
		},
		{
			name:       "one-liner joins ids",
			ids:        []string{"123", "4567"},
			policy:     Policy{OneLiner: true},
			wantAction: ActionAppend,
			wantRule:   "one-liner",
			wantValues: []string{"#123, #4567"},
		},
		{
			name:       "one-liner with a single id",
			ids:        []string{"123"},
			policy:     Policy{OneLiner: true},
			wantAction: ActionAppend,
			wantRule:   "one-liner",
			wantValues: []string{"#123"},
		},
		{
			name:       "one value per id",
			ids:        []string{"123", "4567"},
			policy:     Policy{},
			wantAction: ActionAppend,
			wantRule:   "per-id",
			wantValues: []string{"#123", "#4567"},
		},
		{
			name:       "ids ignore fail flag and default",
			ids:        []string{"999"},
			policy:     Policy{FailIfNoIDs: true, DefaultRefValue: "#MISSING"},
			wantAction: ActionAppend,
			wantRule:   "per-id",
			wantValues: []string{"#999"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.ids, tc.policy)

			assert.Equal(t, tc.wantAction, d.Action)
			assert.Equal(t, tc.wantRule, d.Rule)
			assert.Equal(t, tc.wantValues, d.Values)
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "skip", ActionSkip.String())
	assert.Equal(t, "append", ActionAppend.String())
	assert.Equal(t, "fail", ActionFail.String())
	assert.Equal(t, "unknown", Action(42).String())
}
