package model

import "time"

// OpType tags a scenario operation variant.
type OpType string

// Scenario operation types.
const (
	OpRuleAmountSet     OpType = "rule_amount_set"
	OpRuleAmountDelta   OpType = "rule_amount_delta"
	OpRuleDisable       OpType = "rule_disable"
	OpRuleRecurrenceSet OpType = "rule_recurrence_set"
	OpOneOffAdd         OpType = "oneoff_add"
	OpOneOffRemove      OpType = "oneoff_remove"
	OpSettingSet        OpType = "setting_set"
)

// Operation is one patch in a scenario. Only the fields for its Type are
// meaningful. Operations replay in list order against a clone of the base
// model; applying a scenario never touches the base.
type Operation struct {
	Type OpType `json:"type"`

	// Rule-targeting ops.
	RuleID     string      `json:"ruleId,omitempty"`
	Amount     float64     `json:"amount,omitempty"`
	Delta      float64     `json:"delta,omitempty"`
	Disabled   bool        `json:"disabled,omitempty"`
	Recurrence *Recurrence `json:"recurrence,omitempty"`

	// One-off ops. OneOff is a template: the applied copy gets a fresh id.
	OneOff   *OneOff `json:"oneOff,omitempty"`
	OneOffID string  `json:"oneOffId,omitempty"`

	// Settings op.
	Path  string `json:"path,omitempty"`
	Value any    `json:"value,omitempty"`
}

// Scenario is an ordered set of patch operations plus metadata. The scenario
// owns its op list; applying it never modifies the scenario itself.
type Scenario struct {
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"createdAt"`
	Ops       []Operation `json:"ops,omitempty"`
}
