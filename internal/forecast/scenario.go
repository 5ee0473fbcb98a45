package forecast

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"runway/internal/model"
)

// ApplyScenario clones the base model and replays the scenario's operations
// in list order against the clone. The base model and the scenario are never
// mutated. Operations targeting ids that no longer exist are skipped.
func ApplyScenario(base *model.Model, sc *model.Scenario) *model.Model {
	eff := base.Clone()
	if sc == nil {
		return eff
	}
	for _, op := range sc.Ops {
		applyOp(eff, op)
	}
	return eff
}

func applyOp(m *model.Model, op model.Operation) {
	switch op.Type {
	case model.OpRuleAmountSet:
		if r := m.Rule(op.RuleID); r != nil {
			r.Amount = op.Amount
		}
	case model.OpRuleAmountDelta:
		// Deliberately compounds on repeated application.
		if r := m.Rule(op.RuleID); r != nil {
			r.Amount += op.Delta
		}
	case model.OpRuleDisable:
		if r := m.Rule(op.RuleID); r != nil {
			enabled := !op.Disabled
			r.Enabled = &enabled
		}
	case model.OpRuleRecurrenceSet:
		if r := m.Rule(op.RuleID); r != nil && op.Recurrence != nil {
			rec := *op.Recurrence
			r.Recurrence = &rec
			r.FollowsRule = ""
		}
	case model.OpOneOffAdd:
		if op.OneOff != nil {
			oo := *op.OneOff
			oo.ID = uuid.NewString()
			oo.Tags = append(append([]string(nil), op.OneOff.Tags...), "scenario")
			m.OneOffs = append(m.OneOffs, oo)
		}
	case model.OpOneOffRemove:
		for i, oo := range m.OneOffs {
			if oo.ID == op.OneOffID {
				m.OneOffs = append(m.OneOffs[:i], m.OneOffs[i+1:]...)
				break
			}
		}
	case model.OpSettingSet:
		m.Settings.SetPath(op.Path, op.Value)
	}
}

// dedupOnAdd lists the op types where adding a new op for a rule replaces a
// prior op of the same type for that rule. The asymmetry is contractual: a
// set and a delta for the same rule coexist and apply in list order.
var dedupOnAdd = map[model.OpType]bool{
	model.OpRuleAmountSet:   true,
	model.OpRuleAmountDelta: true,
	model.OpRuleDisable:     true,
}

// AddOperation appends an operation to the scenario, replacing any earlier
// op of the same (type, ruleId) for the three dedup-eligible types.
func AddOperation(sc *model.Scenario, op model.Operation) {
	if dedupOnAdd[op.Type] && op.RuleID != "" {
		kept := sc.Ops[:0]
		for _, existing := range sc.Ops {
			if existing.Type == op.Type && existing.RuleID == op.RuleID {
				continue
			}
			kept = append(kept, existing)
		}
		sc.Ops = kept
	}
	sc.Ops = append(sc.Ops, op)
}

// CompareModels runs the ledger over the base and effective models with the
// same options and lines up the headline metrics.
func CompareModels(base, effective *model.Model, opts RunOptions) model.Comparison {
	b := Run(base, opts).Summary
	s := Run(effective, opts).Summary

	line := func(metric string, bv, sv float64) model.ComparisonLine {
		return model.ComparisonLine{Metric: metric, Base: bv, Scenario: sv, Diff: sv - bv}
	}
	return model.Comparison{
		Base:     b,
		Scenario: s,
		Lines: []model.ComparisonLine{
			line("endBalance", b.EndBalance, s.EndBalance),
			line("minBalance", b.MinBalance, s.MinBalance),
			line("totalIncome", b.TotalIncome, s.TotalIncome),
			line("totalExpenses", b.TotalExpenses, s.TotalExpenses),
			line("netSurplus", b.NetSurplus, s.NetSurplus),
		},
	}
}

// Commit produces the effective model stamped as the new base. The caller
// persists it and discards the scenario.
func Commit(base *model.Model, sc *model.Scenario) *model.Model {
	eff := ApplyScenario(base, sc)
	eff.ModifiedAt = time.Now().UTC()
	return eff
}

// DescribeOperation renders an operation as a human-readable line, resolving
// rule names from the model when possible.
func DescribeOperation(op model.Operation, m *model.Model) string {
	ruleName := op.RuleID
	if m != nil {
		if r := m.Rule(op.RuleID); r != nil {
			ruleName = r.Name
		}
	}

	switch op.Type {
	case model.OpRuleAmountSet:
		return fmt.Sprintf("Set %s amount to %.2f", ruleName, op.Amount)
	case model.OpRuleAmountDelta:
		return fmt.Sprintf("Change %s amount by %+.2f", ruleName, op.Delta)
	case model.OpRuleDisable:
		if op.Disabled {
			return fmt.Sprintf("Disable %s", ruleName)
		}
		return fmt.Sprintf("Enable %s", ruleName)
	case model.OpRuleRecurrenceSet:
		return fmt.Sprintf("Replace %s schedule", ruleName)
	case model.OpOneOffAdd:
		if op.OneOff != nil {
			return fmt.Sprintf("Add one-off %s (%.2f) on %s",
				op.OneOff.Name, op.OneOff.Amount, op.OneOff.Date.Format("2006-01-02"))
		}
		return "Add one-off"
	case model.OpOneOffRemove:
		return fmt.Sprintf("Remove one-off %s", op.OneOffID)
	case model.OpSettingSet:
		return fmt.Sprintf("Set %s = %v", op.Path, op.Value)
	default:
		return string(op.Type)
	}
}
