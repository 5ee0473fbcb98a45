package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runway/internal/model"
)

func scenarioOf(ops ...model.Operation) *model.Scenario {
	return &model.Scenario{Name: "what-if", Ops: ops}
}

func TestApplyScenario_DoesNotMutateBase(t *testing.T) {
	base := testModel(t)
	snapshot := base.Clone()

	sc := scenarioOf(
		model.Operation{Type: model.OpRuleAmountSet, RuleID: "rent", Amount: 1800},
		model.Operation{Type: model.OpRuleDisable, RuleID: "save", Disabled: true},
		model.Operation{Type: model.OpOneOffAdd, OneOff: &model.OneOff{Name: "Vacation", AccountID: "main", Amount: -900, Date: mustDate(t, "2024-07-01")}},
		model.Operation{Type: model.OpSettingSet, Path: "safeSurplus.buffer", Value: 500.0},
	)
	eff := ApplyScenario(base, sc)

	require.Equal(t, snapshot, base, "base model must be untouched")
	assert.Equal(t, 1800.0, eff.Rule("rent").Amount)
	require.NotNil(t, eff.Rule("save").Enabled)
	assert.False(t, *eff.Rule("save").Enabled)
	assert.Len(t, eff.OneOffs, len(base.OneOffs)+1)
	assert.Equal(t, 500.0, eff.Settings.SafeSurplus.Buffer)
}

func TestApplyScenario_SetIsIdempotent(t *testing.T) {
	base := testModel(t)
	op := model.Operation{Type: model.OpRuleAmountSet, RuleID: "rent", Amount: 1800}

	once := ApplyScenario(base, scenarioOf(op))
	twice := ApplyScenario(base, scenarioOf(op, op))
	require.Equal(t, once, twice, "repeated set must not change the result")
}

func TestApplyScenario_DeltaCompounds(t *testing.T) {
	base := testModel(t)
	op := model.Operation{Type: model.OpRuleAmountDelta, RuleID: "rent", Delta: 100}

	once := ApplyScenario(base, scenarioOf(op))
	twice := ApplyScenario(base, scenarioOf(op, op))

	assert.Equal(t, 1600.0, once.Rule("rent").Amount)
	// Non-idempotent by design: two deltas compound.
	assert.Equal(t, 1700.0, twice.Rule("rent").Amount)
}

func TestApplyScenario_OneOffAddFreshIDs(t *testing.T) {
	base := testModel(t)
	op := model.Operation{Type: model.OpOneOffAdd, OneOff: &model.OneOff{Name: "Gift", AccountID: "main", Amount: -50, Date: mustDate(t, "2024-06-15")}}

	eff := ApplyScenario(base, scenarioOf(op, op))
	require.Len(t, eff.OneOffs, 2)
	assert.NotEmpty(t, eff.OneOffs[0].ID)
	assert.NotEqual(t, eff.OneOffs[0].ID, eff.OneOffs[1].ID, "each application adds a distinct one-off")
	assert.Contains(t, eff.OneOffs[0].Tags, "scenario")
}

func TestApplyScenario_OneOffRemove(t *testing.T) {
	base := testModel(t)
	base.OneOffs = []model.OneOff{{ID: "gone", Name: "x", AccountID: "main", Amount: -10, Date: mustDate(t, "2024-06-15")}}

	eff := ApplyScenario(base, scenarioOf(
		model.Operation{Type: model.OpOneOffRemove, OneOffID: "gone"},
		model.Operation{Type: model.OpOneOffRemove, OneOffID: "never-existed"},
	))
	assert.Empty(t, eff.OneOffs)
}

func TestApplyScenario_RecurrenceSetClearsFollows(t *testing.T) {
	base := testModel(t)
	base.Rules = append(base.Rules, model.Rule{ID: "echo", Name: "Echo", AccountID: "main", Kind: model.KindExpense, FollowsRule: "salary"})

	eff := ApplyScenario(base, scenarioOf(model.Operation{
		Type:   model.OpRuleRecurrenceSet,
		RuleID: "echo",
		Recurrence: &model.Recurrence{Type: model.RecurWeekly, Weekday: 0},
	}))
	r := eff.Rule("echo")
	require.NotNil(t, r.Recurrence)
	assert.Equal(t, model.RecurWeekly, r.Recurrence.Type)
	assert.Empty(t, r.FollowsRule, "followsRuleId cleared by recurrence replacement")
}

func TestApplyScenario_UnknownRuleSkipped(t *testing.T) {
	base := testModel(t)
	eff := ApplyScenario(base, scenarioOf(model.Operation{Type: model.OpRuleAmountSet, RuleID: "missing", Amount: 1}))
	require.Equal(t, base.Clone(), eff, "op against a missing rule is a no-op")
}

func TestAddOperation_DedupPolicy(t *testing.T) {
	sc := &model.Scenario{Name: "s"}

	AddOperation(sc, model.Operation{Type: model.OpRuleAmountSet, RuleID: "rent", Amount: 1700})
	AddOperation(sc, model.Operation{Type: model.OpRuleAmountDelta, RuleID: "rent", Delta: 50})
	AddOperation(sc, model.Operation{Type: model.OpRuleAmountSet, RuleID: "rent", Amount: 1800})

	// The second set replaced the first; the delta survives alongside it.
	require.Len(t, sc.Ops, 2)
	assert.Equal(t, model.OpRuleAmountDelta, sc.Ops[0].Type)
	assert.Equal(t, model.OpRuleAmountSet, sc.Ops[1].Type)
	assert.Equal(t, 1800.0, sc.Ops[1].Amount)

	// One-off adds never dedup.
	oo := &model.OneOff{Name: "x", AccountID: "main", Amount: -1, Date: mustDate(t, "2024-06-15")}
	AddOperation(sc, model.Operation{Type: model.OpOneOffAdd, OneOff: oo})
	AddOperation(sc, model.Operation{Type: model.OpOneOffAdd, OneOff: oo})
	assert.Len(t, sc.Ops, 4)
}

func TestCompareModels(t *testing.T) {
	base := testModel(t)
	eff := ApplyScenario(base, scenarioOf(model.Operation{Type: model.OpRuleAmountSet, RuleID: "rent", Amount: 1800}))

	opts := RunOptions{StartDate: mustDate(t, "2024-06-01"), EndDate: mustDate(t, "2024-08-31")}
	cmp := CompareModels(base, eff, opts)

	require.Len(t, cmp.Lines, 5)
	byMetric := map[string]model.ComparisonLine{}
	for _, l := range cmp.Lines {
		byMetric[l.Metric] = l
	}
	// Rent up 300/month over three months.
	assert.InDelta(t, -900.0, byMetric["endBalance"].Diff, 1e-9)
	assert.InDelta(t, 900.0, byMetric["totalExpenses"].Diff, 1e-9)
	assert.InDelta(t, 0.0, byMetric["totalIncome"].Diff, 1e-9)
}

func TestCommit_StampsEffectiveModel(t *testing.T) {
	base := testModel(t)
	committed := Commit(base, scenarioOf(model.Operation{Type: model.OpRuleAmountSet, RuleID: "rent", Amount: 1800}))

	assert.Equal(t, 1800.0, committed.Rule("rent").Amount)
	assert.False(t, committed.ModifiedAt.IsZero())
	assert.True(t, base.ModifiedAt.IsZero(), "base stays unstamped")
}

func TestDescribeOperation(t *testing.T) {
	m := testModel(t)
	tests := []struct {
		op   model.Operation
		want string
	}{
		{model.Operation{Type: model.OpRuleAmountSet, RuleID: "rent", Amount: 1800}, "Set Rent amount to 1800.00"},
		{model.Operation{Type: model.OpRuleAmountDelta, RuleID: "rent", Delta: -50}, "Change Rent amount by -50.00"},
		{model.Operation{Type: model.OpRuleDisable, RuleID: "save", Disabled: true}, "Disable To savings"},
		{model.Operation{Type: model.OpSettingSet, Path: "safeSurplus.buffer", Value: 500}, "Set safeSurplus.buffer = 500"},
	}
	for _, tt := range tests {
		if got := DescribeOperation(tt.op, m); got != tt.want {
			t.Errorf("DescribeOperation = %q, want %q", got, tt.want)
		}
	}
}
