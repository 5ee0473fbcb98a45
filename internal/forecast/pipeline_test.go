package forecast

import (
	"testing"

	"runway/internal/model"
)

func onceOn(t *testing.T, dateStr string) *model.Recurrence {
	t.Helper()
	d := mustDate(t, dateStr)
	return &model.Recurrence{Type: model.RecurMonthlyDay, Day: d.Day()}
}

func TestGenerate_KindOrderWithinDay(t *testing.T) {
	m := &model.Model{
		Rules: []model.Rule{
			{ID: "exp", Name: "Rent", AccountID: "a", Kind: model.KindExpense, Amount: 1500, Recurrence: onceOn(t, "2024-06-01")},
			{ID: "xfer", Name: "To Savings", AccountID: "a", ToAccountID: "b", Kind: model.KindTransfer, Amount: 200, Recurrence: onceOn(t, "2024-06-01")},
			{ID: "inc", Name: "Salary", AccountID: "a", Kind: model.KindIncome, Amount: 3000, Recurrence: onceOn(t, "2024-06-01")},
		},
	}
	got := Generate(m, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-01"))
	if len(got) != 3 {
		t.Fatalf("transactions = %d, want 3", len(got))
	}
	wantOrder := []model.RuleKind{model.KindIncome, model.KindTransfer, model.KindExpense}
	for i, k := range wantOrder {
		if got[i].Kind != k {
			t.Errorf("position %d kind = %s, want %s", i, got[i].Kind, k)
		}
	}
}

func TestGenerate_PrioritySortsBeforeKind(t *testing.T) {
	m := &model.Model{
		Rules: []model.Rule{
			{ID: "late", Name: "Late income", AccountID: "a", Kind: model.KindIncome, Amount: 10, Priority: 90, Recurrence: onceOn(t, "2024-06-01")},
			{ID: "early", Name: "Early expense", AccountID: "a", Kind: model.KindExpense, Amount: 10, Priority: 10, Recurrence: onceOn(t, "2024-06-01")},
		},
	}
	got := Generate(m, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-01"))
	if len(got) != 2 {
		t.Fatalf("transactions = %d, want 2", len(got))
	}
	if got[0].RuleID != "early" {
		t.Errorf("first transaction = %s, want the lower-priority-value expense", got[0].RuleID)
	}
}

func TestGenerate_StableBeyondSortTuple(t *testing.T) {
	// Identical (date, priority, kind): emission order must survive the sort.
	m := &model.Model{
		Rules: []model.Rule{
			{ID: "first", Name: "A", AccountID: "a", Kind: model.KindExpense, Amount: 1, Recurrence: onceOn(t, "2024-06-01")},
			{ID: "second", Name: "B", AccountID: "a", Kind: model.KindExpense, Amount: 2, Recurrence: onceOn(t, "2024-06-01")},
		},
	}
	got := Generate(m, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-01"))
	if len(got) != 2 || got[0].RuleID != "first" || got[1].RuleID != "second" {
		t.Errorf("stable order violated: %+v", got)
	}
}

func TestGenerate_OneOffKindFromSign(t *testing.T) {
	m := &model.Model{
		OneOffs: []model.OneOff{
			{ID: "bonus", Date: mustDate(t, "2024-06-10"), Name: "Bonus", AccountID: "a", Amount: 500},
			{ID: "repair", Date: mustDate(t, "2024-06-10"), Name: "Car repair", AccountID: "a", Amount: -350},
			{ID: "outside", Date: mustDate(t, "2024-07-10"), Name: "Outside window", AccountID: "a", Amount: 1},
		},
	}
	got := Generate(m, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-30"))
	if len(got) != 2 {
		t.Fatalf("transactions = %d, want 2 (one-off outside window dropped)", len(got))
	}
	if got[0].OneOffID != "bonus" || got[0].Kind != model.KindIncome {
		t.Errorf("positive one-off: got %s/%s, want bonus/income", got[0].OneOffID, got[0].Kind)
	}
	if got[1].OneOffID != "repair" || got[1].Kind != model.KindExpense {
		t.Errorf("negative one-off: got %s/%s, want repair/expense", got[1].OneOffID, got[1].Kind)
	}
	for _, tx := range got {
		if tx.Priority != OneOffPriority {
			t.Errorf("one-off priority = %d, want %d", tx.Priority, OneOffPriority)
		}
	}
}

func TestGenerate_AdjustmentKeepsOriginalDate(t *testing.T) {
	m := &model.Model{
		Settings: model.Settings{BusinessDays: model.BusinessDayPolicy{WeekendsAreNonBusinessDays: true}},
		Rules: []model.Rule{{
			ID: "rent", Name: "Rent", AccountID: "a", Kind: model.KindExpense, Amount: 1500,
			Adjustment: model.AdjustNextBusinessDay,
			Recurrence: &model.Recurrence{Type: model.RecurMonthlyDay, Day: 1},
		}},
	}
	// 2024-06-01 is a Saturday.
	got := Generate(m, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-30"))
	if len(got) != 1 {
		t.Fatalf("transactions = %d, want 1", len(got))
	}
	tx := got[0]
	if tx.Date.Format("2006-01-02") != "2024-06-03" {
		t.Errorf("adjusted date = %s, want 2024-06-03", tx.Date.Format("2006-01-02"))
	}
	if tx.OriginalDate.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("original date = %s, want 2024-06-01", tx.OriginalDate.Format("2006-01-02"))
	}
	if !tx.WasAdjusted {
		t.Error("WasAdjusted not set")
	}
}

func TestGenerate_EmptyWindow(t *testing.T) {
	m := &model.Model{Rules: []model.Rule{
		{ID: "r", AccountID: "a", Kind: model.KindIncome, Amount: 1, Recurrence: onceOn(t, "2024-06-01")},
	}}
	if got := Generate(m, mustDate(t, "2024-06-30"), mustDate(t, "2024-06-01")); len(got) != 0 {
		t.Errorf("transactions = %d, want 0 for inverted window", len(got))
	}
}
