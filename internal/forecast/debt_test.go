package forecast

import (
	"math"
	"testing"

	"runway/internal/model"
)

func TestProjectDebt_HandComputedAmortization(t *testing.T) {
	// 1200 at 24% APR (2%/month), fixed 200/month: pays off in 7 months with
	// a short final payment.
	m := &model.Model{Rules: []model.Rule{
		{ID: "cc-min", Name: "Card minimum", Kind: model.KindExpense, Amount: 200},
	}}
	d := model.Debt{ID: "cc", Name: "Card", APR: 24, Principal: 1200, MinPaymentRuleID: "cc-min"}

	sched := ProjectDebt(m, d, ProjectOptions{StartDate: mustDate(t, "2024-01-15")})

	if !sched.IsPaidOff {
		t.Fatal("debt not paid off")
	}
	if sched.Months != 7 {
		t.Fatalf("Months = %d, want 7", sched.Months)
	}
	last := sched.Payments[len(sched.Payments)-1]
	if last.Payment >= 200 {
		t.Errorf("final payment = %.2f, want < 200", last.Payment)
	}
	if last.Balance != 0 {
		t.Errorf("final balance = %.2f, want 0", last.Balance)
	}
	if sched.PayoffDate.Format("2006-01") != "2024-07" {
		t.Errorf("PayoffDate = %s, want 2024-07", sched.PayoffDate.Format("2006-01"))
	}

	// First month against the hand-computed table: interest 24, payment 200,
	// balance 1024.
	first := sched.Payments[0]
	if math.Abs(first.Interest-24) > 1e-9 {
		t.Errorf("first interest = %.4f, want 24", first.Interest)
	}
	if math.Abs(first.Balance-1024) > 1e-9 {
		t.Errorf("first balance = %.4f, want 1024", first.Balance)
	}
}

func TestProjectDebt_DefaultMinPaymentFormula(t *testing.T) {
	// No linked rule: max(25, 1% of principal + one month's interest).
	d := model.Debt{ID: "loan", Principal: 10000, APR: 12}
	sched := ProjectDebt(nil, d, ProjectOptions{StartDate: mustDate(t, "2024-01-01"), MaxMonths: 1})

	// 1% of 10000 + 1% monthly interest on 10000 = 100 + 100 = 200.
	want := 200.0
	if math.Abs(sched.Payments[0].Payment-want) > 1e-9 {
		t.Errorf("payment = %.2f, want %.2f", sched.Payments[0].Payment, want)
	}

	// Tiny debt floors at 25.
	tiny := model.Debt{ID: "tiny", Principal: 100, APR: 0}
	sched = ProjectDebt(nil, tiny, ProjectOptions{StartDate: mustDate(t, "2024-01-01")})
	if sched.Payments[0].Payment != 25 {
		t.Errorf("tiny payment = %.2f, want 25", sched.Payments[0].Payment)
	}
}

func TestProjectDebt_LumpSumAppliesInItsMonth(t *testing.T) {
	d := model.Debt{
		ID: "loan", Principal: 1000, APR: 0,
		LumpSums: []model.LumpSum{{Date: mustDate(t, "2024-03-10"), Amount: 500}},
	}
	sched := ProjectDebt(nil, d, ProjectOptions{StartDate: mustDate(t, "2024-01-01")})

	var march model.DebtPayment
	for _, p := range sched.Payments {
		if p.Month.Format("2006-01") == "2024-03" {
			march = p
		}
	}
	if march.LumpSum != 500 {
		t.Errorf("March lump sum = %.2f, want 500", march.LumpSum)
	}
	if !sched.IsPaidOff {
		t.Error("lump sum should accelerate payoff")
	}
}

func TestProjectDebt_MaxMonthsCapsUnpayable(t *testing.T) {
	// Interest outruns the payment: never pays off.
	m := &model.Model{Rules: []model.Rule{{ID: "min", Kind: model.KindExpense, Amount: 10}}}
	d := model.Debt{ID: "loan", Principal: 10000, APR: 36, MinPaymentRuleID: "min"}

	sched := ProjectDebt(m, d, ProjectOptions{StartDate: mustDate(t, "2024-01-01"), MaxMonths: 24})
	if sched.IsPaidOff {
		t.Error("debt should not pay off")
	}
	if sched.Months != 24 {
		t.Errorf("Months = %d, want the 24-month cap", sched.Months)
	}
}

func TestProjectDebt_ExtraMonthlyShortensPayoff(t *testing.T) {
	m := &model.Model{Rules: []model.Rule{{ID: "min", Kind: model.KindExpense, Amount: 200}}}
	base := model.Debt{ID: "loan", Principal: 1200, APR: 24, MinPaymentRuleID: "min"}
	extra := base
	extra.ExtraMonthly = 200

	without := ProjectDebt(m, base, ProjectOptions{StartDate: mustDate(t, "2024-01-01")})
	with := ProjectDebt(m, extra, ProjectOptions{StartDate: mustDate(t, "2024-01-01")})
	if with.Months >= without.Months {
		t.Errorf("extra payment months = %d, want fewer than %d", with.Months, without.Months)
	}
	if with.TotalInterest >= without.TotalInterest {
		t.Errorf("extra payment interest = %.2f, want less than %.2f", with.TotalInterest, without.TotalInterest)
	}
}

func TestProjectAll_DebtFreeDate(t *testing.T) {
	m := &model.Model{
		Rules: []model.Rule{{ID: "min", Kind: model.KindExpense, Amount: 200}},
		Debts: []model.Debt{
			{ID: "quick", Name: "Quick", Principal: 400, APR: 0, MinPaymentRuleID: "min"},
			{ID: "slow", Name: "Slow", Principal: 1200, APR: 24, MinPaymentRuleID: "min"},
		},
	}
	ov := ProjectAll(m, ProjectOptions{StartDate: mustDate(t, "2024-01-01")})

	if !ov.AllResolved {
		t.Fatal("AllResolved = false, want true")
	}
	if len(ov.Schedules) != 2 {
		t.Fatalf("schedules = %d, want 2", len(ov.Schedules))
	}
	// Debt-free date is the later payoff (the slow debt's 7th month).
	if ov.DebtFreeDate.Format("2006-01") != "2024-07" {
		t.Errorf("DebtFreeDate = %s, want 2024-07", ov.DebtFreeDate.Format("2006-01"))
	}
}

func TestProjectAll_UnresolvedDebtClearsFlag(t *testing.T) {
	m := &model.Model{
		Rules: []model.Rule{{ID: "min", Kind: model.KindExpense, Amount: 10}},
		Debts: []model.Debt{{ID: "stuck", Name: "Stuck", Principal: 10000, APR: 36, MinPaymentRuleID: "min"}},
	}
	ov := ProjectAll(m, ProjectOptions{StartDate: mustDate(t, "2024-01-01"), MaxMonths: 12})
	if ov.AllResolved {
		t.Error("AllResolved = true, want false")
	}
}
