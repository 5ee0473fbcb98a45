package forecast

import (
	"testing"

	"runway/internal/model"
)

func TestIsWeekend(t *testing.T) {
	if !IsWeekend(mustDate(t, "2024-06-01")) { // Saturday
		t.Error("Saturday should be a weekend")
	}
	if !IsWeekend(mustDate(t, "2024-06-02")) { // Sunday
		t.Error("Sunday should be a weekend")
	}
	if IsWeekend(mustDate(t, "2024-06-03")) { // Monday
		t.Error("Monday should not be a weekend")
	}
}

func TestAdjustDate(t *testing.T) {
	weekends := model.BusinessDayPolicy{WeekendsAreNonBusinessDays: true}
	saturday := mustDate(t, "2024-06-01")

	tests := []struct {
		name   string
		mode   model.DateAdjustment
		policy model.BusinessDayPolicy
		want   string
	}{
		{"none leaves weekend date alone", model.AdjustNone, weekends, "2024-06-01"},
		{"next walks to Monday", model.AdjustNextBusinessDay, weekends, "2024-06-03"},
		{"prev walks to Friday", model.AdjustPrevBusinessDay, weekends, "2024-05-31"},
		{"permissive policy never adjusts", model.AdjustNextBusinessDay, model.BusinessDayPolicy{}, "2024-06-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustDate(saturday, tt.mode, tt.policy)
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("AdjustDate = %s, want %s", got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestAdjustDate_BusinessDayUnchanged(t *testing.T) {
	weekends := model.BusinessDayPolicy{WeekendsAreNonBusinessDays: true}
	wednesday := mustDate(t, "2024-06-05")
	if got := AdjustDate(wednesday, model.AdjustNextBusinessDay, weekends); !got.Equal(wednesday) {
		t.Errorf("AdjustDate moved a business day: %s", got.Format("2006-01-02"))
	}
}
