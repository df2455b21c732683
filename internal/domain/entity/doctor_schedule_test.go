package entity

import "testing"

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "12:00", "19:45", "23:59"}
	for _, s := range valid {
		if !IsValidTime(s) {
			t.Errorf("IsValidTime(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "8:30", "24:00", "12:60", "12:5", "noon", "12:30:00"}
	for _, s := range invalid {
		if IsValidTime(s) {
			t.Errorf("IsValidTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidDayName(t *testing.T) {
	for _, d := range DayNames {
		if !IsValidDayName(d) {
			t.Errorf("IsValidDayName(%q) = false, want true", d)
		}
	}
	for _, d := range []string{"monday", "MONDAY", "Mon", ""} {
		if IsValidDayName(d) {
			t.Errorf("IsValidDayName(%q) = true, want false", d)
		}
	}
}

func TestDayByName(t *testing.T) {
	schedule := &DoctorSchedule{
		Days: []ScheduleDay{
			{Day: "Monday"},
			{Day: "Friday"},
		},
	}

	if schedule.DayByName("Monday") == nil {
		t.Error("expected Monday entry")
	}
	if schedule.DayByName("Tuesday") != nil {
		t.Error("expected nil for unscheduled Tuesday")
	}
}

func TestIsUnavailableOn(t *testing.T) {
	schedule := &DoctorSchedule{
		UnavailableDates: []UnavailableDate{{Date: "2026-09-01"}},
	}

	if !schedule.IsUnavailableOn("2026-09-01") {
		t.Error("expected 2026-09-01 to be unavailable")
	}
	if schedule.IsUnavailableOn("2026-09-02") {
		t.Error("expected 2026-09-02 to be available")
	}
}

func TestCovers(t *testing.T) {
	day := &ScheduleDay{
		Slots: []ScheduleSlot{
			{StartTime: "09:00", EndTime: "12:00"},
			{StartTime: "14:00", EndTime: "17:00"},
		},
	}

	tests := []struct {
		start, end string
		want       bool
	}{
		{"09:00", "09:30", true},
		{"11:30", "12:00", true},
		{"14:00", "17:00", true},
		{"08:30", "09:00", false},
		{"11:45", "12:15", false},
		{"12:30", "13:00", false},
		{"17:00", "17:30", false},
	}

	for _, tt := range tests {
		if got := day.Covers(tt.start, tt.end); got != tt.want {
			t.Errorf("Covers(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}
