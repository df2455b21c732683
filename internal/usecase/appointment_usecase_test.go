package usecase

import (
	"testing"

	"mindcare-backend/internal/domain/entity"
)

func weekdaySchedule() *entity.DoctorSchedule {
	return &entity.DoctorSchedule{
		Days: []entity.ScheduleDay{
			{
				Day:   "Monday",
				Slots: []entity.ScheduleSlot{{StartTime: "09:00", EndTime: "17:00"}},
			},
			{
				Day: "Wednesday",
				Slots: []entity.ScheduleSlot{
					{StartTime: "09:00", EndTime: "12:00"},
					{StartTime: "14:00", EndTime: "17:00"},
				},
			},
		},
		UnavailableDates: []entity.UnavailableDate{
			{Date: "2026-09-07"},
		},
	}
}

func TestValidateBookingWindow(t *testing.T) {
	schedule := weekdaySchedule()

	tests := []struct {
		name    string
		day     string
		date    string
		start   string
		end     string
		wantErr error
	}{
		{"valid monday", "Monday", "2026-08-31", "09:00", "09:30", nil},
		{"valid wednesday afternoon", "Wednesday", "2026-09-02", "14:30", "15:00", nil},
		{"day not scheduled", "Sunday", "2026-09-06", "09:00", "09:30", ErrDayNotScheduled},
		{"before working hours", "Monday", "2026-08-31", "08:00", "08:30", ErrOutsideWorkingHours},
		{"after working hours", "Monday", "2026-08-31", "17:00", "17:30", ErrOutsideWorkingHours},
		{"between wednesday ranges", "Wednesday", "2026-09-02", "12:30", "13:00", ErrOutsideWorkingHours},
		{"unavailable date", "Monday", "2026-09-07", "09:00", "09:30", ErrDateUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookingWindow(schedule, tt.day, tt.date, tt.start, tt.end)
			if err != tt.wantErr {
				t.Errorf("ValidateBookingWindow() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// The day check must win over the unavailable-date check when both fail.
func TestValidateBookingWindowErrorOrder(t *testing.T) {
	schedule := weekdaySchedule()

	err := ValidateBookingWindow(schedule, "Sunday", "2026-09-07", "09:00", "09:30")
	if err != ErrDayNotScheduled {
		t.Errorf("expected ErrDayNotScheduled before ErrDateUnavailable, got %v", err)
	}

	// Working-hours check also precedes the unavailable-date check.
	err = ValidateBookingWindow(schedule, "Monday", "2026-09-07", "07:00", "07:30")
	if err != ErrOutsideWorkingHours {
		t.Errorf("expected ErrOutsideWorkingHours before ErrDateUnavailable, got %v", err)
	}
}

func TestValidateBookingWindowSpansRangeBoundary(t *testing.T) {
	schedule := weekdaySchedule()

	// 11:45-12:15 straddles the end of the morning range.
	err := ValidateBookingWindow(schedule, "Wednesday", "2026-09-02", "11:45", "12:15")
	if err != ErrOutsideWorkingHours {
		t.Errorf("expected ErrOutsideWorkingHours for window spanning range end, got %v", err)
	}
}
