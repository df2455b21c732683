package converter

import (
	"testing"

	"mindcare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func TestScheduleToResponseOrdering(t *testing.T) {
	schedule := &entity.DoctorSchedule{
		DoctorID: uuid.New(),
		Days: []entity.ScheduleDay{
			{Day: "Friday", Slots: []entity.ScheduleSlot{{StartTime: "09:00", EndTime: "12:00"}}},
			{Day: "Monday", Slots: []entity.ScheduleSlot{
				{StartTime: "14:00", EndTime: "17:00"},
				{StartTime: "08:00", EndTime: "12:00"},
			}},
		},
		UnavailableDates: []entity.UnavailableDate{
			{Date: "2026-09-15"},
			{Date: "2026-09-01"},
		},
	}

	resp := ScheduleToResponse(schedule)

	if len(resp.Schedule) != 2 {
		t.Fatalf("expected 2 days, got %d", len(resp.Schedule))
	}
	if resp.Schedule[0].Day != "Monday" || resp.Schedule[1].Day != "Friday" {
		t.Errorf("days out of weekday order: %s, %s", resp.Schedule[0].Day, resp.Schedule[1].Day)
	}
	if resp.Schedule[0].Slots[0].StartTime != "08:00" {
		t.Errorf("slots not sorted by start time: first = %s", resp.Schedule[0].Slots[0].StartTime)
	}
	if resp.UnavailableDates[0] != "2026-09-01" {
		t.Errorf("unavailable dates not sorted: first = %s", resp.UnavailableDates[0])
	}
}
