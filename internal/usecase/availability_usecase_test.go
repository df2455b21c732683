package usecase

import (
	"testing"

	"mindcare-backend/internal/domain/entity"
)

func slotsOf(day *entity.ScheduleDay, booked []string) []string {
	resolved := ResolveSlots(day, booked)
	starts := make([]string, 0, len(resolved))
	for _, s := range resolved {
		starts = append(starts, s.StartTime)
	}
	return starts
}

func TestResolveSlotsFullDay(t *testing.T) {
	day := &entity.ScheduleDay{
		Day:   "Monday",
		Slots: []entity.ScheduleSlot{{StartTime: "08:00", EndTime: "20:00"}},
	}

	got := ResolveSlots(day, nil)
	if len(got) != 24 {
		t.Fatalf("expected 24 slots for a full 08:00-20:00 day, got %d", len(got))
	}
	if got[0].StartTime != "08:00" || got[0].EndTime != "08:30" {
		t.Errorf("first slot = %s-%s, want 08:00-08:30", got[0].StartTime, got[0].EndTime)
	}
	if got[23].StartTime != "19:30" || got[23].EndTime != "20:00" {
		t.Errorf("last slot = %s-%s, want 19:30-20:00", got[23].StartTime, got[23].EndTime)
	}
}

func TestResolveSlotsRespectsRanges(t *testing.T) {
	day := &entity.ScheduleDay{
		Day: "Tuesday",
		Slots: []entity.ScheduleSlot{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "14:00", EndTime: "15:30"},
		},
	}

	got := slotsOf(day, nil)
	want := []string{"09:00", "09:30", "14:00", "14:30", "15:00"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResolveSlotsExcludesBooked(t *testing.T) {
	day := &entity.ScheduleDay{
		Day:   "Wednesday",
		Slots: []entity.ScheduleSlot{{StartTime: "09:00", EndTime: "11:00"}},
	}

	got := slotsOf(day, []string{"09:30", "10:30"})
	want := []string{"09:00", "10:00"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResolveSlotsCancelledAppointmentStillBlocksSlot(t *testing.T) {
	// The unique constraint on (doctor_id, date, start_time) holds for
	// cancelled rows too, so their start times stay in the booked set and
	// must not be re-advertised.
	day := &entity.ScheduleDay{
		Day:   "Wednesday",
		Slots: []entity.ScheduleSlot{{StartTime: "09:00", EndTime: "10:00"}},
	}

	bookedIncludingCancelled := []string{"09:00"}
	got := slotsOf(day, bookedIncludingCancelled)
	for _, start := range got {
		if start == "09:00" {
			t.Fatalf("slot 09:00 advertised even though an appointment row still occupies it: %v", got)
		}
	}
	if len(got) != 1 || got[0] != "09:30" {
		t.Errorf("got %v, want [09:30]", got)
	}
}

func TestResolveSlotsRangeShorterThanSlot(t *testing.T) {
	// A 15-minute window cannot contain a 30-minute slot.
	day := &entity.ScheduleDay{
		Day:   "Thursday",
		Slots: []entity.ScheduleSlot{{StartTime: "09:00", EndTime: "09:15"}},
	}

	if got := ResolveSlots(day, nil); len(got) != 0 {
		t.Errorf("expected no slots, got %v", got)
	}
}

func TestResolveSlotsIgnoresRangesOutsideGrid(t *testing.T) {
	// Ranges before 08:00 or after 20:00 produce nothing.
	day := &entity.ScheduleDay{
		Day: "Friday",
		Slots: []entity.ScheduleSlot{
			{StartTime: "06:00", EndTime: "07:30"},
			{StartTime: "20:30", EndTime: "22:00"},
		},
	}

	if got := ResolveSlots(day, nil); len(got) != 0 {
		t.Errorf("expected no slots, got %v", got)
	}
}

func TestResolveSlotsEmptyNotNil(t *testing.T) {
	day := &entity.ScheduleDay{Day: "Saturday"}
	got := ResolveSlots(day, nil)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no slots, got %v", got)
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		want    string
	}{
		{"08:00", 30, "08:30"},
		{"08:30", 30, "09:00"},
		{"09:45", 30, "10:15"},
		{"19:30", 30, "20:00"},
		{"23:45", 30, "00:15"},
	}

	for _, tt := range tests {
		if got := addMinutes(tt.in, tt.minutes); got != tt.want {
			t.Errorf("addMinutes(%s, %d) = %s, want %s", tt.in, tt.minutes, got, tt.want)
		}
	}
}
