package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// DoctorSchedule represents a doctor's recurring weekly availability.
// Each doctor has at most one schedule record (upsert semantics); a day's
// slot list is replaced wholesale on edit.
type DoctorSchedule struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"doctor_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Days             []ScheduleDay     `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"days,omitempty"`
	UnavailableDates []UnavailableDate `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"unavailable_dates,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}

// ScheduleDay holds the slot ranges for one day of the week.
type ScheduleDay struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	ScheduleID int    `gorm:"not null;index;uniqueIndex:idx_schedule_day" json:"schedule_id"`
	Day        string `gorm:"type:varchar(10);not null;uniqueIndex:idx_schedule_day" json:"day"`

	Slots []ScheduleSlot `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"slots,omitempty"`
}

func (ScheduleDay) TableName() string {
	return "schedule_days"
}

// ScheduleSlot is one availability range within a day, "HH:MM" 24-hour.
type ScheduleSlot struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	DayID     int    `gorm:"not null;index" json:"day_id"`
	StartTime string `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string `gorm:"type:varchar(5);not null" json:"end_time"`
}

func (ScheduleSlot) TableName() string {
	return "schedule_slots"
}

// UnavailableDate blanks out an otherwise-available calendar date ("YYYY-MM-DD").
type UnavailableDate struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	ScheduleID int    `gorm:"not null;index;uniqueIndex:idx_schedule_unavailable" json:"schedule_id"`
	Date       string `gorm:"type:varchar(10);not null;uniqueIndex:idx_schedule_unavailable" json:"date"`
}

func (UnavailableDate) TableName() string {
	return "schedule_unavailable_dates"
}

// Canonical day-of-week names, matching time.Weekday.String().
var DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// timePattern matches zero-padded 24-hour "HH:MM". Lexicographic comparison
// of times is only valid because of this format.
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// IsValidDayName reports whether name is one of the 7 canonical day names.
func IsValidDayName(name string) bool {
	for _, d := range DayNames {
		if d == name {
			return true
		}
	}
	return false
}

// IsValidTime reports whether s is a valid "HH:MM" 24-hour time string.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// DayByName returns the schedule entry for a day name, or nil when the
// doctor has no availability that day.
func (s *DoctorSchedule) DayByName(day string) *ScheduleDay {
	for i := range s.Days {
		if s.Days[i].Day == day {
			return &s.Days[i]
		}
	}
	return nil
}

// IsUnavailableOn reports whether the ISO date is explicitly blanked out.
// The exclusion is absolute and overrides weekly availability.
func (s *DoctorSchedule) IsUnavailableOn(dateISO string) bool {
	for _, d := range s.UnavailableDates {
		if d.Date == dateISO {
			return true
		}
	}
	return false
}

// Covers reports whether [start, end) is fully contained in one of the
// day's slot ranges.
func (d *ScheduleDay) Covers(start, end string) bool {
	for _, slot := range d.Slots {
		if slot.StartTime <= start && slot.EndTime >= end {
			return true
		}
	}
	return false
}
