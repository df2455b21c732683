package repository

import (
	"mindcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorScheduleRepository interface {
	// FindByDoctorID loads the weekly schedule with days, slots and
	// unavailable dates preloaded. Returns nil when the doctor has no
	// schedule record.
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.DoctorSchedule, error)
	Create(db *gorm.DB, schedule *entity.DoctorSchedule) error
	// ReplaceDays removes the schedule's existing day entries (and their
	// slots via cascade) and inserts the given ones.
	ReplaceDays(db *gorm.DB, scheduleID int, days []entity.ScheduleDay) error
	// ReplaceUnavailableDates swaps the full exclusion set.
	ReplaceUnavailableDates(db *gorm.DB, scheduleID int, dates []entity.UnavailableDate) error
}
