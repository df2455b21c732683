package repository

import (
	"errors"

	"mindcare-backend/internal/domain/entity"
	domainRepo "mindcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorScheduleRepository struct{}

func NewDoctorScheduleRepository() domainRepo.DoctorScheduleRepository {
	return &doctorScheduleRepository{}
}

func (r *doctorScheduleRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.DoctorSchedule, error) {
	var schedule entity.DoctorSchedule
	err := db.
		Preload("Days.Slots").
		Preload("UnavailableDates").
		Where("doctor_id = ?", doctorID).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *doctorScheduleRepository) Create(db *gorm.DB, schedule *entity.DoctorSchedule) error {
	return db.Create(schedule).Error
}

func (r *doctorScheduleRepository) ReplaceDays(db *gorm.DB, scheduleID int, days []entity.ScheduleDay) error {
	if err := db.Where("schedule_id = ?", scheduleID).Delete(&entity.ScheduleDay{}).Error; err != nil {
		return err
	}
	if len(days) == 0 {
		return nil
	}
	for i := range days {
		days[i].ID = 0
		days[i].ScheduleID = scheduleID
	}
	return db.Create(&days).Error
}

func (r *doctorScheduleRepository) ReplaceUnavailableDates(db *gorm.DB, scheduleID int, dates []entity.UnavailableDate) error {
	if err := db.Where("schedule_id = ?", scheduleID).Delete(&entity.UnavailableDate{}).Error; err != nil {
		return err
	}
	if len(dates) == 0 {
		return nil
	}
	for i := range dates {
		dates[i].ID = 0
		dates[i].ScheduleID = scheduleID
	}
	return db.Create(&dates).Error
}
