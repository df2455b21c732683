package usecase

import (
	"context"
	"errors"

	"mindcare-backend/internal/converter"
	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
	"mindcare-backend/internal/domain/repository"
	"mindcare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDayName   = errors.New("invalid day name")
	ErrInvalidSlotRange = errors.New("slot start time must be before end time")
	ErrDuplicateDay     = errors.New("schedule contains the same day twice")
)

type DoctorScheduleUsecase interface {
	// GetSchedule returns nil (not an error) when the doctor has no
	// schedule record yet, so the UI can distinguish "not configured".
	GetSchedule(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleResponse, error)
	// UpsertSchedule creates or wholly replaces the doctor's weekly
	// schedule and unavailable-date set.
	UpsertSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.UpsertScheduleRequest) (*dto.ScheduleResponse, error)
}

type doctorScheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	auditService service.AuditService
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	auditService service.AuditService,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
	}
}

func (u *doctorScheduleUsecase) GetSchedule(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedule for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) UpsertSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.UpsertScheduleRequest) (*dto.ScheduleResponse, error) {
	days, err := buildScheduleDays(req.Schedule)
	if err != nil {
		return nil, err
	}

	dates := make([]entity.UnavailableDate, 0, len(req.UnavailableDates))
	for _, d := range req.UnavailableDates {
		dates = append(dates, entity.UnavailableDate{Date: d})
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByDoctorID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedule for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	action := "schedule.update"
	if schedule == nil {
		action = "schedule.create"
		schedule = &entity.DoctorSchedule{DoctorID: doctorID}
		if err := u.scheduleRepo.Create(tx, schedule); err != nil {
			u.log.Warnf("Failed to create schedule for doctor %s: %+v", doctorID, err)
			return nil, err
		}
	}

	if err := u.scheduleRepo.ReplaceDays(tx, schedule.ID, days); err != nil {
		u.log.Warnf("Failed to replace schedule days for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if err := u.scheduleRepo.ReplaceUnavailableDates(tx, schedule.ID, dates); err != nil {
		u.log.Warnf("Failed to replace unavailable dates for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(u.db.WithContext(ctx), &doctorID, action, "doctor_schedule", doctorID.String(), nil, req)

	// Reload for a consistent response.
	stored, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil || stored == nil {
		u.log.Warnf("Failed to reload schedule for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return converter.ScheduleToResponse(stored), nil
}

// buildScheduleDays validates the request shape: canonical day names, no
// day repeated, "HH:MM" times, start strictly before end per slot.
func buildScheduleDays(reqDays []dto.DayScheduleRequest) ([]entity.ScheduleDay, error) {
	seen := make(map[string]bool, len(reqDays))
	days := make([]entity.ScheduleDay, 0, len(reqDays))

	for _, reqDay := range reqDays {
		if !entity.IsValidDayName(reqDay.Day) {
			return nil, ErrInvalidDayName
		}
		if seen[reqDay.Day] {
			return nil, ErrDuplicateDay
		}
		seen[reqDay.Day] = true

		slots := make([]entity.ScheduleSlot, 0, len(reqDay.Slots))
		for _, slot := range reqDay.Slots {
			if !entity.IsValidTime(slot.StartTime) || !entity.IsValidTime(slot.EndTime) {
				return nil, ErrInvalidTimeFormat
			}
			if slot.StartTime >= slot.EndTime {
				return nil, ErrInvalidSlotRange
			}
			slots = append(slots, entity.ScheduleSlot{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}

		days = append(days, entity.ScheduleDay{
			Day:   reqDay.Day,
			Slots: slots,
		})
	}

	return days, nil
}
