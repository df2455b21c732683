package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
	"mindcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

// Canonical slot grid: 30-minute slots between 08:00 and 20:00. All times
// are doctor-local wall-clock strings; "HH:MM" zero-padded 24-hour format
// makes lexicographic comparison correct.
const (
	slotGridStart   = "08:00"
	slotGridEnd     = "20:00"
	slotDurationMin = 30
)

type AvailabilityUsecase interface {
	// GetAvailableSlots computes the bookable start times for a doctor on
	// a date. A doctor with no schedule record, no entry for the date's
	// weekday, or the date blanked out yields an empty slot list, not an
	// error.
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	scheduleRepo    repository.DoctorScheduleRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	response := &dto.AvailabilityResponse{
		DoctorID: doctorID,
		Date:     date,
		Slots:    []dto.TimeSlot{},
	}

	schedule, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedule for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if schedule == nil {
		// Doctor not configured: empty, not an error.
		return response, nil
	}

	day := schedule.DayByName(parsed.Weekday().String())
	if day == nil {
		return response, nil
	}

	// Unavailable-date exclusion is absolute and overrides weekly hours.
	if schedule.IsUnavailableOn(date) {
		return response, nil
	}

	booked, err := u.appointmentRepo.FindBookedStartTimes(u.db.WithContext(ctx), doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to find booked slots for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}

	response.Slots = ResolveSlots(day, booked)
	return response, nil
}

// ResolveSlots walks the canonical grid and keeps every slot that fits
// inside one of the day's ranges and is not already taken. Output is
// ordered ascending by start time.
func ResolveSlots(day *entity.ScheduleDay, booked []string) []dto.TimeSlot {
	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	slots := []dto.TimeSlot{}
	for start := slotGridStart; start < slotGridEnd; start = addMinutes(start, slotDurationMin) {
		end := addMinutes(start, slotDurationMin)
		if !day.Covers(start, end) {
			continue
		}
		if taken[start] {
			continue
		}
		slots = append(slots, dto.TimeSlot{StartTime: start, EndTime: end})
	}
	return slots
}

// addMinutes advances an "HH:MM" time by the given minutes, with explicit
// hour rollover.
func addMinutes(t string, minutes int) string {
	var hour, min int
	fmt.Sscanf(t, "%d:%d", &hour, &min)
	total := hour*60 + min + minutes
	return fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
}
