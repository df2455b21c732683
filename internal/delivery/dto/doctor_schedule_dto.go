package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SlotRequest struct {
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:MM
}

type DayScheduleRequest struct {
	Day   string        `json:"day" validate:"required"`
	Slots []SlotRequest `json:"slots" validate:"required,dive"`
}

type UpsertScheduleRequest struct {
	Schedule         []DayScheduleRequest `json:"schedule" validate:"required,min=1,dive"`
	UnavailableDates []string             `json:"unavailable_dates" validate:"omitempty,dive,datetime=2006-01-02"`
}

// Response DTOs

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DayScheduleResponse struct {
	Day   string         `json:"day"`
	Slots []SlotResponse `json:"slots"`
}

type ScheduleResponse struct {
	DoctorID         uuid.UUID             `json:"doctor_id"`
	Schedule         []DayScheduleResponse `json:"schedule"`
	UnavailableDates []string              `json:"unavailable_dates"`
	UpdatedAt        time.Time             `json:"updated_at"`
}
