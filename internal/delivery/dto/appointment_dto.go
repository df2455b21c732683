package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" validate:"required"`
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	PatientName string    `json:"patient_name" validate:"required"`
	DoctorName  string    `json:"doctor_name" validate:"required"`
	Date        string    `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime   string    `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime     string    `json:"end_time" validate:"required"`   // Format: HH:MM
	Reason      string    `json:"reason" validate:"required"`
}

type UpdateAppointmentRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	Notes  string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// TimeSlot is one bookable 30-minute window in an availability response.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityResponse struct {
	DoctorID uuid.UUID  `json:"doctor_id"`
	Date     string     `json:"date"`
	Slots    []TimeSlot `json:"slots"`
}
