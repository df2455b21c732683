package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// IsValidAppointmentStatus reports whether s is one of the four statuses.
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a booked visit. The (doctor_id, date, start_time)
// tuple is unique: at most one appointment per doctor per exact start time.
// Patient and doctor names are denormalized display copies.
type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID    uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_appointments_doctor_slot" json:"doctor_id"`
	PatientID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorName  string            `gorm:"type:varchar(255);not null" json:"doctor_name"`
	Date        string            `gorm:"type:varchar(10);not null;uniqueIndex:idx_appointments_doctor_slot" json:"date"`
	StartTime   string            `gorm:"type:varchar(5);not null;uniqueIndex:idx_appointments_doctor_slot" json:"start_time"`
	EndTime     string            `gorm:"type:varchar(5);not null" json:"end_time"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason      string            `gorm:"type:text;not null" json:"reason"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted reports whether the visit has been marked completed.
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
