package dto

import "github.com/google/uuid"

// Request DTOs

type UpdateDoctorProfileRequest struct {
	Specialty  string `json:"specialty" validate:"omitempty"`
	Experience string `json:"experience" validate:"omitempty"`
	Biography  string `json:"biography" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Specialty   string    `json:"specialty"`
	Experience  string    `json:"experience,omitempty"`
	Biography   string    `json:"biography,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
