package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type PredictMoodRequest struct {
	Stress      int    `json:"stress" validate:"required,gte=1,lte=10"`
	Happiness   int    `json:"happiness" validate:"required,gte=1,lte=10"`
	Energy      int    `json:"energy" validate:"required,gte=1,lte=10"`
	Focus       int    `json:"focus" validate:"required,gte=1,lte=10"`
	Calmness    int    `json:"calmness" validate:"required,gte=1,lte=10"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Response DTOs

type MoodLogResponse struct {
	ID          uuid.UUID `json:"id"`
	Stress      int       `json:"stress"`
	Happiness   int       `json:"happiness"`
	Energy      int       `json:"energy"`
	Focus       int       `json:"focus"`
	Calmness    int       `json:"calmness"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Prediction  string    `json:"prediction"`
	CreatedAt   time.Time `json:"created_at"`
}

type MoodLogListResponse struct {
	Logs  []MoodLogResponse `json:"logs"`
	Total int               `json:"total"`
}

type PredictMoodResponse struct {
	Prediction string           `json:"prediction"`
	Log        *MoodLogResponse `json:"log,omitempty"`
}

// MoodReportResponse aggregates a user's logged scores.
type MoodReportResponse struct {
	Entries      int             `json:"entries"`
	AvgStress    decimal.Decimal `json:"avg_stress"`
	AvgHappiness decimal.Decimal `json:"avg_happiness"`
	AvgEnergy    decimal.Decimal `json:"avg_energy"`
	AvgFocus     decimal.Decimal `json:"avg_focus"`
	AvgCalmness  decimal.Decimal `json:"avg_calmness"`
}
