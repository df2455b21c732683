package entity

import (
	"time"

	"github.com/google/uuid"
)

// MoodLog stores one self-reported mood entry together with the
// AI-generated prediction for it. Scores are on a 1-10 scale.
type MoodLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Stress      int       `gorm:"not null" json:"stress"`
	Happiness   int       `gorm:"not null" json:"happiness"`
	Energy      int       `gorm:"not null" json:"energy"`
	Focus       int       `gorm:"not null" json:"focus"`
	Calmness    int       `gorm:"not null" json:"calmness"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        string    `gorm:"type:varchar(10);not null" json:"date"`
	Prediction  string    `gorm:"type:text;not null" json:"prediction"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (MoodLog) TableName() string {
	return "mood_logs"
}
