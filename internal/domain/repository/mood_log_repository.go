package repository

import (
	"mindcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MoodLogRepository interface {
	Create(db *gorm.DB, log *entity.MoodLog) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.MoodLog, error)
}
