package repository

import (
	"mindcare-backend/internal/domain/entity"
	domainRepo "mindcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type moodLogRepository struct{}

func NewMoodLogRepository() domainRepo.MoodLogRepository {
	return &moodLogRepository{}
}

func (r *moodLogRepository) Create(db *gorm.DB, log *entity.MoodLog) error {
	return db.Create(log).Error
}

func (r *moodLogRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.MoodLog, error) {
	var logs []entity.MoodLog
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
