package converter

import (
	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
)

func MoodLogToResponse(log *entity.MoodLog) *dto.MoodLogResponse {
	return &dto.MoodLogResponse{
		ID:          log.ID,
		Stress:      log.Stress,
		Happiness:   log.Happiness,
		Energy:      log.Energy,
		Focus:       log.Focus,
		Calmness:    log.Calmness,
		Description: log.Description,
		Date:        log.Date,
		Prediction:  log.Prediction,
		CreatedAt:   log.CreatedAt,
	}
}
