package usecase

import (
	"context"
	"errors"
	"fmt"

	"mindcare-backend/internal/converter"
	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
	"mindcare-backend/internal/domain/repository"
	"mindcare-backend/internal/infrastructure/ai"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPredictionFailed = errors.New("mood prediction service unavailable")

const moodSystemPrompt = "You are a compassionate mental health assistant. " +
	"Given a user's self-reported mood scores (1-10 scale) and a short description of their day, " +
	"write a brief, supportive reflection on their emotional state with one or two gentle, " +
	"practical suggestions. Keep it under 120 words and never give medical diagnoses."

type MoodUsecase interface {
	PredictAndLog(ctx context.Context, userID uuid.UUID, req *dto.PredictMoodRequest) (*dto.PredictMoodResponse, error)
	ListMoodLogs(ctx context.Context, userID uuid.UUID) (*dto.MoodLogListResponse, error)
	MoodReport(ctx context.Context, userID uuid.UUID) (*dto.MoodReportResponse, error)
}

type moodUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	moodLogRepo repository.MoodLogRepository
	ai          ai.CompletionClient
}

func NewMoodUsecase(db *gorm.DB, log *logrus.Logger, moodLogRepo repository.MoodLogRepository, aiClient ai.CompletionClient) MoodUsecase {
	return &moodUsecase{
		db:          db,
		log:         log,
		moodLogRepo: moodLogRepo,
		ai:          aiClient,
	}
}

func (u *moodUsecase) PredictAndLog(ctx context.Context, userID uuid.UUID, req *dto.PredictMoodRequest) (*dto.PredictMoodResponse, error) {
	userMessage := fmt.Sprintf(
		"Mood data for %s:\nStress: %d/10\nHappiness: %d/10\nEnergy: %d/10\nFocus: %d/10\nCalmness: %d/10\nDescription: %s",
		req.Date, req.Stress, req.Happiness, req.Energy, req.Focus, req.Calmness, req.Description,
	)

	prediction, err := u.ai.Complete(ctx, moodSystemPrompt, userMessage)
	if err != nil {
		u.log.Warnf("Failed to get mood prediction: %+v", err)
		return nil, ErrPredictionFailed
	}

	moodLog := &entity.MoodLog{
		UserID:      userID,
		Stress:      req.Stress,
		Happiness:   req.Happiness,
		Energy:      req.Energy,
		Focus:       req.Focus,
		Calmness:    req.Calmness,
		Description: req.Description,
		Date:        req.Date,
		Prediction:  prediction,
	}

	if err := u.moodLogRepo.Create(u.db.WithContext(ctx), moodLog); err != nil {
		u.log.Warnf("Failed to create mood log: %+v", err)
		return nil, err
	}

	return &dto.PredictMoodResponse{
		Prediction: prediction,
		Log:        converter.MoodLogToResponse(moodLog),
	}, nil
}

func (u *moodUsecase) ListMoodLogs(ctx context.Context, userID uuid.UUID) (*dto.MoodLogListResponse, error) {
	logs, err := u.moodLogRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list mood logs: %+v", err)
		return nil, err
	}

	responses := make([]dto.MoodLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *converter.MoodLogToResponse(&logs[i]))
	}

	return &dto.MoodLogListResponse{
		Logs:  responses,
		Total: len(responses),
	}, nil
}

func (u *moodUsecase) MoodReport(ctx context.Context, userID uuid.UUID) (*dto.MoodReportResponse, error) {
	logs, err := u.moodLogRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to load mood logs for report: %+v", err)
		return nil, err
	}

	report := &dto.MoodReportResponse{Entries: len(logs)}
	if len(logs) == 0 {
		return report, nil
	}

	var stress, happiness, energy, focus, calmness decimal.Decimal
	for i := range logs {
		stress = stress.Add(decimal.NewFromInt(int64(logs[i].Stress)))
		happiness = happiness.Add(decimal.NewFromInt(int64(logs[i].Happiness)))
		energy = energy.Add(decimal.NewFromInt(int64(logs[i].Energy)))
		focus = focus.Add(decimal.NewFromInt(int64(logs[i].Focus)))
		calmness = calmness.Add(decimal.NewFromInt(int64(logs[i].Calmness)))
	}

	count := decimal.NewFromInt(int64(len(logs)))
	report.AvgStress = stress.Div(count).Round(2)
	report.AvgHappiness = happiness.Div(count).Round(2)
	report.AvgEnergy = energy.Div(count).Round(2)
	report.AvgFocus = focus.Div(count).Round(2)
	report.AvgCalmness = calmness.Div(count).Round(2)

	return report, nil
}
