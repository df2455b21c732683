package handler

import (
	"encoding/json"
	"net/http"

	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/delivery/http/middleware"
	"mindcare-backend/internal/usecase"
	"mindcare-backend/pkg/response"
	"mindcare-backend/pkg/validator"
)

type MoodHandler struct {
	moodUsecase usecase.MoodUsecase
	validator   *validator.CustomValidator
}

func NewMoodHandler(moodUsecase usecase.MoodUsecase, validator *validator.CustomValidator) *MoodHandler {
	return &MoodHandler{
		moodUsecase: moodUsecase,
		validator:   validator,
	}
}

// Predict runs the AI mood prediction and stores the log entry.
func (h *MoodHandler) Predict(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.PredictMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.moodUsecase.PredictAndLog(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPredictionFailed:
			response.BadGateway(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to predict mood")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Mood prediction created successfully", result)
}

// List returns the authenticated user's mood log history, newest first.
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	logs, err := h.moodUsecase.ListMoodLogs(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list mood logs")
		return
	}

	response.Success(w, http.StatusOK, "Mood logs retrieved successfully", logs)
}

// Report returns aggregate score averages across the user's mood logs.
func (h *MoodHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	report, err := h.moodUsecase.MoodReport(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to build mood report")
		return
	}

	response.Success(w, http.StatusOK, "Mood report retrieved successfully", report)
}
