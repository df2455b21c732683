package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/usecase"
	"mindcare-backend/pkg/validator"

	"github.com/google/uuid"
)

type stubAppointmentUsecase struct {
	createErr error
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.AppointmentResponse{
		ID:        uuid.New(),
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    "confirmed",
	}, nil
}

func (s *stubAppointmentUsecase) ListAppointments(ctx context.Context, doctorID, patientID *uuid.UUID) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
}

func (s *stubAppointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return nil, usecase.ErrAppointmentNotFound
}

func (s *stubAppointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, usecase.ErrAppointmentNotFound
}

func (s *stubAppointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return usecase.ErrAppointmentNotFound
}

type stubAvailabilityUsecase struct {
	resp *dto.AvailabilityResponse
	err  error
}

func (s *stubAvailabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func validCreateBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(dto.CreateAppointmentRequest{
		DoctorID:    uuid.New(),
		PatientID:   uuid.New(),
		PatientName: "Pat Example",
		DoctorName:  "Dr. Example",
		Date:        "2026-09-02",
		StartTime:   "09:00",
		EndTime:     "09:30",
		Reason:      "Initial consultation",
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return bytes.NewBuffer(body)
}

func TestCreateAppointmentStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusCreated},
		{"schedule missing", usecase.ErrScheduleNotFound, http.StatusNotFound},
		{"day not scheduled", usecase.ErrDayNotScheduled, http.StatusBadRequest},
		{"outside working hours", usecase.ErrOutsideWorkingHours, http.StatusBadRequest},
		{"date unavailable", usecase.ErrDateUnavailable, http.StatusBadRequest},
		{"invalid date", usecase.ErrInvalidDate, http.StatusBadRequest},
		{"invalid time", usecase.ErrInvalidTimeFormat, http.StatusBadRequest},
		{"slot taken", usecase.ErrSlotTaken, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(
				&stubAppointmentUsecase{createErr: tt.err},
				&stubAvailabilityUsecase{},
				validator.NewValidator(),
			)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", validCreateBody(t))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(`{"reason":"x"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAvailabilityEmptySlots(t *testing.T) {
	doctorID := uuid.New()
	h := NewAppointmentHandler(
		&stubAppointmentUsecase{},
		&stubAvailabilityUsecase{resp: &dto.AvailabilityResponse{
			DoctorID: doctorID,
			Date:     "2026-09-02",
			Slots:    []dto.TimeSlot{},
		}},
		validator.NewValidator(),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/availability?doctor_id="+doctorID.String()+"&date=2026-09-02", nil)
	rec := httptest.NewRecorder()

	h.Availability(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var envelope struct {
		Data dto.AvailabilityResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Slots == nil {
		t.Error("slots should serialize as an empty array, not null")
	}
}

func TestAvailabilityMissingParams(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/availability", nil)
	rec := httptest.NewRecorder()

	h.Availability(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
