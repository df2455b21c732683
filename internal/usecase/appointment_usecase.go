package usecase

import (
	"context"
	"errors"
	"time"

	"mindcare-backend/internal/converter"
	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
	"mindcare-backend/internal/domain/repository"
	"mindcare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound    = errors.New("doctor schedule not found")
	ErrDayNotScheduled     = errors.New("doctor not available on this day")
	ErrOutsideWorkingHours = errors.New("selected time outside doctor's working hours")
	ErrDateUnavailable     = errors.New("doctor not available on this date")
	ErrSlotTaken           = errors.New("time slot already booked")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrMissingParty        = errors.New("either doctor_id or patient_id is required")
)

type AppointmentUsecase interface {
	// CreateAppointment validates a booking request against the doctor's
	// weekly schedule and commits it. The availability checks are advisory
	// under concurrency; the unique (doctor, date, start_time) constraint
	// arbitrates races at write time.
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, doctorID, patientID *uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	scheduleRepo    repository.DoctorScheduleRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	parsed, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !entity.IsValidTime(req.StartTime) || !entity.IsValidTime(req.EndTime) {
		return nil, ErrInvalidTimeFormat
	}
	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidTimeFormat
	}

	schedule, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedule for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if err := ValidateBookingWindow(schedule, parsed.Weekday().String(), req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	// New bookings are confirmed immediately. The pending status is only
	// reachable through a later update.
	appointment := &entity.Appointment{
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		DoctorName:  req.DoctorName,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      entity.AppointmentStatusConfirmed,
		Reason:      req.Reason,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(u.db.WithContext(ctx), &appointment.PatientID, "appointment.create", "appointment", appointment.ID.String(), appointment)

	u.log.Infof("Appointment created: id=%s, doctor=%s, date=%s %s", appointment.ID, req.DoctorID, req.Date, req.StartTime)
	return converter.AppointmentToResponse(appointment), nil
}

// ValidateBookingWindow checks a requested [start, end) window against a
// doctor's weekly schedule and exclusion dates. The checks run in a fixed
// order so callers get the most specific rejection reason.
func ValidateBookingWindow(schedule *entity.DoctorSchedule, dayName, dateISO, start, end string) error {
	day := schedule.DayByName(dayName)
	if day == nil {
		return ErrDayNotScheduled
	}
	if !day.Covers(start, end) {
		return ErrOutsideWorkingHours
	}
	if schedule.IsUnavailableOn(dateISO) {
		return ErrDateUnavailable
	}
	return nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, doctorID, patientID *uuid.UUID) (*dto.AppointmentListResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)

	switch {
	case doctorID != nil:
		appointments, err = u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), *doctorID)
	case patientID != nil:
		appointments, err = u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), *patientID)
	default:
		return nil, ErrMissingParty
	}

	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment writes status and notes. No transition table is
// enforced: any authorized caller may set any of the four statuses.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldStatus := appointment.Status
	appointment.Status = entity.AppointmentStatus(req.Status)
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(u.db.WithContext(ctx), nil, "appointment.update", "appointment", id.String(),
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": appointment.Status, "notes": appointment.Notes},
	)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.LogDelete(u.db.WithContext(ctx), nil, "appointment.delete", "appointment", id.String(), appointment)
	return nil
}
