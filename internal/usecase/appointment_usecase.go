package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/dralafandy/CuraSoft/internal/converter"
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	"github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrInvalidTimeRange        = errors.New("end time must be after start time")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	patient, err := u.patientRepo.FindByID(db, userID, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	dentist, err := u.dentistRepo.FindByID(db, userID, req.DentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	appointment := &entity.Appointment{
		UserID:       userID,
		PatientID:    req.PatientID,
		DentistID:    req.DentistID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
		Status:       entity.AppointmentStatusScheduled,
		ReminderTime: entity.ReminderTime(req.ReminderTime),
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	appointment, err := u.appointmentRepo.FindByID(db, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Rescheduling re-arms the reminder
	if !appointment.StartTime.Equal(req.StartTime) || appointment.ReminderTime != entity.ReminderTime(req.ReminderTime) {
		appointment.ReminderSent = false
	}

	appointment.PatientID = req.PatientID
	appointment.DentistID = req.DentistID
	appointment.StartTime = req.StartTime
	appointment.EndTime = req.EndTime
	appointment.Reason = req.Reason
	appointment.ReminderTime = entity.ReminderTime(req.ReminderTime)

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	next := entity.AppointmentStatus(req.Status)
	if !appointment.Status.CanTransitionTo(next) {
		return nil, ErrInvalidStatusTransition
	}
	appointment.Status = next

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindInRange(u.db.WithContext(ctx), userID, from, to)
	if err != nil {
		u.log.Warnf("Failed to list appointments in range: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
