package usecase

import (
	"context"
	"errors"

	"github.com/dralafandy/CuraSoft/internal/converter"
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	"github.com/dralafandy/CuraSoft/internal/domain/repository"
	"github.com/dralafandy/CuraSoft/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrUnknownTooth    = errors.New("unknown tooth identifier")
)

type PatientUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.PatientResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.PatientListResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	UpdateTooth(ctx context.Context, userID, patientID uuid.UUID, toothID string, req *dto.UpdateToothRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	auditSvc    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditSvc service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		auditSvc:    auditSvc,
	}
}

func (u *patientUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	// Every patient starts with a full chart of healthy teeth
	patient := &entity.Patient{
		UserID:                userID,
		Name:                  req.Name,
		DateOfBirth:           dob,
		Gender:                entity.Gender(req.Gender),
		Phone:                 req.Phone,
		Email:                 req.Email,
		Address:               req.Address,
		MedicalHistory:        req.MedicalHistory,
		TreatmentNotes:        req.TreatmentNotes,
		Allergies:             req.Allergies,
		Medications:           req.Medications,
		InsuranceProvider:     req.InsuranceProvider,
		InsurancePolicyNumber: req.InsurancePolicyNumber,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		DentalChart:           entity.NewDentalChart(),
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient.Name = req.Name
	patient.DateOfBirth = dob
	patient.Gender = entity.Gender(req.Gender)
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.Address = req.Address
	patient.MedicalHistory = req.MedicalHistory
	patient.TreatmentNotes = req.TreatmentNotes
	patient.Allergies = req.Allergies
	patient.Medications = req.Medications
	patient.InsuranceProvider = req.InsuranceProvider
	patient.InsurancePolicyNumber = req.InsurancePolicyNumber
	patient.EmergencyContactName = req.EmergencyContactName
	patient.EmergencyContactPhone = req.EmergencyContactPhone

	if err := u.patientRepo.Update(db, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := u.patientRepo.Delete(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (u *patientUsecase) UpdateTooth(ctx context.Context, userID, patientID uuid.UUID, toothID string, req *dto.UpdateToothRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldChart := patient.DentalChart
	newChart, err := oldChart.UpdateTooth(toothID, entity.Tooth{
		Status: entity.ToothStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		return nil, ErrUnknownTooth
	}
	patient.DentalChart = newChart

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update dental chart: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.LogUpdate(tx, userID, entity.AuditActionChartUpdate, "patient", patientID.String(),
		oldChart[toothID], newChart[toothID]); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}
