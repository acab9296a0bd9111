package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrLabCaseNotFound = errors.New("lab case not found")
	ErrNotDentalLab    = errors.New("supplier is not a dental lab")
)

type LabCaseUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateLabCaseRequest) (*dto.LabCaseResponse, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateLabCaseStatusRequest) (*dto.LabCaseResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.LabCaseResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.LabCaseListResponse, error)
	ListByPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.LabCaseListResponse, error)
}

type labCaseUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	labCaseRepo  repository.LabCaseRepository
	patientRepo  repository.PatientRepository
	supplierRepo repository.SupplierRepository
}

func NewLabCaseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	labCaseRepo repository.LabCaseRepository,
	patientRepo repository.PatientRepository,
	supplierRepo repository.SupplierRepository,
) LabCaseUsecase {
	return &labCaseUsecase{
		db:           db,
		log:          log,
		labCaseRepo:  labCaseRepo,
		patientRepo:  patientRepo,
		supplierRepo: supplierRepo,
	}
}

func (u *labCaseUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateLabCaseRequest) (*dto.LabCaseResponse, error) {
	db := u.db.WithContext(ctx)

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	sentDate, err := parseDatePtr(req.SentDate)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(db, userID, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	lab, err := u.supplierRepo.FindByID(db, userID, req.LabID)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return nil, err
	}
	if lab == nil {
		return nil, ErrSupplierNotFound
	}
	if lab.Type != entity.SupplierTypeDentalLab {
		return nil, ErrNotDentalLab
	}

	labCase := &entity.LabCase{
		UserID:    userID,
		PatientID: req.PatientID,
		LabID:     req.LabID,
		CaseType:  req.CaseType,
		SentDate:  sentDate,
		DueDate:   dueDate,
		Status:    entity.LabCaseStatusDraft,
		LabCost:   req.LabCost,
		Notes:     req.Notes,
	}

	if err := u.labCaseRepo.Create(db, labCase); err != nil {
		u.log.Warnf("Failed to create lab case: %+v", err)
		return nil, err
	}

	return converter.LabCaseToResponse(labCase), nil
}

func (u *labCaseUsecase) UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateLabCaseStatusRequest) (*dto.LabCaseResponse, error) {
	db := u.db.WithContext(ctx)

	labCase, err := u.labCaseRepo.FindByID(db, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find lab case: %+v", err)
		return nil, err
	}
	if labCase == nil {
		return nil, ErrLabCaseNotFound
	}

	next := entity.LabCaseStatus(req.Status)
	if !labCase.Status.CanTransitionTo(next) {
		return nil, ErrInvalidStatusTransition
	}
	labCase.Status = next

	// Milestone dates are stamped on first arrival at each stage
	now := service.StartOfDay(time.Now())
	switch next {
	case entity.LabCaseStatusSentToLab:
		if labCase.SentDate == nil {
			labCase.SentDate = &now
		}
	case entity.LabCaseStatusReceivedFromLab:
		if labCase.ReturnDate == nil {
			labCase.ReturnDate = &now
		}
	}

	if err := u.labCaseRepo.Update(db, labCase); err != nil {
		u.log.Warnf("Failed to update lab case: %+v", err)
		return nil, err
	}

	return converter.LabCaseToResponse(labCase), nil
}

func (u *labCaseUsecase) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.LabCaseResponse, error) {
	labCase, err := u.labCaseRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find lab case: %+v", err)
		return nil, err
	}
	if labCase == nil {
		return nil, ErrLabCaseNotFound
	}

	return converter.LabCaseToResponse(labCase), nil
}

func (u *labCaseUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.LabCaseListResponse, error) {
	cases, err := u.labCaseRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list lab cases: %+v", err)
		return nil, err
	}

	return &dto.LabCaseListResponse{
		Cases: converter.LabCasesToResponses(cases),
		Total: len(cases),
	}, nil
}

func (u *labCaseUsecase) ListByPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.LabCaseListResponse, error) {
	cases, err := u.labCaseRepo.FindByPatient(u.db.WithContext(ctx), userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to list lab cases by patient: %+v", err)
		return nil, err
	}

	return &dto.LabCaseListResponse{
		Cases: converter.LabCasesToResponses(cases),
		Total: len(cases),
	}, nil
}
