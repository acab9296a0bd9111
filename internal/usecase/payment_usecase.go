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
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

type PaymentUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.PaymentResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.PaymentListResponse, error)
	ListByPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.PaymentListResponse, error)
	GetPatientBalance(ctx context.Context, userID, patientID uuid.UUID) (*dto.PatientBalanceResponse, error)
}

type paymentUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	paymentRepo repository.PaymentRepository
	patientRepo repository.PatientRepository
	recordRepo  repository.TreatmentRecordRepository
	auditSvc    service.AuditService
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	patientRepo repository.PatientRepository,
	recordRepo repository.TreatmentRecordRepository,
	auditSvc service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		db:          db,
		log:         log,
		paymentRepo: paymentRepo,
		patientRepo: patientRepo,
		recordRepo:  recordRepo,
		auditSvc:    auditSvc,
	}
}

func (u *paymentUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(tx, userID, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	payment := &entity.Payment{
		UserID:    userID,
		PatientID: req.PatientID,
		Date:      date,
		Amount:    req.Amount,
		Method:    entity.PaymentMethod(req.Method),
		Notes:     req.Notes,
	}

	if err := u.paymentRepo.Create(tx, payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.LogCreate(tx, userID, entity.AuditActionPaymentCreate, "payment", payment.ID.String(), payment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

func (u *paymentUsecase) ListByPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindByPatient(u.db.WithContext(ctx), userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to list payments by patient: %+v", err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

// GetPatientBalance derives the patient's position from their full treatment
// and payment history; nothing is stored.
func (u *paymentUsecase) GetPatientBalance(ctx context.Context, userID, patientID uuid.UUID) (*dto.PatientBalanceResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.recordRepo.FindByPatient(db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to list treatment records: %+v", err)
		return nil, err
	}

	payments, err := u.paymentRepo.FindByPatient(db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}

	balance := service.ComputePatientBalance(patientID, records, payments)
	response := converter.PatientBalanceToResponse(patient, balance)
	return &response, nil
}
