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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTreatmentDefinitionNotFound = errors.New("treatment definition not found")
	ErrTreatmentRecordNotFound     = errors.New("treatment record not found")
	ErrInvalidShareSplit           = errors.New("doctor and clinic percentages must sum to 1")
	ErrInventoryItemNotFound       = errors.New("inventory item not found")
	ErrInsufficientStock           = errors.New("insufficient stock")
)

type TreatmentUsecase interface {
	CreateDefinition(ctx context.Context, userID uuid.UUID, req *dto.CreateTreatmentDefinitionRequest) (*dto.TreatmentDefinitionResponse, error)
	UpdateDefinition(ctx context.Context, userID, id uuid.UUID, req *dto.CreateTreatmentDefinitionRequest) (*dto.TreatmentDefinitionResponse, error)
	GetDefinition(ctx context.Context, userID, id uuid.UUID) (*dto.TreatmentDefinitionResponse, error)
	ListDefinitions(ctx context.Context, userID uuid.UUID) (*dto.TreatmentDefinitionListResponse, error)
	DeleteDefinition(ctx context.Context, userID, id uuid.UUID) error

	AddRecord(ctx context.Context, userID uuid.UUID, req *dto.CreateTreatmentRecordRequest) (*dto.TreatmentRecordResponse, error)
	UpdateRecord(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTreatmentRecordRequest) (*dto.TreatmentRecordResponse, error)
	GetRecord(ctx context.Context, userID, id uuid.UUID) (*dto.TreatmentRecordResponse, error)
	ListRecords(ctx context.Context, userID uuid.UUID) (*dto.TreatmentRecordListResponse, error)
	ListRecordsByPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.TreatmentRecordListResponse, error)
}

type treatmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	definitionRepo repository.TreatmentDefinitionRepository
	recordRepo     repository.TreatmentRecordRepository
	patientRepo    repository.PatientRepository
	dentistRepo    repository.DentistRepository
	inventoryRepo  repository.InventoryItemRepository
	auditSvc       service.AuditService
}

func NewTreatmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	definitionRepo repository.TreatmentDefinitionRepository,
	recordRepo repository.TreatmentRecordRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	inventoryRepo repository.InventoryItemRepository,
	auditSvc service.AuditService,
) TreatmentUsecase {
	return &treatmentUsecase{
		db:             db,
		log:            log,
		definitionRepo: definitionRepo,
		recordRepo:     recordRepo,
		patientRepo:    patientRepo,
		dentistRepo:    dentistRepo,
		inventoryRepo:  inventoryRepo,
		auditSvc:       auditSvc,
	}
}

func (u *treatmentUsecase) CreateDefinition(ctx context.Context, userID uuid.UUID, req *dto.CreateTreatmentDefinitionRequest) (*dto.TreatmentDefinitionResponse, error) {
	definition := &entity.TreatmentDefinition{
		UserID:           userID,
		Name:             req.Name,
		Description:      req.Description,
		BasePrice:        req.BasePrice,
		DoctorPercentage: req.DoctorPercentage,
		ClinicPercentage: req.ClinicPercentage,
	}

	if !definition.SplitIsValid() {
		return nil, ErrInvalidShareSplit
	}

	if err := u.definitionRepo.Create(u.db.WithContext(ctx), definition); err != nil {
		u.log.Warnf("Failed to create treatment definition: %+v", err)
		return nil, err
	}

	return converter.TreatmentDefinitionToResponse(definition), nil
}

func (u *treatmentUsecase) UpdateDefinition(ctx context.Context, userID, id uuid.UUID, req *dto.CreateTreatmentDefinitionRequest) (*dto.TreatmentDefinitionResponse, error) {
	db := u.db.WithContext(ctx)

	definition, err := u.definitionRepo.FindByID(db, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment definition: %+v", err)
		return nil, err
	}
	if definition == nil {
		return nil, ErrTreatmentDefinitionNotFound
	}

	definition.Name = req.Name
	definition.Description = req.Description
	definition.BasePrice = req.BasePrice
	definition.DoctorPercentage = req.DoctorPercentage
	definition.ClinicPercentage = req.ClinicPercentage

	if !definition.SplitIsValid() {
		return nil, ErrInvalidShareSplit
	}

	// Existing records keep the shares captured at their creation time
	if err := u.definitionRepo.Update(db, definition); err != nil {
		u.log.Warnf("Failed to update treatment definition: %+v", err)
		return nil, err
	}

	return converter.TreatmentDefinitionToResponse(definition), nil
}

func (u *treatmentUsecase) GetDefinition(ctx context.Context, userID, id uuid.UUID) (*dto.TreatmentDefinitionResponse, error) {
	definition, err := u.definitionRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment definition: %+v", err)
		return nil, err
	}
	if definition == nil {
		return nil, ErrTreatmentDefinitionNotFound
	}

	return converter.TreatmentDefinitionToResponse(definition), nil
}

func (u *treatmentUsecase) ListDefinitions(ctx context.Context, userID uuid.UUID) (*dto.TreatmentDefinitionListResponse, error) {
	definitions, err := u.definitionRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list treatment definitions: %+v", err)
		return nil, err
	}

	return &dto.TreatmentDefinitionListResponse{
		Definitions: converter.TreatmentDefinitionsToResponses(definitions),
		Total:       len(definitions),
	}, nil
}

func (u *treatmentUsecase) DeleteDefinition(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := u.definitionRepo.Delete(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to delete treatment definition: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrTreatmentDefinitionNotFound
	}
	return nil
}

// AddRecord performs the full billing command: price the treatment from the
// definition and consumed materials, decrement stock, bump the patient's last
// visit and write the audit entry, all in one transaction.
func (u *treatmentUsecase) AddRecord(ctx context.Context, userID uuid.UUID, req *dto.CreateTreatmentRecordRequest) (*dto.TreatmentRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	treatmentDate, err := parseDate(req.TreatmentDate)
	if err != nil {
		return nil, err
	}

	definition, err := u.definitionRepo.FindByID(tx, userID, req.TreatmentDefinitionID)
	if err != nil {
		u.log.Warnf("Failed to find treatment definition: %+v", err)
		return nil, err
	}
	if definition == nil {
		return nil, ErrTreatmentDefinitionNotFound
	}

	patient, err := u.patientRepo.FindByID(tx, userID, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	dentist, err := u.dentistRepo.FindByID(tx, userID, req.DentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	consumed, err := u.consumeInventory(tx, userID, req.InventoryItemsUsed)
	if err != nil {
		return nil, err
	}

	total, doctorShare, clinicShare := entity.PriceTreatment(definition, consumed)

	record := &entity.TreatmentRecord{
		UserID:                userID,
		PatientID:             req.PatientID,
		DentistID:             req.DentistID,
		TreatmentDefinitionID: req.TreatmentDefinitionID,
		TreatmentDate:         treatmentDate,
		Notes:                 req.Notes,
		InventoryItemsUsed:    consumed,
		TotalTreatmentCost:    total,
		DoctorShare:           doctorShare,
		ClinicShare:           clinicShare,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create treatment record: %+v", err)
		return nil, err
	}

	if patient.LastVisit == nil || treatmentDate.After(*patient.LastVisit) {
		patient.LastVisit = &treatmentDate
		if err := u.patientRepo.Update(tx, patient); err != nil {
			u.log.Warnf("Failed to update patient last visit: %+v", err)
			return nil, err
		}
	}

	if err := u.auditSvc.LogCreate(tx, userID, entity.AuditActionTreatmentRecordCreate, "treatment_record", record.ID.String(), record); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TreatmentRecordToResponse(record), nil
}

// consumeInventory prices each requested material at the item's current unit
// cost and decrements its stock inside the transaction
func (u *treatmentUsecase) consumeInventory(tx *gorm.DB, userID uuid.UUID, requests []dto.ConsumedItemRequest) (entity.ConsumedItems, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	consumed := make(entity.ConsumedItems, 0, len(requests))
	for _, req := range requests {
		item, err := u.inventoryRepo.FindByID(tx, userID, req.InventoryItemID)
		if err != nil {
			u.log.Warnf("Failed to find inventory item: %+v", err)
			return nil, err
		}
		if item == nil {
			return nil, ErrInventoryItemNotFound
		}
		if item.CurrentStock < req.Quantity {
			return nil, ErrInsufficientStock
		}

		rows, err := u.inventoryRepo.AdjustStock(tx, userID, item.ID, -req.Quantity)
		if err != nil {
			u.log.Warnf("Failed to adjust stock: %+v", err)
			return nil, err
		}
		if rows == 0 {
			return nil, ErrInventoryItemNotFound
		}

		consumed = append(consumed, entity.ConsumedItem{
			InventoryItemID: item.ID,
			Quantity:        req.Quantity,
			Cost:            item.UnitCost.Mul(decimal.NewFromInt(int64(req.Quantity))),
		})
	}
	return consumed, nil
}

func (u *treatmentUsecase) UpdateRecord(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTreatmentRecordRequest) (*dto.TreatmentRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrTreatmentRecordNotFound
	}

	treatmentDate, err := parseDate(req.TreatmentDate)
	if err != nil {
		return nil, err
	}

	oldRecord := *record
	record.TreatmentDate = treatmentDate
	record.Notes = req.Notes

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update treatment record: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.LogUpdate(tx, userID, entity.AuditActionTreatmentRecordUpdate, "treatment_record", record.ID.String(), oldRecord, record); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TreatmentRecordToResponse(record), nil
}

func (u *treatmentUsecase) GetRecord(ctx context.Context, userID, id uuid.UUID) (*dto.TreatmentRecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrTreatmentRecordNotFound
	}

	return converter.TreatmentRecordToResponse(record), nil
}

func (u *treatmentUsecase) ListRecords(ctx context.Context, userID uuid.UUID) (*dto.TreatmentRecordListResponse, error) {
	records, err := u.recordRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list treatment records: %+v", err)
		return nil, err
	}

	return &dto.TreatmentRecordListResponse{
		Records: converter.TreatmentRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *treatmentUsecase) ListRecordsByPatient(ctx context.Context, userID, patientID uuid.UUID) (*dto.TreatmentRecordListResponse, error) {
	records, err := u.recordRepo.FindByPatient(u.db.WithContext(ctx), userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to list treatment records by patient: %+v", err)
		return nil, err
	}

	return &dto.TreatmentRecordListResponse{
		Records: converter.TreatmentRecordsToResponses(records),
		Total:   len(records),
	}, nil
}
