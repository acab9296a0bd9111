package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/dralafandy/CuraSoft/config"
	"github.com/dralafandy/CuraSoft/internal/converter"
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	"github.com/dralafandy/CuraSoft/internal/domain/repository"
	"github.com/dralafandy/CuraSoft/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrReminderNotDue = errors.New("appointment has no pending reminder")

type ReminderUsecase interface {
	Alerts(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.AlertsResponse, error)
	MarkReminderSent(ctx context.Context, userID, appointmentID uuid.UUID) error
}

type reminderUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	inventoryRepo   repository.InventoryItemRepository
	labCaseRepo     repository.LabCaseRepository
	auditSvc        service.AuditService
	clinicCfg       config.ClinicConfig
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	inventoryRepo repository.InventoryItemRepository,
	labCaseRepo repository.LabCaseRepository,
	auditSvc service.AuditService,
	clinicCfg config.ClinicConfig,
) ReminderUsecase {
	return &reminderUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		inventoryRepo:   inventoryRepo,
		labCaseRepo:     labCaseRepo,
		auditSvc:        auditSvc,
		clinicCfg:       clinicCfg,
	}
}

// Alerts assembles the combined reminder feed: appointments whose reminder
// window has opened, low stock items, and lab cases due soon or overdue.
func (u *reminderUsecase) Alerts(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.AlertsResponse, error) {
	db := u.db.WithContext(ctx)

	appointments, err := u.appointmentRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	items, err := u.inventoryRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list inventory items: %+v", err)
		return nil, err
	}

	labCases, err := u.labCaseRepo.FindAllByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list lab cases: %+v", err)
		return nil, err
	}

	return &dto.AlertsResponse{
		AppointmentReminders: converter.AppointmentsToResponses(service.DueAppointmentReminders(now, appointments)),
		LowStockItems:        converter.InventoryItemsToResponses(service.SelectLowStockItems(items, u.clinicCfg.LowStockDefault)),
		DueLabCases:          converter.LabCasesToResponses(service.SelectDueLabCases(now, labCases, u.clinicCfg.LabCaseDueSoonDays)),
	}, nil
}

// MarkReminderSent acknowledges a reminder exactly once; a second call for
// the same appointment reports ErrReminderNotDue.
func (u *reminderUsecase) MarkReminderSent(ctx context.Context, userID, appointmentID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.appointmentRepo.MarkReminderSent(tx, userID, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to mark reminder sent: %+v", err)
		return err
	}
	if rows == 0 {
		appointment, err := u.appointmentRepo.FindByID(tx, userID, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		return ErrReminderNotDue
	}

	if err := u.auditSvc.LogUpdate(tx, userID, entity.AuditActionReminderSent, "appointment", appointmentID.String(), false, true); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
