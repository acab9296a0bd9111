package usecase

import (
	"context"
	"errors"
	"fmt"
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

var ErrSupplierInvoiceNotFound = errors.New("supplier invoice not found")

type SupplierInvoiceUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSupplierInvoiceRequest) (*dto.SupplierInvoiceResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.SupplierInvoiceResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.SupplierInvoiceListResponse, error)
	ListBySupplier(ctx context.Context, userID, supplierID uuid.UUID) (*dto.SupplierInvoiceListResponse, error)
	PayRemaining(ctx context.Context, userID, id uuid.UUID) (*dto.SupplierInvoiceResponse, error)
}

type supplierInvoiceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	invoiceRepo  repository.SupplierInvoiceRepository
	supplierRepo repository.SupplierRepository
	expenseRepo  repository.ExpenseRepository
	auditSvc     service.AuditService
}

func NewSupplierInvoiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invoiceRepo repository.SupplierInvoiceRepository,
	supplierRepo repository.SupplierRepository,
	expenseRepo repository.ExpenseRepository,
	auditSvc service.AuditService,
) SupplierInvoiceUsecase {
	return &supplierInvoiceUsecase{
		db:           db,
		log:          log,
		invoiceRepo:  invoiceRepo,
		supplierRepo: supplierRepo,
		expenseRepo:  expenseRepo,
		auditSvc:     auditSvc,
	}
}

func (u *supplierInvoiceUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSupplierInvoiceRequest) (*dto.SupplierInvoiceResponse, error) {
	db := u.db.WithContext(ctx)

	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseDatePtr(req.DueDate)
	if err != nil {
		return nil, err
	}

	supplier, err := u.supplierRepo.FindByID(db, userID, req.SupplierID)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	items := make(entity.InvoiceLineItems, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.InvoiceLineItem{
			Description: item.Description,
			Amount:      item.Amount,
		}
	}

	invoice := &entity.SupplierInvoice{
		UserID:        userID,
		SupplierID:    req.SupplierID,
		InvoiceNumber: req.InvoiceNumber,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		Amount:        req.Amount,
		Status:        entity.SupplierInvoiceStatusUnpaid,
		Items:         items,
	}

	if err := u.invoiceRepo.Create(db, invoice); err != nil {
		u.log.Warnf("Failed to create supplier invoice: %+v", err)
		return nil, err
	}

	return converter.SupplierInvoiceToResponse(invoice), nil
}

func (u *supplierInvoiceUsecase) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.SupplierInvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find supplier invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrSupplierInvoiceNotFound
	}

	return converter.SupplierInvoiceToResponse(invoice), nil
}

func (u *supplierInvoiceUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.SupplierInvoiceListResponse, error) {
	invoices, err := u.invoiceRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list supplier invoices: %+v", err)
		return nil, err
	}

	return &dto.SupplierInvoiceListResponse{
		Invoices: converter.SupplierInvoicesToResponses(invoices),
		Total:    len(invoices),
	}, nil
}

func (u *supplierInvoiceUsecase) ListBySupplier(ctx context.Context, userID, supplierID uuid.UUID) (*dto.SupplierInvoiceListResponse, error) {
	invoices, err := u.invoiceRepo.FindBySupplier(u.db.WithContext(ctx), userID, supplierID)
	if err != nil {
		u.log.Warnf("Failed to list supplier invoices by supplier: %+v", err)
		return nil, err
	}

	return &dto.SupplierInvoiceListResponse{
		Invoices: converter.SupplierInvoicesToResponses(invoices),
		Total:    len(invoices),
	}, nil
}

// PayRemaining settles the invoice's outstanding balance by creating a
// SUPPLIES expense dated today and applying it as a payment. Already-settled
// invoices are returned unchanged.
func (u *supplierInvoiceUsecase) PayRemaining(ctx context.Context, userID, id uuid.UUID) (*dto.SupplierInvoiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.invoiceRepo.FindByID(tx, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find supplier invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrSupplierInvoiceNotFound
	}

	outstanding := invoice.Outstanding()
	if !outstanding.IsPositive() {
		return converter.SupplierInvoiceToResponse(invoice), nil
	}

	today := service.StartOfDay(time.Now())

	expense := &entity.Expense{
		UserID:            userID,
		Date:              today,
		Description:       fmt.Sprintf("Payment for supplier invoice %s", invoice.InvoiceNumber),
		Amount:            outstanding,
		Category:          entity.ExpenseCategorySupplies,
		SupplierID:        &invoice.SupplierID,
		SupplierInvoiceID: &invoice.ID,
	}

	if err := u.expenseRepo.Create(tx, expense); err != nil {
		u.log.Warnf("Failed to create expense: %+v", err)
		return nil, err
	}

	applyInvoicePayment(invoice, expense.ID, outstanding, today)

	if err := u.invoiceRepo.Update(tx, invoice); err != nil {
		u.log.Warnf("Failed to update supplier invoice: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.LogUpdate(tx, userID, entity.AuditActionInvoicePaymentApply, "supplier_invoice", invoice.ID.String(), nil, invoice.Payments); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SupplierInvoiceToResponse(invoice), nil
}
