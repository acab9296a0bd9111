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
	ErrExpenseNotFound       = errors.New("expense not found")
	ErrPaymentExceedsBalance = errors.New("payment exceeds invoice outstanding balance")
)

type ExpenseUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.ExpenseResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.ExpenseListResponse, error)
}

type expenseUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	expenseRepo repository.ExpenseRepository
	invoiceRepo repository.SupplierInvoiceRepository
	auditSvc    service.AuditService
}

func NewExpenseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	expenseRepo repository.ExpenseRepository,
	invoiceRepo repository.SupplierInvoiceRepository,
	auditSvc service.AuditService,
) ExpenseUsecase {
	return &expenseUsecase{
		db:          db,
		log:         log,
		expenseRepo: expenseRepo,
		invoiceRepo: invoiceRepo,
		auditSvc:    auditSvc,
	}
}

// Create records the expense and, when it references a supplier invoice,
// applies the amount as a payment on that invoice in the same transaction.
func (u *expenseUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var invoice *entity.SupplierInvoice
	if req.SupplierInvoiceID != nil {
		invoice, err = u.invoiceRepo.FindByID(tx, userID, *req.SupplierInvoiceID)
		if err != nil {
			u.log.Warnf("Failed to find supplier invoice: %+v", err)
			return nil, err
		}
		if invoice == nil {
			return nil, ErrSupplierInvoiceNotFound
		}
		if req.Amount.GreaterThan(invoice.Outstanding()) {
			return nil, ErrPaymentExceedsBalance
		}
	}

	expense := &entity.Expense{
		UserID:            userID,
		Date:              date,
		Description:       req.Description,
		Amount:            req.Amount,
		Category:          entity.ExpenseCategory(req.Category),
		SupplierID:        req.SupplierID,
		SupplierInvoiceID: req.SupplierInvoiceID,
	}

	if err := u.expenseRepo.Create(tx, expense); err != nil {
		u.log.Warnf("Failed to create expense: %+v", err)
		return nil, err
	}

	if invoice != nil {
		applyInvoicePayment(invoice, expense.ID, expense.Amount, expense.Date)
		if err := u.invoiceRepo.Update(tx, invoice); err != nil {
			u.log.Warnf("Failed to update supplier invoice: %+v", err)
			return nil, err
		}
		if err := u.auditSvc.LogUpdate(tx, userID, entity.AuditActionInvoicePaymentApply, "supplier_invoice", invoice.ID.String(), nil, invoice.Payments); err != nil {
			return nil, err
		}
	}

	if err := u.auditSvc.LogCreate(tx, userID, entity.AuditActionExpenseCreate, "expense", expense.ID.String(), expense); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ExpenseToResponse(expense), nil
}

func (u *expenseUsecase) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.ExpenseResponse, error) {
	expense, err := u.expenseRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find expense: %+v", err)
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	return converter.ExpenseToResponse(expense), nil
}

func (u *expenseUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.ExpenseListResponse, error) {
	expenses, err := u.expenseRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list expenses: %+v", err)
		return nil, err
	}

	return &dto.ExpenseListResponse{
		Expenses: converter.ExpensesToResponses(expenses),
		Total:    len(expenses),
	}, nil
}
