package usecase

import (
	"context"

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

type InventoryUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.InventoryItemResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.InventoryListResponse, error)
	ListLowStock(ctx context.Context, userID uuid.UUID) (*dto.InventoryListResponse, error)
	AdjustStock(ctx context.Context, userID, id uuid.UUID, req *dto.AdjustStockRequest) (*dto.InventoryItemResponse, error)
}

type inventoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	inventoryRepo repository.InventoryItemRepository
	clinicCfg     config.ClinicConfig
}

func NewInventoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	inventoryRepo repository.InventoryItemRepository,
	clinicCfg config.ClinicConfig,
) InventoryUsecase {
	return &inventoryUsecase{
		db:            db,
		log:           log,
		inventoryRepo: inventoryRepo,
		clinicCfg:     clinicCfg,
	}
}

func (u *inventoryUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	expiryDate, err := parseDatePtr(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	item := &entity.InventoryItem{
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		SupplierID:    req.SupplierID,
		CurrentStock:  req.CurrentStock,
		UnitCost:      req.UnitCost,
		MinStockLevel: req.MinStockLevel,
		ExpiryDate:    expiryDate,
	}

	if err := u.inventoryRepo.Create(u.db.WithContext(ctx), item); err != nil {
		u.log.Warnf("Failed to create inventory item: %+v", err)
		return nil, err
	}

	return converter.InventoryItemToResponse(item), nil
}

func (u *inventoryUsecase) Update(ctx context.Context, userID, id uuid.UUID, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	db := u.db.WithContext(ctx)

	item, err := u.inventoryRepo.FindByID(db, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find inventory item: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrInventoryItemNotFound
	}

	expiryDate, err := parseDatePtr(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Description = req.Description
	item.SupplierID = req.SupplierID
	item.CurrentStock = req.CurrentStock
	item.UnitCost = req.UnitCost
	item.MinStockLevel = req.MinStockLevel
	item.ExpiryDate = expiryDate

	if err := u.inventoryRepo.Update(db, item); err != nil {
		u.log.Warnf("Failed to update inventory item: %+v", err)
		return nil, err
	}

	return converter.InventoryItemToResponse(item), nil
}

func (u *inventoryUsecase) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.InventoryItemResponse, error) {
	item, err := u.inventoryRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find inventory item: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrInventoryItemNotFound
	}

	return converter.InventoryItemToResponse(item), nil
}

func (u *inventoryUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.InventoryListResponse, error) {
	items, err := u.inventoryRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list inventory items: %+v", err)
		return nil, err
	}

	return &dto.InventoryListResponse{
		Items: converter.InventoryItemsToResponses(items),
		Total: len(items),
	}, nil
}

func (u *inventoryUsecase) ListLowStock(ctx context.Context, userID uuid.UUID) (*dto.InventoryListResponse, error) {
	items, err := u.inventoryRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list inventory items: %+v", err)
		return nil, err
	}

	low := service.SelectLowStockItems(items, u.clinicCfg.LowStockDefault)
	return &dto.InventoryListResponse{
		Items: converter.InventoryItemsToResponses(low),
		Total: len(low),
	}, nil
}

func (u *inventoryUsecase) AdjustStock(ctx context.Context, userID, id uuid.UUID, req *dto.AdjustStockRequest) (*dto.InventoryItemResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.inventoryRepo.FindByID(tx, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find inventory item: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrInventoryItemNotFound
	}
	if item.CurrentStock+req.Delta < 0 {
		return nil, ErrInsufficientStock
	}

	rows, err := u.inventoryRepo.AdjustStock(tx, userID, id, req.Delta)
	if err != nil {
		u.log.Warnf("Failed to adjust stock: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInventoryItemNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	item.CurrentStock += req.Delta
	return converter.InventoryItemToResponse(item), nil
}
