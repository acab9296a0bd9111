package usecase

import (
	"context"
	"errors"

	"github.com/dralafandy/CuraSoft/internal/converter"
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	"github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSupplierNotFound = errors.New("supplier not found")

type SupplierUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.SupplierListResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type supplierUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	supplierRepo repository.SupplierRepository
}

func NewSupplierUsecase(db *gorm.DB, log *logrus.Logger, supplierRepo repository.SupplierRepository) SupplierUsecase {
	return &supplierUsecase{
		db:           db,
		log:          log,
		supplierRepo: supplierRepo,
	}
}

func (u *supplierUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		UserID:        userID,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Type:          entity.SupplierType(req.Type),
	}

	if err := u.supplierRepo.Create(u.db.WithContext(ctx), supplier); err != nil {
		u.log.Warnf("Failed to create supplier: %+v", err)
		return nil, err
	}

	return converter.SupplierToResponse(supplier), nil
}

func (u *supplierUsecase) Update(ctx context.Context, userID, id uuid.UUID, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	db := u.db.WithContext(ctx)

	supplier, err := u.supplierRepo.FindByID(db, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	supplier.Name = req.Name
	supplier.ContactPerson = req.ContactPerson
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.Type = entity.SupplierType(req.Type)

	if err := u.supplierRepo.Update(db, supplier); err != nil {
		u.log.Warnf("Failed to update supplier: %+v", err)
		return nil, err
	}

	return converter.SupplierToResponse(supplier), nil
}

func (u *supplierUsecase) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := u.supplierRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	return converter.SupplierToResponse(supplier), nil
}

func (u *supplierUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.SupplierListResponse, error) {
	suppliers, err := u.supplierRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list suppliers: %+v", err)
		return nil, err
	}

	return &dto.SupplierListResponse{
		Suppliers: converter.SuppliersToResponses(suppliers),
		Total:     len(suppliers),
	}, nil
}

func (u *supplierUsecase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := u.supplierRepo.Delete(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to delete supplier: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
