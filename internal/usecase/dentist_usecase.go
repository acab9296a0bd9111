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

var ErrDentistNotFound = errors.New("dentist not found")

type DentistUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDentistRequest) (*dto.DentistResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateDentistRequest) (*dto.DentistResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.DentistResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.DentistListResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type dentistUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	dentistRepo repository.DentistRepository
}

func NewDentistUsecase(db *gorm.DB, log *logrus.Logger, dentistRepo repository.DentistRepository) DentistUsecase {
	return &dentistUsecase{
		db:          db,
		log:         log,
		dentistRepo: dentistRepo,
	}
}

func (u *dentistUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDentistRequest) (*dto.DentistResponse, error) {
	dentist := &entity.Dentist{
		UserID:    userID,
		Name:      req.Name,
		Specialty: req.Specialty,
		Color:     req.Color,
	}

	if err := u.dentistRepo.Create(u.db.WithContext(ctx), dentist); err != nil {
		u.log.Warnf("Failed to create dentist: %+v", err)
		return nil, err
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateDentistRequest) (*dto.DentistResponse, error) {
	db := u.db.WithContext(ctx)

	dentist, err := u.dentistRepo.FindByID(db, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	dentist.Name = req.Name
	dentist.Specialty = req.Specialty
	dentist.Color = req.Color

	if err := u.dentistRepo.Update(db, dentist); err != nil {
		u.log.Warnf("Failed to update dentist: %+v", err)
		return nil, err
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.DentistResponse, error) {
	dentist, err := u.dentistRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.DentistListResponse, error) {
	dentists, err := u.dentistRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list dentists: %+v", err)
		return nil, err
	}

	return &dto.DentistListResponse{
		Dentists: converter.DentistsToResponses(dentists),
		Total:    len(dentists),
	}, nil
}

func (u *dentistUsecase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := u.dentistRepo.Delete(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to delete dentist: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrDentistNotFound
	}
	return nil
}
