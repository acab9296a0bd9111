package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(db *gorm.DB, expense *entity.Expense) error
	Update(db *gorm.DB, expense *entity.Expense) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Expense, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Expense, error)
}
