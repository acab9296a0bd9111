package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type expenseRepository struct{}

func NewExpenseRepository() domainRepo.ExpenseRepository {
	return &expenseRepository{}
}

func (r *expenseRepository) Create(db *gorm.DB, expense *entity.Expense) error {
	return db.Create(expense).Error
}

func (r *expenseRepository) Update(db *gorm.DB, expense *entity.Expense) error {
	return db.Save(expense).Error
}

func (r *expenseRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := db.Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
