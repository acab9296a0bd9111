package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, auditLog *entity.AuditLog) error
	FindByUser(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.AuditLog, error)
}
