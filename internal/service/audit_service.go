package service

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	"github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes the audit trail for financially-sensitive commands.
// Entries are written inside the caller's transaction so a rolled-back
// command leaves no trail.
type AuditService interface {
	LogCreate(tx *gorm.DB, userID uuid.UUID, action, entityName, entityID string, newValue interface{}) error
	LogUpdate(tx *gorm.DB, userID uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(tx *gorm.DB, userID uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	return s.write(tx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"new_value": newValue,
	})
}

func (s *auditService) LogUpdate(tx *gorm.DB, userID uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	return s.write(tx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) write(tx *gorm.DB, userID uuid.UUID, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		UserID:   &userID,
		Action:   action,
		Metadata: metadata,
	}
	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}
	return nil
}
