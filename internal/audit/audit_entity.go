package audit

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action     string    `gorm:"type:varchar(50);not null;index"`
	Actor      string    `gorm:"type:varchar(100)"`
	EntityType string    `gorm:"type:varchar(50);not null"`
	EntityID   string    `gorm:"type:varchar(64);index"`
	Detail     string    `gorm:"type:text"`
	RequestID  string    `gorm:"type:varchar(64)"`
	CreatedAt  time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
