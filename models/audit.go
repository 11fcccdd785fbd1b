package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminAudit is one row per privileged maintenance operation. Detail
// holds the operation-specific payload (patched fields, dependent
// counts) as JSON.
type AdminAudit struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Actor     string         `gorm:"size:80;not null" json:"actor"`
	Action    string         `gorm:"size:40;not null" json:"action"`
	Target    string         `gorm:"size:100;not null" json:"target"`
	Detail    datatypes.JSON `gorm:"type:jsonb" json:"detail"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (a *AdminAudit) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
