package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SyncEvent struct {
	ID            string          `json:"id" gorm:"type:varchar(36);primaryKey"`
	Direction     SyncDirection   `json:"direction" gorm:"not null;index"`
	ProductID     int64           `json:"product_id" gorm:"index"`
	Status        SyncEventStatus `json:"status" gorm:"not null;index"`
	Stage         string          `json:"stage"`
	Action        string          `json:"action"`
	Row           int             `json:"row"`
	Message       string          `json:"message"`
	SkippedFields pq.StringArray  `json:"skipped_fields" gorm:"type:text"`
	CreatedAt     time.Time       `json:"created_at"`
}

type SyncDirection string

const (
	SyncDirectionOutbound SyncDirection = "outbound"
	SyncDirectionInbound  SyncDirection = "inbound"
)

type SyncEventStatus string

const (
	SyncEventStatusSynced  SyncEventStatus = "synced"
	SyncEventStatusSkipped SyncEventStatus = "skipped"
	SyncEventStatusFailed  SyncEventStatus = "failed"
)

func (e *SyncEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
