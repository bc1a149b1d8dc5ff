package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialAction is the operation that produced a credential event.
type CredentialAction string

const (
	CredentialActionIngest CredentialAction = "ingest"
	CredentialActionRemove CredentialAction = "remove"
)

// CredentialEvent is an audit record for one file inside an ingestion or
// removal call. Every per-file outcome is logged regardless of success.
type CredentialEvent struct {
	ID          uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Sub         string           `json:"sub" gorm:"size:64;not null;index"`
	Action      CredentialAction `json:"action" gorm:"type:varchar(20);not null;index"`
	DocumentURL string           `json:"document_url,omitempty" gorm:"size:512"`
	Status      string           `json:"status" gorm:"type:varchar(20);not null"`
	Detail      string           `json:"detail,omitempty" gorm:"type:text"`
	CreatedAt   time.Time        `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *CredentialEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
