package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventLog is one persisted record-level event, kept for audit
type EventLog struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WorkspaceID uuid.UUID       `json:"workspace_id" gorm:"type:uuid;not null;index"`
	ObjectName  string          `json:"object_name" gorm:"size:100;not null"`
	Action      string          `json:"action" gorm:"size:20;not null"`
	RecordID    uuid.UUID       `json:"record_id" gorm:"type:uuid;not null"`
	Payload     json.RawMessage `json:"payload" gorm:"type:jsonb"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
}

// TableName returns the table name for EventLog
func (EventLog) TableName() string {
	return "event_logs"
}

// BeforeCreate sets the UUID if not already set
func (e *EventLog) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
