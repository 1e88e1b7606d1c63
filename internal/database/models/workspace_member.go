package models

import (
	"github.com/google/uuid"
)

// WorkspaceMember is the workspace-scoped profile of a user. It is what other
// records in the workspace (notes, tasks, assignments) point at.
type WorkspaceMember struct {
	BaseModel
	WorkspaceID uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	FirstName   string    `json:"first_name" gorm:"size:100"`
	LastName    string    `json:"last_name" gorm:"size:100"`
	UserEmail   string    `json:"user_email" gorm:"size:255"`
	Locale      string    `json:"locale" gorm:"size:10;default:'en'"`
}

// TableName returns the table name for WorkspaceMember
func (WorkspaceMember) TableName() string {
	return "workspace_members"
}
