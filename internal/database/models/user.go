package models

import (
	"github.com/google/uuid"
)

// User is a person with a login. Its workspace memberships live in user_workspaces
// and outlive nothing: deleting a user does not cascade through them.
type User struct {
	BaseModel
	FirstName          string     `json:"first_name" gorm:"not null;size:100" validate:"max=100"`
	LastName           string     `json:"last_name" gorm:"not null;size:100" validate:"max=100"`
	Email              string     `json:"email" gorm:"uniqueIndex:idx_users_email_active,where:deleted_at IS NULL;not null;size:255" validate:"required,email,max=255"`
	IsEmailVerified    bool       `json:"is_email_verified" gorm:"not null;default:false"`
	DefaultWorkspaceID *uuid.UUID `json:"default_workspace_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Workspaces []UserWorkspace `json:"workspaces,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
