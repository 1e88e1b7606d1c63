package models

// ActivationStatus is the lifecycle state of a workspace
type ActivationStatus string

const (
	ActivationStatusActive    ActivationStatus = "active"
	ActivationStatusSuspended ActivationStatus = "suspended"
	ActivationStatusDeleted   ActivationStatus = "deleted"
)

// IsValid checks if the ActivationStatus is valid
func (s ActivationStatus) IsValid() bool {
	switch s {
	case ActivationStatusActive, ActivationStatusSuspended, ActivationStatusDeleted:
		return true
	}
	return false
}

// Workspace is the tenant boundary
type Workspace struct {
	BaseModel
	DisplayName      string           `json:"display_name" gorm:"size:200"`
	Subdomain        string           `json:"subdomain" gorm:"uniqueIndex:idx_workspaces_subdomain_active,where:deleted_at IS NULL;not null;size:100" validate:"required,max=100"`
	ActivationStatus ActivationStatus `json:"activation_status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	UserWorkspaces   []UserWorkspace   `json:"user_workspaces,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	WorkspaceMembers []WorkspaceMember `json:"workspace_members,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}

// IsActiveOrSuspended reports whether member data of the workspace may be read
func (w *Workspace) IsActiveOrSuspended() bool {
	return w.ActivationStatus == ActivationStatusActive || w.ActivationStatus == ActivationStatusSuspended
}
