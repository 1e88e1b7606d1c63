package testutils

import (
	"time"

	"crm-workspace-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "john.doe+" + id.String()[:8] + "@test.com",
		IsEmailVerified: false,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WorkspaceFactory provides methods to create test Workspace data
type WorkspaceFactory struct{}

// NewWorkspaceFactory creates a new WorkspaceFactory
func NewWorkspaceFactory() *WorkspaceFactory {
	return &WorkspaceFactory{}
}

// Create creates an active test Workspace with a unique subdomain
func (f *WorkspaceFactory) Create() *models.Workspace {
	id := uuid.New()
	return &models.Workspace{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DisplayName:      "Test Workspace",
		Subdomain:        "ws-" + id.String()[:8],
		ActivationStatus: models.ActivationStatusActive,
	}
}

// WithStatus sets a custom activation status for the workspace
func (f *WorkspaceFactory) WithStatus(status models.ActivationStatus) *models.Workspace {
	workspace := f.Create()
	workspace.ActivationStatus = status
	return workspace
}

// UserWorkspaceFactory provides methods to create test UserWorkspace data
type UserWorkspaceFactory struct{}

// NewUserWorkspaceFactory creates a new UserWorkspaceFactory
func NewUserWorkspaceFactory() *UserWorkspaceFactory {
	return &UserWorkspaceFactory{}
}

// Create creates a member-role membership of userID in workspaceID
func (f *UserWorkspaceFactory) Create(userID, workspaceID uuid.UUID) *models.UserWorkspace {
	return &models.UserWorkspace{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      userID,
		WorkspaceID: workspaceID,
		Role:        models.WorkspaceRoleMember,
	}
}

// Admin creates an admin membership of userID in workspaceID
func (f *UserWorkspaceFactory) Admin(userID, workspaceID uuid.UUID) *models.UserWorkspace {
	uw := f.Create(userID, workspaceID)
	uw.Role = models.WorkspaceRoleAdmin
	return uw
}

// WorkspaceMemberFactory provides methods to create test WorkspaceMember data
type WorkspaceMemberFactory struct{}

// NewWorkspaceMemberFactory creates a new WorkspaceMemberFactory
func NewWorkspaceMemberFactory() *WorkspaceMemberFactory {
	return &WorkspaceMemberFactory{}
}

// Create creates the workspace profile of userID in workspaceID
func (f *WorkspaceMemberFactory) Create(userID, workspaceID uuid.UUID) *models.WorkspaceMember {
	return &models.WorkspaceMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID: workspaceID,
		UserID:      userID,
		FirstName:   "John",
		LastName:    "Doe",
		UserEmail:   "john.doe@test.com",
		Locale:      "en",
	}
}

// FromUser creates the workspace profile copying name and email from user
func (f *WorkspaceMemberFactory) FromUser(user *models.User, workspaceID uuid.UUID) *models.WorkspaceMember {
	member := f.Create(user.ID, workspaceID)
	member.FirstName = user.FirstName
	member.LastName = user.LastName
	member.UserEmail = user.Email
	return member
}

// FactorySet provides easy access to all factories
type FactorySet struct {
	User            *UserFactory
	Workspace       *WorkspaceFactory
	UserWorkspace   *UserWorkspaceFactory
	WorkspaceMember *WorkspaceMemberFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:            NewUserFactory(),
		Workspace:       NewWorkspaceFactory(),
		UserWorkspace:   NewUserWorkspaceFactory(),
		WorkspaceMember: NewWorkspaceMemberFactory(),
	}
}
