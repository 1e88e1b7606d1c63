package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "crm-workspace-backend/internal/errors"
	"crm-workspace-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRoleService enforces the role rules on workspace memberships
type UserRoleService struct {
	userWorkspaceRepo repository.UserWorkspaceRepositoryInterface
}

// NewUserRoleService creates a new user role service
func NewUserRoleService(userWorkspaceRepo repository.UserWorkspaceRepositoryInterface) *UserRoleService {
	return &UserRoleService{
		userWorkspaceRepo: userWorkspaceRepo,
	}
}

// ValidateUserWorkspaceIsNotUniqueAdmin fails with ErrCannotUnassignLastAdmin when the
// membership is the only live admin of the workspace. Non-admin memberships always pass.
func (s *UserRoleService) ValidateUserWorkspaceIsNotUniqueAdmin(ctx context.Context, workspaceID, userWorkspaceID uuid.UUID) error {
	userWorkspace, err := s.userWorkspaceRepo.GetByID(ctx, userWorkspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserWorkspaceNotFound
		}
		return fmt.Errorf("failed to load user workspace: %w", err)
	}
	if userWorkspace.WorkspaceID != workspaceID {
		return apperrors.ErrUserWorkspaceNotFound
	}

	if !userWorkspace.IsAdmin() {
		return nil
	}

	otherAdmins, err := s.userWorkspaceRepo.CountAdminsExcluding(ctx, workspaceID, userWorkspaceID)
	if err != nil {
		return fmt.Errorf("failed to count workspace admins: %w", err)
	}
	if otherAdmins == 0 {
		return apperrors.ErrCannotUnassignLastAdmin
	}

	return nil
}
