package service

import (
	"context"
	"errors"
	"fmt"

	"crm-workspace-backend/internal/database/models"
	apperrors "crm-workspace-backend/internal/errors"
	"crm-workspace-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserWorkspaceService handles business logic for user-workspace memberships
type UserWorkspaceService struct {
	repo repository.UserWorkspaceRepositoryInterface
}

// NewUserWorkspaceService creates a new user workspace service
func NewUserWorkspaceService(repo repository.UserWorkspaceRepositoryInterface) *UserWorkspaceService {
	return &UserWorkspaceService{repo: repo}
}

// GetUserWorkspaceForUser returns the live membership of a user in a workspace
func (s *UserWorkspaceService) GetUserWorkspaceForUser(ctx context.Context, userID, workspaceID uuid.UUID) (*models.UserWorkspace, error) {
	userWorkspace, err := s.repo.GetByUserAndWorkspace(ctx, userID, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get user workspace: %w", err)
	}
	return userWorkspace, nil
}

// RemoveUserWorkspace revokes the user's role in a workspace. A user without one is left as is.
func (s *UserWorkspaceService) RemoveUserWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error {
	if err := s.repo.DeleteByUserAndWorkspace(ctx, userID, workspaceID); err != nil {
		return fmt.Errorf("failed to delete user workspace: %w", err)
	}
	return nil
}
