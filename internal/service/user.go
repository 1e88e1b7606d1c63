package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"crm-workspace-backend/internal/database/models"
	apperrors "crm-workspace-backend/internal/errors"
	"crm-workspace-backend/internal/events"
	"crm-workspace-backend/internal/logger"
	"crm-workspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// UserService handles business logic for users and their workspace memberships
type UserService struct {
	userRepo             repository.UserRepositoryInterface
	memberRepo           repository.WorkspaceMemberRepositoryInterface
	userWorkspaceService UserWorkspaceServiceInterface
	userRoleService      UserRoleServiceInterface
	workspaceService     WorkspaceServiceInterface
	notifier             events.Notifier
	validator            *validator.Validate
	deletionConcurrency  int
}

// NewUserService creates a new user service. deletionConcurrency bounds how many
// workspaces DeleteUser processes at once; values below one mean no bound.
func NewUserService(
	userRepo repository.UserRepositoryInterface,
	memberRepo repository.WorkspaceMemberRepositoryInterface,
	userWorkspaceService UserWorkspaceServiceInterface,
	userRoleService UserRoleServiceInterface,
	workspaceService WorkspaceServiceInterface,
	notifier events.Notifier,
	validator *validator.Validate,
	deletionConcurrency int,
) *UserService {
	if notifier == nil {
		notifier = events.NopNotifier{}
	}
	return &UserService{
		userRepo:             userRepo,
		memberRepo:           memberRepo,
		userWorkspaceService: userWorkspaceService,
		userRoleService:      userRoleService,
		workspaceService:     workspaceService,
		notifier:             notifier,
		validator:            validator,
		deletionConcurrency:  deletionConcurrency,
	}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, userLookupError(err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email address
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if err := s.validator.Var(email, "required,email,max=255"); err != nil {
		return nil, apperrors.NewValidationError("email", "a valid email address is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, userLookupError(err)
	}
	return user, nil
}

// MarkEmailAsVerified flags the user's email as verified and returns the saved user
func (s *UserService) MarkEmailAsVerified(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, userLookupError(err)
	}

	user.IsEmailVerified = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// HasUserAccessToWorkspace fails with ErrWorkspaceAccessForbidden unless the user
// holds a live membership of the workspace
func (s *UserService) HasUserAccessToWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error {
	_, err := s.userRepo.GetByIDInWorkspace(ctx, userID, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkspaceAccessForbidden
		}
		return fmt.Errorf("failed to check workspace access: %w", err)
	}
	return nil
}

// LoadWorkspaceMember returns the workspace profile of user, or nil when the
// workspace is neither active nor suspended
func (s *UserService) LoadWorkspaceMember(ctx context.Context, user *models.User, workspace *models.Workspace) (*models.WorkspaceMember, error) {
	if !workspace.IsActiveOrSuspended() {
		return nil, nil
	}

	member, err := s.memberRepo.FindByUserID(ctx, workspace.ID, user.ID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load workspace member: %w", err)
	}
	return member, nil
}

// LoadWorkspaceMembers returns the members of a workspace, soft-deleted ones included
// when includeDeleted is set. Workspaces that are neither active nor suspended have none.
func (s *UserService) LoadWorkspaceMembers(ctx context.Context, workspace *models.Workspace, includeDeleted bool) ([]models.WorkspaceMember, error) {
	if !workspace.IsActiveOrSuspended() {
		return []models.WorkspaceMember{}, nil
	}

	members, err := s.memberRepo.Find(ctx, workspace.ID, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace members: %w", err)
	}
	return members, nil
}

// LoadDeletedWorkspaceMembersOnly returns only the soft-deleted members of a workspace
func (s *UserService) LoadDeletedWorkspaceMembersOnly(ctx context.Context, workspace *models.Workspace) ([]models.WorkspaceMember, error) {
	if !workspace.IsActiveOrSuspended() {
		return []models.WorkspaceMember{}, nil
	}

	members, err := s.memberRepo.FindDeletedOnly(ctx, workspace.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deleted workspace members: %w", err)
	}
	return members, nil
}

// RemoveUserFromWorkspace removes the user's member record from the workspace and revokes
// their role in it.
//
// When other members remain, the user must not be the workspace's only admin and a
// workspaceMember.deleted event carrying the removed record is emitted. When the user
// was the last member the whole workspace is torn down instead and no event is emitted here.
func (s *UserService) RemoveUserFromWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id":      userID,
		"workspace_id": workspaceID,
	})

	members, err := s.memberRepo.Find(ctx, workspaceID, false)
	if err != nil {
		return fmt.Errorf("failed to load workspace members: %w", err)
	}

	if len(members) > 1 {
		if err := s.ensureNotUniqueAdmin(ctx, userID, workspaceID); err != nil {
			return err
		}
	}

	member := findMember(members, userID)
	if member == nil {
		return apperrors.ErrWorkspaceMemberNotFound
	}

	if err := s.memberRepo.DeleteByUserID(ctx, workspaceID, userID); err != nil {
		return fmt.Errorf("failed to delete workspace member: %w", err)
	}
	if err := s.userWorkspaceService.RemoveUserWorkspace(ctx, userID, workspaceID); err != nil {
		return err
	}

	if len(members) == 1 {
		log.Info("Removed last workspace member, deleting workspace")
		return s.workspaceService.DeleteWorkspace(ctx, workspaceID)
	}

	log.Info("Removed user from workspace")
	s.emitMemberDeleted(ctx, *member)

	return nil
}

// DeactivateWorkspaceMember soft-deletes the user's member record and revokes their role.
// The record stays listed as deleted until purged. The workspace's last member cannot be
// deactivated and the only admin of a workspace cannot be deactivated either.
func (s *UserService) DeactivateWorkspaceMember(ctx context.Context, userID, workspaceID uuid.UUID) error {
	members, err := s.memberRepo.Find(ctx, workspaceID, false)
	if err != nil {
		return fmt.Errorf("failed to load workspace members: %w", err)
	}

	member := findMember(members, userID)
	if member == nil {
		return apperrors.ErrWorkspaceMemberNotFound
	}
	if len(members) == 1 {
		return apperrors.ErrCannotDeactivateLastMember
	}
	if err := s.ensureNotUniqueAdmin(ctx, userID, workspaceID); err != nil {
		return err
	}

	if err := s.memberRepo.SoftDeleteByUserID(ctx, workspaceID, userID); err != nil {
		return fmt.Errorf("failed to deactivate workspace member: %w", err)
	}
	if err := s.userWorkspaceService.RemoveUserWorkspace(ctx, userID, workspaceID); err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id":      userID,
		"workspace_id": workspaceID,
	}).Info("Deactivated workspace member")
	s.emitMemberDeleted(ctx, *member)

	return nil
}

func (s *UserService) ensureNotUniqueAdmin(ctx context.Context, userID, workspaceID uuid.UUID) error {
	userWorkspace, err := s.userWorkspaceService.GetUserWorkspaceForUser(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	return s.userRoleService.ValidateUserWorkspaceIsNotUniqueAdmin(ctx, workspaceID, userWorkspace.ID)
}

func (s *UserService) emitMemberDeleted(ctx context.Context, member models.WorkspaceMember) {
	s.notifier.Emit(ctx, events.DatabaseBatchEvent{
		ObjectName:  events.ObjectWorkspaceMember,
		Action:      events.ActionDeleted,
		WorkspaceID: member.WorkspaceID,
		Events: []events.RecordEvent{{
			RecordID:   member.ID,
			Properties: events.Properties{Before: member},
		}},
	})
}

func findMember(members []models.WorkspaceMember, userID uuid.UUID) *models.WorkspaceMember {
	for i := range members {
		if members[i].UserID == userID {
			return &members[i]
		}
	}
	return nil
}

// DeleteUser removes the user from every workspace it belongs to and returns the user
// as it was loaded before the removals, memberships included.
//
// Every workspace is attempted even when others fail. If any removal was refused because
// the user is the only admin of a workspace with other members, ErrCannotDeleteLastAdminUser
// is returned; otherwise all failures are joined.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByIDWithWorkspaces(ctx, id)
	if err != nil {
		return nil, userLookupError(err)
	}

	ctx = logger.ContextWithUser(ctx, id.String())

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	if s.deletionConcurrency > 0 {
		g.SetLimit(s.deletionConcurrency)
	}

	for _, userWorkspace := range user.Workspaces {
		workspaceID := userWorkspace.WorkspaceID
		g.Go(func() error {
			if err := s.RemoveUserFromWorkspace(ctx, id, workspaceID); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("workspace %s: %w", workspaceID, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) == 0 {
		logger.WithContext(ctx).WithField("workspaces", len(user.Workspaces)).Info("User removed from all workspaces")
		return user, nil
	}

	for _, err := range errs {
		if errors.Is(err, apperrors.ErrCannotUnassignLastAdmin) {
			logger.WithContext(ctx).WithError(err).Warn("User is the last admin of a workspace")
			return nil, apperrors.ErrCannotDeleteLastAdminUser
		}
	}

	return nil, errors.Join(errs...)
}

func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrUserNotFound
	}
	return fmt.Errorf("failed to get user: %w", err)
}
