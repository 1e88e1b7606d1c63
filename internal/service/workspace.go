package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"crm-workspace-backend/internal/database/models"
	apperrors "crm-workspace-backend/internal/errors"
	"crm-workspace-backend/internal/events"
	"crm-workspace-backend/internal/logger"
	"crm-workspace-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxEventLogLimit     = 100
	defaultEventLogLimit = 20
)

// WorkspaceService handles the lifecycle of workspaces
type WorkspaceService struct {
	workspaceRepo repository.WorkspaceRepositoryInterface
	eventLogRepo  repository.EventLogRepositoryInterface
	notifier      events.Notifier

	mu        sync.RWMutex
	listeners []WorkspaceDeletionListener
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(workspaceRepo repository.WorkspaceRepositoryInterface, eventLogRepo repository.EventLogRepositoryInterface, notifier events.Notifier) *WorkspaceService {
	if notifier == nil {
		notifier = events.NopNotifier{}
	}
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		eventLogRepo:  eventLogRepo,
		notifier:      notifier,
	}
}

// AddWorkspaceDeletionListener registers a hook run before every workspace deletion
func (s *WorkspaceService) AddWorkspaceDeletionListener(listener WorkspaceDeletionListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// GetWorkspace retrieves a workspace by ID
func (s *WorkspaceService) GetWorkspace(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	workspace, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return workspace, nil
}

// SetActivationStatus moves a workspace to another lifecycle state
func (s *WorkspaceService) SetActivationStatus(ctx context.Context, id uuid.UUID, status models.ActivationStatus) (*models.Workspace, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidActivationStatus
	}

	before, err := s.GetWorkspace(ctx, id)
	if err != nil {
		return nil, err
	}
	if before.ActivationStatus == status {
		return before, nil
	}

	if err := s.workspaceRepo.UpdateActivationStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to update workspace status: %w", err)
	}

	after := *before
	after.ActivationStatus = status

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"workspace_id": id,
		"from":         before.ActivationStatus,
		"to":           status,
	}).Info("Workspace activation status changed")

	s.notifier.Emit(ctx, events.DatabaseBatchEvent{
		ObjectName:  events.ObjectWorkspace,
		Action:      events.ActionUpdated,
		WorkspaceID: id,
		Events: []events.RecordEvent{{
			RecordID:   id,
			Properties: events.Properties{Before: before, After: &after},
		}},
	})

	return &after, nil
}

// DeleteWorkspace tears a workspace down together with its memberships and members.
// Deleting a workspace that no longer exists succeeds without doing anything.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, id uuid.UUID) error {
	log := logger.WithContext(ctx).WithField("workspace_id", id)

	workspace, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("Workspace already deleted")
			return nil
		}
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	s.mu.RLock()
	listeners := append([]WorkspaceDeletionListener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener.OnBeforeWorkspaceDeletion(ctx, id); err != nil {
			return fmt.Errorf("workspace deletion listener failed: %w", err)
		}
	}

	if err := s.workspaceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	log.Info("Workspace deleted")

	s.notifier.Emit(ctx, events.DatabaseBatchEvent{
		ObjectName:  events.ObjectWorkspace,
		Action:      events.ActionDestroyed,
		WorkspaceID: id,
		Events: []events.RecordEvent{{
			RecordID:   id,
			Properties: events.Properties{Before: workspace},
		}},
	})

	return nil
}

// GetEventLogs returns the persisted events of a workspace, newest first.
// A zero limit selects the default page size.
func (s *WorkspaceService) GetEventLogs(ctx context.Context, id uuid.UUID, limit, offset int) (*EventLogListResponse, error) {
	if limit == 0 {
		limit = defaultEventLogLimit
	}
	if limit < 0 || limit > maxEventLogLimit || offset < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	entries, total, err := s.eventLogRepo.GetByWorkspaceID(ctx, id, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get event logs: %w", err)
	}

	resp := &EventLogListResponse{
		Events: make([]EventLogResponse, len(entries)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i, entry := range entries {
		resp.Events[i] = EventLogResponse{
			ID:         entry.ID,
			ObjectName: entry.ObjectName,
			Action:     entry.Action,
			RecordID:   entry.RecordID,
			Payload:    entry.Payload,
			CreatedAt:  entry.CreatedAt,
		}
	}
	return resp, nil
}
