package handlers

import (
	"net/http"
	"strconv"

	"crm-workspace-backend/internal/database/models"
	apperrors "crm-workspace-backend/internal/errors"
	"crm-workspace-backend/internal/logger"
	"crm-workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkspaceHandler handles HTTP requests for workspaces and their members
type WorkspaceHandler struct {
	workspaceService service.WorkspaceServiceInterface
	userService      service.UserServiceInterface
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceService service.WorkspaceServiceInterface, userService service.UserServiceInterface) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		userService:      userService,
	}
}

// UpdateStatusRequest is the body of PATCH /workspaces/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"suspended"`
}

// GetWorkspace handles GET /workspaces/:id
// @Summary Get workspace by ID
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID (UUID)"
// @Success 200 {object} service.WorkspaceResponse "Successfully retrieved workspace"
// @Failure 400 {object} ErrorResponse "Invalid workspace ID"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Router /workspaces/{id} [get]
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.GetWorkspace(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.NewWorkspaceResponse(workspace))
}

// DeleteWorkspace handles DELETE /workspaces/:id
// @Summary Delete workspace
// @Description Delete a workspace with all its members. Deleting an unknown workspace succeeds.
// @Tags workspaces
// @Param id path string true "Workspace ID (UUID)"
// @Success 204 "Workspace deleted"
// @Failure 400 {object} ErrorResponse "Invalid workspace ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /workspaces/{id} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateStatus handles PATCH /workspaces/:id/status
// @Summary Change workspace activation status
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID (UUID)"
// @Param body body UpdateStatusRequest true "New status: active, suspended or deleted"
// @Success 200 {object} service.WorkspaceResponse "Updated workspace"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Router /workspaces/{id}/status [patch]
func (h *WorkspaceHandler) UpdateStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := h.workspaceService.SetActivationStatus(c.Request.Context(), id, models.ActivationStatus(body.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.NewWorkspaceResponse(workspace))
}

// ListMembers handles GET /workspaces/:id/members
// @Summary List workspace members
// @Description Workspaces that are neither active nor suspended have no members to show
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID (UUID)"
// @Param include_deleted query bool false "Include soft-deleted members"
// @Param deleted_only query bool false "Only soft-deleted members"
// @Success 200 {object} service.WorkspaceMembersResponse "Members"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Router /workspaces/{id}/members [get]
func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	includeDeleted, err := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "include_deleted must be a boolean"})
		return
	}
	deletedOnly, err := strconv.ParseBool(c.DefaultQuery("deleted_only", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deleted_only must be a boolean"})
		return
	}

	ctx := c.Request.Context()
	workspace, err := h.workspaceService.GetWorkspace(ctx, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var members []models.WorkspaceMember
	if deletedOnly {
		members, err = h.userService.LoadDeletedWorkspaceMembersOnly(ctx, workspace)
	} else {
		members, err = h.userService.LoadWorkspaceMembers(ctx, workspace, includeDeleted)
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.NewWorkspaceMembersResponse(members))
}

// GetMember handles GET /workspaces/:id/members/:userId
// @Summary Get a user's member profile in a workspace
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} service.WorkspaceMemberResponse "Member"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Workspace, user or member not found"
// @Router /workspaces/{id}/members/{userId} [get]
func (h *WorkspaceHandler) GetMember(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	workspace, err := h.workspaceService.GetWorkspace(ctx, workspaceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	member, err := h.userService.LoadWorkspaceMember(ctx, user, workspace)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if member == nil {
		handleServiceError(c, apperrors.ErrWorkspaceMemberNotFound)
		return
	}

	c.JSON(http.StatusOK, service.NewWorkspaceMemberResponse(member))
}

// RemoveMember handles DELETE /workspaces/:id/members/:userId
// @Summary Remove a user from a workspace
// @Description Removing the last member deletes the workspace. Fails with 409 when the user is the only admin and other members remain.
// @Tags workspaces
// @Param id path string true "Workspace ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "User is the last admin"
// @Router /workspaces/{id}/members/{userId} [delete]
func (h *WorkspaceHandler) RemoveMember(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	ctx := logger.ContextWithWorkspace(c.Request.Context(), workspaceID.String())
	if err := h.userService.RemoveUserFromWorkspace(ctx, userID, workspaceID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeactivateMember handles POST /workspaces/:id/members/:userId/deactivate
// @Summary Deactivate a workspace member
// @Description Soft-deletes the member and revokes their role. The member stays listed as deleted until purged.
// @Tags workspaces
// @Param id path string true "Workspace ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Member deactivated"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "User is the last member or the last admin"
// @Router /workspaces/{id}/members/{userId}/deactivate [post]
func (h *WorkspaceHandler) DeactivateMember(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	ctx := logger.ContextWithWorkspace(c.Request.Context(), workspaceID.String())
	if err := h.userService.DeactivateWorkspaceMember(ctx, userID, workspaceID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListEvents handles GET /workspaces/:id/events
// @Summary List workspace events
// @Description Persisted events of a workspace, newest first
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID (UUID)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.EventLogListResponse "Events"
// @Failure 400 {object} ErrorResponse "Invalid pagination"
// @Router /workspaces/{id}/events [get]
func (h *WorkspaceHandler) ListEvents(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
		return
	}

	resp, err := h.workspaceService.GetEventLogs(c.Request.Context(), id, limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
