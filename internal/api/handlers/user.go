package handlers

import (
	"net/http"

	"crm-workspace-backend/internal/logger"
	"crm-workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// WorkspaceAccessResponse is the swagger schema for GET /users/{id}/workspaces/{workspaceId}/access
type WorkspaceAccessResponse struct {
	Access bool `json:"access"`
}

// GetUser handles GET /users/:id
// @Summary Get user by ID
// @Description Get a user by UUID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.NewUserResponse(user))
}

// GetUserByEmail handles GET /users?email=
// @Summary Find user by email
// @Description Look a user up by email address
// @Tags users
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 400 {object} ErrorResponse "Invalid email"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.GetUserByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.NewUserResponse(user))
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete user
// @Description Remove a user from every workspace it belongs to. Workspaces where the user was the only member are deleted.
// @Description Fails with 409 when the user is the only admin of a workspace that has other members.
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "User as it was before deletion"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "User is the last admin of a workspace"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	ctx := logger.ContextWithUser(c.Request.Context(), id.String())
	user, err := h.userService.DeleteUser(ctx, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.NewUserResponse(user))
}

// VerifyEmail handles POST /users/:id/verify-email
// @Summary Mark email as verified
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Updated user"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id}/verify-email [post]
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.MarkEmailAsVerified(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.NewUserResponse(user))
}

// CheckWorkspaceAccess handles GET /users/:id/workspaces/:workspaceId/access
// @Summary Check workspace access
// @Description Succeeds when the user holds a membership of the workspace
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param workspaceId path string true "Workspace ID (UUID)"
// @Success 200 {object} WorkspaceAccessResponse "User has access"
// @Failure 403 {object} ErrorResponse "User does not have access"
// @Router /users/{id}/workspaces/{workspaceId}/access [get]
func (h *UserHandler) CheckWorkspaceAccess(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	workspaceID, ok := uuidParam(c, "workspaceId")
	if !ok {
		return
	}

	if err := h.userService.HasUserAccessToWorkspace(c.Request.Context(), userID, workspaceID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, WorkspaceAccessResponse{Access: true})
}
