package service_test

import (
	"context"
	"errors"
	"testing"

	"crm-workspace-backend/internal/database/models"
	apperrors "crm-workspace-backend/internal/errors"
	"crm-workspace-backend/internal/events"
	"crm-workspace-backend/internal/mocks"
	"crm-workspace-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newMember(userID, workspaceID uuid.UUID) models.WorkspaceMember {
	return models.WorkspaceMember{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: workspaceID,
		UserID:      userID,
		FirstName:   "Jane",
		LastName:    "Roe",
		UserEmail:   "jane@example.com",
	}
}

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockUserRepo         *mocks.MockUserRepositoryInterface
	mockMemberRepo       *mocks.MockWorkspaceMemberRepositoryInterface
	mockUserWorkspaceSvc *mocks.MockUserWorkspaceServiceInterface
	mockUserRoleSvc      *mocks.MockUserRoleServiceInterface
	mockWorkspaceSvc     *mocks.MockWorkspaceServiceInterface
	mockNotifier         *mocks.MockNotifier
	userService          *service.UserService
	ctx                  context.Context
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockWorkspaceMemberRepositoryInterface(suite.ctrl)
	suite.mockUserWorkspaceSvc = mocks.NewMockUserWorkspaceServiceInterface(suite.ctrl)
	suite.mockUserRoleSvc = mocks.NewMockUserRoleServiceInterface(suite.ctrl)
	suite.mockWorkspaceSvc = mocks.NewMockWorkspaceServiceInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.ctx = context.Background()

	suite.userService = service.NewUserService(
		suite.mockUserRepo,
		suite.mockMemberRepo,
		suite.mockUserWorkspaceSvc,
		suite.mockUserRoleSvc,
		suite.mockWorkspaceSvc,
		suite.mockNotifier,
		validator.New(),
		4,
	)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectRemovalFromSharedWorkspace sets up a successful removal of userID from a workspace with other members
func (suite *UserServiceTestSuite) expectRemovalFromSharedWorkspace(userID, workspaceID uuid.UUID, others int) models.WorkspaceMember {
	target := newMember(userID, workspaceID)
	members := []models.WorkspaceMember{target}
	for i := 0; i < others; i++ {
		members = append(members, newMember(uuid.New(), workspaceID))
	}
	userWorkspaceID := uuid.New()

	suite.mockMemberRepo.EXPECT().Find(gomock.Any(), workspaceID, false).Return(members, nil).Times(1)
	suite.mockUserWorkspaceSvc.EXPECT().
		GetUserWorkspaceForUser(gomock.Any(), userID, workspaceID).
		Return(&models.UserWorkspace{BaseModel: models.BaseModel{ID: userWorkspaceID}, UserID: userID, WorkspaceID: workspaceID}, nil).
		Times(1)
	suite.mockUserRoleSvc.EXPECT().ValidateUserWorkspaceIsNotUniqueAdmin(gomock.Any(), workspaceID, userWorkspaceID).Return(nil).Times(1)
	suite.mockMemberRepo.EXPECT().DeleteByUserID(gomock.Any(), workspaceID, userID).Return(nil).Times(1)
	suite.mockUserWorkspaceSvc.EXPECT().RemoveUserWorkspace(gomock.Any(), userID, workspaceID).Return(nil).Times(1)
	return target
}

// TestRemoveUserFromWorkspaceSoleMember tears the workspace down and emits nothing
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceSoleMember() {
	userID, workspaceID := uuid.New(), uuid.New()

	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), workspaceID, false).
		Return([]models.WorkspaceMember{newMember(userID, workspaceID)}, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().DeleteByUserID(gomock.Any(), workspaceID, userID).Return(nil).Times(1)
	suite.mockUserWorkspaceSvc.EXPECT().RemoveUserWorkspace(gomock.Any(), userID, workspaceID).Return(nil).Times(1)
	suite.mockWorkspaceSvc.EXPECT().DeleteWorkspace(gomock.Any(), workspaceID).Return(nil).Times(1)
	suite.mockNotifier.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(0)

	err := suite.userService.RemoveUserFromWorkspace(suite.ctx, userID, workspaceID)

	assert.NoError(suite.T(), err)
}

// TestRemoveUserFromWorkspaceSoleMemberSkipsRoleCheck never consults the role guard for a lone member
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceSoleMemberSkipsRoleCheck() {
	userID, workspaceID := uuid.New(), uuid.New()

	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), workspaceID, false).
		Return([]models.WorkspaceMember{newMember(userID, workspaceID)}, nil)
	suite.mockMemberRepo.EXPECT().DeleteByUserID(gomock.Any(), workspaceID, userID).Return(nil)
	suite.mockUserWorkspaceSvc.EXPECT().RemoveUserWorkspace(gomock.Any(), userID, workspaceID).Return(nil)
	suite.mockWorkspaceSvc.EXPECT().DeleteWorkspace(gomock.Any(), workspaceID).Return(nil)
	suite.mockUserWorkspaceSvc.EXPECT().GetUserWorkspaceForUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.mockUserRoleSvc.EXPECT().ValidateUserWorkspaceIsNotUniqueAdmin(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.NoError(suite.T(), suite.userService.RemoveUserFromWorkspace(suite.ctx, userID, workspaceID))
}

// TestRemoveUserFromWorkspaceWithOtherMembers deletes the member and its role and emits one event
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceWithOtherMembers() {
	userID, workspaceID := uuid.New(), uuid.New()
	target := suite.expectRemovalFromSharedWorkspace(userID, workspaceID, 2)

	var emitted []events.DatabaseBatchEvent
	suite.mockNotifier.EXPECT().
		Emit(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e events.DatabaseBatchEvent) { emitted = append(emitted, e) }).
		Times(1)
	suite.mockWorkspaceSvc.EXPECT().DeleteWorkspace(gomock.Any(), gomock.Any()).Times(0)

	err := suite.userService.RemoveUserFromWorkspace(suite.ctx, userID, workspaceID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), emitted, 1)
	event := emitted[0]
	assert.Equal(suite.T(), events.ObjectWorkspaceMember, event.ObjectName)
	assert.Equal(suite.T(), events.ActionDeleted, event.Action)
	assert.Equal(suite.T(), workspaceID, event.WorkspaceID)
	require.Len(suite.T(), event.Events, 1)
	assert.Equal(suite.T(), target.ID, event.Events[0].RecordID)
	assert.Equal(suite.T(), target, event.Events[0].Properties.Before)
	assert.Nil(suite.T(), event.Events[0].Properties.After)
}

// TestRemoveUserFromWorkspaceSoleAdmin refuses and leaves the member in place
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceSoleAdmin() {
	userID, workspaceID, userWorkspaceID := uuid.New(), uuid.New(), uuid.New()

	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), workspaceID, false).
		Return([]models.WorkspaceMember{newMember(userID, workspaceID), newMember(uuid.New(), workspaceID)}, nil)
	suite.mockUserWorkspaceSvc.EXPECT().
		GetUserWorkspaceForUser(gomock.Any(), userID, workspaceID).
		Return(&models.UserWorkspace{BaseModel: models.BaseModel{ID: userWorkspaceID}, Role: models.WorkspaceRoleAdmin}, nil)
	suite.mockUserRoleSvc.EXPECT().
		ValidateUserWorkspaceIsNotUniqueAdmin(gomock.Any(), workspaceID, userWorkspaceID).
		Return(apperrors.ErrCannotUnassignLastAdmin)
	suite.mockMemberRepo.EXPECT().DeleteByUserID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.mockUserWorkspaceSvc.EXPECT().RemoveUserWorkspace(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.mockNotifier.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(0)

	err := suite.userService.RemoveUserFromWorkspace(suite.ctx, userID, workspaceID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCannotUnassignLastAdmin)
}

// TestRemoveUserFromWorkspaceMemberMissing fails when the user has no member record
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceMemberMissing() {
	userID, workspaceID := uuid.New(), uuid.New()

	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), workspaceID, false).
		Return([]models.WorkspaceMember{newMember(uuid.New(), workspaceID), newMember(uuid.New(), workspaceID)}, nil)
	suite.mockUserWorkspaceSvc.EXPECT().
		GetUserWorkspaceForUser(gomock.Any(), userID, workspaceID).
		Return(&models.UserWorkspace{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)
	suite.mockUserRoleSvc.EXPECT().ValidateUserWorkspaceIsNotUniqueAdmin(gomock.Any(), workspaceID, gomock.Any()).Return(nil)
	suite.mockMemberRepo.EXPECT().DeleteByUserID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := suite.userService.RemoveUserFromWorkspace(suite.ctx, userID, workspaceID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkspaceMemberNotFound)
}

// TestRemoveUserFromWorkspaceEmptyWorkspace fails without deleting anything
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceEmptyWorkspace() {
	userID, workspaceID := uuid.New(), uuid.New()

	suite.mockMemberRepo.EXPECT().Find(gomock.Any(), workspaceID, false).Return([]models.WorkspaceMember{}, nil)

	err := suite.userService.RemoveUserFromWorkspace(suite.ctx, userID, workspaceID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkspaceMemberNotFound)
}

// TestRemoveUserFromWorkspaceMissingUserWorkspace propagates the lookup failure
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceMissingUserWorkspace() {
	userID, workspaceID := uuid.New(), uuid.New()

	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), workspaceID, false).
		Return([]models.WorkspaceMember{newMember(userID, workspaceID), newMember(uuid.New(), workspaceID)}, nil)
	suite.mockUserWorkspaceSvc.EXPECT().
		GetUserWorkspaceForUser(gomock.Any(), userID, workspaceID).
		Return(nil, apperrors.ErrUserWorkspaceNotFound)

	err := suite.userService.RemoveUserFromWorkspace(suite.ctx, userID, workspaceID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserWorkspaceNotFound)
}

// TestRemoveUserFromWorkspaceStoreFailure wraps store errors
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceStoreFailure() {
	storeErr := errors.New("connection reset")
	suite.mockMemberRepo.EXPECT().Find(gomock.Any(), gomock.Any(), false).Return(nil, storeErr)

	err := suite.userService.RemoveUserFromWorkspace(suite.ctx, uuid.New(), uuid.New())

	assert.ErrorIs(suite.T(), err, storeErr)
}

// TestRemoveUserFromWorkspaceTeardownFailure propagates the teardown error
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceTeardownFailure() {
	userID, workspaceID := uuid.New(), uuid.New()
	teardownErr := errors.New("listener refused")

	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), workspaceID, false).
		Return([]models.WorkspaceMember{newMember(userID, workspaceID)}, nil)
	suite.mockMemberRepo.EXPECT().DeleteByUserID(gomock.Any(), workspaceID, userID).Return(nil)
	suite.mockUserWorkspaceSvc.EXPECT().RemoveUserWorkspace(gomock.Any(), userID, workspaceID).Return(nil)
	suite.mockWorkspaceSvc.EXPECT().DeleteWorkspace(gomock.Any(), workspaceID).Return(teardownErr)

	err := suite.userService.RemoveUserFromWorkspace(suite.ctx, userID, workspaceID)

	assert.ErrorIs(suite.T(), err, teardownErr)
}

// TestRemoveUserFromWorkspaceRoleRevokeFailure stops before the event when the role cannot be revoked
func (suite *UserServiceTestSuite) TestRemoveUserFromWorkspaceRoleRevokeFailure() {
	userID, workspaceID := uuid.New(), uuid.New()
	revokeErr := errors.New("deadlock detected")

	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), workspaceID, false).
		Return([]models.WorkspaceMember{newMember(userID, workspaceID), newMember(uuid.New(), workspaceID)}, nil)
	suite.mockUserWorkspaceSvc.EXPECT().
		GetUserWorkspaceForUser(gomock.Any(), userID, workspaceID).
		Return(&models.UserWorkspace{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)
	suite.mockUserRoleSvc.EXPECT().ValidateUserWorkspaceIsNotUniqueAdmin(gomock.Any(), workspaceID, gomock.Any()).Return(nil)
	suite.mockMemberRepo.EXPECT().DeleteByUserID(gomock.Any(), workspaceID, userID).Return(nil)
	suite.mockUserWorkspaceSvc.EXPECT().RemoveUserWorkspace(gomock.Any(), userID, workspaceID).Return(revokeErr)
	suite.mockNotifier.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(0)

	err := suite.userService.RemoveUserFromWorkspace(suite.ctx, userID, workspaceID)

	assert.ErrorIs(suite.T(), err, revokeErr)
}

// TestDeactivateWorkspaceMember soft-deletes the member, revokes the role and emits one event
func (suite *UserServiceTestSuite) TestDeactivateWorkspaceMember() {
	userID, workspaceID, userWorkspaceID := uuid.New(), uuid.New(), uuid.New()
	target := newMember(userID, workspaceID)

	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), workspaceID, false).
		Return([]models.WorkspaceMember{newMember(uuid.New(), workspaceID), target}, nil)
	suite.mockUserWorkspaceSvc.EXPECT().
		GetUserWorkspaceForUser(gomock.Any(), userID, workspaceID).
		Return(&models.UserWorkspace{BaseModel: models.BaseModel{ID: userWorkspaceID}}, nil)
	suite.mockUserRoleSvc.EXPECT().ValidateUserWorkspaceIsNotUniqueAdmin(gomock.Any(), workspaceID, userWorkspaceID).Return(nil)
	suite.mockMemberRepo.EXPECT().SoftDeleteByUserID(gomock.Any(), workspaceID, userID).Return(nil)
	suite.mockMemberRepo.EXPECT().DeleteByUserID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.mockUserWorkspaceSvc.EXPECT().RemoveUserWorkspace(gomock.Any(), userID, workspaceID).Return(nil)
	suite.mockWorkspaceSvc.EXPECT().DeleteWorkspace(gomock.Any(), gomock.Any()).Times(0)

	var emitted []events.DatabaseBatchEvent
	suite.mockNotifier.EXPECT().
		Emit(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e events.DatabaseBatchEvent) { emitted = append(emitted, e) })

	err := suite.userService.DeactivateWorkspaceMember(suite.ctx, userID, workspaceID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), emitted, 1)
	assert.Equal(suite.T(), events.ActionDeleted, emitted[0].Action)
	assert.Equal(suite.T(), workspaceID, emitted[0].WorkspaceID)
	require.Len(suite.T(), emitted[0].Events, 1)
	assert.Equal(suite.T(), target, emitted[0].Events[0].Properties.Before)
}

// TestDeactivateWorkspaceMemberRefusals covers the lone member, the only admin and an unknown user
func (suite *UserServiceTestSuite) TestDeactivateWorkspaceMemberRefusals() {
	workspaceID := uuid.New()

	suite.T().Run("last member", func(t *testing.T) {
		userID := uuid.New()
		suite.mockMemberRepo.EXPECT().
			Find(gomock.Any(), workspaceID, false).
			Return([]models.WorkspaceMember{newMember(userID, workspaceID)}, nil)

		err := suite.userService.DeactivateWorkspaceMember(suite.ctx, userID, workspaceID)

		assert.ErrorIs(t, err, apperrors.ErrCannotDeactivateLastMember)
		assert.True(t, apperrors.IsPermission(err))
	})

	suite.T().Run("only admin", func(t *testing.T) {
		userID := uuid.New()
		suite.mockMemberRepo.EXPECT().
			Find(gomock.Any(), workspaceID, false).
			Return([]models.WorkspaceMember{newMember(userID, workspaceID), newMember(uuid.New(), workspaceID)}, nil)
		suite.mockUserWorkspaceSvc.EXPECT().
			GetUserWorkspaceForUser(gomock.Any(), userID, workspaceID).
			Return(&models.UserWorkspace{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.WorkspaceRoleAdmin}, nil)
		suite.mockUserRoleSvc.EXPECT().
			ValidateUserWorkspaceIsNotUniqueAdmin(gomock.Any(), workspaceID, gomock.Any()).
			Return(apperrors.ErrCannotUnassignLastAdmin)

		err := suite.userService.DeactivateWorkspaceMember(suite.ctx, userID, workspaceID)

		assert.ErrorIs(t, err, apperrors.ErrCannotUnassignLastAdmin)
	})

	suite.T().Run("not a member", func(t *testing.T) {
		suite.mockMemberRepo.EXPECT().
			Find(gomock.Any(), workspaceID, false).
			Return([]models.WorkspaceMember{newMember(uuid.New(), workspaceID), newMember(uuid.New(), workspaceID)}, nil)

		err := suite.userService.DeactivateWorkspaceMember(suite.ctx, uuid.New(), workspaceID)

		assert.ErrorIs(t, err, apperrors.ErrWorkspaceMemberNotFound)
	})
}

// TestDeleteUserNotFound tests deleting an unknown user
func (suite *UserServiceTestSuite) TestDeleteUserNotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByIDWithWorkspaces(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	user, err := suite.userService.DeleteUser(suite.ctx, id)

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestDeleteUserSoleMemberAndRegularMember covers a user alone in A and one of three non-admins in B
func (suite *UserServiceTestSuite) TestDeleteUserSoleMemberAndRegularMember() {
	userID, workspaceA, workspaceB := uuid.New(), uuid.New(), uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Email:     "u@example.com",
		Workspaces: []models.UserWorkspace{
			{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, WorkspaceID: workspaceA, Role: models.WorkspaceRoleAdmin},
			{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, WorkspaceID: workspaceB, Role: models.WorkspaceRoleMember},
		},
	}
	suite.mockUserRepo.EXPECT().GetByIDWithWorkspaces(gomock.Any(), userID).Return(user, nil)

	// Workspace A: sole member, torn down
	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), workspaceA, false).
		Return([]models.WorkspaceMember{newMember(userID, workspaceA)}, nil)
	suite.mockMemberRepo.EXPECT().DeleteByUserID(gomock.Any(), workspaceA, userID).Return(nil)
	suite.mockUserWorkspaceSvc.EXPECT().RemoveUserWorkspace(gomock.Any(), userID, workspaceA).Return(nil)
	suite.mockWorkspaceSvc.EXPECT().DeleteWorkspace(gomock.Any(), workspaceA).Return(nil).Times(1)

	// Workspace B: one of three
	suite.expectRemovalFromSharedWorkspace(userID, workspaceB, 2)
	var emitted []events.DatabaseBatchEvent
	suite.mockNotifier.EXPECT().
		Emit(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e events.DatabaseBatchEvent) { emitted = append(emitted, e) }).
		Times(1)

	result, err := suite.userService.DeleteUser(suite.ctx, userID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), userID, result.ID)
	assert.Len(suite.T(), result.Workspaces, 2)
	require.Len(suite.T(), emitted, 1)
	assert.Equal(suite.T(), workspaceB, emitted[0].WorkspaceID)
	assert.Equal(suite.T(), events.ActionDeleted, emitted[0].Action)
}

// TestDeleteUserLastAdmin translates the guard rejection even when other workspaces succeed
func (suite *UserServiceTestSuite) TestDeleteUserLastAdmin() {
	userID := uuid.New()
	blocked := uuid.New()
	removable := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	user := &models.User{BaseModel: models.BaseModel{ID: userID}}
	user.Workspaces = append(user.Workspaces, models.UserWorkspace{UserID: userID, WorkspaceID: blocked, Role: models.WorkspaceRoleAdmin})
	for _, id := range removable {
		user.Workspaces = append(user.Workspaces, models.UserWorkspace{UserID: userID, WorkspaceID: id})
	}
	suite.mockUserRepo.EXPECT().GetByIDWithWorkspaces(gomock.Any(), userID).Return(user, nil)

	userWorkspaceID := uuid.New()
	suite.mockMemberRepo.EXPECT().
		Find(gomock.Any(), blocked, false).
		Return([]models.WorkspaceMember{newMember(userID, blocked), newMember(uuid.New(), blocked)}, nil)
	suite.mockUserWorkspaceSvc.EXPECT().
		GetUserWorkspaceForUser(gomock.Any(), userID, blocked).
		Return(&models.UserWorkspace{BaseModel: models.BaseModel{ID: userWorkspaceID}}, nil)
	suite.mockUserRoleSvc.EXPECT().
		ValidateUserWorkspaceIsNotUniqueAdmin(gomock.Any(), blocked, userWorkspaceID).
		Return(apperrors.ErrCannotUnassignLastAdmin)

	// Every other workspace is still attempted
	for _, id := range removable {
		suite.expectRemovalFromSharedWorkspace(userID, id, 1)
	}
	suite.mockNotifier.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(len(removable))

	result, err := suite.userService.DeleteUser(suite.ctx, userID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCannotDeleteLastAdminUser)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrCannotUnassignLastAdmin)
}

// TestDeleteUserCollectsAllFailures joins every non-guard failure
func (suite *UserServiceTestSuite) TestDeleteUserCollectsAllFailures() {
	userID, first, second := uuid.New(), uuid.New(), uuid.New()
	firstErr := errors.New("first store failure")
	secondErr := errors.New("second store failure")

	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Workspaces: []models.UserWorkspace{
			{UserID: userID, WorkspaceID: first},
			{UserID: userID, WorkspaceID: second},
		},
	}
	suite.mockUserRepo.EXPECT().GetByIDWithWorkspaces(gomock.Any(), userID).Return(user, nil)
	suite.mockMemberRepo.EXPECT().Find(gomock.Any(), first, false).Return(nil, firstErr)
	suite.mockMemberRepo.EXPECT().Find(gomock.Any(), second, false).Return(nil, secondErr)

	result, err := suite.userService.DeleteUser(suite.ctx, userID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, firstErr)
	assert.ErrorIs(suite.T(), err, secondErr)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrCannotDeleteLastAdminUser)
}

// TestDeleteUserWithoutWorkspaces returns the user untouched
func (suite *UserServiceTestSuite) TestDeleteUserWithoutWorkspaces() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockUserRepo.EXPECT().GetByIDWithWorkspaces(gomock.Any(), user.ID).Return(user, nil)

	result, err := suite.userService.DeleteUser(suite.ctx, user.ID)

	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), user, result)
}

// TestGetUserByEmail tests email lookup and its validation
func (suite *UserServiceTestSuite) TestGetUserByEmail() {
	suite.T().Run("invalid email never reaches the store", func(t *testing.T) {
		user, err := suite.userService.GetUserByEmail(suite.ctx, "not-an-email")

		assert.Nil(t, user)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("unknown email", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "missing@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.userService.GetUserByEmail(suite.ctx, " missing@example.com ")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	suite.T().Run("found", func(t *testing.T) {
		expected := &models.User{Email: "found@example.com"}
		suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "found@example.com").Return(expected, nil)

		user, err := suite.userService.GetUserByEmail(suite.ctx, "found@example.com")

		assert.NoError(t, err)
		assert.Equal(t, expected, user)
	})
}

// TestGetUserByIDStoreFailure keeps infrastructure errors distinct from not found
func (suite *UserServiceTestSuite) TestGetUserByIDStoreFailure() {
	storeErr := errors.New("timeout")
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	_, err := suite.userService.GetUserByID(suite.ctx, uuid.New())

	assert.ErrorIs(suite.T(), err, storeErr)
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

// TestMarkEmailAsVerified tests flagging the email as verified
func (suite *UserServiceTestSuite) TestMarkEmailAsVerified() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "u@example.com"}
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.True(suite.T(), u.IsEmailVerified)
			return nil
		})

	result, err := suite.userService.MarkEmailAsVerified(suite.ctx, user.ID)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.IsEmailVerified)
}

// TestHasUserAccessToWorkspace tests the membership access check
func (suite *UserServiceTestSuite) TestHasUserAccessToWorkspace() {
	userID, workspaceID := uuid.New(), uuid.New()

	suite.mockUserRepo.EXPECT().GetByIDInWorkspace(gomock.Any(), userID, workspaceID).Return(nil, gorm.ErrRecordNotFound)
	err := suite.userService.HasUserAccessToWorkspace(suite.ctx, userID, workspaceID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkspaceAccessForbidden)
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	suite.mockUserRepo.EXPECT().GetByIDInWorkspace(gomock.Any(), userID, workspaceID).Return(&models.User{}, nil)
	assert.NoError(suite.T(), suite.userService.HasUserAccessToWorkspace(suite.ctx, userID, workspaceID))
}

// TestLoadWorkspaceMembersInactiveWorkspace returns nothing without touching the store
func (suite *UserServiceTestSuite) TestLoadWorkspaceMembersInactiveWorkspace() {
	workspace := &models.Workspace{BaseModel: models.BaseModel{ID: uuid.New()}, ActivationStatus: models.ActivationStatusDeleted}

	members, err := suite.userService.LoadWorkspaceMembers(suite.ctx, workspace, true)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), members)

	deleted, err := suite.userService.LoadDeletedWorkspaceMembersOnly(suite.ctx, workspace)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), deleted)

	member, err := suite.userService.LoadWorkspaceMember(suite.ctx, &models.User{}, workspace)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), member)
}

// TestLoadWorkspaceMembers passes the include-deleted flag through
func (suite *UserServiceTestSuite) TestLoadWorkspaceMembers() {
	workspace := &models.Workspace{BaseModel: models.BaseModel{ID: uuid.New()}, ActivationStatus: models.ActivationStatusSuspended}
	expected := []models.WorkspaceMember{newMember(uuid.New(), workspace.ID)}

	suite.mockMemberRepo.EXPECT().Find(gomock.Any(), workspace.ID, true).Return(expected, nil)

	members, err := suite.userService.LoadWorkspaceMembers(suite.ctx, workspace, true)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, members)
}

// TestLoadWorkspaceMember returns nil when the user has no member record
func (suite *UserServiceTestSuite) TestLoadWorkspaceMember() {
	workspace := &models.Workspace{BaseModel: models.BaseModel{ID: uuid.New()}, ActivationStatus: models.ActivationStatusActive}
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockMemberRepo.EXPECT().FindByUserID(gomock.Any(), workspace.ID, user.ID, false).Return(nil, gorm.ErrRecordNotFound)

	member, err := suite.userService.LoadWorkspaceMember(suite.ctx, user, workspace)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), member)
}

// Run the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

// membershipStore backs the repository mocks with live rows so the role guard sees earlier removals
type membershipStore struct {
	workspaceID uuid.UUID
	members     []models.WorkspaceMember
	roles       map[uuid.UUID]*models.UserWorkspace
}

func (st *membershipStore) join(role models.WorkspaceRole) uuid.UUID {
	userID := uuid.New()
	st.members = append(st.members, newMember(userID, st.workspaceID))
	st.roles[userID] = &models.UserWorkspace{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      userID,
		WorkspaceID: st.workspaceID,
		Role:        role,
	}
	return userID
}

func (st *membershipStore) wire(memberRepo *mocks.MockWorkspaceMemberRepositoryInterface, roleRepo *mocks.MockUserWorkspaceRepositoryInterface) {
	memberRepo.EXPECT().Find(gomock.Any(), st.workspaceID, false).
		DoAndReturn(func(context.Context, uuid.UUID, bool) ([]models.WorkspaceMember, error) {
			return append([]models.WorkspaceMember(nil), st.members...), nil
		}).AnyTimes()
	memberRepo.EXPECT().DeleteByUserID(gomock.Any(), st.workspaceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, userID uuid.UUID) error {
			kept := st.members[:0]
			for _, m := range st.members {
				if m.UserID != userID {
					kept = append(kept, m)
				}
			}
			st.members = kept
			return nil
		}).AnyTimes()

	roleRepo.EXPECT().GetByUserAndWorkspace(gomock.Any(), gomock.Any(), st.workspaceID).
		DoAndReturn(func(_ context.Context, userID, _ uuid.UUID) (*models.UserWorkspace, error) {
			if uw, ok := st.roles[userID]; ok {
				return uw, nil
			}
			return nil, gorm.ErrRecordNotFound
		}).AnyTimes()
	roleRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.UserWorkspace, error) {
			for _, uw := range st.roles {
				if uw.ID == id {
					return uw, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		}).AnyTimes()
	roleRepo.EXPECT().CountAdminsExcluding(gomock.Any(), st.workspaceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, excludeID uuid.UUID) (int64, error) {
			var n int64
			for _, uw := range st.roles {
				if uw.IsAdmin() && uw.ID != excludeID {
					n++
				}
			}
			return n, nil
		}).AnyTimes()
	roleRepo.EXPECT().DeleteByUserAndWorkspace(gomock.Any(), gomock.Any(), st.workspaceID).
		DoAndReturn(func(_ context.Context, userID, _ uuid.UUID) error {
			delete(st.roles, userID)
			return nil
		}).AnyTimes()
}

// TestRemovingAdminsOneByOneKeepsLastAdmin removes one of two admins and then refuses the other
// while a regular member remains
func TestRemovingAdminsOneByOneKeepsLastAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberRepo := mocks.NewMockWorkspaceMemberRepositoryInterface(ctrl)
	roleRepo := mocks.NewMockUserWorkspaceRepositoryInterface(ctrl)
	workspaceSvc := mocks.NewMockWorkspaceServiceInterface(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	store := &membershipStore{workspaceID: uuid.New(), roles: map[uuid.UUID]*models.UserWorkspace{}}
	firstAdmin := store.join(models.WorkspaceRoleAdmin)
	secondAdmin := store.join(models.WorkspaceRoleAdmin)
	store.join(models.WorkspaceRoleMember)
	store.wire(memberRepo, roleRepo)

	notifier.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(1)
	workspaceSvc.EXPECT().DeleteWorkspace(gomock.Any(), gomock.Any()).Times(0)

	userService := service.NewUserService(
		mocks.NewMockUserRepositoryInterface(ctrl),
		memberRepo,
		service.NewUserWorkspaceService(roleRepo),
		service.NewUserRoleService(roleRepo),
		workspaceSvc,
		notifier,
		validator.New(),
		1,
	)
	ctx := context.Background()

	require.NoError(t, userService.RemoveUserFromWorkspace(ctx, firstAdmin, store.workspaceID))
	assert.NotContains(t, store.roles, firstAdmin)

	err := userService.RemoveUserFromWorkspace(ctx, secondAdmin, store.workspaceID)

	assert.ErrorIs(t, err, apperrors.ErrCannotUnassignLastAdmin)
	assert.Len(t, store.members, 2)
	assert.Contains(t, store.roles, secondAdmin)
}
