//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"crm-workspace-backend/internal/database/models"
	"crm-workspace-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkspaceMemberRepositoryTestSuite tests the WorkspaceMemberRepository
type WorkspaceMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkspaceMemberRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	workspace     *models.Workspace
}

// SetupSuite runs before all tests in the suite
func (suite *WorkspaceMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWorkspaceMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkspaceMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkspaceMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.workspace = suite.factories.Workspace.Create()
	suite.Require().NoError(NewWorkspaceRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.workspace))
}

// TearDownTest runs after each test
func (suite *WorkspaceMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WorkspaceMemberRepositoryTestSuite) addMember() *models.WorkspaceMember {
	user := suite.factories.User.Create()
	suite.Require().NoError(NewUserRepository(suite.baseTestSuite.DB).Create(suite.ctx, user))

	member := suite.factories.WorkspaceMember.FromUser(user, suite.workspace.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, member))
	return member
}

// TestFindRespectsSoftDelete tests the includeDeleted flag and the deleted-only view
func (suite *WorkspaceMemberRepositoryTestSuite) TestFindRespectsSoftDelete() {
	active := suite.addMember()
	removed := suite.addMember()
	suite.Require().NoError(suite.repo.SoftDeleteByUserID(suite.ctx, suite.workspace.ID, removed.UserID))

	visible, err := suite.repo.Find(suite.ctx, suite.workspace.ID, false)
	suite.Require().NoError(err)
	suite.Require().Len(visible, 1)
	suite.Equal(active.ID, visible[0].ID)

	all, err := suite.repo.Find(suite.ctx, suite.workspace.ID, true)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	deleted, err := suite.repo.FindDeletedOnly(suite.ctx, suite.workspace.ID)
	suite.Require().NoError(err)
	suite.Require().Len(deleted, 1)
	suite.Equal(removed.ID, deleted[0].ID)
	suite.True(deleted[0].IsDeleted())
}

// TestFindByUserID tests the single-member lookup with and without deleted rows
func (suite *WorkspaceMemberRepositoryTestSuite) TestFindByUserID() {
	member := suite.addMember()

	found, err := suite.repo.FindByUserID(suite.ctx, suite.workspace.ID, member.UserID, false)
	suite.Require().NoError(err)
	suite.Equal(member.ID, found.ID)

	suite.Require().NoError(suite.repo.SoftDeleteByUserID(suite.ctx, suite.workspace.ID, member.UserID))

	_, err = suite.repo.FindByUserID(suite.ctx, suite.workspace.ID, member.UserID, false)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	found, err = suite.repo.FindByUserID(suite.ctx, suite.workspace.ID, member.UserID, true)
	suite.Require().NoError(err)
	suite.Equal(member.ID, found.ID)
}

// TestDeleteByUserIDIsHard tests that the removal leaves no soft-deleted row behind
func (suite *WorkspaceMemberRepositoryTestSuite) TestDeleteByUserIDIsHard() {
	member := suite.addMember()
	other := suite.addMember()

	suite.Require().NoError(suite.repo.DeleteByUserID(suite.ctx, suite.workspace.ID, member.UserID))

	_, err := suite.repo.FindByUserID(suite.ctx, suite.workspace.ID, member.UserID, true)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.FindByUserID(suite.ctx, suite.workspace.ID, other.UserID, false)
	suite.NoError(err)
}

// TestPurgeDeletedBefore tests that only members deleted before the cutoff are purged
func (suite *WorkspaceMemberRepositoryTestSuite) TestPurgeDeletedBefore() {
	old := suite.addMember()
	recent := suite.addMember()
	active := suite.addMember()

	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Unscoped().Model(&models.WorkspaceMember{}).
		Where("id = ?", old.ID).
		Update("deleted_at", time.Now().Add(-48*time.Hour)).Error)
	suite.Require().NoError(suite.repo.SoftDeleteByUserID(suite.ctx, suite.workspace.ID, recent.UserID))

	purged, err := suite.repo.PurgeDeletedBefore(suite.ctx, time.Now().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), purged)

	all, err := suite.repo.Find(suite.ctx, suite.workspace.ID, true)
	suite.Require().NoError(err)
	ids := []interface{}{}
	for _, m := range all {
		ids = append(ids, m.ID)
	}
	suite.ElementsMatch([]interface{}{recent.ID, active.ID}, ids)
}

// TestWorkspaceMemberRepositoryTestSuite runs the test suite
func TestWorkspaceMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceMemberRepositoryTestSuite))
}
