package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-workspace-backend/internal/logger"
	"crm-workspace-backend/internal/mocks"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemberPurgeJobRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberRepo := mocks.NewMockWorkspaceMemberRepositoryInterface(ctrl)
	userWorkspaceRepo := mocks.NewMockUserWorkspaceRepositoryInterface(ctrl)

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-48 * time.Hour)
	job := NewMemberPurgeJob(memberRepo, userWorkspaceRepo, "@daily", 48*time.Hour)
	job.now = func() time.Time { return now }

	t.Run("purges members and user workspaces before cutoff", func(t *testing.T) {
		memberRepo.EXPECT().PurgeDeletedBefore(gomock.Any(), cutoff).Return(int64(3), nil)
		userWorkspaceRepo.EXPECT().PurgeDeletedBefore(gomock.Any(), cutoff).Return(int64(2), nil)

		purged, err := job.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(5), purged)
	})

	t.Run("member store failure", func(t *testing.T) {
		storeErr := errors.New("db down")
		memberRepo.EXPECT().PurgeDeletedBefore(gomock.Any(), gomock.Any()).Return(int64(0), storeErr)

		_, err := job.RunOnce(context.Background())

		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("user workspace store failure", func(t *testing.T) {
		storeErr := errors.New("lock timeout")
		memberRepo.EXPECT().PurgeDeletedBefore(gomock.Any(), cutoff).Return(int64(4), nil)
		userWorkspaceRepo.EXPECT().PurgeDeletedBefore(gomock.Any(), cutoff).Return(int64(0), storeErr)

		purged, err := job.RunOnce(context.Background())

		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, int64(4), purged)
	})
}

func TestMemberPurgeJobStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberRepo := mocks.NewMockWorkspaceMemberRepositoryInterface(ctrl)
	userWorkspaceRepo := mocks.NewMockUserWorkspaceRepositoryInterface(ctrl)

	t.Run("rejects invalid schedule", func(t *testing.T) {
		job := NewMemberPurgeJob(memberRepo, userWorkspaceRepo, "every tuesday-ish", time.Hour)
		assert.Error(t, job.Start(context.Background()))
	})

	t.Run("stops with context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		job := NewMemberPurgeJob(memberRepo, userWorkspaceRepo, "@hourly", time.Hour)

		require.NoError(t, job.Start(ctx))
		cancel()
		job.Stop()
	})

	t.Run("schedule log carries context fields", func(t *testing.T) {
		hook := logtest.NewLocal(logrus.StandardLogger())
		defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

		ctx, cancel := context.WithCancel(logger.ContextWithRequestID(context.Background(), "startup"))
		defer cancel()
		job := NewMemberPurgeJob(memberRepo, userWorkspaceRepo, "@hourly", time.Hour)

		require.NoError(t, job.Start(ctx))
		defer job.Stop()

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "Member purge job scheduled", entry.Message)
		assert.Equal(t, "startup", entry.Data["request_id"])
		assert.Equal(t, "@hourly", entry.Data["schedule"])
	})
}
