package jobs

import (
	"context"
	"fmt"
	"time"

	"crm-workspace-backend/internal/logger"
	"crm-workspace-backend/internal/repository"

	"github.com/robfig/cron/v3"
)

// MemberPurgeJob hard-deletes workspace members and user workspaces that were soft-deleted
// longer ago than the retention
type MemberPurgeJob struct {
	memberRepo        repository.WorkspaceMemberRepositoryInterface
	userWorkspaceRepo repository.UserWorkspaceRepositoryInterface
	schedule          string
	retention         time.Duration
	now               func() time.Time

	cron *cron.Cron
}

// NewMemberPurgeJob creates a purge job running on a cron schedule such as "@daily" or "0 3 * * *"
func NewMemberPurgeJob(
	memberRepo repository.WorkspaceMemberRepositoryInterface,
	userWorkspaceRepo repository.UserWorkspaceRepositoryInterface,
	schedule string,
	retention time.Duration,
) *MemberPurgeJob {
	return &MemberPurgeJob{
		memberRepo:        memberRepo,
		userWorkspaceRepo: userWorkspaceRepo,
		schedule:          schedule,
		retention:         retention,
		now:               time.Now,
	}
}

// RunOnce purges once and returns how many rows were removed
func (j *MemberPurgeJob) RunOnce(ctx context.Context) (int64, error) {
	cutoff := j.now().Add(-j.retention)

	members, err := j.memberRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted workspace members: %w", err)
	}
	userWorkspaces, err := j.userWorkspaceRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return members, fmt.Errorf("failed to purge deleted user workspaces: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"members":         members,
		"user_workspaces": userWorkspaces,
		"cutoff":          cutoff,
	}).Info("Purged deleted workspace members")

	return members + userWorkspaces, nil
}

// Start schedules the job. Runs stop when ctx is done or Stop is called.
func (j *MemberPurgeJob) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(j.schedule, func() {
		if _, err := j.RunOnce(ctx); err != nil {
			logger.WithContext(ctx).WithError(err).Error("Member purge failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid member purge schedule %q: %w", j.schedule, err)
	}

	j.cron = c
	c.Start()

	go func() {
		<-ctx.Done()
		j.Stop()
	}()

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"schedule":  j.schedule,
		"retention": j.retention.String(),
	}).Info("Member purge job scheduled")

	return nil
}

// Stop halts the schedule and waits for a running purge to finish
func (j *MemberPurgeJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}
