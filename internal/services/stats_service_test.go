package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evhire_backend/internal/models"
)

func TestPlatformStats(t *testing.T) {
	userRepo := newMemUserRepo()
	recruiterRepo := newMemRecruiterRepo()
	jobRepo := newMemJobRepo()
	applicationRepo := newMemApplicationRepo()

	require.NoError(t, userRepo.Create(nil, &models.User{Phone: "+911", Role: models.UserRoleTechnician}))
	require.NoError(t, userRepo.Create(nil, &models.User{Phone: "+912", Role: models.UserRoleSales}))
	require.NoError(t, recruiterRepo.Create(nil, &models.Recruiter{Phone: "+913"}))
	require.NoError(t, jobRepo.Create(nil, &models.JobPost{RecruiterID: 1, Title: "t", Role: models.UserRoleSales}))
	require.NoError(t, applicationRepo.CreateIdempotent(nil, &models.JobApplication{UserID: 1, JobPostID: 1}))

	svc := NewStatsService(userRepo, recruiterRepo, jobRepo, applicationRepo)

	stats, err := svc.PlatformStats(testDB)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.TotalRecruiters)
	assert.EqualValues(t, 1, stats.TotalJobs)
	assert.EqualValues(t, 1, stats.TotalApplications)
}

func TestAdminStats(t *testing.T) {
	userRepo := newMemUserRepo()
	recruiterRepo := newMemRecruiterRepo()
	jobRepo := newMemJobRepo()
	applicationRepo := newMemApplicationRepo()

	seed := func(phone string, status models.VerificationStatus, adminVerified bool) {
		u := &models.User{Phone: phone, Role: models.UserRoleTechnician, VerificationStatus: status, IsAdminVerified: adminVerified}
		require.NoError(t, userRepo.Create(nil, u))
	}
	seed("+921", models.VerificationPending, false)
	seed("+922", models.VerificationStep2Completed, false)
	seed("+923", models.VerificationStep3Pending, false)
	seed("+924", models.VerificationVerified, true)

	require.NoError(t, jobRepo.Create(nil, &models.JobPost{RecruiterID: 1, Title: "a", Role: models.UserRoleSales, Status: models.JobStatusPending}))
	require.NoError(t, jobRepo.Create(nil, &models.JobPost{RecruiterID: 1, Title: "b", Role: models.UserRoleSales, Status: models.JobStatusApproved}))

	svc := NewStatsService(userRepo, recruiterRepo, jobRepo, applicationRepo)

	stats, err := svc.AdminStats(testDB)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.VerifiedUsers)
	assert.EqualValues(t, 1, stats.AdminVerifiedUsers)
	assert.EqualValues(t, 2, stats.PendingVerifications)
	assert.EqualValues(t, 1, stats.PendingJobs)
	assert.EqualValues(t, 1, stats.ApprovedJobs)
}

func TestLeaderboard_RecordScoreKeepsBest(t *testing.T) {
	userRepo := newMemUserRepo()
	user := &models.User{Phone: "+931", Role: models.UserRoleTechnician, Name: "Meena"}
	require.NoError(t, userRepo.Create(nil, user))

	svc := NewLeaderboardService(newMemLeaderboardRepo(), userRepo, nil)

	day := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	require.NoError(t, svc.RecordScore(nil, user.ID, day, 5, 10))
	require.NoError(t, svc.RecordScore(nil, user.ID, day, 8, 10))
	require.NoError(t, svc.RecordScore(nil, user.ID, day.Add(2*time.Hour), 3, 10))

	entries, err := svc.TopForDay(nil, day)
	require.NoError(t, err)
	require.Len(t, entries, 1, "one row per user per day")
	assert.Equal(t, 8, entries[0].Score)
	assert.Equal(t, 1, entries[0].Rank)
}
