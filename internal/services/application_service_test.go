package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evhire_backend/internal/models"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

func newApplicationFixture(t *testing.T) (ApplicationService, *memApplicationRepo, *models.User, *models.JobPost) {
	t.Helper()

	userRepo := newMemUserRepo()
	user := &models.User{Phone: "+917777777777", Role: models.UserRoleTechnician}
	require.NoError(t, userRepo.Create(nil, user))

	jobRepo := newMemJobRepo()
	job := &models.JobPost{RecruiterID: 1, Title: "t", Role: models.UserRoleTechnician, Status: models.JobStatusApproved, IsActive: true}
	require.NoError(t, jobRepo.Create(nil, job))

	applicationRepo := newMemApplicationRepo()
	svc := NewApplicationService(applicationRepo, jobRepo, userRepo)
	return svc, applicationRepo, user, job
}

func TestApply_Idempotent(t *testing.T) {
	svc, applicationRepo, user, job := newApplicationFixture(t)

	req := &dto.CreateApplicationRequest{UserID: user.ID, JobPostID: job.ID}
	require.NoError(t, svc.Apply(nil, req))

	// The second apply succeeds and leaves exactly one row behind.
	require.NoError(t, svc.Apply(nil, req))

	count, err := applicationRepo.CountAll(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	ids, err := svc.ListJobIDsByUser(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{job.ID}, ids)
}

func TestApply_UnknownReferences(t *testing.T) {
	svc, _, user, job := newApplicationFixture(t)

	var appErr *apperrors.AppError

	err := svc.Apply(nil, &dto.CreateApplicationRequest{UserID: 999, JobPostID: job.ID})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	err = svc.Apply(nil, &dto.CreateApplicationRequest{UserID: user.ID, JobPostID: 999})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}
