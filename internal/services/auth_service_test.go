package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evhire_backend/internal/auth"
	"evhire_backend/internal/models"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

func newAuthFixture(t *testing.T) (*memUserRepo, *memRecruiterRepo, AuthService) {
	t.Helper()

	userRepo := newMemUserRepo()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(nil, &models.User{
		Phone:        "+918888888888",
		PasswordHash: hash,
		Role:         models.UserRoleTechnician,
	}))

	recruiterRepo := newMemRecruiterRepo()
	require.NoError(t, recruiterRepo.Create(nil, &models.Recruiter{
		CompanyName:  "VoltWorks",
		Phone:        "+910101010101",
		PasswordHash: hash,
	}))

	return userRepo, recruiterRepo, NewAuthService(userRepo, recruiterRepo)
}

func TestLoginUser(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	res, err := svc.LoginUser(nil, &dto.UserLoginRequest{
		PhoneNumber: "+918888888888",
		Password:    "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	require.NotNil(t, res.User)

	claims, err := auth.ParseToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, string(models.UserRoleTechnician), claims.Role)
}

func TestLoginUser_BadCredentials(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	_, err := svc.LoginUser(nil, &dto.UserLoginRequest{
		PhoneNumber: "+918888888888",
		Password:    "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestLoginUser_PhoneNotRegistered(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	// An unknown phone is reported as not registered, distinct from a
	// wrong password.
	_, err := svc.LoginUser(nil, &dto.UserLoginRequest{
		PhoneNumber: "+910000099999",
		Password:    "correct-horse",
	})
	assert.ErrorIs(t, err, apperrors.ErrPhoneNotRegistered)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	_, err = svc.LoginRecruiter(nil, &dto.RecruiterLoginRequest{
		PhoneNumber: "+910000099999",
		Password:    "correct-horse",
	})
	assert.ErrorIs(t, err, apperrors.ErrPhoneNotRegistered)
}

func TestLoginRecruiter(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	res, err := svc.LoginRecruiter(nil, &dto.RecruiterLoginRequest{
		PhoneNumber: "+910101010101",
		Password:    "correct-horse",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Recruiter)

	claims, err := auth.ParseToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleRecruiter, claims.Role)
}

func TestRefreshToken_Rotates(t *testing.T) {
	userRepo, _, svc := newAuthFixture(t)

	login, err := svc.LoginUser(nil, &dto.UserLoginRequest{
		PhoneNumber: "+918888888888",
		Password:    "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(nil, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old token is revoked by the rotation.
	_, err = userRepo.FindRefreshToken(nil, login.RefreshToken)
	assert.Error(t, err)

	_, err = svc.RefreshToken(nil, login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	login, err := svc.LoginUser(nil, &dto.UserLoginRequest{
		PhoneNumber: "+918888888888",
		Password:    "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(nil, login.RefreshToken))

	_, err = svc.RefreshToken(nil, login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// Logging out twice is harmless.
	assert.NoError(t, svc.Logout(nil, login.RefreshToken))
}
