package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"gorm.io/gorm"

	"evhire_backend/internal/auth"
	"evhire_backend/internal/models"
	"evhire_backend/internal/repositories"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

// refreshTokenTTL bounds how long a candidate stays logged in without
// re-entering the password.
const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	LoginUser(db *gorm.DB, req *dto.UserLoginRequest) (*dto.UserLoginResponse, error)
	LoginRecruiter(db *gorm.DB, req *dto.RecruiterLoginRequest) (*dto.RecruiterLoginResponse, error)
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.UserLoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	recruiterRepo repositories.RecruiterRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	recruiterRepo repositories.RecruiterRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		recruiterRepo: recruiterRepo,
	}
}

// LoginUser authenticates a candidate by phone number and issues an access
// token plus a stored refresh token.
func (s *AuthServiceImpl) LoginUser(db *gorm.DB, req *dto.UserLoginRequest) (*dto.UserLoginResponse, error) {
	user, err := s.userRepo.FindByPhone(db, req.PhoneNumber)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrPhoneNotRegistered
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.issueRefreshToken(db, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.UserLoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// LoginRecruiter authenticates a recruiter account. Recruiter sessions carry
// no refresh token; the access token is re-obtained by logging in again.
func (s *AuthServiceImpl) LoginRecruiter(db *gorm.DB, req *dto.RecruiterLoginRequest) (*dto.RecruiterLoginResponse, error) {
	recruiter, err := s.recruiterRepo.FindByPhone(db, req.PhoneNumber)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecruiterNotFound) {
			return nil, apperrors.ErrPhoneNotRegistered
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, recruiter.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(recruiter.ID, models.RoleRecruiter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RecruiterLoginResponse{
		AccessToken: accessToken,
		Recruiter:   recruiter,
	}, nil
}

// RefreshToken rotates the refresh token and re-issues an access token.
func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.UserLoginResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	newRefresh, err := s.issueRefreshToken(db, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.UserLoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		User:         user,
	}, nil
}

// Logout revokes the refresh token. Unknown tokens are treated as already
// logged out.
func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueRefreshToken(db *gorm.DB, userID uint) (string, error) {
	token := generateRandomToken()
	record := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(db, record); err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

func generateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
