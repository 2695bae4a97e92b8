package services

import (
	"gorm.io/gorm"

	"evhire_backend/internal/logger"
	"evhire_backend/internal/models"
	"evhire_backend/internal/repositories"
	"evhire_backend/internal/services/dto"
	"evhire_backend/internal/verification"
	"evhire_backend/pkg/apperrors"
)

type AdminService interface {
	ListPendingVerification(db *gorm.DB) ([]models.User, error)
	SetVerificationStatus(db *gorm.DB, userID uint, req *dto.SetVerificationRequest) (*models.User, error)
	AdminVerify(db *gorm.DB, userID uint) (*models.User, error)
}

type AdminServiceImpl struct {
	userRepo repositories.UserRepository
	notifier *DecisionNotifier
}

func NewAdminService(userRepo repositories.UserRepository, notifier *DecisionNotifier) AdminService {
	return &AdminServiceImpl{
		userRepo: userRepo,
		notifier: notifier,
	}
}

// ListPendingVerification returns the admin review queue: users who cleared
// at least one quiz stage and await a manual decision.
func (s *AdminServiceImpl) ListPendingVerification(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.ListPendingVerification(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

// SetVerificationStatus is the admin override. Only terminal decisions are
// accepted, and a settled decision cannot be flipped.
func (s *AdminServiceImpl) SetVerificationStatus(db *gorm.DB, userID uint, req *dto.SetVerificationRequest) (*models.User, error) {
	status, ok := models.ParseVerificationStatus(req.Status)
	if !ok {
		return nil, apperrors.ErrInvalidStatus("verification", "Unknown verification status: "+req.Status)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !verification.CanAdminOverride(user.VerificationStatus, status) {
		return nil, apperrors.ErrInvalidTransition
	}

	if user.VerificationStatus != status {
		if err := s.userRepo.SetVerificationStatus(db, userID, status); err != nil {
			return nil, apperrors.InternalError(err)
		}
		logger.Info("admin verification decision",
			"userId", userID, "from", user.VerificationStatus, "to", status)
		user.VerificationStatus = status
		s.notifier.VerificationDecided(user, status)
	}

	return s.getUser(db, userID)
}

// AdminVerify grants the trusted badge. It is the only write path for
// is_admin_verified, and it requires the quiz stages to be fully cleared.
func (s *AdminServiceImpl) AdminVerify(db *gorm.DB, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.VerificationStatus.IsQuizPassed() {
		return nil, apperrors.ErrNotEligibleForAdminVerify
	}
	if user.IsAdminVerified {
		return user, nil
	}

	if err := s.userRepo.SetAdminVerified(db, userID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.Info("admin trusted badge granted", "userId", userID)

	return s.getUser(db, userID)
}

func (s *AdminServiceImpl) getUser(db *gorm.DB, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
