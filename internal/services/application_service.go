package services

import (
	"gorm.io/gorm"

	"evhire_backend/internal/logger"
	"evhire_backend/internal/models"
	"evhire_backend/internal/repositories"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(db *gorm.DB, req *dto.CreateApplicationRequest) error
	ListByUser(db *gorm.DB, userID uint) ([]models.JobApplication, error)
	ListJobIDsByUser(db *gorm.DB, userID uint) ([]uint, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

// Apply records a job application. Applying twice to the same post succeeds
// without creating a second row.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, req *dto.CreateApplicationRequest) error {
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if _, err := s.jobRepo.FindByID(db, req.JobPostID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	application := &models.JobApplication{
		UserID:    req.UserID,
		JobPostID: req.JobPostID,
	}
	if err := s.applicationRepo.CreateIdempotent(db, application); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("job application recorded", "userId", req.UserID, "jobId", req.JobPostID)
	return nil
}

func (s *ApplicationServiceImpl) ListByUser(db *gorm.DB, userID uint) ([]models.JobApplication, error) {
	applications, err := s.applicationRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) ListJobIDsByUser(db *gorm.DB, userID uint) ([]uint, error) {
	ids, err := s.applicationRepo.ListJobIDsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ids, nil
}
