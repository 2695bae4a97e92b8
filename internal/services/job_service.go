package services

import (
	"gorm.io/gorm"

	"evhire_backend/internal/logger"
	"evhire_backend/internal/models"
	"evhire_backend/internal/repositories"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

type JobService interface {
	Create(db *gorm.DB, req *dto.CreateJobRequest) (*models.JobPost, error)
	Get(db *gorm.DB, id uint) (*models.JobPost, error)
	Update(db *gorm.DB, id uint, req *dto.UpdateJobRequest) (*models.JobPost, error)
	Approve(db *gorm.DB, id uint) (*models.JobPost, error)
	Reject(db *gorm.DB, id uint) (*models.JobPost, error)
	ListPublic(db *gorm.DB) ([]models.JobPost, error)
	ListPending(db *gorm.DB) ([]models.JobPost, error)
	ListByRecruiter(db *gorm.DB, recruiterID uint) ([]models.JobPost, error)
	FindApplicants(db *gorm.DB, jobID uint) ([]models.User, error)
}

type JobServiceImpl struct {
	jobRepo       repositories.JobRepository
	recruiterRepo repositories.RecruiterRepository
	notifier      *DecisionNotifier
}

func NewJobService(
	jobRepo repositories.JobRepository,
	recruiterRepo repositories.RecruiterRepository,
	notifier *DecisionNotifier,
) JobService {
	return &JobServiceImpl{
		jobRepo:       jobRepo,
		recruiterRepo: recruiterRepo,
		notifier:      notifier,
	}
}

// Create stores a new post. Every post enters moderation as pending; the
// status and is_active fields in the request body, if any, are ignored.
func (s *JobServiceImpl) Create(db *gorm.DB, req *dto.CreateJobRequest) (*models.JobPost, error) {
	if _, err := s.recruiterRepo.FindByID(db, req.RecruiterID); err != nil {
		if apperrors.Is(err, repositories.ErrRecruiterNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	job := &models.JobPost{
		RecruiterID: req.RecruiterID,
		Title:       req.Title,
		Role:        req.Role,
		Brand:       req.Brand,
		Salary:      req.Salary,
		Location:    req.Location,
		Description: req.Description,
		Status:      models.JobStatusPending,
		IsActive:    true,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job post created", "jobId", job.ID, "recruiterId", job.RecruiterID)
	return job, nil
}

func (s *JobServiceImpl) Get(db *gorm.DB, id uint) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Update edits the post content. An approved post is locked: its published
// content can only change by going through moderation again, which this
// platform does not do, so the edit is refused outright.
func (s *JobServiceImpl) Update(db *gorm.DB, id uint, req *dto.UpdateJobRequest) (*models.JobPost, error) {
	job, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}
	if job.Status == models.JobStatusApproved {
		return nil, apperrors.ErrJobLocked
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Role != "" {
		job.Role = req.Role
	}
	if req.Brand != "" {
		job.Brand = req.Brand
	}
	if req.Salary != "" {
		job.Salary = req.Salary
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Description != "" {
		job.Description = req.Description
	}

	if err := s.jobRepo.UpdateContent(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, id)
}

// Approve publishes a pending post and notifies the recruiter.
func (s *JobServiceImpl) Approve(db *gorm.DB, id uint) (*models.JobPost, error) {
	return s.decide(db, id, models.JobStatusApproved)
}

// Reject declines a pending post and notifies the recruiter.
func (s *JobServiceImpl) Reject(db *gorm.DB, id uint) (*models.JobPost, error) {
	return s.decide(db, id, models.JobStatusRejected)
}

func (s *JobServiceImpl) decide(db *gorm.DB, id uint, decision models.JobStatus) (*models.JobPost, error) {
	job, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}
	// Re-deciding to the same status stays idempotent; flipping a settled
	// decision is not allowed.
	if job.Status == decision {
		return job, nil
	}
	if job.Status != models.JobStatusPending {
		return nil, apperrors.ErrJobNotPending
	}

	if err := s.jobRepo.UpdateStatus(db, id, decision); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job post decided", "jobId", id, "decision", decision)
	s.notifier.JobDecided(job, decision)

	return s.Get(db, id)
}

func (s *JobServiceImpl) ListPublic(db *gorm.DB) ([]models.JobPost, error) {
	jobs, err := s.jobRepo.ListPublic(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) ListPending(db *gorm.DB) ([]models.JobPost, error) {
	jobs, err := s.jobRepo.ListPending(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) ListByRecruiter(db *gorm.DB, recruiterID uint) ([]models.JobPost, error) {
	jobs, err := s.jobRepo.ListByRecruiter(db, recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) FindApplicants(db *gorm.DB, jobID uint) ([]models.User, error) {
	if _, err := s.Get(db, jobID); err != nil {
		return nil, err
	}
	users, err := s.jobRepo.FindApplicants(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}
