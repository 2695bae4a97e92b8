package services

import (
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"evhire_backend/internal/models"
	"evhire_backend/internal/repositories"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

type StatsService interface {
	PlatformStats(db *gorm.DB) (*dto.PlatformStats, error)
	AdminStats(db *gorm.DB) (*dto.AdminStats, error)
}

type StatsServiceImpl struct {
	userRepo        repositories.UserRepository
	recruiterRepo   repositories.RecruiterRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	recruiterRepo repositories.RecruiterRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) StatsService {
	return &StatsServiceImpl{
		userRepo:        userRepo,
		recruiterRepo:   recruiterRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// PlatformStats gathers the public counters. The four counts are independent
// reads, so they run concurrently against the pool.
func (s *StatsServiceImpl) PlatformStats(db *gorm.DB) (*dto.PlatformStats, error) {
	var stats dto.PlatformStats
	var g errgroup.Group

	g.Go(func() error {
		n, err := s.userRepo.CountAll(db.Session(&gorm.Session{NewDB: true}))
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.recruiterRepo.CountAll(db.Session(&gorm.Session{NewDB: true}))
		stats.TotalRecruiters = n
		return err
	})
	g.Go(func() error {
		n, err := s.jobRepo.CountAll(db.Session(&gorm.Session{NewDB: true}))
		stats.TotalJobs = n
		return err
	})
	g.Go(func() error {
		n, err := s.applicationRepo.CountAll(db.Session(&gorm.Session{NewDB: true}))
		stats.TotalApplications = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &stats, nil
}

// AdminStats gathers the dashboard counters concurrently.
func (s *StatsServiceImpl) AdminStats(db *gorm.DB) (*dto.AdminStats, error) {
	var stats dto.AdminStats
	var g errgroup.Group

	g.Go(func() error {
		n, err := s.userRepo.CountAll(db.Session(&gorm.Session{NewDB: true}))
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.userRepo.CountByStatus(db.Session(&gorm.Session{NewDB: true}), models.VerificationVerified)
		stats.VerifiedUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.userRepo.CountAdminVerified(db.Session(&gorm.Session{NewDB: true}))
		stats.AdminVerifiedUsers = n
		return err
	})
	g.Go(func() error {
		session := db.Session(&gorm.Session{NewDB: true})
		a, err := s.userRepo.CountByStatus(session, models.VerificationStep2Completed)
		if err != nil {
			return err
		}
		b, err := s.userRepo.CountByStatus(session, models.VerificationStep3Pending)
		if err != nil {
			return err
		}
		stats.PendingVerifications = a + b
		return nil
	})
	g.Go(func() error {
		n, err := s.jobRepo.CountByStatus(db.Session(&gorm.Session{NewDB: true}), models.JobStatusPending)
		stats.PendingJobs = n
		return err
	})
	g.Go(func() error {
		n, err := s.jobRepo.CountByStatus(db.Session(&gorm.Session{NewDB: true}), models.JobStatusApproved)
		stats.ApprovedJobs = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &stats, nil
}
