package repositories

import (
	"errors"
	"time"

	"evhire_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job post not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.JobPost) error
	FindByID(db *gorm.DB, id uint) (*models.JobPost, error)
	UpdateContent(db *gorm.DB, job *models.JobPost) error
	UpdateStatus(db *gorm.DB, jobID uint, status models.JobStatus) error
	ListPublic(db *gorm.DB) ([]models.JobPost, error)
	ListPending(db *gorm.DB) ([]models.JobPost, error)
	ListByRecruiter(db *gorm.DB, recruiterID uint) ([]models.JobPost, error)
	FindApplicants(db *gorm.DB, jobID uint) ([]models.User, error)
	CountByStatus(db *gorm.DB, status models.JobStatus) (int64, error)
	CountAll(db *gorm.DB) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.JobPost) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.JobPost, error) {
	var job models.JobPost
	err := db.Preload("Recruiter").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// UpdateContent rewrites the editable content fields only. Status and
// IsActive are never touched here.
func (r *JobRepositoryImpl) UpdateContent(db *gorm.DB, job *models.JobPost) error {
	result := db.Model(job).Updates(map[string]interface{}{
		"title":       job.Title,
		"role":        job.Role,
		"brand":       job.Brand,
		"salary":      job.Salary,
		"location":    job.Location,
		"description": job.Description,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateStatus(db *gorm.DB, jobID uint, status models.JobStatus) error {
	result := db.Model(&models.JobPost{}).Where("id = ?", jobID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// ListPublic returns the posts shown to candidates: active and approved only.
func (r *JobRepositoryImpl) ListPublic(db *gorm.DB) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := db.Preload("Recruiter").
		Where("is_active = ? AND status = ?", true, models.JobStatusApproved).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListPending(db *gorm.DB) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := db.Preload("Recruiter").
		Where("status = ?", models.JobStatusPending).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListByRecruiter(db *gorm.DB, recruiterID uint) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := db.Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindApplicants(db *gorm.DB, jobID uint) ([]models.User, error) {
	var users []models.User
	err := db.
		Joins("JOIN job_applications ON job_applications.user_id = users.id").
		Where("job_applications.job_post_id = ?", jobID).
		Order("job_applications.created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *JobRepositoryImpl) CountByStatus(db *gorm.DB, status models.JobStatus) (int64, error) {
	var count int64
	err := db.Model(&models.JobPost{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.JobPost{}).Count(&count).Error
	return count, err
}
