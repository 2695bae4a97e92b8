package repositories

import (
	"evhire_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository interface {
	CreateIdempotent(db *gorm.DB, application *models.JobApplication) error
	ListByUser(db *gorm.DB, userID uint) ([]models.JobApplication, error)
	ListJobIDsByUser(db *gorm.DB, userID uint) ([]uint, error)
	CountAll(db *gorm.DB) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// CreateIdempotent inserts the (user, job) pair, silently absorbing a
// duplicate apply via ON CONFLICT DO NOTHING on the unique index.
func (r *ApplicationRepositoryImpl) CreateIdempotent(db *gorm.DB, application *models.JobApplication) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_post_id"}},
		DoNothing: true,
	}).Create(application).Error
}

func (r *ApplicationRepositoryImpl) ListByUser(db *gorm.DB, userID uint) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Preload("JobPost").Preload("JobPost.Recruiter").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListJobIDsByUser(db *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&models.JobApplication{}).
		Where("user_id = ?", userID).
		Pluck("job_post_id", &ids).Error
	return ids, err
}

func (r *ApplicationRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).Count(&count).Error
	return count, err
}
