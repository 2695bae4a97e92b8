package repositories

import (
	"errors"

	"evhire_backend/internal/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("verification question not found")

// QuestionFilter selects a question pool. Role is mandatory. Every other
// dimension is exact-or-null: an empty filter matches any row, a set filter
// matches rows carrying that value or no value at all. A question for a
// different role is never returned.
type QuestionFilter struct {
	Role            models.UserRole
	Step            int
	Domain          string
	VehicleCategory string
	TrainingRole    string
}

type QuestionRepository interface {
	SamplePool(db *gorm.DB, filter QuestionFilter, limit int) ([]models.VerificationQuestion, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]models.VerificationQuestion, error)
	CountAll(db *gorm.DB) (int64, error)
}

type QuestionRepositoryImpl struct{}

func NewQuestionRepository() QuestionRepository {
	return &QuestionRepositoryImpl{}
}

// SamplePool returns a bounded random sample from the filtered pool.
func (r *QuestionRepositoryImpl) SamplePool(db *gorm.DB, filter QuestionFilter, limit int) ([]models.VerificationQuestion, error) {
	query := db.Model(&models.VerificationQuestion{}).
		Where("role = ?", filter.Role)

	if filter.Step > 0 {
		query = query.Where("step = ?", filter.Step)
	}
	if filter.Domain != "" {
		query = query.Where("domain = ? OR domain IS NULL", filter.Domain)
	}
	if filter.VehicleCategory != "" {
		query = query.Where("vehicle_category = ? OR vehicle_category IS NULL", filter.VehicleCategory)
	}
	if filter.TrainingRole != "" {
		query = query.Where("training_role = ? OR training_role IS NULL", filter.TrainingRole)
	}

	var questions []models.VerificationQuestion
	err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepositoryImpl) FindByIDs(db *gorm.DB, ids []uint) ([]models.VerificationQuestion, error) {
	var questions []models.VerificationQuestion
	err := db.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.VerificationQuestion{}).Count(&count).Error
	return count, err
}
