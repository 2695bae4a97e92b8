package repositories

import (
	"errors"

	"evhire_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRecruiterNotFound      = errors.New("recruiter not found")
	ErrRecruiterAlreadyExists = errors.New("recruiter already exists")
)

type RecruiterRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Recruiter, error)
	FindByPhone(db *gorm.DB, phone string) (*models.Recruiter, error)
	Create(db *gorm.DB, recruiter *models.Recruiter) error
	CountAll(db *gorm.DB) (int64, error)
}

type RecruiterRepositoryImpl struct{}

func NewRecruiterRepository() RecruiterRepository {
	return &RecruiterRepositoryImpl{}
}

func (r *RecruiterRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := db.First(&recruiter, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecruiterNotFound
		}
		return nil, err
	}
	return &recruiter, nil
}

func (r *RecruiterRepositoryImpl) FindByPhone(db *gorm.DB, phone string) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := db.First(&recruiter, "phone = ?", phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecruiterNotFound
		}
		return nil, err
	}
	return &recruiter, nil
}

func (r *RecruiterRepositoryImpl) Create(db *gorm.DB, recruiter *models.Recruiter) error {
	var existing models.Recruiter
	if err := db.Where("phone = ?", recruiter.Phone).First(&existing).Error; err == nil {
		return ErrRecruiterAlreadyExists
	}
	return db.Create(recruiter).Error
}

func (r *RecruiterRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Recruiter{}).Count(&count).Error
	return count, err
}
