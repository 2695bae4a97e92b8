package repositories

import (
	"errors"
	"time"

	"evhire_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	// User operations
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	FindByPhone(db *gorm.DB, phone string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	UpdateProfile(db *gorm.DB, user *models.User) error

	// Verification pipeline writes
	UpdateQuizResult(db *gorm.DB, userID uint, status models.VerificationStatus, step, score, total int, attemptedAt time.Time) error
	UpdateVerification(db *gorm.DB, userID uint, status models.VerificationStatus, step int, score, total *int) error
	SetVerificationStatus(db *gorm.DB, userID uint, status models.VerificationStatus) error
	SetAdminVerified(db *gorm.DB, userID uint) error

	// Admin and search reads
	ListPendingVerification(db *gorm.DB) ([]models.User, error)
	SearchCandidates(db *gorm.DB, criteria CandidateFilter) ([]models.User, error)
	CountAll(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status models.VerificationStatus) (int64, error)
	CountAdminVerified(db *gorm.DB) (int64, error)

	// RefreshToken operations
	CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error
	FindRefreshToken(db *gorm.DB, token string) (*models.RefreshToken, error)
	DeleteRefreshToken(db *gorm.DB, token string) error
	CleanExpiredRefreshTokens(db *gorm.DB) (int64, error)
}

type CandidateFilter struct {
	Domain          string
	VehicleCategory string
	City            string
	Experience      string
	Role            models.UserRole
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByPhone(db *gorm.DB, phone string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "phone = ?", phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Where("phone = ?", user.Phone).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdateProfile(db *gorm.DB, user *models.User) error {
	result := db.Model(user).Updates(map[string]interface{}{
		"name":             user.Name,
		"city":             user.City,
		"state":            user.State,
		"qualification":    user.Qualification,
		"experience":       user.Experience,
		"current_salary":   user.CurrentSalary,
		"expected_salary":  user.ExpectedSalary,
		"domain":           user.Domain,
		"vehicle_category": user.VehicleCategory,
		"training_role":    user.TrainingRole,
		"updated_at":       time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateQuizResult(db *gorm.DB, userID uint, status models.VerificationStatus, step, score, total int, attemptedAt time.Time) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"verification_status": status,
		"verification_step":   step,
		"quiz_score":          score,
		"total_questions":     total,
		"last_quiz_attempt":   attemptedAt,
		"updated_at":          time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateVerification writes status and step, plus the score fields when the
// caller supplies them.
func (r *UserRepositoryImpl) UpdateVerification(db *gorm.DB, userID uint, status models.VerificationStatus, step int, score, total *int) error {
	updates := map[string]interface{}{
		"verification_status": status,
		"verification_step":   step,
		"updated_at":          time.Now(),
	}
	if score != nil {
		updates["quiz_score"] = *score
	}
	if total != nil {
		updates["total_questions"] = *total
	}
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetVerificationStatus(db *gorm.DB, userID uint, status models.VerificationStatus) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"verification_status": status,
		"updated_at":          time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetAdminVerified(db *gorm.DB, userID uint) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_admin_verified": true,
		"updated_at":        time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListPendingVerification returns users sitting in the admin review queue,
// most recently active first.
func (r *UserRepositoryImpl) ListPendingVerification(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.
		Where("verification_status IN ?", []models.VerificationStatus{
			models.VerificationStep2Completed,
			models.VerificationStep3Pending,
		}).
		Order("updated_at DESC").
		Find(&users).Error
	return users, err
}

// SearchCandidates applies any combination of filters; city is a
// case-insensitive substring match. Results are ordered by quiz score
// descending with unscored users last, then by recency.
func (r *UserRepositoryImpl) SearchCandidates(db *gorm.DB, criteria CandidateFilter) ([]models.User, error) {
	query := db.Model(&models.User{}).
		Where("role IN ?", []models.UserRole{
			models.UserRoleTechnician,
			models.UserRoleSales,
			models.UserRoleWorkshop,
		})

	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.Domain != "" {
		query = query.Where("domain = ?", criteria.Domain)
	}
	if criteria.VehicleCategory != "" {
		query = query.Where("vehicle_category = ?", criteria.VehicleCategory)
	}
	if criteria.Experience != "" {
		query = query.Where("experience = ?", criteria.Experience)
	}
	if criteria.City != "" {
		query = query.Where("city ILIKE ?", "%"+criteria.City+"%")
	}

	var users []models.User
	err := query.
		Order("quiz_score DESC NULLS LAST").
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByStatus(db *gorm.DB, status models.VerificationStatus) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("verification_status = ?", status).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountAdminVerified(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("is_admin_verified = ?", true).Count(&count).Error
	return count, err
}

// RefreshToken operations

func (r *UserRepositoryImpl) CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error {
	return db.Create(token).Error
}

func (r *UserRepositoryImpl) FindRefreshToken(db *gorm.DB, token string) (*models.RefreshToken, error) {
	var refreshToken models.RefreshToken
	err := db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *UserRepositoryImpl) DeleteRefreshToken(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&models.RefreshToken{}).Error
}

func (r *UserRepositoryImpl) CleanExpiredRefreshTokens(db *gorm.DB) (int64, error) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}
