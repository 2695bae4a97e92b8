package services

import (
	"gorm.io/gorm"

	"evhire_backend/internal/auth"
	"evhire_backend/internal/logger"
	"evhire_backend/internal/models"
	"evhire_backend/internal/repositories"
	"evhire_backend/internal/services/dto"
	"evhire_backend/internal/verification"
	"evhire_backend/pkg/apperrors"
)

type UserService interface {
	RegisterUser(db *gorm.DB, req *dto.RegisterUserRequest) (*models.User, error)
	RegisterRecruiter(db *gorm.DB, req *dto.RegisterRecruiterRequest) (*models.Recruiter, error)
	GetUser(db *gorm.DB, id uint) (*models.User, error)
	GetRecruiter(db *gorm.DB, id uint) (*models.Recruiter, error)
	UpdateProfile(db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*models.User, error)
	UpdateVerification(db *gorm.DB, id uint, req *dto.UpdateVerificationRequest) (*models.User, error)
	SearchCandidates(db *gorm.DB, query *dto.CandidateSearchQuery) ([]models.User, error)
}

type UserServiceImpl struct {
	userRepo      repositories.UserRepository
	recruiterRepo repositories.RecruiterRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	recruiterRepo repositories.RecruiterRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		recruiterRepo: recruiterRepo,
	}
}

// RegisterUser creates a candidate account. The verification pipeline starts
// at pending, step 1, regardless of anything in the request.
func (s *UserServiceImpl) RegisterUser(db *gorm.DB, req *dto.RegisterUserRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if !models.IsCandidateRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Phone:              req.PhoneNumber,
		PasswordHash:       hash,
		Role:               req.Role,
		Name:               req.Name,
		Email:              req.Email,
		City:               req.City,
		State:              req.State,
		Qualification:      req.Qualification,
		Experience:         req.Experience,
		CurrentSalary:      req.CurrentSalary,
		ExpectedSalary:     req.ExpectedSalary,
		Domain:             req.Domain,
		VehicleCategory:    req.VehicleCategory,
		TrainingRole:       req.TrainingRole,
		VerificationStatus: models.VerificationPending,
		VerificationStep:   1,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrPhoneAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "userId", user.ID, "role", user.Role)
	return user, nil
}

// RegisterRecruiter creates a recruiter account, trusted immediately.
func (s *UserServiceImpl) RegisterRecruiter(db *gorm.DB, req *dto.RegisterRecruiterRequest) (*models.Recruiter, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recruiter := &models.Recruiter{
		CompanyName:  req.CompanyName,
		EntityType:   req.EntityType,
		Phone:        req.PhoneNumber,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.recruiterRepo.Create(db, recruiter); err != nil {
		if apperrors.Is(err, repositories.ErrRecruiterAlreadyExists) {
			return nil, apperrors.ErrPhoneAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("recruiter registered", "recruiterId", recruiter.ID, "company", recruiter.CompanyName)
	return recruiter, nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetRecruiter(db *gorm.DB, id uint) (*models.Recruiter, error) {
	recruiter, err := s.recruiterRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecruiterNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return recruiter, nil
}

// UpdateProfile overwrites the editable profile fields. Verification state
// never moves through this path.
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUser(db, id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.City = req.City
	user.State = req.State
	user.Qualification = req.Qualification
	user.Experience = req.Experience
	user.CurrentSalary = req.CurrentSalary
	user.ExpectedSalary = req.ExpectedSalary
	user.Domain = req.Domain
	user.VehicleCategory = req.VehicleCategory
	user.TrainingRole = req.TrainingRole

	if err := s.userRepo.UpdateProfile(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetUser(db, id)
}

// UpdateVerification is the legacy direct status write kept for older
// clients. The target status must be in the closed enum and the move must be
// allowed by the transition table; anything else is rejected before touching
// the row.
func (s *UserServiceImpl) UpdateVerification(db *gorm.DB, id uint, req *dto.UpdateVerificationRequest) (*models.User, error) {
	status, ok := models.ParseVerificationStatus(req.VerificationStatus)
	if !ok {
		return nil, apperrors.ErrInvalidStatus("verification", "Unknown verification status: "+req.VerificationStatus)
	}

	user, err := s.GetUser(db, id)
	if err != nil {
		return nil, err
	}

	if !verification.CanTransition(user.VerificationStatus, status) {
		return nil, apperrors.ErrInvalidTransition
	}

	if err := s.userRepo.UpdateVerification(db, id, status, req.VerificationStep, req.QuizScore, req.TotalQuestions); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("verification status updated",
		"userId", id, "from", user.VerificationStatus, "to", status, "step", req.VerificationStep)
	return s.GetUser(db, id)
}

// SearchCandidates runs the recruiter-facing candidate search.
func (s *UserServiceImpl) SearchCandidates(db *gorm.DB, query *dto.CandidateSearchQuery) ([]models.User, error) {
	criteria := repositories.CandidateFilter{
		Domain:          query.Domain,
		VehicleCategory: query.VehicleCategory,
		City:            query.City,
		Experience:      query.Experience,
		Role:            models.UserRole(query.Role),
	}
	users, err := s.userRepo.SearchCandidates(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}
