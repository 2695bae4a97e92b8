package dto

import "evhire_backend/internal/models"

// RegisterUserRequest - candidate registration
type RegisterUserRequest struct {
	PhoneNumber string          `json:"phoneNumber" binding:"required"`
	Password    string          `json:"password" binding:"required,min=6"`
	Role        models.UserRole `json:"role" binding:"required" validate:"is-user-role"`

	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	City            string `json:"city"`
	State           string `json:"state"`
	Qualification   string `json:"qualification"`
	Experience      string `json:"experience"`
	CurrentSalary   string `json:"currentSalary"`
	ExpectedSalary  string `json:"expectedSalary"`
	Domain          string `json:"domain"`
	VehicleCategory string `json:"vehicleCategory"`
	TrainingRole    string `json:"trainingRole"`
}

// RegisterRecruiterRequest - recruiter registration, trusted immediately
type RegisterRecruiterRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	EntityType  string `json:"entityType"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest - profile update; verification fields are not editable here
type UpdateUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	City            string `json:"city"`
	State           string `json:"state"`
	Qualification   string `json:"qualification"`
	Experience      string `json:"experience"`
	CurrentSalary   string `json:"currentSalary"`
	ExpectedSalary  string `json:"expectedSalary"`
	Domain          string `json:"domain"`
	VehicleCategory string `json:"vehicleCategory"`
	TrainingRole    string `json:"trainingRole"`
}

// UpdateVerificationRequest - the legacy verification write. Status goes
// through the closed enum and the transition table before it is persisted.
type UpdateVerificationRequest struct {
	VerificationStatus string `json:"verificationStatus" binding:"required" validate:"is-verification-status"`
	VerificationStep   int    `json:"verificationStep" binding:"required,min=1"`
	QuizScore          *int   `json:"quizScore"`
	TotalQuestions     *int   `json:"totalQuestions"`
}

// CandidateSearchQuery - recruiter-facing candidate search filters
type CandidateSearchQuery struct {
	Domain          string `form:"domain"`
	VehicleCategory string `form:"vehicleCategory"`
	City            string `form:"city"`
	Experience      string `form:"experience"`
	Role            string `form:"role" validate:"omitempty,is-user-role"`
}
