package models

import "time"

// User is a platform candidate (technician, sales or workshop staff).
// Rows are never hard-deleted.
type User struct {
	BaseModel
	Phone        string   `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Profile
	Name            string `json:"name"`
	Email           string `json:"email"`
	City            string `json:"city"`
	State           string `json:"state"`
	Qualification   string `json:"qualification"`
	Experience      string `json:"experience"`
	CurrentSalary   string `json:"currentSalary"`
	ExpectedSalary  string `json:"expectedSalary"`
	Domain          string `json:"domain"`
	VehicleCategory string `json:"vehicleCategory"`
	TrainingRole    string `json:"trainingRole"`

	// Verification pipeline
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verificationStatus"`
	VerificationStep   int                `gorm:"default:1" json:"verificationStep"`
	QuizScore          *int               `json:"quizScore"`
	TotalQuestions     *int               `json:"totalQuestions"`
	LastQuizAttempt    *time.Time         `json:"lastQuizAttempt"`

	// Set only by the admin gate, never derived from VerificationStatus.
	IsAdminVerified bool `gorm:"default:false" json:"isAdminVerified"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    uint      `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
