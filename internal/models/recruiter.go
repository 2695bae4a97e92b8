package models

// Recruiter accounts are trusted on registration; there is no verification
// pipeline for them.
type Recruiter struct {
	BaseModel
	CompanyName  string `gorm:"not null" json:"companyName"`
	EntityType   string `json:"entityType"`
	Phone        string `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	Email        string `json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	JobPosts []JobPost `gorm:"foreignKey:RecruiterID" json:"-"`
}
