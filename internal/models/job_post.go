package models

// JobPost content becomes immutable once Status is approved. IsActive is an
// independent soft-visibility flag, reserved for future use.
type JobPost struct {
	BaseModel
	RecruiterID uint      `gorm:"not null;index" json:"recruiterId"`
	Title       string    `gorm:"not null" json:"title"`
	Role        UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	Brand       string    `json:"brand"`
	Salary      string    `json:"salary"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      JobStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`

	Recruiter *Recruiter `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
}

// JobApplication rows are unique per (user, job post); a second apply is
// absorbed without error.
type JobApplication struct {
	BaseModel
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_job" json:"userId"`
	JobPostID uint `gorm:"not null;uniqueIndex:idx_user_job" json:"jobPostId"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	JobPost *JobPost `gorm:"foreignKey:JobPostID" json:"jobPost,omitempty"`
}
