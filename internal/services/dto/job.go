package dto

import "evhire_backend/internal/models"

// CreateJobRequest - a new post always starts pending
type CreateJobRequest struct {
	RecruiterID uint            `json:"recruiterId" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Role        models.UserRole `json:"role" binding:"required" validate:"is-user-role"`
	Brand       string          `json:"brand"`
	Salary      string          `json:"salary"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
}

// UpdateJobRequest - content edit, rejected once the post is approved
type UpdateJobRequest struct {
	Title       string          `json:"title"`
	Role        models.UserRole `json:"role" validate:"omitempty,is-user-role"`
	Brand       string          `json:"brand"`
	Salary      string          `json:"salary"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
}

// CreateApplicationRequest - idempotent apply
type CreateApplicationRequest struct {
	UserID    uint `json:"userId" binding:"required"`
	JobPostID uint `json:"jobPostId" binding:"required"`
}
