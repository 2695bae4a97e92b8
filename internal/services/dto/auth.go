package dto

import "evhire_backend/internal/models"

// UserLoginRequest - candidate login, phone number is the login key
type UserLoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// RecruiterLoginRequest - recruiter login
type RecruiterLoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UserLoginResponse - tokens plus the full profile
type UserLoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *models.User `json:"user"`
}

// RecruiterLoginResponse - tokens plus the recruiter account
type RecruiterLoginResponse struct {
	AccessToken string            `json:"accessToken"`
	Recruiter   *models.Recruiter `json:"recruiter"`
}

// RefreshTokenRequest - exchange a refresh token for a new access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest - revoke a refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
