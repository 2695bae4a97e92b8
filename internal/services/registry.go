package services

import (
	"evhire_backend/internal/email"
)

// ServiceContainer holds every application service. Wired once in app.New.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	QuizService        QuizService
	JobService         JobService
	ApplicationService ApplicationService
	AdminService       AdminService
	StatsService       StatsService
	LeaderboardService LeaderboardService
	EmailProvider      email.Provider
}
