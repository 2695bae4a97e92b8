package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"evhire_backend/internal/logger"
	"evhire_backend/internal/repositories"
)

// TokenWorker purges expired refresh tokens in the background.
type TokenWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewTokenWorker(db *gorm.DB, userRepo repositories.UserRepository) *TokenWorker {
	return &TokenWorker{
		db:       db,
		userRepo: userRepo,
		interval: 6 * time.Hour,
	}
}

func (w *TokenWorker) Start(ctx context.Context) {
	go w.cleanExpiredTokens(ctx)
}

func (w *TokenWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.WorkerLog("token", "stopped", nil)
			return
		case <-ticker.C:
			removed, err := w.userRepo.CleanExpiredRefreshTokens(w.db)
			if err != nil {
				logger.WorkerLog("token", "clean expired refresh tokens", err)
				continue
			}
			if removed > 0 {
				logger.Info("expired refresh tokens removed", "count", removed)
			}
		}
	}
}
