package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"evhire_backend/internal/config"
	"evhire_backend/internal/logger"
	"evhire_backend/internal/repositories"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

// mirrorTTL keeps stale daily keys from accumulating in Redis.
const mirrorTTL = 48 * time.Hour

type LeaderboardService interface {
	RecordScore(db *gorm.DB, userID uint, at time.Time, score, total int) error
	TopForDay(db *gorm.DB, day time.Time) ([]dto.LeaderboardEntryDTO, error)
}

// LeaderboardServiceImpl persists daily bests in Postgres and mirrors them
// into a Redis sorted set for cheap top-N reads. Postgres is authoritative;
// a nil Redis client disables the mirror entirely.
type LeaderboardServiceImpl struct {
	leaderboardRepo repositories.LeaderboardRepository
	userRepo        repositories.UserRepository
	rdb             *redis.Client
}

func NewLeaderboardService(
	leaderboardRepo repositories.LeaderboardRepository,
	userRepo repositories.UserRepository,
	rdb *redis.Client,
) LeaderboardService {
	return &LeaderboardServiceImpl{
		leaderboardRepo: leaderboardRepo,
		userRepo:        userRepo,
		rdb:             rdb,
	}
}

// RecordScore upserts the user's best score for the day. The database write
// is atomic; the Redis mirror is best effort.
func (s *LeaderboardServiceImpl) RecordScore(db *gorm.DB, userID uint, at time.Time, score, total int) error {
	if err := s.leaderboardRepo.UpsertBest(db, userID, at, score, total); err != nil {
		return err
	}

	if s.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		key := dailyKey(at)
		member := strconv.FormatUint(uint64(userID), 10)
		pipe := s.rdb.Pipeline()
		pipe.ZAddGT(ctx, key, redis.Z{Score: float64(score), Member: member})
		pipe.Expire(ctx, key, mirrorTTL)
		if _, err := pipe.Exec(ctx); err != nil {
			logger.WithError(err).Warn("leaderboard mirror write failed", "key", key)
		}
	}
	return nil
}

// TopForDay returns the day's leaderboard with display names attached.
func (s *LeaderboardServiceImpl) TopForDay(db *gorm.DB, day time.Time) ([]dto.LeaderboardEntryDTO, error) {
	limit := config.GetConfig().Quiz.LeaderboardSize

	rows, err := s.leaderboardRepo.TopForDay(db, day, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for i, row := range rows {
		var name string
		if row.User != nil {
			name = row.User.Name
		}
		if name == "" {
			name = fmt.Sprintf("User #%d", row.UserID)
		}
		entries = append(entries, dto.LeaderboardEntryDTO{
			Rank:           i + 1,
			UserID:         row.UserID,
			Name:           name,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
		})
	}
	return entries, nil
}

func dailyKey(at time.Time) string {
	return "leaderboard:daily:" + at.UTC().Format("2006-01-02")
}
