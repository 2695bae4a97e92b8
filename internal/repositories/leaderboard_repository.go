package repositories

import (
	"time"

	"evhire_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaderboardRepository interface {
	UpsertBest(db *gorm.DB, userID uint, day time.Time, score, total int) error
	TopForDay(db *gorm.DB, day time.Time, limit int) ([]models.QuizScore, error)
	BestForUser(db *gorm.DB, userID uint, day time.Time) (*models.QuizScore, error)
}

type LeaderboardRepositoryImpl struct{}

func NewLeaderboardRepository() LeaderboardRepository {
	return &LeaderboardRepositoryImpl{}
}

// UpsertBest keeps the best score per user per day. The GREATEST update runs
// inside a single ON CONFLICT statement so two concurrent submissions for the
// same user and day cannot lose the higher score. Never split this into a
// read-modify-write pair.
func (r *LeaderboardRepositoryImpl) UpsertBest(db *gorm.DB, userID uint, day time.Time, score, total int) error {
	row := models.QuizScore{
		UserID:         userID,
		Date:           truncateToDay(day),
		Score:          score,
		TotalQuestions: total,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":           gorm.Expr("GREATEST(quiz_scores.score, EXCLUDED.score)"),
			"total_questions": gorm.Expr("EXCLUDED.total_questions"),
			"updated_at":      time.Now(),
		}),
	}).Create(&row).Error
}

func (r *LeaderboardRepositoryImpl) TopForDay(db *gorm.DB, day time.Time, limit int) ([]models.QuizScore, error) {
	var scores []models.QuizScore
	err := db.Preload("User").
		Where("date = ?", truncateToDay(day)).
		Order("score DESC").
		Order("updated_at ASC").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}

func (r *LeaderboardRepositoryImpl) BestForUser(db *gorm.DB, userID uint, day time.Time) (*models.QuizScore, error) {
	var score models.QuizScore
	err := db.Where("user_id = ? AND date = ?", userID, truncateToDay(day)).First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
