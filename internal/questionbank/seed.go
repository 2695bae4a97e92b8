package questionbank

import (
	"encoding/json"
	"fmt"

	"evhire_backend/internal/logger"
	"evhire_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed loads the canonical bank into verification_questions. Idempotent: it
// does nothing when the table already has rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.VerificationQuestion{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count verification questions: %w", err)
	}
	if count > 0 {
		logger.Info("Question bank already seeded", "rows", count)
		return nil
	}

	entries := All()
	if err := Validate(entries); err != nil {
		return fmt.Errorf("question bank validation failed: %w", err)
	}

	rows := make([]models.VerificationQuestion, 0, len(entries))
	for _, e := range entries {
		row, err := toModel(e)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to seed question bank: %w", err)
	}
	logger.Info("Question bank seeded", "rows", len(rows))
	return nil
}

func toModel(e Entry) (models.VerificationQuestion, error) {
	textJSON, err := json.Marshal(e.Text)
	if err != nil {
		return models.VerificationQuestion{}, fmt.Errorf("failed to marshal question text: %w", err)
	}

	options := make([]models.QuestionOption, 0, len(e.Options))
	for _, opt := range e.Options {
		options = append(options, models.QuestionOption{
			Text:      opt.Text,
			IsCorrect: opt.Correct,
		})
	}
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return models.VerificationQuestion{}, fmt.Errorf("failed to marshal question options: %w", err)
	}

	row := models.VerificationQuestion{
		Role:       e.Role,
		Step:       e.Step,
		Text:       datatypes.JSON(textJSON),
		Options:    datatypes.JSON(optionsJSON),
		Difficulty: e.Difficulty,
		Points:     e.Points,
	}
	if e.Domain != "" {
		row.Domain = &e.Domain
	}
	if e.VehicleCategory != "" {
		row.VehicleCategory = &e.VehicleCategory
	}
	if e.TrainingRole != "" {
		row.TrainingRole = &e.TrainingRole
	}
	return row, nil
}
