package dto

import (
	"time"

	"evhire_backend/internal/models"
)

// QuizQuestionsQuery - filters for the general quiz pool
type QuizQuestionsQuery struct {
	UserID          uint   `form:"userId" binding:"required"`
	Role            string `form:"role" binding:"required" validate:"is-user-role"`
	Domain          string `form:"domain"`
	VehicleCategory string `form:"vehicleCategory"`
	TrainingRole    string `form:"trainingRole"`
}

// VerificationQuestionsQuery - role+step scoped pool used by the pipeline
type VerificationQuestionsQuery struct {
	UserID uint   `form:"userId" binding:"required"`
	Role   string `form:"role" binding:"required" validate:"is-user-role"`
	Step   int    `form:"step" binding:"required,min=1,max=2"`
}

// QuizOptionDTO is the public shape of one option. The correct-answer marker
// is deliberately absent; grading happens server-side only.
type QuizOptionDTO struct {
	Text map[string]string `json:"text"`
}

// QuizQuestionDTO is the public shape of one issued question.
type QuizQuestionDTO struct {
	ID         uint              `json:"id"`
	Step       int               `json:"step"`
	Difficulty int               `json:"difficulty"`
	Points     int               `json:"points"`
	Text       map[string]string `json:"text"`
	Options    []QuizOptionDTO   `json:"options"`
}

// QuizSessionResponse - an issued sample plus its signed session token
type QuizSessionResponse struct {
	SessionToken string            `json:"sessionToken"`
	ExpiresAt    time.Time         `json:"expiresAt"`
	Questions    []QuizQuestionDTO `json:"questions"`
}

// QuizAnswer - one submitted answer, option by index
type QuizAnswer struct {
	QuestionID     uint `json:"questionId" binding:"required"`
	SelectedOption int  `json:"selectedOption" binding:"min=0"`
}

// QuizSubmitRequest - graded server-side against the session's question set
type QuizSubmitRequest struct {
	UserID       uint         `json:"userId" binding:"required"`
	SessionToken string       `json:"sessionToken" binding:"required"`
	Answers      []QuizAnswer `json:"answers" binding:"required"`
}

// QuizSubmitResponse - the graded result and the resulting pipeline position
type QuizSubmitResponse struct {
	Score              int                       `json:"score"`
	TotalPoints        int                       `json:"totalPoints"`
	TotalQuestions     int                       `json:"totalQuestions"`
	CorrectCount       int                       `json:"correctCount"`
	Percent            int                       `json:"percent"`
	Passed             bool                      `json:"passed"`
	VerificationStatus models.VerificationStatus `json:"verificationStatus"`
	VerificationStep   int                       `json:"verificationStep"`
}

// LeaderboardEntryDTO - one row of the daily leaderboard
type LeaderboardEntryDTO struct {
	Rank           int    `json:"rank"`
	UserID         uint   `json:"userId"`
	Name           string `json:"name"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
}
