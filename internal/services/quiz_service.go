package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evhire_backend/internal/auth"
	"evhire_backend/internal/config"
	"evhire_backend/internal/logger"
	"evhire_backend/internal/models"
	"evhire_backend/internal/repositories"
	"evhire_backend/internal/services/dto"
	"evhire_backend/internal/verification"
	"evhire_backend/pkg/apperrors"
)

type QuizService interface {
	IssueQuizSession(db *gorm.DB, query *dto.QuizQuestionsQuery) (*dto.QuizSessionResponse, error)
	IssueVerificationSession(db *gorm.DB, query *dto.VerificationQuestionsQuery) (*dto.QuizSessionResponse, error)
	Submit(db *gorm.DB, req *dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error)
}

type QuizServiceImpl struct {
	userRepo     repositories.UserRepository
	questionRepo repositories.QuestionRepository
	leaderboard  LeaderboardService
}

func NewQuizService(
	userRepo repositories.UserRepository,
	questionRepo repositories.QuestionRepository,
	leaderboard LeaderboardService,
) QuizService {
	return &QuizServiceImpl{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		leaderboard:  leaderboard,
	}
}

// IssueQuizSession samples the general pool for the user's role and profile
// filters and binds the resulting question set to a signed session token.
func (s *QuizServiceImpl) IssueQuizSession(db *gorm.DB, query *dto.QuizQuestionsQuery) (*dto.QuizSessionResponse, error) {
	filter := repositories.QuestionFilter{
		Role:            models.UserRole(query.Role),
		Domain:          query.Domain,
		VehicleCategory: query.VehicleCategory,
		TrainingRole:    query.TrainingRole,
	}
	return s.issueSession(db, query.UserID, filter)
}

// IssueVerificationSession samples the pool for one pipeline step. The
// user's stored profile supplies the dimension filters so a candidate cannot
// shop for an easier pool by changing query parameters.
func (s *QuizServiceImpl) IssueVerificationSession(db *gorm.DB, query *dto.VerificationQuestionsQuery) (*dto.QuizSessionResponse, error) {
	user, err := s.userRepo.FindByID(db, query.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	filter := repositories.QuestionFilter{
		Role:            models.UserRole(query.Role),
		Step:            query.Step,
		Domain:          user.Domain,
		VehicleCategory: user.VehicleCategory,
		TrainingRole:    user.TrainingRole,
	}
	return s.issueSession(db, query.UserID, filter)
}

func (s *QuizServiceImpl) issueSession(db *gorm.DB, userID uint, filter repositories.QuestionFilter) (*dto.QuizSessionResponse, error) {
	cfg := config.GetConfig()

	questions, err := s.questionRepo.SamplePool(db, filter, cfg.Quiz.SampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(questions) == 0 {
		return nil, apperrors.ErrNoQuestionsAvailable
	}

	questionIDs := make([]uint, 0, len(questions))
	publicQuestions := make([]dto.QuizQuestionDTO, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		text, err := q.DecodeText()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		options, err := q.DecodeOptions()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		publicOptions := make([]dto.QuizOptionDTO, 0, len(options))
		for _, opt := range options {
			publicOptions = append(publicOptions, dto.QuizOptionDTO{Text: opt.Text})
		}

		questionIDs = append(questionIDs, q.ID)
		publicQuestions = append(publicQuestions, dto.QuizQuestionDTO{
			ID:         q.ID,
			Step:       q.Step,
			Difficulty: q.Difficulty,
			Points:     q.Points,
			Text:       text,
			Options:    publicOptions,
		})
	}

	ttl := time.Duration(cfg.Quiz.SessionTTL) * time.Minute
	sessionID := uuid.NewString()
	token, err := auth.GenerateQuizSessionToken(userID, sessionID, questionIDs, ttl)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("quiz session issued",
		"userId", userID, "sessionId", sessionID, "questions", len(questionIDs))

	return &dto.QuizSessionResponse{
		SessionToken: token,
		ExpiresAt:    time.Now().Add(ttl),
		Questions:    publicQuestions,
	}, nil
}

// Submit re-grades the submission server-side against the question set bound
// to the session token, then moves the pipeline and records the daily best
// score. Client-reported scores are never trusted.
func (s *QuizServiceImpl) Submit(db *gorm.DB, req *dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	claims, err := auth.ParseQuizSessionToken(req.SessionToken)
	if err != nil {
		return nil, apperrors.ErrQuizSessionInvalid
	}
	if claims.UserID != req.UserID {
		return nil, apperrors.ErrQuizSessionMismatch
	}

	user, err := s.userRepo.FindByID(db, req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	questions, err := s.questionRepo.FindByIDs(db, claims.QuestionIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(questions) != len(claims.QuestionIDs) {
		return nil, apperrors.ErrQuizSessionInvalid
	}

	graded := make([]verification.GradedQuestion, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		correct, ok := q.CorrectOptionIndex()
		if !ok {
			return nil, apperrors.InternalError(repositories.ErrQuestionNotFound)
		}
		graded = append(graded, verification.GradedQuestion{
			QuestionID:    q.ID,
			CorrectOption: correct,
			Points:        q.Points,
		})
	}

	issued := make(map[uint]struct{}, len(claims.QuestionIDs))
	for _, id := range claims.QuestionIDs {
		issued[id] = struct{}{}
	}
	answers := make([]verification.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		if _, ok := issued[a.QuestionID]; !ok {
			return nil, apperrors.ErrQuizSessionMismatch
		}
		answers = append(answers, verification.Answer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
		})
	}

	cfg := config.GetConfig()
	result := verification.Evaluate(graded, answers, cfg.Quiz.PassPercent)
	outcome := verification.NextAfterQuiz(user.VerificationStatus, user.VerificationStep, result.Passed)

	now := time.Now()
	err = s.userRepo.UpdateQuizResult(db, user.ID,
		outcome.Status, outcome.Step, result.Score, result.TotalQuestions, now)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.leaderboard.RecordScore(db, user.ID, now, result.Score, result.TotalQuestions); err != nil {
		// Leaderboard bookkeeping must not fail the submission.
		logger.WithError(err).Warn("leaderboard record failed", "userId", user.ID)
	}

	logger.Info("quiz submitted",
		"userId", user.ID,
		"score", result.Score,
		"percent", result.Percent,
		"passed", result.Passed,
		"status", outcome.Status,
	)

	return &dto.QuizSubmitResponse{
		Score:              result.Score,
		TotalPoints:        result.TotalPoints,
		TotalQuestions:     result.TotalQuestions,
		CorrectCount:       result.CorrectCount,
		Percent:            result.Percent,
		Passed:             result.Passed,
		VerificationStatus: outcome.Status,
		VerificationStep:   outcome.Step,
	}, nil
}
