package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"evhire_backend/internal/auth"
	"evhire_backend/internal/models"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

func makeQuestion(id uint, role models.UserRole, step, correct, points int) models.VerificationQuestion {
	options := []models.QuestionOption{
		{Text: map[string]string{"en": "option a"}},
		{Text: map[string]string{"en": "option b"}},
		{Text: map[string]string{"en": "option c"}},
	}
	options[correct].IsCorrect = true
	rawOptions, _ := json.Marshal(options)

	q := models.VerificationQuestion{
		Role:    role,
		Step:    step,
		Text:    datatypes.JSON(`{"en":"question"}`),
		Options: datatypes.JSON(rawOptions),
		Points:  points,
	}
	q.ID = id
	return q
}

func newQuizFixture(t *testing.T) (*memUserRepo, *memQuestionRepo, QuizService, *models.User) {
	t.Helper()

	userRepo := newMemUserRepo()
	user := &models.User{
		Phone:              "+911234567890",
		Role:               models.UserRoleTechnician,
		Name:               "Asha",
		VerificationStatus: models.VerificationPending,
		VerificationStep:   1,
	}
	require.NoError(t, userRepo.Create(nil, user))

	questionRepo := &memQuestionRepo{questions: []models.VerificationQuestion{
		makeQuestion(1, models.UserRoleTechnician, 1, 0, 1),
		makeQuestion(2, models.UserRoleTechnician, 1, 1, 2),
		makeQuestion(3, models.UserRoleTechnician, 1, 2, 1),
		makeQuestion(4, models.UserRoleSales, 1, 0, 1),
	}}

	leaderboard := NewLeaderboardService(newMemLeaderboardRepo(), userRepo, nil)
	quiz := NewQuizService(userRepo, questionRepo, leaderboard)
	return userRepo, questionRepo, quiz, user
}

func TestIssueQuizSession(t *testing.T) {
	_, _, quiz, user := newQuizFixture(t)

	session, err := quiz.IssueQuizSession(nil, &dto.QuizQuestionsQuery{
		UserID: user.ID,
		Role:   string(models.UserRoleTechnician),
	})
	require.NoError(t, err)
	require.Len(t, session.Questions, 3, "sales questions must not cross into the technician pool")
	assert.NotEmpty(t, session.SessionToken)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	claims, err := auth.ParseQuizSessionToken(session.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Len(t, claims.QuestionIDs, 3)
}

func TestIssueQuizSession_EmptyPool(t *testing.T) {
	_, _, quiz, user := newQuizFixture(t)

	_, err := quiz.IssueQuizSession(nil, &dto.QuizQuestionsQuery{
		UserID: user.ID,
		Role:   string(models.UserRoleWorkshop),
	})
	assert.ErrorIs(t, err, apperrors.ErrNoQuestionsAvailable)
}

func TestSubmit_PassAdvancesPipeline(t *testing.T) {
	userRepo, _, quiz, user := newQuizFixture(t)

	session, err := quiz.IssueQuizSession(nil, &dto.QuizQuestionsQuery{
		UserID: user.ID,
		Role:   string(models.UserRoleTechnician),
	})
	require.NoError(t, err)

	// All three answered with the correct option index.
	correct := map[uint]int{1: 0, 2: 1, 3: 2}
	answers := make([]dto.QuizAnswer, 0, len(session.Questions))
	for _, q := range session.Questions {
		answers = append(answers, dto.QuizAnswer{QuestionID: q.ID, SelectedOption: correct[q.ID]})
	}

	result, err := quiz.Submit(nil, &dto.QuizSubmitRequest{
		UserID:       user.ID,
		SessionToken: session.SessionToken,
		Answers:      answers,
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, models.VerificationStep2Completed, result.VerificationStatus)
	assert.Equal(t, 2, result.VerificationStep)

	stored, err := userRepo.FindByID(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStep2Completed, stored.VerificationStatus)
	require.NotNil(t, stored.QuizScore)
	assert.Equal(t, 4, *stored.QuizScore)
	assert.NotNil(t, stored.LastQuizAttempt)
}

func TestSubmit_FailKeepsStatus(t *testing.T) {
	userRepo, _, quiz, user := newQuizFixture(t)

	session, err := quiz.IssueQuizSession(nil, &dto.QuizQuestionsQuery{
		UserID: user.ID,
		Role:   string(models.UserRoleTechnician),
	})
	require.NoError(t, err)

	// Every answer wrong.
	answers := make([]dto.QuizAnswer, 0, len(session.Questions))
	wrong := map[uint]int{1: 1, 2: 0, 3: 0}
	for _, q := range session.Questions {
		answers = append(answers, dto.QuizAnswer{QuestionID: q.ID, SelectedOption: wrong[q.ID]})
	}

	result, err := quiz.Submit(nil, &dto.QuizSubmitRequest{
		UserID:       user.ID,
		SessionToken: session.SessionToken,
		Answers:      answers,
	})
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, models.VerificationPending, result.VerificationStatus)

	stored, err := userRepo.FindByID(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, stored.VerificationStatus)
	require.NotNil(t, stored.QuizScore)
	assert.Equal(t, 0, *stored.QuizScore, "a failed score is still recorded")
}

func TestSubmit_RejectsForeignToken(t *testing.T) {
	userRepo, _, quiz, user := newQuizFixture(t)

	other := &models.User{Phone: "+919999999999", Role: models.UserRoleTechnician}
	require.NoError(t, userRepo.Create(nil, other))

	session, err := quiz.IssueQuizSession(nil, &dto.QuizQuestionsQuery{
		UserID: user.ID,
		Role:   string(models.UserRoleTechnician),
	})
	require.NoError(t, err)

	_, err = quiz.Submit(nil, &dto.QuizSubmitRequest{
		UserID:       other.ID,
		SessionToken: session.SessionToken,
		Answers:      nil,
	})
	assert.ErrorIs(t, err, apperrors.ErrQuizSessionMismatch)
}

func TestSubmit_RejectsUnissuedQuestion(t *testing.T) {
	_, _, quiz, user := newQuizFixture(t)

	session, err := quiz.IssueQuizSession(nil, &dto.QuizQuestionsQuery{
		UserID: user.ID,
		Role:   string(models.UserRoleTechnician),
	})
	require.NoError(t, err)

	_, err = quiz.Submit(nil, &dto.QuizSubmitRequest{
		UserID:       user.ID,
		SessionToken: session.SessionToken,
		Answers:      []dto.QuizAnswer{{QuestionID: 4, SelectedOption: 0}},
	})
	assert.ErrorIs(t, err, apperrors.ErrQuizSessionMismatch)
}

func TestSubmit_RejectsGarbageToken(t *testing.T) {
	_, _, quiz, user := newQuizFixture(t)

	_, err := quiz.Submit(nil, &dto.QuizSubmitRequest{
		UserID:       user.ID,
		SessionToken: "bogus",
		Answers:      nil,
	})
	assert.ErrorIs(t, err, apperrors.ErrQuizSessionInvalid)
}

func TestSubmit_QuestionDTOHidesCorrectFlag(t *testing.T) {
	_, _, quiz, user := newQuizFixture(t)

	session, err := quiz.IssueQuizSession(nil, &dto.QuizQuestionsQuery{
		UserID: user.ID,
		Role:   string(models.UserRoleTechnician),
	})
	require.NoError(t, err)

	raw, err := json.Marshal(session.Questions)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "isCorrect")
	assert.NotContains(t, string(raw), "IsCorrect")
}
