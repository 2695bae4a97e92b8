package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"evhire_backend/internal/services"
	"evhire_backend/internal/services/dto"
)

type QuizHandler struct {
	*BaseHandler
	quizService        services.QuizService
	leaderboardService services.LeaderboardService
}

func NewQuizHandler(
	base *BaseHandler,
	quizService services.QuizService,
	leaderboardService services.LeaderboardService,
) *QuizHandler {
	return &QuizHandler{
		BaseHandler:        base,
		quizService:        quizService,
		leaderboardService: leaderboardService,
	}
}

func (h *QuizHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quiz := rg.Group("/quiz")
	{
		quiz.GET("/questions", h.GetQuestions)
		quiz.POST("/submit", h.Submit)
	}

	rg.GET("/verification/questions", h.GetVerificationQuestions)
	rg.GET("/leaderboard/daily", h.DailyLeaderboard)
}

// GetQuestions issues a quiz session from the general pool.
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	var query dto.QuizQuestionsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	session, err := h.quizService.IssueQuizSession(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetVerificationQuestions issues a session for one pipeline step.
func (h *QuizHandler) GetVerificationQuestions(c *gin.Context) {
	var query dto.VerificationQuestionsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	session, err := h.quizService.IssueVerificationSession(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Submit grades a submission server-side and reports the pipeline position.
func (h *QuizHandler) Submit(c *gin.Context) {
	var req dto.QuizSubmitRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	result, err := h.quizService.Submit(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DailyLeaderboard returns today's top scores, or a past day via ?date=.
func (h *QuizHandler) DailyLeaderboard(c *gin.Context) {
	day := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	db := h.GetDB(c)

	entries, err := h.leaderboardService.TopForDay(db, day)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    day.Format("2006-01-02"),
		"entries": entries,
	})
}
