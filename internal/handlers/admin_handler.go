package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evhire_backend/internal/middleware"
	"evhire_backend/internal/services"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
	jobService   services.JobService
	userService  services.UserService
	statsService services.StatsService
}

func NewAdminHandler(
	base *BaseHandler,
	adminService services.AdminService,
	jobService services.JobService,
	userService services.UserService,
	statsService services.StatsService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
		jobService:   jobService,
		userService:  userService,
		statsService: statsService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/jobs/pending", h.ListPendingJobs)
		admin.PUT("/jobs/:id/approve", h.ApproveJob)
		admin.PUT("/jobs/:id/reject", h.RejectJob)

		admin.GET("/users/pending", h.ListPendingUsers)
		admin.PUT("/users/:id/verify", h.SetVerification)
		admin.PUT("/users/:id/admin-verify", h.AdminVerify)

		admin.GET("/candidates/search", h.SearchCandidates)
		admin.GET("/stats", h.Stats)
	}
}

func (h *AdminHandler) ListPendingJobs(c *gin.Context) {
	db := h.GetDB(c)

	jobs, err := h.jobService.ListPending(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *AdminHandler) ApproveJob(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Approve(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *AdminHandler) RejectJob(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Reject(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListPendingUsers returns the manual review queue, newest activity first.
func (h *AdminHandler) ListPendingUsers(c *gin.Context) {
	db := h.GetDB(c)

	users, err := h.adminService.ListPendingVerification(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// SetVerification forces a terminal verification decision.
func (h *AdminHandler) SetVerification(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.SetVerificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.adminService.SetVerificationStatus(db, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// AdminVerify grants the trusted badge to a fully verified candidate.
func (h *AdminHandler) AdminVerify(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	user, err := h.adminService.AdminVerify(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) SearchCandidates(c *gin.Context) {
	var query dto.CandidateSearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	users, err := h.userService.SearchCandidates(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	db := h.GetDB(c)

	stats, err := h.statsService.AdminStats(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
