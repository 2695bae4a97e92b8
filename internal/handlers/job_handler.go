package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evhire_backend/internal/services"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.Create)
		jobs.GET("", h.ListPublic)
		jobs.GET("/:id", h.Get)
		jobs.PUT("/:id", h.Update)
		jobs.GET("/:id/applicants", h.FindApplicants)
		jobs.GET("/recruiter/:recruiterId", h.ListByRecruiter)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// ListPublic returns active approved posts only.
func (h *JobHandler) ListPublic(c *gin.Context) {
	db := h.GetDB(c)

	jobs, err := h.jobService.ListPublic(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Get(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Update edits pending or rejected content. Approved posts are locked.
func (h *JobHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Update(db, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) FindApplicants(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	applicants, err := h.jobService.FindApplicants(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applicants)
}

func (h *JobHandler) ListByRecruiter(c *gin.Context) {
	recruiterID, err := ParseParamID(c, "recruiterId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	jobs, err := h.jobService.ListByRecruiter(db, recruiterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}
