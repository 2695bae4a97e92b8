package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evhire_backend/internal/services"
	"evhire_backend/internal/services/dto"
	"evhire_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	{
		applications.POST("", h.Apply)
		applications.GET("/user/:userId", h.ListByUser)
		applications.GET("/user/:userId/ids", h.ListJobIDsByUser)
	}
}

// Apply records an application. A repeated apply for the same post returns
// the same success response without creating another row.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.applicationService.Apply(db, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application recorded"})
}

func (h *ApplicationHandler) ListByUser(c *gin.Context) {
	userID, err := ParseParamID(c, "userId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) ListJobIDsByUser(c *gin.Context) {
	userID, err := ParseParamID(c, "userId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	ids, err := h.applicationService.ListJobIDsByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobIds": ids})
}
