package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careerbridge/backend/internal/service"
)

// ProfessionalHandler serves the public directory and detail views
type ProfessionalHandler struct {
	profileService service.IProfileService
}

func NewProfessionalHandler(profileService service.IProfileService) *ProfessionalHandler {
	return &ProfessionalHandler{profileService: profileService}
}

func (h *ProfessionalHandler) RegisterRoutes(router *gin.RouterGroup) {
	professionals := router.Group("/professionals")
	{
		professionals.GET("", h.ListProfessionals)
		professionals.GET("/:id", h.GetProfessional)
	}
}

func (h *ProfessionalHandler) ListProfessionals(c *gin.Context) {
	profiles, err := h.profileService.ListProfessionals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch professionals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"professionals": profiles})
}

func (h *ProfessionalHandler) GetProfessional(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "professional not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch professional"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
