package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careerbridge/backend/internal/service"
	"github.com/careerbridge/backend/internal/types"
)

// AdminHandler serves the protected admin area: dashboard counts, user
// CRUD, avatar management and review moderation
type AdminHandler struct {
	authService    service.IAuthService
	profileService service.IProfileService
	reviewService  service.IReviewService
	avatarService  service.IAvatarService
}

func NewAdminHandler(
	authService service.IAuthService,
	profileService service.IProfileService,
	reviewService service.IReviewService,
	avatarService service.IAvatarService,
) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		profileService: profileService,
		reviewService:  reviewService,
		avatarService:  avatarService,
	}
}

// RegisterRoutes registers the admin routes on an auth-gated group
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/stats", h.GetStats)
		admin.GET("/profiles", h.ListProfiles)
		admin.POST("/users", h.CreateUser)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.POST("/users/:id/avatar", h.UploadAvatar)
		admin.DELETE("/users/:id/avatar", h.DeleteAvatar)
		admin.GET("/reviews", h.ListReviews)
		admin.PATCH("/reviews/:id/publish", h.SetReviewPublished)
	}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.profileService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profiles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, profile, err := h.authService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    user,
		"profile": profile,
	})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteUser removes the profile row and then the auth identity behind it.
// The sequence is best-effort: an identity delete failure after the profile
// delete is surfaced but not rolled back.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	if err := h.authService.DeleteUser(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete auth identity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

type UploadAvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

func (h *AdminHandler) UploadAvatar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read avatar file"})
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.avatarService.Upload(
		c.Request.Context(),
		id,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		if errors.Is(err, service.ErrAvatarTooLarge) || errors.Is(err, service.ErrNotAnImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload avatar"})
		return
	}

	if err := h.profileService.SetAvatarURL(c.Request.Context(), id, &url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save avatar URL"})
		return
	}

	c.JSON(http.StatusOK, UploadAvatarResponse{AvatarURL: url})
}

func (h *AdminHandler) DeleteAvatar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	if err := h.avatarService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete avatar"})
		return
	}

	if err := h.profileService.SetAvatarURL(c.Request.Context(), id, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear avatar URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "avatar deleted successfully"})
}

func (h *AdminHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *AdminHandler) SetReviewPublished(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	var req types.SetReviewPublishedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.reviewService.SetPublished(c.Request.Context(), uint(id), *req.IsPublished)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update review"})
		return
	}

	c.JSON(http.StatusOK, review)
}
