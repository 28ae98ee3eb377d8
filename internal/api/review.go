package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careerbridge/backend/internal/service"
	"github.com/careerbridge/backend/internal/types"
)

// ReviewHandler serves the public review list and the submission form
type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/professionals/:id/reviews")
	{
		reviews.GET("", h.ListReviews)
		reviews.POST("", h.CreateReview)
	}
}

// ListReviews returns the published reviews for a professional together with
// the displayed star average
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	revieweeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	reviews, err := h.reviewService.ListForReviewee(c.Request.Context(), revieweeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, NewReviewResponse(r))
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        responses,
		"average_rating": service.AverageOverall(reviews),
	})
}

// CreateReview accepts the public submission form. No session is required;
// the reviewer identity is whatever the form sends, or the guest placeholder.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	revieweeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), revieweeID, &req)
	if err != nil {
		if errors.Is(err, service.ErrRatingOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit review"})
		return
	}

	c.JSON(http.StatusCreated, NewReviewResponse(*review))
}
