package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/careerbridge/backend/internal/models"
)

// ReviewerInfo is the reviewer display projection joined onto a public review
type ReviewerInfo struct {
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// ReviewResponse is the public shape of a review. Anonymity is applied here,
// at serialization time: an anonymous review carries no reviewer projection
// even though the row stores the identity.
type ReviewResponse struct {
	ID                 uint          `json:"id"`
	RevieweeID         uuid.UUID     `json:"reviewee_id"`
	ReviewType         string        `json:"review_type"`
	IsAnonymous        bool          `json:"is_anonymous"`
	Comment            *string       `json:"comment"`
	RatingOverall      *int          `json:"rating_overall"`
	RatingContact      *int          `json:"rating_contact"`
	RatingTalk         *int          `json:"rating_talk"`
	RatingLearning     *int          `json:"rating_learning"`
	RatingFuture       *int          `json:"rating_future"`
	RatingSatisfaction *int          `json:"rating_satisfaction"`
	IsPublished        bool          `json:"is_published"`
	CreatedAt          time.Time     `json:"created_at"`
	Reviewer           *ReviewerInfo `json:"reviewer,omitempty"`
}

// NewReviewResponse builds the public projection of a review
func NewReviewResponse(r models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:                 r.ID,
		RevieweeID:         r.RevieweeID,
		ReviewType:         r.ReviewType,
		IsAnonymous:        r.IsAnonymous,
		Comment:            r.Comment,
		RatingOverall:      r.RatingOverall,
		RatingContact:      r.RatingContact,
		RatingTalk:         r.RatingTalk,
		RatingLearning:     r.RatingLearning,
		RatingFuture:       r.RatingFuture,
		RatingSatisfaction: r.RatingSatisfaction,
		IsPublished:        r.IsPublished,
		CreatedAt:          r.CreatedAt,
	}

	if !r.IsAnonymous && r.Reviewer != nil {
		resp.Reviewer = &ReviewerInfo{
			FullName:  r.Reviewer.FullName,
			AvatarURL: r.Reviewer.AvatarURL,
		}
	}

	return resp
}
