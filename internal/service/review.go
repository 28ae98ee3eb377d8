package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerbridge/backend/internal/models"
	"github.com/careerbridge/backend/internal/types"
)

var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrRatingOutOfRange = errors.New("ratings must be between 1 and 5")
)

// guestReviewerID is written when the public form submits without a session.
// Reviewer identity is not tied to any account on the submission path.
const guestReviewerID = "temp-user-id"

// ReviewService handles review submission, listing and moderation
type ReviewService struct {
	db *gorm.DB
}

// Ensure ReviewService implements IReviewService
var _ IReviewService = (*ReviewService)(nil)

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ListForReviewee returns the published reviews for one profile, newest
// first, with the reviewer's display fields joined
func (s *ReviewService) ListForReviewee(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).
		Preload("Reviewer").
		Where("reviewee_id = ? AND is_published = ?", revieweeID, true).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageOverall computes the displayed star average: the overall ratings of
// the fetched reviews divided by their count, a missing rating counting as 0.
// An empty list averages to 0.
func AverageOverall(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		if r.RatingOverall != nil {
			sum += *r.RatingOverall
		}
	}
	return float64(sum) / float64(len(reviews))
}

// Create inserts a new review. Ratings, when present, must be in [1,5]; the
// review direction defaults to student-to-professional and a missing reviewer
// id falls back to the guest placeholder.
func (s *ReviewService) Create(ctx context.Context, revieweeID uuid.UUID, req *types.CreateReviewRequest) (*models.Review, error) {
	for _, rating := range []*int{
		req.RatingOverall, req.RatingContact, req.RatingTalk,
		req.RatingLearning, req.RatingFuture, req.RatingSatisfaction,
	} {
		if rating != nil && (*rating < 1 || *rating > 5) {
			return nil, ErrRatingOutOfRange
		}
	}

	reviewerID := req.ReviewerID
	if reviewerID == "" {
		reviewerID = guestReviewerID
	}

	reviewType := req.ReviewType
	if reviewType == "" {
		reviewType = models.ReviewTypeStudentToProfessional
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	review := models.Review{
		ReviewerID:         reviewerID,
		RevieweeID:         revieweeID,
		ReviewType:         reviewType,
		IsAnonymous:        req.IsAnonymous,
		Comment:            optional(req.Comment),
		RatingOverall:      req.RatingOverall,
		RatingContact:      req.RatingContact,
		RatingTalk:         req.RatingTalk,
		RatingLearning:     req.RatingLearning,
		RatingFuture:       req.RatingFuture,
		RatingSatisfaction: req.RatingSatisfaction,
		IsPublished:        published,
	}

	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

// ListAll returns every review for the admin table with reviewer and
// reviewee names joined, newest first
func (s *ReviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).
		Preload("Reviewer").
		Preload("Reviewee").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// SetPublished updates a single review's publish state
func (s *ReviewService) SetPublished(ctx context.Context, id uint, published bool) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	review.IsPublished = published
	if err := s.db.WithContext(ctx).Model(&review).Update("is_published", published).Error; err != nil {
		return nil, err
	}

	return &review, nil
}
