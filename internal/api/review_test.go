package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/careerbridge/backend/internal/models"
	"github.com/careerbridge/backend/internal/service"
	"github.com/careerbridge/backend/internal/types"
)

func ratingPtr(v int) *int { return &v }

func TestListReviewsHidesAnonymousReviewer(t *testing.T) {
	router, svcs := setupTestRouter(t)
	revieweeID := uuid.New()
	reviewer := &models.Profile{ID: uuid.New(), Role: models.RoleStudent, FullName: "Student A"}

	svcs.Review.On("ListForReviewee", mock.Anything, revieweeID).Return([]models.Review{
		{
			ID:            1,
			ReviewerID:    reviewer.ID.String(),
			RevieweeID:    revieweeID,
			ReviewType:    models.ReviewTypeStudentToProfessional,
			IsAnonymous:   false,
			RatingOverall: ratingPtr(5),
			IsPublished:   true,
			Reviewer:      reviewer,
		},
		{
			// The row stores the identity; the response must not.
			ID:            2,
			ReviewerID:    reviewer.ID.String(),
			RevieweeID:    revieweeID,
			ReviewType:    models.ReviewTypeStudentToProfessional,
			IsAnonymous:   true,
			RatingOverall: ratingPtr(3),
			IsPublished:   true,
			Reviewer:      reviewer,
		},
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/professionals/"+revieweeID.String()+"/reviews", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	reviews := body["reviews"].([]interface{})
	require.Len(t, reviews, 2)

	named := reviews[0].(map[string]interface{})
	require.Contains(t, named, "reviewer")
	assert.Equal(t, "Student A", named["reviewer"].(map[string]interface{})["full_name"])

	anonymous := reviews[1].(map[string]interface{})
	assert.NotContains(t, anonymous, "reviewer")
	assert.NotContains(t, w.Body.String(), reviewer.ID.String(), "reviewer id must never serialize")

	assert.InDelta(t, 4.0, body["average_rating"].(float64), 1e-9)
}

func TestListReviewsAverageWithNoReviews(t *testing.T) {
	router, svcs := setupTestRouter(t)
	revieweeID := uuid.New()
	svcs.Review.On("ListForReviewee", mock.Anything, revieweeID).Return([]models.Review{}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/professionals/"+revieweeID.String()+"/reviews", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Zero(t, body["average_rating"].(float64))
	assert.Empty(t, body["reviews"])
}

func TestCreateReview(t *testing.T) {
	router, svcs := setupTestRouter(t)
	revieweeID := uuid.New()

	svcs.Review.On("Create", mock.Anything, revieweeID, mock.MatchedBy(func(req *types.CreateReviewRequest) bool {
		return req.Comment == "良い経験でした" && *req.RatingOverall == 5
	})).Return(&models.Review{
		ID:            7,
		ReviewerID:    "temp-user-id",
		RevieweeID:    revieweeID,
		ReviewType:    models.ReviewTypeStudentToProfessional,
		RatingOverall: ratingPtr(5),
		IsPublished:   true,
	}, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/professionals/"+revieweeID.String()+"/reviews",
		`{"comment":"良い経験でした","rating_overall":5}`, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 7, body["id"])
	assert.True(t, body["is_published"].(bool))
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	router, svcs := setupTestRouter(t)
	revieweeID := uuid.New()
	svcs.Review.On("Create", mock.Anything, revieweeID, mock.Anything).
		Return(nil, service.ErrRatingOutOfRange)

	w := doJSON(t, router, http.MethodPost, "/api/v1/professionals/"+revieweeID.String()+"/reviews",
		`{"rating_overall":6}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReviewInvalidProfileID(t *testing.T) {
	router, svcs := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/professionals/nope/reviews",
		`{"rating_overall":5}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svcs.Review.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
