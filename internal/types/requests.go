package types

// LoginRequest represents the request body for admin sign-in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest represents the request body for provisioning a new auth
// identity together with its profile row
type CreateUserRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role" binding:"required,oneof=student professional"`
	FullName     string `json:"full_name" binding:"required"`
	Organization string `json:"organization"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	ContactEmail string `json:"contact_email"`
	PhoneNumber  string `json:"phone_number"`
}

// UpdateProfileRequest represents the request body for editing a profile.
// Empty strings are passed through unchanged; only provided fields are
// applied.
type UpdateProfileRequest struct {
	Role         *string `json:"role" binding:"omitempty,oneof=student professional"`
	FullName     *string `json:"full_name"`
	Organization *string `json:"organization"`
	Title        *string `json:"title"`
	Bio          *string `json:"bio"`
	AvatarURL    *string `json:"avatar_url"`
	ContactEmail *string `json:"contact_email"`
	PhoneNumber  *string `json:"phone_number"`
}

// CreateReviewRequest represents the request body for the public review form.
// Ratings default to 5 on the form side, so they normally arrive populated;
// when present they must fall in [1,5].
type CreateReviewRequest struct {
	ReviewerID         string `json:"reviewer_id"`
	ReviewType         string `json:"review_type" binding:"omitempty,oneof=s_to_p p_to_s"`
	Comment            string `json:"comment"`
	RatingOverall      *int   `json:"rating_overall"`
	RatingContact      *int   `json:"rating_contact"`
	RatingTalk         *int   `json:"rating_talk"`
	RatingLearning     *int   `json:"rating_learning"`
	RatingFuture       *int   `json:"rating_future"`
	RatingSatisfaction *int   `json:"rating_satisfaction"`
	IsAnonymous        bool   `json:"is_anonymous"`
	IsPublished        *bool  `json:"is_published"`
}

// SetReviewPublishedRequest represents the request body for the admin
// publish toggle
type SetReviewPublishedRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}
