package service

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/careerbridge/backend/internal/models"
	"github.com/careerbridge/backend/internal/types"
)

// IAuthService defines the auth service surface consumed by handlers and
// middleware
type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, *models.Profile, error)
	CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, *models.Profile, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

// IProfileService defines the profile service surface
type IProfileService interface {
	ListProfessionals(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	ListAll(ctx context.Context) ([]models.Profile, error)
	Update(ctx context.Context, id uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetAvatarURL(ctx context.Context, id uuid.UUID, url *string) error
	Stats(ctx context.Context) (*DashboardStats, error)
}

// IReviewService defines the review service surface
type IReviewService interface {
	ListForReviewee(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error)
	Create(ctx context.Context, revieweeID uuid.UUID, req *types.CreateReviewRequest) (*models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	SetPublished(ctx context.Context, id uint, published bool) (*models.Review, error)
}

// IAvatarService defines the avatar storage surface
type IAvatarService interface {
	Upload(ctx context.Context, userID uuid.UUID, fileName, contentType string, size int64, body io.Reader) (string, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// SessionStore persists admin sessions between requests. Sign-out removes the
// record; token validation requires it to still exist.
type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID, ttl time.Duration) error
	Delete(ctx context.Context, userID uuid.UUID) error
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ObjectStore is the subset of the S3 client the avatar service uses
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}
