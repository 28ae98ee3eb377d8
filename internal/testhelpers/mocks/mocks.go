package mocks

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/careerbridge/backend/internal/models"
	"github.com/careerbridge/backend/internal/service"
	"github.com/careerbridge/backend/internal/types"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, *models.Profile, error) {
	args := m.Called(ctx, userID)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	var profile *models.Profile
	if v := args.Get(1); v != nil {
		profile = v.(*models.Profile)
	}
	return user, profile, args.Error(2)
}

func (m *MockAuthService) CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, *models.Profile, error) {
	args := m.Called(ctx, req)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	var profile *models.Profile
	if v := args.Get(1); v != nil {
		profile = v.(*models.Profile)
	}
	return user, profile, args.Error(2)
}

func (m *MockAuthService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	args := m.Called(ctx, token)
	var claims *types.TokenClaims
	if v := args.Get(0); v != nil {
		claims = v.(*types.TokenClaims)
	}
	return claims, args.Error(1)
}

// MockProfileService is a mock implementation of service.IProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) ListProfessionals(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	var profiles []models.Profile
	if v := args.Get(0); v != nil {
		profiles = v.([]models.Profile)
	}
	return profiles, args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	var profile *models.Profile
	if v := args.Get(0); v != nil {
		profile = v.(*models.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileService) ListAll(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	var profiles []models.Profile
	if v := args.Get(0); v != nil {
		profiles = v.([]models.Profile)
	}
	return profiles, args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, id, req)
	var profile *models.Profile
	if v := args.Get(0); v != nil {
		profile = v.(*models.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileService) SetAvatarURL(ctx context.Context, id uuid.UUID, url *string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func (m *MockProfileService) Stats(ctx context.Context) (*service.DashboardStats, error) {
	args := m.Called(ctx)
	var stats *service.DashboardStats
	if v := args.Get(0); v != nil {
		stats = v.(*service.DashboardStats)
	}
	return stats, args.Error(1)
}

// MockReviewService is a mock implementation of service.IReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) ListForReviewee(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, revieweeID)
	var reviews []models.Review
	if v := args.Get(0); v != nil {
		reviews = v.([]models.Review)
	}
	return reviews, args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, revieweeID uuid.UUID, req *types.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, revieweeID, req)
	var review *models.Review
	if v := args.Get(0); v != nil {
		review = v.(*models.Review)
	}
	return review, args.Error(1)
}

func (m *MockReviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	var reviews []models.Review
	if v := args.Get(0); v != nil {
		reviews = v.([]models.Review)
	}
	return reviews, args.Error(1)
}

func (m *MockReviewService) SetPublished(ctx context.Context, id uint, published bool) (*models.Review, error) {
	args := m.Called(ctx, id, published)
	var review *models.Review
	if v := args.Get(0); v != nil {
		review = v.(*models.Review)
	}
	return review, args.Error(1)
}

// MockAvatarService is a mock implementation of service.IAvatarService
type MockAvatarService struct {
	mock.Mock
}

func (m *MockAvatarService) Upload(ctx context.Context, userID uuid.UUID, fileName, contentType string, size int64, body io.Reader) (string, error) {
	args := m.Called(ctx, userID, fileName, contentType, size, body)
	return args.String(0), args.Error(1)
}

func (m *MockAvatarService) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MemorySessionStore is an in-memory implementation of service.SessionStore
// for tests that exercise the real auth service
type MemorySessionStore struct {
	sessions map[uuid.UUID]time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[uuid.UUID]time.Time)}
}

func (s *MemorySessionStore) Create(_ context.Context, userID uuid.UUID, ttl time.Duration) error {
	s.sessions[userID] = time.Now().Add(ttl)
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, userID uuid.UUID) error {
	delete(s.sessions, userID)
	return nil
}

func (s *MemorySessionStore) Exists(_ context.Context, userID uuid.UUID) (bool, error) {
	expiry, ok := s.sessions[userID]
	if !ok {
		return false, nil
	}
	return time.Now().Before(expiry), nil
}

// FakeObjectStore records object-store calls so tests can assert which
// requests the avatar service issued
type FakeObjectStore struct {
	Objects   map[string][]byte
	PutCalls  []string
	ListCalls []string
	DeleteErr error
	PutErr    error
	ListErr   error
}

func NewFakeObjectStore() *FakeObjectStore {
	return &FakeObjectStore{Objects: make(map[string][]byte)}
}

func (f *FakeObjectStore) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.PutErr != nil {
		return nil, f.PutErr
	}
	data, _ := io.ReadAll(params.Body)
	f.Objects[*params.Key] = data
	f.PutCalls = append(f.PutCalls, *params.Key)
	return &s3.PutObjectOutput{}, nil
}

func (f *FakeObjectStore) ListObjectsV2(_ context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.ListCalls = append(f.ListCalls, *params.Prefix)
	out := &s3.ListObjectsV2Output{}
	for key := range f.Objects {
		if strings.HasPrefix(key, *params.Prefix) {
			k := key
			out.Contents = append(out.Contents, s3types.Object{Key: &k})
		}
	}
	return out, nil
}

func (f *FakeObjectStore) DeleteObjects(_ context.Context, params *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	for _, obj := range params.Delete.Objects {
		delete(f.Objects, *obj.Key)
	}
	return &s3.DeleteObjectsOutput{}, nil
}
