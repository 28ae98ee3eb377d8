package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/careerbridge/backend/internal/models"
	"github.com/careerbridge/backend/internal/types"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionExpired     = errors.New("session has expired")
	ErrEmailTaken         = errors.New("user already exists")
)

// tokenTTL bounds both the JWT and the server-side session record
const tokenTTL = 24 * time.Hour

// AuthService handles sign-in, sign-out, session checks and admin user
// provisioning
type AuthService struct {
	db        *gorm.DB
	sessions  SessionStore
	jwtSecret string
}

// Ensure AuthService implements IAuthService
var _ IAuthService = (*AuthService)(nil)

func NewAuthService(db *gorm.DB, sessions SessionStore, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		sessions:  sessions,
		jwtSecret: jwtSecret,
	}
}

// Login verifies the credentials, opens a session and returns a signed token.
// All failure modes collapse to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	if err := s.sessions.Create(ctx, user.ID, tokenTTL); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the server-side session record. The token itself stops
// validating once the record is gone.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.sessions.Delete(ctx, userID)
}

// CurrentUser returns the identity and profile behind a session
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, *models.Profile, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, nil, err
	}

	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &user, nil, nil
		}
		return nil, nil, err
	}

	return &user, &profile, nil
}

// CreateUser provisions an auth identity and its profile row together. The
// two inserts run as a best-effort sequence: a profile insert failure leaves
// the identity in place and is surfaced as-is.
func (s *AuthService) CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, *models.Profile, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, nil, err
	}

	// Profile id equals the auth identity's id.
	profile := models.Profile{
		ID:           user.ID,
		Role:         req.Role,
		FullName:     req.FullName,
		Organization: optional(req.Organization),
		Title:        optional(req.Title),
		Bio:          optional(req.Bio),
		ContactEmail: optional(req.ContactEmail),
		PhoneNumber:  optional(req.PhoneNumber),
	}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, nil, err
	}

	return &user, &profile, nil
}

// DeleteUser removes the auth identity behind a deleted profile
func (s *AuthService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", userID).Error
}

func (s *AuthService) generateToken(userID uuid.UUID, email string) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies the token signature and requires the session record
// to still exist. Protected routes call this on every request, so a
// signed-out or expired session is rejected at the next navigation.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	live, err := s.sessions.Exists(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, ErrSessionExpired
	}

	return claims, nil
}

// optional maps an empty form string to a NULL column value
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
