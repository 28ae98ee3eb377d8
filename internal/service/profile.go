package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careerbridge/backend/internal/models"
	"github.com/careerbridge/backend/internal/types"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService handles directory listings and admin profile management
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ListProfessionals returns the public directory: professionals only, newest
// first
func (s *ProfileService) ListProfessionals(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.WithContext(ctx).
		Where("role = ?", models.RoleProfessional).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Get retrieves a single profile by id
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ListAll returns every profile for the admin table, newest first
func (s *ProfileService) ListAll(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update applies only the fields present in the request
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if req.Role != nil {
		profile.Role = *req.Role
	}
	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Organization != nil {
		profile.Organization = req.Organization
	}
	if req.Title != nil {
		profile.Title = req.Title
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.ContactEmail != nil {
		profile.ContactEmail = req.ContactEmail
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = req.PhoneNumber
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

// Delete removes a profile row. Cascading cleanup of reviews referencing the
// profile is left to the store.
func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SetAvatarURL persists the avatar URL after a storage upload, or clears it
func (s *ProfileService) SetAvatarURL(ctx context.Context, id uuid.UUID, url *string) error {
	result := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", id).
		Update("avatar_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// DashboardStats holds the admin dashboard counts
type DashboardStats struct {
	TotalUsers    int64 `json:"total_users"`
	Students      int64 `json:"students"`
	Professionals int64 `json:"professionals"`
	Reviews       int64 `json:"reviews"`
}

// Stats derives the dashboard counts from the store
func (s *ProfileService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.WithContext(ctx).Model(&models.Profile{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("role = ?", models.RoleStudent).Count(&stats.Students).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("role = ?", models.RoleProfessional).Count(&stats.Professionals).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Review{}).Count(&stats.Reviews).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
