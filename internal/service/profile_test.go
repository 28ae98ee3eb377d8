package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/careerbridge/backend/internal/models"
	"github.com/careerbridge/backend/internal/service"
	"github.com/careerbridge/backend/internal/testhelpers"
	"github.com/careerbridge/backend/internal/types"
)

func strPtr(s string) *string { return &s }

func createProfile(t *testing.T, db *gorm.DB, role, name string, createdAt time.Time) models.Profile {
	t.Helper()
	profile := models.Profile{
		ID:       uuid.New(),
		Role:     role,
		FullName: name,
	}
	require.NoError(t, db.Create(&profile).Error)
	require.NoError(t, db.Model(&profile).Update("created_at", createdAt).Error)
	profile.CreatedAt = createdAt
	return profile
}

func TestListProfessionalsFiltersAndOrders(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)

	now := time.Now()
	createProfile(t, db, models.RoleStudent, "Student", now)
	oldPro := createProfile(t, db, models.RoleProfessional, "Old Pro", now.Add(-2*time.Hour))
	newPro := createProfile(t, db, models.RoleProfessional, "New Pro", now.Add(-time.Minute))

	profiles, err := svc.ListProfessionals(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2, "students must not appear in the directory")
	assert.Equal(t, newPro.ID, profiles[0].ID)
	assert.Equal(t, oldPro.ID, profiles[1].ID)
}

func TestGetProfileNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	profile := createProfile(t, db, models.RoleProfessional, "Original Name", time.Now())
	require.NoError(t, db.Model(&profile).Update("organization", "Acme").Error)

	updated, err := svc.Update(context.Background(), profile.ID, &types.UpdateProfileRequest{
		FullName: strPtr("New Name"),
		Bio:      strPtr("hello"),
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.FullName)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "hello", *updated.Bio)
	require.NotNil(t, updated.Organization)
	assert.Equal(t, "Acme", *updated.Organization, "untouched field must survive")
	assert.Equal(t, models.RoleProfessional, updated.Role)
}

func TestUpdateProfileNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)

	_, err := svc.Update(context.Background(), uuid.New(), &types.UpdateProfileRequest{FullName: strPtr("X")})
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestDeleteProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	profile := createProfile(t, db, models.RoleProfessional, "Doomed", time.Now())
	survivor := createProfile(t, db, models.RoleProfessional, "Survivor", time.Now())

	require.NoError(t, svc.Delete(context.Background(), profile.ID))

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err := svc.Get(context.Background(), survivor.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), profile.ID), service.ErrProfileNotFound)
}

func TestSetAvatarURL(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	profile := createProfile(t, db, models.RoleProfessional, "Pro", time.Now())

	url := "https://bucket.s3.amazonaws.com/avatars/x.png"
	require.NoError(t, svc.SetAvatarURL(context.Background(), profile.ID, &url))

	got, err := svc.Get(context.Background(), profile.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, url, *got.AvatarURL)

	require.NoError(t, svc.SetAvatarURL(context.Background(), profile.ID, nil))
	got, err = svc.Get(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AvatarURL)
}

func TestStatsCounts(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)

	createProfile(t, db, models.RoleStudent, "S1", time.Now())
	createProfile(t, db, models.RoleStudent, "S2", time.Now())
	pro := createProfile(t, db, models.RoleProfessional, "P1", time.Now())

	reviewSvc := service.NewReviewService(db)
	_, err := reviewSvc.Create(context.Background(), pro.ID, &types.CreateReviewRequest{RatingOverall: intPtr(5)})
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.Students)
	assert.EqualValues(t, 1, stats.Professionals)
	assert.EqualValues(t, 1, stats.Reviews)
}
