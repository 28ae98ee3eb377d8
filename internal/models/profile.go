package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent      = "student"
	RoleProfessional = "professional"
)

// Profile is the public-facing record for a platform member. Its ID matches
// the owning User's ID 1:1; only full_name is required, the rest of the
// display fields are nullable.
type Profile struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Role         string    `gorm:"size:20;not null" json:"role"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	Organization *string   `gorm:"size:255" json:"organization"`
	Title        *string   `gorm:"size:255" json:"title"`
	Bio          *string   `gorm:"type:text" json:"bio"`
	AvatarURL    *string   `gorm:"size:255" json:"avatar_url"`
	ContactEmail *string   `gorm:"size:255" json:"contact_email"`
	PhoneNumber  *string   `gorm:"size:50" json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
