package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewTypeStudentToProfessional = "s_to_p"
	ReviewTypeProfessionalToStudent = "p_to_s"
)

// Review is an evaluation one member submits about another. ReviewerID is a
// plain string rather than a Profile foreign key: the public submission form
// writes a placeholder reviewer id when no session exists, so the column may
// hold values that match no profile. The Reviewer join is best-effort and nil
// for such rows.
type Review struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	ReviewerID         string    `gorm:"size:36;not null;index" json:"reviewer_id"`
	RevieweeID         uuid.UUID `gorm:"type:varchar(36);not null;index" json:"reviewee_id"`
	ReviewType         string    `gorm:"size:10;not null;default:'s_to_p'" json:"review_type"`
	IsAnonymous        bool      `gorm:"not null;default:false" json:"is_anonymous"`
	Comment            *string   `gorm:"type:text" json:"comment"`
	RatingOverall      *int      `gorm:"check:rating_overall >= 1 AND rating_overall <= 5" json:"rating_overall"`
	RatingContact      *int      `gorm:"check:rating_contact >= 1 AND rating_contact <= 5" json:"rating_contact"`
	RatingTalk         *int      `gorm:"check:rating_talk >= 1 AND rating_talk <= 5" json:"rating_talk"`
	RatingLearning     *int      `gorm:"check:rating_learning >= 1 AND rating_learning <= 5" json:"rating_learning"`
	RatingFuture       *int      `gorm:"check:rating_future >= 1 AND rating_future <= 5" json:"rating_future"`
	RatingSatisfaction *int      `gorm:"check:rating_satisfaction >= 1 AND rating_satisfaction <= 5" json:"rating_satisfaction"`
	IsPublished        bool      `gorm:"not null;default:true" json:"is_published"`
	CreatedAt          time.Time `json:"created_at"`

	Reviewer *Profile `gorm:"foreignKey:ReviewerID;references:ID" json:"reviewer,omitempty"`
	Reviewee *Profile `gorm:"foreignKey:RevieweeID;references:ID" json:"reviewee,omitempty"`
}
