package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProfileFeedback is one profile rating an interaction with another profile.
// The composite unique index on (match_id, reviewer_profile_id) enforces at
// most one feedback per reviewer per match; rows with a NULL match_id never
// collide because Postgres treats NULLs as distinct in unique indexes.
type ProfileFeedback struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ReviewerProfileID uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_profile_feedback_match_reviewer,priority:2" json:"reviewer_profile_id"`
	RevieweeProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"reviewee_profile_id"`
	MatchID           *uuid.UUID     `gorm:"type:uuid;uniqueIndex:idx_profile_feedback_match_reviewer,priority:1" json:"match_id"`
	OverallExperience int            `gorm:"not null;check:overall_experience >= 1 AND overall_experience <= 5" json:"overall_experience"`
	WouldMeetAgain    *bool          `json:"would_meet_again"`
	SafetyFeeling     *int           `gorm:"check:safety_feeling >= 1 AND safety_feeling <= 5" json:"safety_feeling"`
	Respectfulness    *int           `gorm:"check:respectfulness >= 1 AND respectfulness <= 5" json:"respectfulness"`
	Headline          *string        `gorm:"type:varchar(120)" json:"headline"`
	Comment           *string        `gorm:"type:varchar(2000)" json:"comment"`
	Tags              pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (f *ProfileFeedback) TableName() string {
	return "profile_feedbacks"
}

func (f *ProfileFeedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
