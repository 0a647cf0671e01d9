package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AppFeedback is a rating of the platform itself. The author is optional so
// anonymous submissions are allowed.
type AppFeedback struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorProfileID   *uuid.UUID     `gorm:"type:uuid;index" json:"author_profile_id"`
	Overall           int            `gorm:"not null;check:overall >= 1 AND overall <= 5" json:"overall"`
	Usability         *int           `gorm:"check:usability >= 1 AND usability <= 5" json:"usability"`
	Reliability       *int           `gorm:"check:reliability >= 1 AND reliability <= 5" json:"reliability"`
	Performance       *int           `gorm:"check:performance >= 1 AND performance <= 5" json:"performance"`
	SupportExperience *int           `gorm:"check:support_experience >= 1 AND support_experience <= 5" json:"support_experience"`
	Headline          *string        `gorm:"type:varchar(120)" json:"headline"`
	Comment           *string        `gorm:"type:varchar(2000)" json:"comment"`
	Tags              pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (f *AppFeedback) TableName() string {
	return "app_feedbacks"
}

func (f *AppFeedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
