package dto

import (
	"time"

	"github.com/fadilmartias/feedback-service/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AppFeedbackCreate struct {
	AuthorProfileID   *uuid.UUID `json:"author_profile_id"`
	Overall           int        `json:"overall" validate:"required,min=1,max=5"`
	Usability         *int       `json:"usability" validate:"omitempty,min=1,max=5"`
	Reliability       *int       `json:"reliability" validate:"omitempty,min=1,max=5"`
	Performance       *int       `json:"performance" validate:"omitempty,min=1,max=5"`
	SupportExperience *int       `json:"support_experience" validate:"omitempty,min=1,max=5"`
	Headline          *string    `json:"headline" validate:"omitempty,min=1,max=120"`
	Comment           *string    `json:"comment" validate:"omitempty,min=1,max=2000"`
	Tags              []string   `json:"tags" validate:"omitempty,max=20,dive,max=64"`
}

func (p *AppFeedbackCreate) Validate() error {
	if err := runValidate(p); err != nil {
		return err
	}
	p.Tags = normalizeTags(p.Tags)
	return nil
}

func (p *AppFeedbackCreate) ToModel() *model.AppFeedback {
	return &model.AppFeedback{
		AuthorProfileID:   p.AuthorProfileID,
		Overall:           p.Overall,
		Usability:         p.Usability,
		Reliability:       p.Reliability,
		Performance:       p.Performance,
		SupportExperience: p.SupportExperience,
		Headline:          p.Headline,
		Comment:           p.Comment,
		Tags:              pq.StringArray(p.Tags),
	}
}

// AppFeedbackUpdate is a partial update: only non-nil fields are applied.
type AppFeedbackUpdate struct {
	AuthorProfileID   *uuid.UUID `json:"author_profile_id"`
	Overall           *int       `json:"overall" validate:"omitempty,min=1,max=5"`
	Usability         *int       `json:"usability" validate:"omitempty,min=1,max=5"`
	Reliability       *int       `json:"reliability" validate:"omitempty,min=1,max=5"`
	Performance       *int       `json:"performance" validate:"omitempty,min=1,max=5"`
	SupportExperience *int       `json:"support_experience" validate:"omitempty,min=1,max=5"`
	Headline          *string    `json:"headline" validate:"omitempty,min=1,max=120"`
	Comment           *string    `json:"comment" validate:"omitempty,min=1,max=2000"`
	Tags              []string   `json:"tags" validate:"omitempty,max=20,dive,max=64"`
}

func (p *AppFeedbackUpdate) Validate() error {
	if err := runValidate(p); err != nil {
		return err
	}
	p.Tags = normalizeTags(p.Tags)
	return nil
}

func (p *AppFeedbackUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if p.AuthorProfileID != nil {
		changes["author_profile_id"] = *p.AuthorProfileID
	}
	if p.Overall != nil {
		changes["overall"] = *p.Overall
	}
	if p.Usability != nil {
		changes["usability"] = *p.Usability
	}
	if p.Reliability != nil {
		changes["reliability"] = *p.Reliability
	}
	if p.Performance != nil {
		changes["performance"] = *p.Performance
	}
	if p.SupportExperience != nil {
		changes["support_experience"] = *p.SupportExperience
	}
	if p.Headline != nil {
		changes["headline"] = *p.Headline
	}
	if p.Comment != nil {
		changes["comment"] = *p.Comment
	}
	if p.Tags != nil {
		changes["tags"] = pq.StringArray(p.Tags)
	}
	return changes
}

type AppFeedbackOut struct {
	ID                uuid.UUID  `json:"id"`
	AuthorProfileID   *uuid.UUID `json:"author_profile_id"`
	Overall           int        `json:"overall"`
	Usability         *int       `json:"usability"`
	Reliability       *int       `json:"reliability"`
	Performance       *int       `json:"performance"`
	SupportExperience *int       `json:"support_experience"`
	Headline          *string    `json:"headline"`
	Comment           *string    `json:"comment"`
	Tags              []string   `json:"tags"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func NewAppFeedbackOut(m *model.AppFeedback) AppFeedbackOut {
	return AppFeedbackOut{
		ID:                m.ID,
		AuthorProfileID:   m.AuthorProfileID,
		Overall:           m.Overall,
		Usability:         m.Usability,
		Reliability:       m.Reliability,
		Performance:       m.Performance,
		SupportExperience: m.SupportExperience,
		Headline:          m.Headline,
		Comment:           m.Comment,
		Tags:              m.Tags,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

type AppFeedbackStats struct {
	CountTotal    int                 `json:"count_total"`
	AvgOverall    *float64            `json:"avg_overall"`
	Distribution  map[string]int      `json:"distribution_overall"`
	FacetAverages map[string]*float64 `json:"facet_averages"`
	TopTags       []TagCount          `json:"top_tags"`
}
