package dto

import (
	"time"

	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/fadilmartias/feedback-service/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProfileFeedbackCreate struct {
	ReviewerProfileID uuid.UUID  `json:"reviewer_profile_id" validate:"required"`
	RevieweeProfileID uuid.UUID  `json:"reviewee_profile_id" validate:"required"`
	MatchID           *uuid.UUID `json:"match_id"`
	OverallExperience int        `json:"overall_experience" validate:"required,min=1,max=5"`
	WouldMeetAgain    *bool      `json:"would_meet_again"`
	SafetyFeeling     *int       `json:"safety_feeling" validate:"omitempty,min=1,max=5"`
	Respectfulness    *int       `json:"respectfulness" validate:"omitempty,min=1,max=5"`
	Headline          *string    `json:"headline" validate:"omitempty,min=1,max=120"`
	Comment           *string    `json:"comment" validate:"omitempty,min=1,max=2000"`
	Tags              []string   `json:"tags" validate:"omitempty,max=20,dive,max=64"`
}

func (p *ProfileFeedbackCreate) Validate() error {
	if err := runValidate(p); err != nil {
		return err
	}
	if p.ReviewerProfileID == p.RevieweeProfileID {
		return apperror.NewValidationError("reviewee_profile_id", "must differ from reviewer_profile_id")
	}
	p.Tags = normalizeTags(p.Tags)
	return nil
}

func (p *ProfileFeedbackCreate) ToModel() *model.ProfileFeedback {
	return &model.ProfileFeedback{
		ReviewerProfileID: p.ReviewerProfileID,
		RevieweeProfileID: p.RevieweeProfileID,
		MatchID:           p.MatchID,
		OverallExperience: p.OverallExperience,
		WouldMeetAgain:    p.WouldMeetAgain,
		SafetyFeeling:     p.SafetyFeeling,
		Respectfulness:    p.Respectfulness,
		Headline:          p.Headline,
		Comment:           p.Comment,
		Tags:              pq.StringArray(p.Tags),
	}
}

// ProfileFeedbackUpdate is a partial update: only non-nil fields are applied.
type ProfileFeedbackUpdate struct {
	ReviewerProfileID *uuid.UUID `json:"reviewer_profile_id"`
	RevieweeProfileID *uuid.UUID `json:"reviewee_profile_id"`
	MatchID           *uuid.UUID `json:"match_id"`
	OverallExperience *int       `json:"overall_experience" validate:"omitempty,min=1,max=5"`
	WouldMeetAgain    *bool      `json:"would_meet_again"`
	SafetyFeeling     *int       `json:"safety_feeling" validate:"omitempty,min=1,max=5"`
	Respectfulness    *int       `json:"respectfulness" validate:"omitempty,min=1,max=5"`
	Headline          *string    `json:"headline" validate:"omitempty,min=1,max=120"`
	Comment           *string    `json:"comment" validate:"omitempty,min=1,max=2000"`
	Tags              []string   `json:"tags" validate:"omitempty,max=20,dive,max=64"`
}

func (p *ProfileFeedbackUpdate) Validate() error {
	if err := runValidate(p); err != nil {
		return err
	}
	if p.ReviewerProfileID != nil && p.RevieweeProfileID != nil && *p.ReviewerProfileID == *p.RevieweeProfileID {
		return apperror.NewValidationError("reviewee_profile_id", "must differ from reviewer_profile_id")
	}
	p.Tags = normalizeTags(p.Tags)
	return nil
}

// Changes maps the supplied fields to their columns for a partial update.
func (p *ProfileFeedbackUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if p.ReviewerProfileID != nil {
		changes["reviewer_profile_id"] = *p.ReviewerProfileID
	}
	if p.RevieweeProfileID != nil {
		changes["reviewee_profile_id"] = *p.RevieweeProfileID
	}
	if p.MatchID != nil {
		changes["match_id"] = *p.MatchID
	}
	if p.OverallExperience != nil {
		changes["overall_experience"] = *p.OverallExperience
	}
	if p.WouldMeetAgain != nil {
		changes["would_meet_again"] = *p.WouldMeetAgain
	}
	if p.SafetyFeeling != nil {
		changes["safety_feeling"] = *p.SafetyFeeling
	}
	if p.Respectfulness != nil {
		changes["respectfulness"] = *p.Respectfulness
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

type ProfileFeedbackOut struct {
	ID                uuid.UUID  `json:"id"`
	ReviewerProfileID uuid.UUID  `json:"reviewer_profile_id"`
	RevieweeProfileID uuid.UUID  `json:"reviewee_profile_id"`
	MatchID           *uuid.UUID `json:"match_id"`
	OverallExperience int        `json:"overall_experience"`
	WouldMeetAgain    *bool      `json:"would_meet_again"`
	SafetyFeeling     *int       `json:"safety_feeling"`
	Respectfulness    *int       `json:"respectfulness"`
	Headline          *string    `json:"headline"`
	Comment           *string    `json:"comment"`
	Tags              []string   `json:"tags"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func NewProfileFeedbackOut(m *model.ProfileFeedback) ProfileFeedbackOut {
	return ProfileFeedbackOut{
		ID:                m.ID,
		ReviewerProfileID: m.ReviewerProfileID,
		RevieweeProfileID: m.RevieweeProfileID,
		MatchID:           m.MatchID,
		OverallExperience: m.OverallExperience,
		WouldMeetAgain:    m.WouldMeetAgain,
		SafetyFeeling:     m.SafetyFeeling,
		Respectfulness:    m.Respectfulness,
		Headline:          m.Headline,
		Comment:           m.Comment,
		Tags:              m.Tags,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

type ProfileFeedbackStats struct {
	RevieweeProfileID uuid.UUID           `json:"reviewee_profile_id"`
	CountTotal        int                 `json:"count_total"`
	AvgOverall        *float64            `json:"avg_overall_experience"`
	Distribution      map[string]int      `json:"distribution_overall_experience"`
	FacetAverages     map[string]*float64 `json:"facet_averages"`
	TopTags           []TagCount          `json:"top_tags"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
