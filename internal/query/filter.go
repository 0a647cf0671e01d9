package query

import (
	"time"

	"github.com/fadilmartias/feedback-service/internal/model"
	"github.com/google/uuid"
)

// ProfileFilter narrows a profile feedback query. Nil fields impose no
// constraint; set fields combine with AND. Tags use OR semantics: a record
// qualifies when it carries at least one of the given tags (exact element
// match; tags are canonicalized to lowercase at the boundary).
type ProfileFilter struct {
	RevieweeProfileID *uuid.UUID
	ReviewerProfileID *uuid.UUID
	MatchID           *uuid.UUID
	MinOverall        *int
	MaxOverall        *int
	Tags              []string
	Since             *time.Time
}

// Matches reports whether rec qualifies under the filter. The repository
// translates the same constraints to SQL; the two must agree.
func (f ProfileFilter) Matches(rec *model.ProfileFeedback) bool {
	if f.RevieweeProfileID != nil && rec.RevieweeProfileID != *f.RevieweeProfileID {
		return false
	}
	if f.ReviewerProfileID != nil && rec.ReviewerProfileID != *f.ReviewerProfileID {
		return false
	}
	if f.MatchID != nil && (rec.MatchID == nil || *rec.MatchID != *f.MatchID) {
		return false
	}
	if f.MinOverall != nil && rec.OverallExperience < *f.MinOverall {
		return false
	}
	if f.MaxOverall != nil && rec.OverallExperience > *f.MaxOverall {
		return false
	}
	if f.Since != nil && rec.CreatedAt.Before(*f.Since) {
		return false
	}
	if len(f.Tags) > 0 && !anyTagMatch(rec.Tags, f.Tags) {
		return false
	}
	return true
}

// AppFilter narrows an app feedback query, with the same combination rules
// as ProfileFilter.
type AppFilter struct {
	AuthorProfileID *uuid.UUID
	MinOverall      *int
	MaxOverall      *int
	Tags            []string
	Since           *time.Time
}

func (f AppFilter) Matches(rec *model.AppFeedback) bool {
	if f.AuthorProfileID != nil && (rec.AuthorProfileID == nil || *rec.AuthorProfileID != *f.AuthorProfileID) {
		return false
	}
	if f.MinOverall != nil && rec.Overall < *f.MinOverall {
		return false
	}
	if f.MaxOverall != nil && rec.Overall > *f.MaxOverall {
		return false
	}
	if f.Since != nil && rec.CreatedAt.Before(*f.Since) {
		return false
	}
	if len(f.Tags) > 0 && !anyTagMatch(rec.Tags, f.Tags) {
		return false
	}
	return true
}

func anyTagMatch(recTags []string, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range recTags {
			if t == w {
				return true
			}
		}
	}
	return false
}
