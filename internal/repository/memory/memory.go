// Package memory provides in-memory feedback stores implementing the same
// contracts as the Postgres repositories, for tests and local development.
// Filtering reuses the query package's Matches predicates and ordering
// mirrors the SQL "ORDER BY key, id" total order, so behavior tracks the
// database-backed stores.
package memory

import (
	"bytes"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/fadilmartias/feedback-service/internal/model"
	"github.com/fadilmartias/feedback-service/internal/query"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProfileFeedbackStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*model.ProfileFeedback
}

func NewProfileFeedbackStore() *ProfileFeedbackStore {
	return &ProfileFeedbackStore{items: map[uuid.UUID]*model.ProfileFeedback{}}
}

func (s *ProfileFeedbackStore) Insert(fb *model.ProfileFeedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fb.MatchID != nil {
		for _, other := range s.items {
			if other.MatchID != nil && *other.MatchID == *fb.MatchID && other.ReviewerProfileID == fb.ReviewerProfileID {
				return apperror.NewConflictError("feedback already exists for this (match_id, reviewer)")
			}
		}
	}

	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	now := time.Now().UTC()
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = now
	}
	fb.UpdatedAt = fb.CreatedAt

	stored := *fb
	s.items[fb.ID] = &stored
	return nil
}

func (s *ProfileFeedbackStore) FindByID(id uuid.UUID) (*model.ProfileFeedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, apperror.NewNotFoundError("profile feedback", id)
	}
	out := *rec
	return &out, nil
}

func (s *ProfileFeedbackStore) Update(id uuid.UUID, changes map[string]any) (*model.ProfileFeedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, apperror.NewNotFoundError("profile feedback", id)
	}

	next := *rec
	applyProfileChanges(&next, changes)
	if next.MatchID != nil {
		for _, other := range s.items {
			if other.ID == id {
				continue
			}
			if other.MatchID != nil && *other.MatchID == *next.MatchID && other.ReviewerProfileID == next.ReviewerProfileID {
				return nil, apperror.NewConflictError("feedback already exists for this (match_id, reviewer)")
			}
		}
	}
	next.UpdatedAt = time.Now().UTC()
	s.items[id] = &next

	out := next
	return &out, nil
}

func (s *ProfileFeedbackStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return apperror.NewNotFoundError("profile feedback", id)
	}
	delete(s.items, id)
	return nil
}

func (s *ProfileFeedbackStore) Search(f query.ProfileFilter, sort query.Sort, after *query.Cursor, limit int) ([]model.ProfileFeedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*model.ProfileFeedback, 0, len(s.items))
	for _, rec := range s.items {
		if !f.Matches(rec) {
			continue
		}
		if after != nil && !profileAfterCursor(rec, after, sort) {
			continue
		}
		matched = append(matched, rec)
	}
	sortProfiles(matched, sort)

	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]model.ProfileFeedback, 0, len(matched))
	for _, rec := range matched {
		out = append(out, *rec)
	}
	return out, nil
}

func (s *ProfileFeedbackStore) SearchAll(f query.ProfileFilter) ([]model.ProfileFeedback, error) {
	return s.Search(f, query.DefaultSort(), nil, -1)
}

func applyProfileChanges(rec *model.ProfileFeedback, changes map[string]any) {
	for col, v := range changes {
		switch col {
		case "reviewer_profile_id":
			rec.ReviewerProfileID = v.(uuid.UUID)
		case "reviewee_profile_id":
			rec.RevieweeProfileID = v.(uuid.UUID)
		case "match_id":
			id := v.(uuid.UUID)
			rec.MatchID = &id
		case "overall_experience":
			rec.OverallExperience = v.(int)
		case "would_meet_again":
			b := v.(bool)
			rec.WouldMeetAgain = &b
		case "safety_feeling":
			n := v.(int)
			rec.SafetyFeeling = &n
		case "respectfulness":
			n := v.(int)
			rec.Respectfulness = &n
		case "headline":
			str := v.(string)
			rec.Headline = &str
		case "comment":
			str := v.(string)
			rec.Comment = &str
		case "tags":
			rec.Tags = v.(pq.StringArray)
		}
	}
}

func sortProfiles(recs []*model.ProfileFeedback, s query.Sort) {
	sortSlice(recs, func(a, b *model.ProfileFeedback) bool {
		return compareProfile(a, b, s) < 0
	})
}

func compareProfile(a, b *model.ProfileFeedback, s query.Sort) int {
	var c int
	if s.Field == query.FieldRating {
		c = compareInt(a.OverallExperience, b.OverallExperience)
	} else {
		c = compareTime(a.CreatedAt, b.CreatedAt)
	}
	if c == 0 {
		c = bytes.Compare(a.ID[:], b.ID[:])
	}
	if s.Desc() {
		c = -c
	}
	return c
}

// profileAfterCursor reports whether rec sits strictly past the keyset
// position in sort direction, matching the SQL (key, id) row comparison.
func profileAfterCursor(rec *model.ProfileFeedback, cur *query.Cursor, s query.Sort) bool {
	var c int
	if s.Field == query.FieldRating {
		c = compareInt(rec.OverallExperience, cur.Rating)
	} else {
		c = compareTime(rec.CreatedAt, cur.Time)
	}
	if c == 0 {
		c = bytes.Compare(rec.ID[:], cur.ID[:])
	}
	if s.Desc() {
		return c < 0
	}
	return c > 0
}

type AppFeedbackStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*model.AppFeedback
}

func NewAppFeedbackStore() *AppFeedbackStore {
	return &AppFeedbackStore{items: map[uuid.UUID]*model.AppFeedback{}}
}

func (s *AppFeedbackStore) Insert(fb *model.AppFeedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}
	fb.UpdatedAt = fb.CreatedAt

	stored := *fb
	s.items[fb.ID] = &stored
	return nil
}

func (s *AppFeedbackStore) FindByID(id uuid.UUID) (*model.AppFeedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, apperror.NewNotFoundError("app feedback", id)
	}
	out := *rec
	return &out, nil
}

func (s *AppFeedbackStore) Update(id uuid.UUID, changes map[string]any) (*model.AppFeedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, apperror.NewNotFoundError("app feedback", id)
	}

	next := *rec
	applyAppChanges(&next, changes)
	next.UpdatedAt = time.Now().UTC()
	s.items[id] = &next

	out := next
	return &out, nil
}

func (s *AppFeedbackStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return apperror.NewNotFoundError("app feedback", id)
	}
	delete(s.items, id)
	return nil
}

func (s *AppFeedbackStore) Search(f query.AppFilter, sort query.Sort, after *query.Cursor, limit int) ([]model.AppFeedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*model.AppFeedback, 0, len(s.items))
	for _, rec := range s.items {
		if !f.Matches(rec) {
			continue
		}
		if after != nil && !appAfterCursor(rec, after, sort) {
			continue
		}
		matched = append(matched, rec)
	}
	sortSlice(matched, func(a, b *model.AppFeedback) bool {
		return compareApp(a, b, sort) < 0
	})

	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]model.AppFeedback, 0, len(matched))
	for _, rec := range matched {
		out = append(out, *rec)
	}
	return out, nil
}

func (s *AppFeedbackStore) SearchAll(f query.AppFilter) ([]model.AppFeedback, error) {
	return s.Search(f, query.DefaultSort(), nil, -1)
}

func applyAppChanges(rec *model.AppFeedback, changes map[string]any) {
	for col, v := range changes {
		switch col {
		case "author_profile_id":
			id := v.(uuid.UUID)
			rec.AuthorProfileID = &id
		case "overall":
			rec.Overall = v.(int)
		case "usability":
			n := v.(int)
			rec.Usability = &n
		case "reliability":
			n := v.(int)
			rec.Reliability = &n
		case "performance":
			n := v.(int)
			rec.Performance = &n
		case "support_experience":
			n := v.(int)
			rec.SupportExperience = &n
		case "headline":
			str := v.(string)
			rec.Headline = &str
		case "comment":
			str := v.(string)
			rec.Comment = &str
		case "tags":
			rec.Tags = v.(pq.StringArray)
		}
	}
}

func compareApp(a, b *model.AppFeedback, s query.Sort) int {
	var c int
	if s.Field == query.FieldRating {
		c = compareInt(a.Overall, b.Overall)
	} else {
		c = compareTime(a.CreatedAt, b.CreatedAt)
	}
	if c == 0 {
		c = bytes.Compare(a.ID[:], b.ID[:])
	}
	if s.Desc() {
		c = -c
	}
	return c
}

func appAfterCursor(rec *model.AppFeedback, cur *query.Cursor, s query.Sort) bool {
	var c int
	if s.Field == query.FieldRating {
		c = compareInt(rec.Overall, cur.Rating)
	} else {
		c = compareTime(rec.CreatedAt, cur.Time)
	}
	if c == 0 {
		c = bytes.Compare(rec.ID[:], cur.ID[:])
	}
	if s.Desc() {
		return c < 0
	}
	return c > 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func sortSlice[T any](s []T, less func(a, b T) bool) {
	sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
}
