package usecase

import (
	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/fadilmartias/feedback-service/internal/dto"
	"github.com/fadilmartias/feedback-service/internal/query"
	"github.com/fadilmartias/feedback-service/internal/response"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 20
	minPageLimit     = 1
	maxPageLimit     = 100
)

type ProfileFeedbackUsecase struct {
	store ProfileFeedbackStore
}

func NewProfileFeedbackUsecase(store ProfileFeedbackStore) *ProfileFeedbackUsecase {
	return &ProfileFeedbackUsecase{store: store}
}

func (u *ProfileFeedbackUsecase) Create(payload *dto.ProfileFeedbackCreate) (*dto.ProfileFeedbackOut, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	rec := payload.ToModel()
	if err := u.store.Insert(rec); err != nil {
		return nil, err
	}
	out := dto.NewProfileFeedbackOut(rec)
	return &out, nil
}

func (u *ProfileFeedbackUsecase) Get(id uuid.UUID) (*dto.ProfileFeedbackOut, error) {
	rec, err := u.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	out := dto.NewProfileFeedbackOut(rec)
	return &out, nil
}

func (u *ProfileFeedbackUsecase) Update(id uuid.UUID, payload *dto.ProfileFeedbackUpdate) (*dto.ProfileFeedbackOut, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	current, err := u.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	// The reviewer != reviewee invariant must hold for the merged record,
	// whichever side the patch supplies.
	reviewer := current.ReviewerProfileID
	if payload.ReviewerProfileID != nil {
		reviewer = *payload.ReviewerProfileID
	}
	reviewee := current.RevieweeProfileID
	if payload.RevieweeProfileID != nil {
		reviewee = *payload.RevieweeProfileID
	}
	if reviewer == reviewee {
		return nil, apperror.NewValidationError("reviewee_profile_id", "must differ from reviewer_profile_id")
	}

	rec, err := u.store.Update(id, payload.Changes())
	if err != nil {
		return nil, err
	}
	out := dto.NewProfileFeedbackOut(rec)
	return &out, nil
}

func (u *ProfileFeedbackUsecase) Delete(id uuid.UUID) error {
	return u.store.Delete(id)
}

// ProfileListParams carries the decoded list request. Limit is nil when the
// client did not send one.
type ProfileListParams struct {
	Filter query.ProfileFilter
	Sort   string
	Order  string
	Limit  *int
	Cursor string
}

// List produces one page of results plus the continuation token. It fetches
// limit+1 rows; an extra row means more pages exist and the cursor is built
// from the last retained record.
func (u *ProfileFeedbackUsecase) List(p ProfileListParams) (*response.Page[dto.ProfileFeedbackOut], error) {
	sort, err := query.NewSort(p.Sort, p.Order)
	if err != nil {
		return nil, err
	}
	limit, err := resolveLimit(p.Limit)
	if err != nil {
		return nil, err
	}

	var after *query.Cursor
	if p.Cursor != "" {
		after, err = query.DecodeCursor(p.Cursor, sort)
		if err != nil {
			return nil, err
		}
	}

	items, err := u.store.Search(p.Filter, sort, after, limit+1)
	if err != nil {
		return nil, err
	}

	var next *string
	if len(items) > limit {
		items = items[:limit]
		last := items[limit-1]
		c := query.Cursor{Sort: sort, ID: last.ID, Time: last.CreatedAt, Rating: last.OverallExperience}
		token := query.EncodeCursor(c)
		next = &token
	}

	outs := make([]dto.ProfileFeedbackOut, 0, len(items))
	for i := range items {
		outs = append(outs, dto.NewProfileFeedbackOut(&items[i]))
	}
	return &response.Page[dto.ProfileFeedbackOut]{Items: outs, NextCursor: next, Count: len(outs)}, nil
}

// Stats aggregates over the records matching f. The filter is interpreted
// exactly as in List; a reviewee is required because the summary is scoped
// to one profile.
func (u *ProfileFeedbackUsecase) Stats(f query.ProfileFilter) (*dto.ProfileFeedbackStats, error) {
	if f.RevieweeProfileID == nil {
		return nil, apperror.NewValidationError("reviewee_profile_id", "is required")
	}

	items, err := u.store.SearchAll(f)
	if err != nil {
		return nil, err
	}

	stats := &dto.ProfileFeedbackStats{
		RevieweeProfileID: *f.RevieweeProfileID,
		CountTotal:        len(items),
		TopTags:           []dto.TagCount{},
	}

	overall := make([]int, 0, len(items))
	var safety, respect []int
	tagLists := make([][]string, 0, len(items))
	for i := range items {
		overall = append(overall, items[i].OverallExperience)
		if items[i].SafetyFeeling != nil {
			safety = append(safety, *items[i].SafetyFeeling)
		}
		if items[i].Respectfulness != nil {
			respect = append(respect, *items[i].Respectfulness)
		}
		if len(items[i].Tags) > 0 {
			tagLists = append(tagLists, items[i].Tags)
		}
	}

	stats.AvgOverall = avgOf(overall)
	stats.Distribution = ratingDistribution(overall)
	stats.FacetAverages = map[string]*float64{
		"safety_feeling": avgOf(safety),
		"respectfulness": avgOf(respect),
	}
	stats.TopTags = topTags(tagLists, topTagLimit)
	return stats, nil
}

func resolveLimit(limit *int) (int, error) {
	if limit == nil {
		return defaultPageLimit, nil
	}
	if *limit < minPageLimit || *limit > maxPageLimit {
		return 0, apperror.NewValidationError("limit", "must be between 1 and 100")
	}
	return *limit, nil
}
