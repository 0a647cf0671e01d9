package usecase

import (
	"github.com/fadilmartias/feedback-service/internal/dto"
	"github.com/fadilmartias/feedback-service/internal/query"
	"github.com/fadilmartias/feedback-service/internal/response"
	"github.com/google/uuid"
)

type AppFeedbackUsecase struct {
	store AppFeedbackStore
}

func NewAppFeedbackUsecase(store AppFeedbackStore) *AppFeedbackUsecase {
	return &AppFeedbackUsecase{store: store}
}

func (u *AppFeedbackUsecase) Create(payload *dto.AppFeedbackCreate) (*dto.AppFeedbackOut, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	rec := payload.ToModel()
	if err := u.store.Insert(rec); err != nil {
		return nil, err
	}
	out := dto.NewAppFeedbackOut(rec)
	return &out, nil
}

func (u *AppFeedbackUsecase) Get(id uuid.UUID) (*dto.AppFeedbackOut, error) {
	rec, err := u.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	out := dto.NewAppFeedbackOut(rec)
	return &out, nil
}

func (u *AppFeedbackUsecase) Update(id uuid.UUID, payload *dto.AppFeedbackUpdate) (*dto.AppFeedbackOut, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	rec, err := u.store.Update(id, payload.Changes())
	if err != nil {
		return nil, err
	}
	out := dto.NewAppFeedbackOut(rec)
	return &out, nil
}

func (u *AppFeedbackUsecase) Delete(id uuid.UUID) error {
	return u.store.Delete(id)
}

type AppListParams struct {
	Filter query.AppFilter
	Sort   string
	Order  string
	Limit  *int
	Cursor string
}

func (u *AppFeedbackUsecase) List(p AppListParams) (*response.Page[dto.AppFeedbackOut], error) {
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
		c := query.Cursor{Sort: sort, ID: last.ID, Time: last.CreatedAt, Rating: last.Overall}
		token := query.EncodeCursor(c)
		next = &token
	}

	outs := make([]dto.AppFeedbackOut, 0, len(items))
	for i := range items {
		outs = append(outs, dto.NewAppFeedbackOut(&items[i]))
	}
	return &response.Page[dto.AppFeedbackOut]{Items: outs, NextCursor: next, Count: len(outs)}, nil
}

func (u *AppFeedbackUsecase) Stats(f query.AppFilter) (*dto.AppFeedbackStats, error) {
	items, err := u.store.SearchAll(f)
	if err != nil {
		return nil, err
	}

	stats := &dto.AppFeedbackStats{
		CountTotal: len(items),
		TopTags:    []dto.TagCount{},
	}

	overall := make([]int, 0, len(items))
	var usability, reliability, performance, support []int
	tagLists := make([][]string, 0, len(items))
	for i := range items {
		overall = append(overall, items[i].Overall)
		if items[i].Usability != nil {
			usability = append(usability, *items[i].Usability)
		}
		if items[i].Reliability != nil {
			reliability = append(reliability, *items[i].Reliability)
		}
		if items[i].Performance != nil {
			performance = append(performance, *items[i].Performance)
		}
		if items[i].SupportExperience != nil {
			support = append(support, *items[i].SupportExperience)
		}
		if len(items[i].Tags) > 0 {
			tagLists = append(tagLists, items[i].Tags)
		}
	}

	stats.AvgOverall = avgOf(overall)
	stats.Distribution = ratingDistribution(overall)
	stats.FacetAverages = map[string]*float64{
		"usability":          avgOf(usability),
		"reliability":        avgOf(reliability),
		"performance":        avgOf(performance),
		"support_experience": avgOf(support),
	}
	stats.TopTags = topTags(tagLists, topTagLimit)
	return stats, nil
}
