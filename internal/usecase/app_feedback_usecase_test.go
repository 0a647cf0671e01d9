package usecase_test

import (
	"testing"
	"time"

	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/fadilmartias/feedback-service/internal/dto"
	"github.com/fadilmartias/feedback-service/internal/model"
	"github.com/fadilmartias/feedback-service/internal/query"
	"github.com/fadilmartias/feedback-service/internal/repository/memory"
	"github.com/fadilmartias/feedback-service/internal/usecase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppUC() (*usecase.AppFeedbackUsecase, *memory.AppFeedbackStore) {
	store := memory.NewAppFeedbackStore()
	return usecase.NewAppFeedbackUsecase(store), store
}

func TestCreateAppFeedbackAnonymous(t *testing.T) {
	uc, _ := newAppUC()

	out, err := uc.Create(&dto.AppFeedbackCreate{
		Overall:  5,
		Headline: strPtr("loving the new design"),
		Tags:     []string{"Praise"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, out.ID)
	assert.Nil(t, out.AuthorProfileID)
	assert.Equal(t, []string{"praise"}, out.Tags)
}

func TestAppFeedbackUpdateAndDelete(t *testing.T) {
	uc, _ := newAppUC()

	author := uuid.New()
	out, err := uc.Create(&dto.AppFeedbackCreate{
		AuthorProfileID: &author,
		Overall:         3,
		Usability:       intPtr(4),
	})
	require.NoError(t, err)

	updated, err := uc.Update(out.ID, &dto.AppFeedbackUpdate{
		Overall: intPtr(5),
		Comment: strPtr("upping my rating after latest bugfix release"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Overall)
	require.NotNil(t, updated.Usability)
	assert.Equal(t, 4, *updated.Usability)

	require.NoError(t, uc.Delete(out.ID))

	var notFoundErr *apperror.NotFoundError
	_, err = uc.Get(out.ID)
	require.ErrorAs(t, err, &notFoundErr)
}

func TestAppFeedbackListFiltersByAuthor(t *testing.T) {
	uc, store := newAppUC()

	author := uuid.New()
	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := &model.AppFeedback{AuthorProfileID: &author, Overall: 4, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, store.Insert(rec))
	}
	require.NoError(t, store.Insert(&model.AppFeedback{Overall: 1, CreatedAt: base}))

	page, err := uc.List(usecase.AppListParams{Filter: query.AppFilter{AuthorProfileID: &author}})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Count)
	assert.Nil(t, page.NextCursor)
}

func TestAppFeedbackListSortByRatingDesc(t *testing.T) {
	uc, store := newAppUC()

	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	ratings := []int{2, 5, 3, 4, 1}
	for i, r := range ratings {
		require.NoError(t, store.Insert(&model.AppFeedback{Overall: r, CreatedAt: base.Add(time.Duration(i) * time.Second)}))
	}

	var got []int
	params := usecase.AppListParams{Sort: "rating", Order: "desc", Limit: intPtr(2)}
	for {
		page, err := uc.List(params)
		require.NoError(t, err)
		for _, item := range page.Items {
			got = append(got, item.Overall)
		}
		if page.NextCursor == nil {
			break
		}
		params.Cursor = *page.NextCursor
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)
}

func TestAppFeedbackStats(t *testing.T) {
	uc, store := newAppUC()

	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	recs := []*model.AppFeedback{
		{Overall: 4, Usability: intPtr(5), Reliability: intPtr(4), Tags: []string{"praise", "bug"}, CreatedAt: base},
		{Overall: 5, Usability: intPtr(4), Tags: []string{"praise"}, CreatedAt: base.Add(time.Minute)},
		{Overall: 2, SupportExperience: intPtr(3), Tags: []string{"bug"}, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, rec := range recs {
		require.NoError(t, store.Insert(rec))
	}

	stats, err := uc.Stats(query.AppFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.CountTotal)
	require.NotNil(t, stats.AvgOverall)
	assert.InDelta(t, 3.667, *stats.AvgOverall, 0.0001)
	assert.Equal(t, map[string]int{"1": 0, "2": 1, "3": 0, "4": 1, "5": 1}, stats.Distribution)

	require.NotNil(t, stats.FacetAverages["usability"])
	assert.InDelta(t, 4.5, *stats.FacetAverages["usability"], 0.0001)
	require.NotNil(t, stats.FacetAverages["reliability"])
	assert.InDelta(t, 4.0, *stats.FacetAverages["reliability"], 0.0001)
	assert.Nil(t, stats.FacetAverages["performance"])
	require.NotNil(t, stats.FacetAverages["support_experience"])
	assert.InDelta(t, 3.0, *stats.FacetAverages["support_experience"], 0.0001)

	assert.Equal(t, []dto.TagCount{
		{Tag: "bug", Count: 2},
		{Tag: "praise", Count: 2},
	}, stats.TopTags)
}

func TestAppFeedbackStatsSince(t *testing.T) {
	uc, store := newAppUC()

	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Insert(&model.AppFeedback{Overall: 1, CreatedAt: base}))
	require.NoError(t, store.Insert(&model.AppFeedback{Overall: 5, CreatedAt: base.Add(time.Hour)}))

	since := base.Add(30 * time.Minute)
	stats, err := uc.Stats(query.AppFilter{Since: &since})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.CountTotal)
	require.NotNil(t, stats.AvgOverall)
	assert.InDelta(t, 5.0, *stats.AvgOverall, 0.0001)
}
